package wire

import (
	"encoding/binary"
	"fmt"
)

// ErrProtocolViolation wraps every decode failure: underflow against the
// remaining-bytes counter, an inner length exceeding a hard cap, or
// trailing bytes left over after a frame claims to be fully consumed.
type ErrProtocolViolation struct {
	Reason string
}

func (e *ErrProtocolViolation) Error() string {
	return fmt.Sprintf("wire: protocol violation: %s", e.Reason)
}

func violation(format string, args ...interface{}) error {
	return &ErrProtocolViolation{Reason: fmt.Sprintf(format, args...)}
}

// Reader decodes big-endian fields from a byte slice, tracking how many
// bytes remain so every read can fail instead of panicking on adversarial
// input.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for sequential reading. buf is not copied; callers
// must not mutate it while decoding is in progress.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining is how many bytes have not yet been consumed.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, violation("need %d bytes, %d remaining", n, r.Remaining())
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// U8 reads one unsigned byte.
func (r *Reader) U8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U32 reads a big-endian unsigned 32-bit integer.
func (r *Reader) U32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// I32 reads a big-endian signed 32-bit integer.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// Bytes reads exactly n raw bytes.
func (r *Reader) Bytes(n int) ([]byte, error) {
	return r.take(n)
}

// String reads a [u32 length][bytes] field, rejecting lengths over
// MaxString before attempting to read the body.
func (r *Reader) String() (string, error) {
	n, err := r.U32()
	if err != nil {
		return "", err
	}
	if n > MaxString {
		return "", violation("string length %d exceeds MaxString (%d)", n, MaxString)
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// RequireExhausted fails if any bytes remain unconsumed; callers run this
// after decoding a world snapshot to reject trailing garbage.
func (r *Reader) RequireExhausted() error {
	if r.Remaining() != 0 {
		return violation("%d trailing bytes after decode", r.Remaining())
	}
	return nil
}
