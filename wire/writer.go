package wire

import "encoding/binary"

// Writer accumulates big-endian fields into a growable byte slice. Callers
// that need the final payload size up front (to fill the outer 4-byte
// length prefix) can call Len before Bytes.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer, optionally pre-sized.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// Len is the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the accumulated payload.
func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) U8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) U32(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

func (w *Writer) I32(v int32) {
	w.U32(uint32(v))
}

// RawBytes appends b verbatim, with no length prefix.
func (w *Writer) RawBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// String writes a [u32 length][bytes] field.
func (w *Writer) String(s string) {
	w.U32(uint32(len(s)))
	w.buf = append(w.buf, s...)
}
