package wire

import (
	"encoding/binary"
	"io"
)

// RecvPacket reads one outer length-prefixed frame: a 4-byte big-endian
// length followed by exactly that many bytes. A zero or oversized length,
// or any short read, is a protocol/transport failure — callers treat
// either the same way: drop the connection.
func RecvPacket(r io.Reader) ([]byte, error) {
	return RecvPacketCapped(r, MaxPacket)
}

// RecvPacketCapped is RecvPacket with a caller-supplied cap tighter than
// MaxPacket, checked against the outer length before the body is
// allocated or read. Used on paths where a generous MaxPacket body would
// let a client force a large buffered read before any validation runs —
// the handshake name frame, which only ever needs MaxPayload bytes.
func RecvPacketCapped(r io.Reader, maxLength uint32) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	length := binary.BigEndian.Uint32(lenBuf[:])
	if length == 0 {
		return nil, violation("zero-length frame")
	}
	if length > maxLength {
		return nil, violation("frame length %d exceeds cap (%d)", length, maxLength)
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// SendPacket writes payload behind its 4-byte big-endian length prefix.
func SendPacket(w io.Writer, payload []byte) error {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}
