package wire

// EncodeMove builds the 4-byte move payload: a big-endian signed 32-bit
// direction index.
func EncodeMove(direction int32) []byte {
	w := NewWriter(4)
	w.I32(direction)
	return w.Bytes()
}

// DecodeMove reads a move payload, which must be exactly 4 bytes. The
// returned value is the raw signed direction; callers normalize it.
func DecodeMove(payload []byte) (int32, error) {
	if len(payload) != 4 {
		return 0, violation("move payload length %d != 4", len(payload))
	}
	r := NewReader(payload)
	v, err := r.I32()
	if err != nil {
		return 0, err
	}
	return v, nil
}
