package wire

import "github.com/lguibr/cycles/game"

// EncodeName builds the handshake string payload: [u32 len][name bytes].
func EncodeName(name string) []byte {
	w := NewWriter(4 + len(name))
	w.String(name)
	return w.Bytes()
}

// DecodeName reads a handshake name payload, rejecting anything over
// MaxPayload — tighter than the general MaxString cap, since a name frame
// is a small fixed-purpose packet.
func DecodeName(payload []byte) (string, error) {
	if len(payload) > MaxPayload {
		return "", violation("handshake payload %d exceeds MaxPayload (%d)", len(payload), MaxPayload)
	}
	r := NewReader(payload)
	name, err := r.String()
	if err != nil {
		return "", err
	}
	if err := r.RequireExhausted(); err != nil {
		return "", err
	}
	return name, nil
}

// EncodeColor builds the fixed 3-byte [r][g][b] color payload sent as the
// handshake reply.
func EncodeColor(c game.Rgb) []byte {
	return []byte{c.R, c.G, c.B}
}

// DecodeColor reads a color payload, which must be exactly 3 bytes.
func DecodeColor(payload []byte) (game.Rgb, error) {
	if len(payload) != 3 {
		return game.Rgb{}, violation("color payload length %d != 3", len(payload))
	}
	return game.Rgb{R: payload[0], G: payload[1], B: payload[2]}, nil
}
