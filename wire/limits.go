// Package wire implements the big-endian, length-prefixed binary protocol
// spoken between server and client: outer 4-byte length frames, and inside
// each payload a handful of fixed-width fields plus length-prefixed byte
// strings. Every read is bounds-checked against a remaining-bytes counter
// and a handful of hard size caps, so a decoder fed adversarial input fails
// cleanly instead of over-allocating or reading out of bounds.
package wire

// Size caps referenced throughout decoding. MaxPacket bounds the outer
// frame; MaxString bounds any individual length-prefixed byte string;
// MaxPayload is the tighter cap applied to the handshake name frame only.
const (
	MaxPacket  = 32 * 1024 * 1024
	MaxString  = 16 * 1024 * 1024
	MaxPayload = 64 * 1024
)

// StoredNameLen is how many bytes of a player name the server keeps; the
// wire protocol itself permits names up to MaxString.
const StoredNameLen = 31
