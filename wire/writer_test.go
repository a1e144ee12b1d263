package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterLenMatchesBytes(t *testing.T) {
	w := NewWriter(0)
	w.U32(7)
	w.String("ok")
	assert.Equal(t, w.Len(), len(w.Bytes()))
}

func TestWriterU32BigEndian(t *testing.T) {
	w := NewWriter(0)
	w.U32(0x01020304)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, w.Bytes())
}

func TestWriterI32NegativeRoundTrips(t *testing.T) {
	w := NewWriter(0)
	w.I32(-1)
	r := NewReader(w.Bytes())
	v, err := r.I32()
	assert.NoError(t, err)
	assert.Equal(t, int32(-1), v)
}
