package wire_test

import (
	"testing"

	"github.com/lguibr/cycles/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveRoundTrip(t *testing.T) {
	for _, dir := range []int32{0, 1, 2, 3, -5, 99} {
		payload := wire.EncodeMove(dir)
		got, err := wire.DecodeMove(payload)
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	}
}

func TestDecodeMoveRejectsWrongLength(t *testing.T) {
	_, err := wire.DecodeMove([]byte{1, 2, 3})
	assert.Error(t, err)
}
