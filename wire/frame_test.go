package wire_test

import (
	"bytes"
	"testing"

	"github.com/lguibr/cycles/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecvSendPacketRoundTrip(t *testing.T) {
	client, server, stop, err := tcpPipe()
	require.NoError(t, err)
	defer stop()

	payload := []byte("hello, light-cycle")
	go func() {
		require.NoError(t, wire.SendPacket(client, payload))
	}()

	got, err := wire.RecvPacket(server)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(payload, got))
}

func TestRecvPacketRejectsZeroLength(t *testing.T) {
	client, server, stop, err := tcpPipe()
	require.NoError(t, err)
	defer stop()

	go func() {
		client.Write([]byte{0, 0, 0, 0})
	}()

	_, err = wire.RecvPacket(server)
	assert.Error(t, err)
}

func TestRecvPacketRejectsOversizedLength(t *testing.T) {
	client, server, stop, err := tcpPipe()
	require.NoError(t, err)
	defer stop()

	go func() {
		client.Write([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	}()

	_, err = wire.RecvPacket(server)
	assert.Error(t, err)
}

func TestRecvPacketCappedRejectsLengthOverCapWithoutReadingBody(t *testing.T) {
	client, server, stop, err := tcpPipe()
	require.NoError(t, err)
	defer stop()

	go func() {
		client.Write([]byte{0, 0x10, 0, 0}) // 0x100000 = 1 MiB, over a tiny cap
	}()

	_, err = wire.RecvPacketCapped(server, 4096)
	assert.Error(t, err)
}

func TestRecvPacketFailsOnShortRead(t *testing.T) {
	client, server, stop, err := tcpPipe()
	require.NoError(t, err)
	defer stop()

	go func() {
		client.Write([]byte{0, 0, 0, 10})
		client.Write([]byte{1, 2, 3})
		client.Close()
	}()

	_, err = wire.RecvPacket(server)
	assert.Error(t, err)
}
