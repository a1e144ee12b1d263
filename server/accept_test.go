package server_test

import (
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lguibr/cycles/bollywood"
	"github.com/lguibr/cycles/config"
	"github.com/lguibr/cycles/game"
	"github.com/lguibr/cycles/server"
	"github.com/lguibr/cycles/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.GridWidth, cfg.GridHeight = 8, 8
	cfg.MaxClients = 2
	cfg.AcceptBackoff = time.Millisecond
	return cfg
}

func TestAcceptLoopCompletesHandshake(t *testing.T) {
	cfg := testConfig()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	engine := bollywood.NewEngine()
	worldPID := engine.Spawn(game.NewWorldActorProps(cfg, game.DefaultSeed))
	table := server.NewSocketTable()

	accepting := &atomic.Bool{}
	accepting.Store(true)
	go server.AcceptLoop(ln, engine, worldPID, table, cfg, accepting)

	conn, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, wire.SendPacket(conn, wire.EncodeName("Ada")))

	colorPayload, err := wire.RecvPacket(conn)
	require.NoError(t, err)
	_, err = wire.DecodeColor(colorPayload)
	require.NoError(t, err)

	accepting.Store(false)
	ln.Close()

	require.Eventually(t, func() bool { return table.Len() == 1 }, time.Second, time.Millisecond)
}

func TestAcceptLoopStopsAtCapacity(t *testing.T) {
	cfg := testConfig()
	cfg.MaxClients = 1
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	engine := bollywood.NewEngine()
	worldPID := engine.Spawn(game.NewWorldActorProps(cfg, game.DefaultSeed))
	table := server.NewSocketTable()
	table.Set(1, fakeConn{})

	accepting := &atomic.Bool{}
	accepting.Store(true)

	done := make(chan struct{})
	go func() {
		server.AcceptLoop(ln, engine, worldPID, table, cfg, accepting)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("AcceptLoop did not return when the arena was already full")
	}
}

// TestAcceptLoopRejectsOversizedHandshakeLength confirms the handshake path
// checks the outer length against wire.MaxPayload before reading the body,
// so an oversized claimed length fails fast instead of buffering up to
// wire.MaxPacket off the wire.
func TestAcceptLoopRejectsOversizedHandshakeLength(t *testing.T) {
	cfg := testConfig()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	engine := bollywood.NewEngine()
	worldPID := engine.Spawn(game.NewWorldActorProps(cfg, game.DefaultSeed))
	table := server.NewSocketTable()

	accepting := &atomic.Bool{}
	accepting.Store(true)
	go server.AcceptLoop(ln, engine, worldPID, table, cfg, accepting)

	conn, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	oversized := uint32(wire.MaxPayload + 1)
	_, err = conn.Write([]byte{
		byte(oversized >> 24), byte(oversized >> 16), byte(oversized >> 8), byte(oversized),
	})
	require.NoError(t, err)

	buf := make([]byte, 1)
	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, err = conn.Read(buf)
	assert.Error(t, err, "server should close the connection instead of waiting for a body this large")

	accepting.Store(false)
	ln.Close()
}

type fakeConn struct{ net.Conn }
