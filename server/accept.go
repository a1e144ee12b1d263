package server

import (
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/lguibr/cycles/bollywood"
	"github.com/lguibr/cycles/config"
	"github.com/lguibr/cycles/game"
	"github.com/lguibr/cycles/wire"
)

// AcceptLoop runs the pre-tick phase: while accepting is set and the arena
// has room, it accepts one connection at a time, drives its handshake to
// completion, and installs the resulting player in table. It returns as
// soon as the arena fills up or accepting is cleared. Handshakes run
// inline, not in their own goroutine, since the accept phase never
// overlaps the tick phase and table is only ever touched from this one
// goroutine during it.
func AcceptLoop(ln net.Listener, engine *bollywood.Engine, worldPID *bollywood.PID, table *SocketTable, cfg config.Config, accepting *atomic.Bool) {
	tcpLn, canDeadline := ln.(interface {
		SetDeadline(time.Time) error
	})

	for accepting.Load() && table.Len() < cfg.MaxClients {
		if canDeadline {
			tcpLn.SetDeadline(time.Now().Add(cfg.AcceptBackoff))
		}

		conn, err := ln.Accept()
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			if !accepting.Load() {
				return
			}
			fmt.Printf("server: accept error: %v\n", err)
			continue
		}

		handshake(conn, engine, worldPID, table)
	}
}

func handshake(conn net.Conn, engine *bollywood.Engine, worldPID *bollywood.PID, table *SocketTable) {
	payload, err := wire.RecvPacketCapped(conn, wire.MaxPayload)
	if err != nil {
		fmt.Printf("server: handshake: recv name from %s: %v\n", conn.RemoteAddr(), err)
		conn.Close()
		return
	}

	name, err := wire.DecodeName(payload)
	if err != nil {
		fmt.Printf("server: handshake: decode name from %s: %v\n", conn.RemoteAddr(), err)
		conn.Close()
		return
	}

	reply := make(chan game.AddPlayerResult, 1)
	engine.Send(worldPID, game.AddPlayerMsg{Name: name, Reply: reply}, nil)
	result := <-reply
	if result.Err != nil {
		fmt.Printf("server: handshake: add_player %q rejected: %v\n", name, result.Err)
		conn.Close()
		return
	}

	if err := wire.SendPacket(conn, wire.EncodeColor(result.Color)); err != nil {
		fmt.Printf("server: handshake: send color to player %d: %v\n", result.Id, err)
		engine.Send(worldPID, game.RemovePlayerMsg{Id: result.Id}, nil)
		conn.Close()
		return
	}

	table.Set(uint8(result.Id), conn)
	fmt.Printf("server: player %d %q connected from %s\n", result.Id, name, conn.RemoteAddr())
}
