// Package client is a small library for talking to a cycles server: dial,
// exchange the handshake, then exchange snapshots for moves each tick.
package client

import (
	"fmt"
	"net"
	"time"

	"github.com/lguibr/cycles/game"
	"github.com/lguibr/cycles/geom"
	"github.com/lguibr/cycles/wire"
)

// Client is a connected session: one TCP socket, one assigned id and
// color, nothing else. Callers drive the tick loop themselves by calling
// RecvSnapshot / SendMove in sequence.
type Client struct {
	conn  net.Conn
	Id    game.PlayerId
	Color game.Rgb
}

// Connect dials address, sends name, and waits for the server's color
// assignment. The returned Client is ready for RecvSnapshot/SendMove.
func Connect(name, address string) (*Client, error) {
	conn, err := net.DialTimeout("tcp", address, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("client: dial %s: %w", address, err)
	}

	if err := wire.SendPacket(conn, wire.EncodeName(name)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("client: send name: %w", err)
	}

	payload, err := wire.RecvPacket(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("client: recv color: %w", err)
	}

	color, err := wire.DecodeColor(payload)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("client: decode color: %w", err)
	}

	return &Client{conn: conn, Color: color}, nil
}

// RecvSnapshot blocks for the next broadcast snapshot. It also learns this
// client's own id the first time a snapshot names a player at this
// connection's color, which the handshake alone doesn't hand back.
func (c *Client) RecvSnapshot() (game.Snapshot, error) {
	payload, err := wire.RecvPacket(c.conn)
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("client: recv snapshot: %w", err)
	}
	snap, err := wire.DecodeSnapshot(payload)
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("client: decode snapshot: %w", err)
	}
	if c.Id == 0 {
		for _, p := range snap.Players {
			if p.Color == c.Color {
				c.Id = p.Id
				break
			}
		}
	}
	return snap, nil
}

// SendMove sends one direction for the current tick.
func (c *Client) SendMove(dir geom.Direction) error {
	if err := wire.SendPacket(c.conn, wire.EncodeMove(int32(dir))); err != nil {
		return fmt.Errorf("client: send move: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// AlwaysEast is the trivial move policy the example clients run: steer
// east every tick regardless of what the snapshot shows. Any policy
// satisfies the server's contract; this one exists to drive round-trip
// demos and tests without a real player.
func AlwaysEast(snap game.Snapshot) geom.Direction {
	return geom.East
}
