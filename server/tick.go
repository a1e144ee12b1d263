package server

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lguibr/cycles/bollywood"
	"github.com/lguibr/cycles/config"
	"github.com/lguibr/cycles/game"
	"github.com/lguibr/cycles/geom"
	"github.com/lguibr/cycles/wire"
)

// pollInterval is how long a pending-recv poll blocks waiting for a move
// packet before moving on to the next pending client. Short enough that a
// full lap over pending clients stays well under a typical comm budget.
const pollInterval = 2 * time.Millisecond

// Orchestrator drives the tick loop: broadcast the current snapshot,
// collect moves within a bounded budget, advance the world, pace to the
// target frame time, repeat until the world reports itself over or running
// is cleared.
type Orchestrator struct {
	engine   *bollywood.Engine
	worldPID *bollywood.PID
	table    *SocketTable
	cfg      config.Config
	frame    uint32
}

func NewOrchestrator(engine *bollywood.Engine, worldPID *bollywood.PID, table *SocketTable, cfg config.Config) *Orchestrator {
	return &Orchestrator{engine: engine, worldPID: worldPID, table: table, cfg: cfg}
}

// Run executes tick loop until the world is over or running is cleared.
func (o *Orchestrator) Run(running *atomic.Bool) {
	for running.Load() {
		tickStart := time.Now()

		snap := o.getSnapshot()
		directions := o.commPhase(snap)

		done := make(chan struct{})
		o.engine.Send(o.worldPID, game.AdvanceMsg{Directions: directions, Reply: done}, nil)
		<-done
		o.frame++

		if snap.Over {
			running.Store(false)
			return
		}

		elapsed := time.Since(tickStart)
		if elapsed < o.cfg.TargetFrameTime {
			time.Sleep(o.cfg.TargetFrameTime - elapsed)
		}
	}
}

func (o *Orchestrator) getSnapshot() game.Snapshot {
	reply := make(chan game.Snapshot, 1)
	o.engine.Send(o.worldPID, game.SnapshotMsg{Frame: o.frame, Reply: reply}, nil)
	return <-reply
}

// commPhase broadcasts snap to every connected client and collects their
// move replies, within cfg.CommBudget. Clients that fail to send or never
// reply in time are dropped: their connection is closed, their table slot
// cleared, and the world is told to remove them.
func (o *Orchestrator) commPhase(snap game.Snapshot) map[game.PlayerId]geom.Direction {
	payload := wire.EncodeSnapshot(snap)
	deadline := time.Now().Add(o.cfg.CommBudget)

	pendingSend := o.table.Ids()
	pendingRecv := make([]uint8, 0, len(pendingSend))
	directions := make(map[game.PlayerId]geom.Direction, len(pendingSend))

	for (len(pendingSend) > 0 || len(pendingRecv) > 0) && time.Now().Before(deadline) {
		if len(pendingSend) > 0 {
			id := pendingSend[0]
			pendingSend = pendingSend[1:]

			conn, ok := o.table.Get(id)
			if !ok {
				continue
			}
			conn.SetWriteDeadline(deadline)
			if err := wire.SendPacket(conn, payload); err != nil {
				o.drop(game.PlayerId(id), conn, err)
				continue
			}
			pendingRecv = append(pendingRecv, id)
			continue
		}

		still := pendingRecv[:0]
		for _, id := range pendingRecv {
			conn, ok := o.table.Get(id)
			if !ok {
				continue
			}

			remaining := time.Until(deadline)
			readDeadline := time.Now().Add(pollInterval)
			if remaining < pollInterval {
				readDeadline = deadline
			}
			conn.SetReadDeadline(readDeadline)

			body, err := wire.RecvPacket(conn)
			if err != nil {
				if isTimeout(err) {
					still = append(still, id)
					continue
				}
				o.drop(game.PlayerId(id), conn, err)
				continue
			}

			dir, err := wire.DecodeMove(body)
			if err != nil {
				o.drop(game.PlayerId(id), conn, err)
				continue
			}
			directions[game.PlayerId(id)] = geom.Clamp(dir)
		}
		pendingRecv = still
	}

	for _, id := range pendingRecv {
		if conn, ok := o.table.Get(id); ok {
			o.drop(game.PlayerId(id), conn, fmt.Errorf("server: move timed out"))
		}
	}

	return directions
}

func (o *Orchestrator) drop(id game.PlayerId, conn interface{ Close() error }, reason error) {
	fmt.Printf("server: dropping player %d: %v\n", id, reason)
	conn.Close()
	o.table.Clear(uint8(id))
	o.engine.Send(o.worldPID, game.RemovePlayerMsg{Id: id}, nil)
}

func isTimeout(err error) bool {
	type timeout interface{ Timeout() bool }
	te, ok := err.(timeout)
	return ok && te.Timeout()
}
