package game

import (
	"fmt"

	"github.com/lguibr/cycles/bollywood"
	"github.com/lguibr/cycles/config"
)

// WorldActor owns a World and processes AddPlayerMsg / RemovePlayerMsg /
// AdvanceMsg / SnapshotMsg one at a time on its own goroutine. This is the
// single-writer discipline: every accept-phase spawn and every tick-phase
// mutation funnels through the same mailbox, so the World itself never
// needs its own lock.
type WorldActor struct {
	world *World
}

// NewWorldActorProps builds the Producer for spawning a WorldActor.
func NewWorldActorProps(cfg config.Config, seed uint64) *bollywood.Props {
	return bollywood.NewProps(func() bollywood.Actor {
		return &WorldActor{world: NewWorld(cfg, seed)}
	})
}

func (a *WorldActor) Receive(ctx bollywood.Context) {
	switch msg := ctx.Message().(type) {
	case bollywood.Started, bollywood.Stopping, bollywood.Stopped:
		// No per-lifecycle setup; the World is fully built in the Producer.

	case AddPlayerMsg:
		id, err := a.world.AddPlayer(msg.Name)
		result := AddPlayerResult{Id: id, Err: err}
		if err == nil {
			if p, ok := a.world.Player(id); ok {
				result.Color = p.Color
			}
		}
		if msg.Reply != nil {
			msg.Reply <- result
		}

	case RemovePlayerMsg:
		a.world.RemovePlayer(msg.Id)

	case AdvanceMsg:
		a.world.Advance(msg.Directions)
		if msg.Reply != nil {
			close(msg.Reply)
		}

	case SnapshotMsg:
		if msg.Reply != nil {
			msg.Reply <- a.snapshot(msg.Frame)
		}

	default:
		fmt.Printf("game: WorldActor received unknown message %T\n", msg)
	}
}

func (a *WorldActor) snapshot(frame uint32) Snapshot {
	a.world.SetFrame(frame)
	w, h := a.world.GridSize()

	gridCopy := make([]uint8, len(a.world.Grid().Bytes()))
	copy(gridCopy, a.world.Grid().Bytes())

	players := a.world.Players()
	views := make([]PlayerView, len(players))
	for i, p := range players {
		views[i] = PlayerView{Id: p.Id, Name: p.Name, Head: p.Head, Color: p.Color}
	}

	return Snapshot{
		Width:   w,
		Height:  h,
		Grid:    gridCopy,
		Players: views,
		Frame:   a.world.Frame(),
		Over:    a.world.IsOver(),
	}
}
