// Package game owns the authoritative grid world: spawn placement, collision
// resolution, trail aging and elimination. It has no notion of sockets or
// wire frames; the server package drives it with decoded directions and
// serializes its snapshots.
package game

import (
	"errors"
	"fmt"

	"github.com/lguibr/cycles/config"
	"github.com/lguibr/cycles/geom"
)

// ErrGridFull is returned by AddPlayer when no empty cell could be found
// within the rejection-sampling attempt budget.
var ErrGridFull = errors.New("game: grid full")

// ErrMaxClients is returned by AddPlayer when the player table is already
// at its configured capacity.
var ErrMaxClients = errors.New("game: max_clients reached")

// ErrIdSpaceExhausted is returned by AddPlayer once every id in 1..255 has
// been handed out at least once during a World's lifetime, even if most of
// those ids are no longer occupied. 0 is reserved as the empty-cell
// sentinel, so idSeq cannot be allowed to wrap past 255 back to it.
var ErrIdSpaceExhausted = errors.New("game: id space exhausted")

const spawnAttemptLimit = 10000

// DefaultSeed is the constant spawn/palette seed production servers use.
// It is a constant, not a time-derived value, so a world's spawn sequence
// and color palette are reproducible given the same seed.
const DefaultSeed uint64 = 123456789

// World is the single-writer owner of the grid, the player table and the
// tick clock. All mutation happens through AddPlayer, RemovePlayer and
// Advance; everything else is a read-only snapshot accessor.
type World struct {
	cfg     config.Config
	players *playerStore
	grid    *Grid
	frame   uint32
	rng     *rng
	palette []Rgb
	idSeq   PlayerId
	started bool
}

// NewWorld allocates the grid, builds the deterministic color palette and
// seeds the spawn RNG with seed. Passing the same seed and config always
// produces the same spawn sequence, which is what makes collision
// scenarios reproducible in tests without needing to fake the RNG itself.
func NewWorld(cfg config.Config, seed uint64) *World {
	return &World{
		cfg:     cfg,
		players: newPlayerStore(),
		grid:    newGrid(cfg.GridWidth, cfg.GridHeight),
		rng:     newRNG(seed),
		palette: newColorPalette(cfg.MaxClients),
		idSeq:   1,
	}
}

// AddPlayer spawns a new player at a random empty cell and returns its id.
func (w *World) AddPlayer(name string) (PlayerId, error) {
	if w.players.len() >= w.cfg.MaxClients {
		return 0, ErrMaxClients
	}

	if w.idSeq == 0 {
		return 0, ErrIdSpaceExhausted
	}

	pos, err := w.findEmptyCell()
	if err != nil {
		return 0, err
	}

	id := w.idSeq
	w.idSeq++
	color := w.palette[int(id)%len(w.palette)]

	p := newPlayer(id, name, pos, color)
	if !w.players.insert(*p) {
		return 0, fmt.Errorf("game: id %d already in use", id)
	}
	w.grid.set(pos.X, pos.Y, uint8(id))
	w.started = true
	return id, nil
}

func (w *World) findEmptyCell() (geom.Vec2, error) {
	for attempt := 0; attempt < spawnAttemptLimit; attempt++ {
		x := int32(w.rng.float() * float64(w.grid.width))
		y := int32(w.rng.float() * float64(w.grid.height))
		if x >= w.grid.width {
			x = w.grid.width - 1
		}
		if y >= w.grid.height {
			y = w.grid.height - 1
		}
		if w.grid.at(x, y) == 0 {
			return geom.Vec2{X: x, Y: y}, nil
		}
	}
	return geom.Vec2{}, ErrGridFull
}

// RemovePlayer clears a player's head and trail cells and drops it from the
// store. Removing an id that doesn't exist is a no-op.
func (w *World) RemovePlayer(id PlayerId) {
	p, ok := w.players.find(id)
	if !ok {
		return
	}
	w.grid.set(p.Head.X, p.Head.Y, 0)
	for node := p.Trail; node != nil; node = node.Next {
		w.grid.set(node.Pos.X, node.Pos.Y, 0)
	}
	w.players.remove(id)
}

// Advance resolves one tick: every registered player with an entry in
// directions moves simultaneously, collisions are detected against the
// pre-tick grid and against each other's new_pos, all deaths this tick
// happen together, then survivors advance and their trails are trimmed.
func (w *World) Advance(directions map[PlayerId]geom.Direction) {
	maxTrailLength := w.cfg.InitialMaxTrailLength + int(w.frame)/w.cfg.TrailGrowthEveryTicks

	players := w.players.iter()
	if len(players) == 0 {
		w.frame++
		return
	}

	newPos := make(map[PlayerId]geom.Vec2, len(directions))
	for _, p := range players {
		dir, ok := directions[p.Id]
		if !ok {
			continue
		}
		newPos[p.Id] = p.Head.Add(dir.Unit())
	}

	dying := make(map[PlayerId]bool, len(newPos))

	// Head-to-head: two distinct players landing on the same cell both die.
	for i := 0; i < len(players); i++ {
		idI := players[i].Id
		posI, ok := newPos[idI]
		if !ok {
			continue
		}
		for j := i + 1; j < len(players); j++ {
			idJ := players[j].Id
			posJ, ok := newPos[idJ]
			if !ok {
				continue
			}
			if posI.Equal(posJ) {
				dying[idI] = true
				dying[idJ] = true
			}
		}
	}

	// Head-to-wall / head-to-existing-cell, evaluated against the grid as
	// it stood at the start of the tick.
	for id, pos := range newPos {
		if !geom.InsideGrid(pos, w.grid.width, w.grid.height) {
			dying[id] = true
			continue
		}
		if w.grid.at(pos.X, pos.Y) != 0 {
			dying[id] = true
		}
	}

	for id := range dying {
		w.RemovePlayer(id)
	}

	for _, p := range players {
		if dying[p.Id] {
			continue
		}
		pos, ok := newPos[p.Id]
		if !ok {
			continue
		}
		current, ok := w.players.find(p.Id)
		if !ok {
			continue
		}

		current.Trail = &TrailNode{Pos: current.Head, Next: current.Trail}

		length := 0
		var prev *TrailNode
		node := current.Trail
		for node != nil {
			length++
			if length > maxTrailLength {
				w.grid.set(node.Pos.X, node.Pos.Y, 0)
				if prev != nil {
					prev.Next = nil
				}
				break
			}
			prev = node
			node = node.Next
		}

		w.grid.set(pos.X, pos.Y, uint8(p.Id))
		current.Head = pos
	}

	w.frame++
}

// Grid returns the read-only backing grid.
func (w *World) Grid() *Grid { return w.grid }

// GridSize returns the grid's width and height.
func (w *World) GridSize() (int32, int32) { return w.grid.width, w.grid.height }

// Players returns every connected player, ascending by id.
func (w *World) Players() []*Player { return w.players.iter() }

// Player looks up a single connected player by id.
func (w *World) Player(id PlayerId) (*Player, bool) { return w.players.find(id) }

// Frame returns the current tick counter.
func (w *World) Frame() uint32 { return w.frame }

// SetFrame overwrites the tick counter; the orchestrator calls this before
// taking a snapshot so the encoded frame number matches the tick in
// progress.
func (w *World) SetFrame(v uint32) { w.frame = v }

// IsOver reports whether the game has started and is down to its last
// player or fewer.
func (w *World) IsOver() bool {
	return w.started && w.players.len() <= 1
}
