package game

import (
	"testing"

	"github.com/lguibr/cycles/config"
	"github.com/lguibr/cycles/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(w, h int32) config.Config {
	cfg := config.DefaultConfig()
	cfg.GridWidth = w
	cfg.GridHeight = h
	cfg.MaxClients = 16
	return cfg
}

// placeAt forcibly relocates a player's head to pos, bypassing spawn RNG,
// so collision scenarios can be set up deterministically.
func placeAt(t *testing.T, w *World, id PlayerId, pos geom.Vec2) {
	t.Helper()
	p, ok := w.players.find(id)
	require.True(t, ok, "placeAt: unknown player id")
	w.grid.set(p.Head.X, p.Head.Y, 0)
	p.Head = pos
	w.grid.set(pos.X, pos.Y, uint8(id))
}

func TestAddPlayerAssignsSequentialIds(t *testing.T) {
	w := NewWorld(testConfig(10, 10), DefaultSeed)
	id1, err := w.AddPlayer("P1")
	require.NoError(t, err)
	id2, err := w.AddPlayer("P2")
	require.NoError(t, err)
	assert.Equal(t, PlayerId(1), id1)
	assert.Equal(t, PlayerId(2), id2)
}

func TestAddPlayerFailsAtMaxClients(t *testing.T) {
	cfg := testConfig(4, 4)
	cfg.MaxClients = 2
	w := NewWorld(cfg, DefaultSeed)
	_, err := w.AddPlayer("P1")
	require.NoError(t, err)
	_, err = w.AddPlayer("P2")
	require.NoError(t, err)
	_, err = w.AddPlayer("P3")
	assert.ErrorIs(t, err, ErrMaxClients)
}

func TestSingleSpawnMoveEast(t *testing.T) {
	w := NewWorld(testConfig(10, 10), DefaultSeed)
	id, err := w.AddPlayer("P1")
	require.NoError(t, err)
	placeAt(t, w, id, geom.Vec2{X: 3, Y: 3})

	w.Advance(map[PlayerId]geom.Direction{id: geom.East})

	p, ok := w.Player(id)
	require.True(t, ok)
	assert.Equal(t, geom.Vec2{X: 4, Y: 3}, p.Head)
	require.NotNil(t, p.Trail)
	assert.Equal(t, geom.Vec2{X: 3, Y: 3}, p.Trail.Pos)
	assert.Nil(t, p.Trail.Next)
	assert.Equal(t, uint8(id), w.Grid().at(3, 3))
	assert.Equal(t, uint8(id), w.Grid().at(4, 3))
	assert.Equal(t, uint32(1), w.Frame())
}

func TestHeadToHeadCollisionEliminatesBoth(t *testing.T) {
	w := NewWorld(testConfig(10, 10), DefaultSeed)
	id1, _ := w.AddPlayer("P1")
	id2, _ := w.AddPlayer("P2")
	placeAt(t, w, id1, geom.Vec2{X: 4, Y: 5})
	placeAt(t, w, id2, geom.Vec2{X: 6, Y: 5})

	w.Advance(map[PlayerId]geom.Direction{id1: geom.East, id2: geom.West})

	assert.Equal(t, 0, len(w.Players()))
	for _, v := range w.Grid().Bytes() {
		assert.Equal(t, uint8(0), v)
	}
	assert.True(t, w.IsOver())
}

func TestHeadIntoOwnTrailEliminates(t *testing.T) {
	w := NewWorld(testConfig(10, 10), DefaultSeed)
	id, _ := w.AddPlayer("P1")
	placeAt(t, w, id, geom.Vec2{X: 5, Y: 5})
	p, _ := w.players.find(id)
	p.Trail = &TrailNode{Pos: geom.Vec2{X: 5, Y: 4}}
	w.grid.set(5, 4, uint8(id))

	w.Advance(map[PlayerId]geom.Direction{id: geom.North})

	_, ok := w.Player(id)
	assert.False(t, ok)
}

func TestTrailTrimsToMaxLength(t *testing.T) {
	cfg := testConfig(100, 100)
	w := NewWorld(cfg, DefaultSeed)
	id, _ := w.AddPlayer("P1")
	placeAt(t, w, id, geom.Vec2{X: 0, Y: 50})

	for i := 0; i < 60; i++ {
		w.Advance(map[PlayerId]geom.Direction{id: geom.East})
		p, ok := w.Player(id)
		require.True(t, ok, "player should survive 60 straight moves on an empty 100x100 grid")
		_ = p
	}

	p, ok := w.Player(id)
	require.True(t, ok)
	assert.Equal(t, 55, p.trailLen())

	for x := int32(0); x < 5; x++ {
		assert.Equal(t, uint8(0), w.Grid().at(x, 50), "oldest trail cells must be cleared")
	}
}

func TestAdvanceWithNoPlayersStillIncrementsFrame(t *testing.T) {
	w := NewWorld(testConfig(10, 10), DefaultSeed)
	w.Advance(nil)
	assert.Equal(t, uint32(1), w.Frame())
}

func TestPlayerWithoutDirectionHoldsPosition(t *testing.T) {
	w := NewWorld(testConfig(10, 10), DefaultSeed)
	id, _ := w.AddPlayer("P1")
	placeAt(t, w, id, geom.Vec2{X: 2, Y: 2})

	w.Advance(map[PlayerId]geom.Direction{})

	p, ok := w.Player(id)
	require.True(t, ok)
	assert.Equal(t, geom.Vec2{X: 2, Y: 2}, p.Head)
	assert.Nil(t, p.Trail)
}

func TestRemovePlayerClearsGrid(t *testing.T) {
	w := NewWorld(testConfig(10, 10), DefaultSeed)
	id, _ := w.AddPlayer("P1")
	placeAt(t, w, id, geom.Vec2{X: 2, Y: 2})
	w.Advance(map[PlayerId]geom.Direction{id: geom.East})

	w.RemovePlayer(id)

	for _, v := range w.Grid().Bytes() {
		assert.Equal(t, uint8(0), v)
	}
}

func TestHeadToWallEliminates(t *testing.T) {
	w := NewWorld(testConfig(10, 10), DefaultSeed)
	id, _ := w.AddPlayer("P1")
	placeAt(t, w, id, geom.Vec2{X: 0, Y: 0})

	w.Advance(map[PlayerId]geom.Direction{id: geom.West})

	_, ok := w.Player(id)
	assert.False(t, ok)
}

func TestIsOverFalseBeforeGameStarted(t *testing.T) {
	w := NewWorld(testConfig(10, 10), DefaultSeed)
	assert.False(t, w.IsOver())
}

// TestAddPlayerFailsWhenIdSpaceExhausted exercises churn that never fills
// the table concurrently but drives idSeq past 255 cumulative spawns.
func TestAddPlayerFailsWhenIdSpaceExhausted(t *testing.T) {
	cfg := testConfig(100, 100)
	cfg.MaxClients = 255
	w := NewWorld(cfg, DefaultSeed)

	for i := 0; i < 255; i++ {
		id, err := w.AddPlayer("churn")
		require.NoError(t, err)
		w.RemovePlayer(id)
	}

	_, err := w.AddPlayer("one_too_many")
	assert.ErrorIs(t, err, ErrIdSpaceExhausted)
}

// TestSameSeedSpawnsIdentically is the reproducibility contract a fixed,
// explicit seed exists for: same config, same seed, same spawn sequence.
func TestSameSeedSpawnsIdentically(t *testing.T) {
	cfg := testConfig(20, 20)

	w1 := NewWorld(cfg, 42)
	w2 := NewWorld(cfg, 42)

	for i := 0; i < 5; i++ {
		id1, err1 := w1.AddPlayer("P")
		id2, err2 := w2.AddPlayer("P")
		require.NoError(t, err1)
		require.NoError(t, err2)

		p1, _ := w1.Player(id1)
		p2, _ := w2.Player(id2)
		assert.Equal(t, p1.Head, p2.Head)
		assert.Equal(t, p1.Color, p2.Color)
	}
}

