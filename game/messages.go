package game

import "github.com/lguibr/cycles/geom"

// AddPlayerMsg asks the WorldActor to spawn a new player. Reply carries the
// assigned id and color, or an error if the world had no room. The reply
// channel travels inside the message itself — bollywood has no built-in
// ask/reply, so synchronous calls across the single-writer boundary look
// like this instead.
type AddPlayerMsg struct {
	Name  string
	Reply chan AddPlayerResult
}

// AddPlayerResult is AddPlayerMsg's reply payload.
type AddPlayerResult struct {
	Id    PlayerId
	Color Rgb
	Err   error
}

// RemovePlayerMsg asks the WorldActor to drop a player; fire-and-forget,
// the caller doesn't need to observe completion before moving on.
type RemovePlayerMsg struct {
	Id PlayerId
}

// AdvanceMsg asks the WorldActor to resolve one tick. Reply is closed once
// the mutation (and the frame-number bump) has completed.
type AdvanceMsg struct {
	Directions map[PlayerId]geom.Direction
	Reply      chan struct{}
}

// SnapshotMsg asks the WorldActor for a read-only copy of current state,
// suitable for encoding without racing the next Advance.
type SnapshotMsg struct {
	Frame uint32
	Reply chan Snapshot
}

// PlayerView is the read-only projection of a player the wire snapshot and
// any renderer need: no trail pointers, just what goes on the wire.
type PlayerView struct {
	Id    PlayerId
	Name  string
	Head  geom.Vec2
	Color Rgb
}

// Snapshot is an immutable copy of world state taken between ticks. Grid is
// a fresh copy, safe to hold onto across the next Advance.
type Snapshot struct {
	Width, Height int32
	Grid          []uint8
	Players       []PlayerView
	Frame         uint32
	Over          bool
}
