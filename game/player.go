package game

import "github.com/lguibr/cycles/geom"

// PlayerId is an 8-bit id in [1, 255]; 0 is reserved as the empty-cell
// sentinel, which is why max_clients can never exceed 255.
type PlayerId uint8

const maxPlayerNameLen = 31

// TrailNode is one cell of a player's trail, linked newest to oldest.
type TrailNode struct {
	Pos  geom.Vec2
	Next *TrailNode
}

// Player is the engine's view of one connected client: identity, current
// head position, trail chain and display color.
type Player struct {
	Id    PlayerId
	Name  string
	Head  geom.Vec2
	Trail *TrailNode
	Color Rgb
}

func newPlayer(id PlayerId, name string, head geom.Vec2, color Rgb) *Player {
	if len(name) > maxPlayerNameLen {
		name = name[:maxPlayerNameLen]
	}
	return &Player{Id: id, Name: name, Head: head, Color: color}
}

// trailLen walks the chain; used only by tests (Advance's trimming walks the
// chain itself).
func (p *Player) trailLen() int {
	n := 0
	for node := p.Trail; node != nil; node = node.Next {
		n++
	}
	return n
}

// playerSlot is one entry of the fixed 256-wide player table.
type playerSlot struct {
	occupied bool
	player   Player
}

// playerStore is a fixed-capacity, id-indexed table: ids are dense 8-bit
// values, so a plain array gives O(1) insert/find/remove with no hashing.
type playerStore struct {
	slots [256]playerSlot
	size  int
}

func newPlayerStore() *playerStore {
	return &playerStore{}
}

// insert adds player at its own id slot. Returns false if the slot is
// already occupied.
func (s *playerStore) insert(p Player) bool {
	slot := &s.slots[p.Id]
	if slot.occupied {
		return false
	}
	slot.occupied = true
	slot.player = p
	s.size++
	return true
}

func (s *playerStore) find(id PlayerId) (*Player, bool) {
	slot := &s.slots[id]
	if !slot.occupied {
		return nil, false
	}
	return &slot.player, true
}

// remove deletes id's slot; the caller is responsible for clearing the
// grid cells the player's head/trail occupied before calling this.
func (s *playerStore) remove(id PlayerId) {
	slot := &s.slots[id]
	if !slot.occupied {
		return
	}
	*slot = playerSlot{}
	s.size--
}

func (s *playerStore) len() int { return s.size }

// iter returns every occupied player, ordered by ascending id.
func (s *playerStore) iter() []*Player {
	out := make([]*Player, 0, s.size)
	for i := range s.slots {
		if s.slots[i].occupied {
			out = append(out, &s.slots[i].player)
		}
	}
	return out
}
