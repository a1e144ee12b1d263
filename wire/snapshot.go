package wire

import (
	"github.com/lguibr/cycles/game"
	"github.com/lguibr/cycles/geom"
)

// EncodeSnapshot serializes a world snapshot:
//
//	u32 grid_width
//	u32 grid_height
//	u32 player_count
//	repeat player_count times:
//	    i32 head_x
//	    i32 head_y
//	    u8  r, g, b
//	    u32 name_len
//	    u8[name_len] name_bytes
//	    u8  player_id
//	u32 frame_number
//	u8[grid_width * grid_height] grid
func EncodeSnapshot(snap game.Snapshot) []byte {
	size := 4 + 4 + 4 + 4 + len(snap.Grid)
	for _, p := range snap.Players {
		size += 4 + 4 + 3 + 4 + len(p.Name) + 1
	}
	w := NewWriter(size)

	w.U32(uint32(snap.Width))
	w.U32(uint32(snap.Height))
	w.U32(uint32(len(snap.Players)))
	for _, p := range snap.Players {
		w.I32(p.Head.X)
		w.I32(p.Head.Y)
		w.U8(p.Color.R)
		w.U8(p.Color.G)
		w.U8(p.Color.B)
		w.String(p.Name)
		w.U8(uint8(p.Id))
	}
	w.U32(snap.Frame)
	w.RawBytes(snap.Grid)

	return w.Bytes()
}

// DecodeSnapshot is EncodeSnapshot's inverse. It rejects any trailing bytes
// once the grid has been fully read. Over is not part of the wire layout,
// so it is always false in the decoded Snapshot.
func DecodeSnapshot(payload []byte) (game.Snapshot, error) {
	r := NewReader(payload)

	width, err := r.U32()
	if err != nil {
		return game.Snapshot{}, err
	}
	height, err := r.U32()
	if err != nil {
		return game.Snapshot{}, err
	}
	playerCount, err := r.U32()
	if err != nil {
		return game.Snapshot{}, err
	}

	// Each player needs at least 16 bytes (two i32 + 3 color bytes + a
	// u32 name length + a u8 id); reject an implausible count up front
	// instead of pre-allocating a slice sized from unchecked wire input.
	const minPlayerBytes = 16
	if playerCount > uint32(r.Remaining()/minPlayerBytes) {
		return game.Snapshot{}, violation("player_count %d exceeds what the payload could hold", playerCount)
	}
	players := make([]game.PlayerView, 0, playerCount)
	for i := uint32(0); i < playerCount; i++ {
		headX, err := r.I32()
		if err != nil {
			return game.Snapshot{}, err
		}
		headY, err := r.I32()
		if err != nil {
			return game.Snapshot{}, err
		}
		rc, err := r.U8()
		if err != nil {
			return game.Snapshot{}, err
		}
		gc, err := r.U8()
		if err != nil {
			return game.Snapshot{}, err
		}
		bc, err := r.U8()
		if err != nil {
			return game.Snapshot{}, err
		}
		name, err := r.String()
		if err != nil {
			return game.Snapshot{}, err
		}
		id, err := r.U8()
		if err != nil {
			return game.Snapshot{}, err
		}

		players = append(players, game.PlayerView{
			Id:    game.PlayerId(id),
			Name:  name,
			Head:  geom.Vec2{X: headX, Y: headY},
			Color: game.Rgb{R: rc, G: gc, B: bc},
		})
	}

	frame, err := r.U32()
	if err != nil {
		return game.Snapshot{}, err
	}

	cellCount := int64(width) * int64(height)
	if cellCount < 0 || cellCount > MaxPacket {
		return game.Snapshot{}, violation("grid cell count %d out of bounds", cellCount)
	}
	grid, err := r.Bytes(int(cellCount))
	if err != nil {
		return game.Snapshot{}, err
	}
	if err := r.RequireExhausted(); err != nil {
		return game.Snapshot{}, err
	}

	gridCopy := make([]uint8, len(grid))
	copy(gridCopy, grid)

	return game.Snapshot{
		Width:   int32(width),
		Height:  int32(height),
		Grid:    gridCopy,
		Players: players,
		Frame:   frame,
	}, nil
}
