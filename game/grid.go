package game

// Grid is a row-major grid_width*grid_height array of cell owners. A cell
// value of 0 means empty; any other value is the PlayerId occupying it.
type Grid struct {
	width  int32
	height int32
	cells  []uint8
}

func newGrid(width, height int32) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]uint8, int64(width)*int64(height)),
	}
}

func (g *Grid) index(x, y int32) int {
	return int(y*g.width + x)
}

func (g *Grid) at(x, y int32) uint8 {
	return g.cells[g.index(x, y)]
}

func (g *Grid) set(x, y int32, id uint8) {
	g.cells[g.index(x, y)] = id
}

// Width returns the grid's column count.
func (g *Grid) Width() int32 { return g.width }

// Height returns the grid's row count.
func (g *Grid) Height() int32 { return g.height }

// Bytes exposes the grid's row-major backing array read-only; callers must
// not retain it across a call to Advance.
func (g *Grid) Bytes() []uint8 { return g.cells }
