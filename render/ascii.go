// Package render turns a snapshot into a colored ASCII frame for a
// terminal client, the same ANSI-true-color trick the rest of this corpus
// uses for pixel buffers, applied directly to grid cells instead.
package render

import (
	"fmt"
	"strings"

	"github.com/lguibr/asciiring/helpers"
	"github.com/lguibr/cycles/game"
)

const (
	emptyChar = ' '
	trailChar = '#'
	headChar  = '@'
)

// ClearScreen wipes the terminal between frames.
func ClearScreen() {
	helpers.ClearScreen()
}

func ansi(c game.Rgb) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Frame renders one snapshot as a grid of colored characters: empty cells
// blank, trail cells '#' in the owner's color, and each player's head '@'.
func Frame(snap game.Snapshot) string {
	colorByID := make(map[game.PlayerId]game.Rgb, len(snap.Players))
	headAt := make(map[int32]game.PlayerId, len(snap.Players))
	for _, p := range snap.Players {
		colorByID[p.Id] = p.Color
		headAt[p.Head.Y*snap.Width+p.Head.X] = p.Id
	}

	var out strings.Builder
	for y := int32(0); y < snap.Height; y++ {
		for x := int32(0); x < snap.Width; x++ {
			idx := y*snap.Width + x
			owner := game.PlayerId(snap.Grid[idx])
			if owner == 0 {
				out.WriteRune(emptyChar)
				continue
			}

			ch := trailChar
			if headAt[idx] == owner {
				ch = headChar
			}
			color, known := colorByID[owner]
			if !known {
				out.WriteRune(rune(ch))
				continue
			}
			out.WriteString(ansi(color))
			out.WriteRune(rune(ch))
			out.WriteString("\033[0m")
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// StatusLine summarizes a snapshot for the line above the grid.
func StatusLine(snap game.Snapshot) string {
	if snap.Over {
		return fmt.Sprintf("frame %d — game over, %d player(s) remaining", snap.Frame, len(snap.Players))
	}
	return fmt.Sprintf("frame %d — %d player(s)", snap.Frame, len(snap.Players))
}
