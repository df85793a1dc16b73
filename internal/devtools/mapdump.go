// Package devtools prints generated mazes as plain text for debugging
// generation outside the game.
package devtools

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/samdwyer/superseed/internal/grid"
	"github.com/samdwyer/superseed/internal/maze"
)

// Glyphs used by DumpMaze.
const (
	GlyphWall  = '#'
	GlyphOpen  = '.'
	GlyphEntry = 'E'
	GlyphExit  = 'X'
)

var (
	styleWall  = color.Style{color.FgGray}
	styleOpen  = color.Style{color.FgDarkGray}
	styleEntry = color.Style{color.FgGreen, color.OpBold}
	styleExit  = color.Style{color.FgRed, color.OpBold}
	styleLabel = color.Style{color.FgCyan}
)

// IsTerminal reports whether fd is attached to a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// DumpMaze writes the maze grid followed by its generation report. Both
// cells of each doorway are marked. colorize adds ANSI styles.
func DumpMaze(w io.Writer, m *maze.Maze, colorize bool) error {
	entry := maze.Opening(m.Entry(), m.EntrySide())
	exit := maze.Opening(m.Exit(), m.ExitSide())

	var b strings.Builder
	g := m.Grid()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := grid.Pos(x, y)
			glyph, style := GlyphWall, styleWall
			switch {
			case p == entry[0] || p == entry[1]:
				glyph, style = GlyphEntry, styleEntry
			case p == exit[0] || p == exit[1]:
				glyph, style = GlyphExit, styleExit
			case g.IsOpen(p):
				glyph, style = GlyphOpen, styleOpen
			}
			if colorize {
				b.WriteString(style.Sprint(string(glyph)))
			} else {
				b.WriteRune(glyph)
			}
		}
		b.WriteByte('\n')
	}

	r := m.Report()
	label := func(s string) string {
		if colorize {
			return styleLabel.Sprint(s)
		}
		return s
	}
	fmt.Fprintf(&b, "%s %d/%d in %d attempts\n", label("obstacles:"), r.Placed, r.Requested, r.Attempts)
	if r.PathLength == grid.Unreachable {
		fmt.Fprintf(&b, "%s unreachable\n", label("path:"))
	} else {
		fmt.Fprintf(&b, "%s %d steps\n", label("path:"), r.PathLength)
	}
	fmt.Fprintf(&b, "%s %.1f cells apart\n", label("doors:"), r.EntryExitDistance)
	fmt.Fprintf(&b, "%s %t\n", label("repaired:"), r.Repaired)

	_, err := io.WriteString(w, b.String())
	return err
}
