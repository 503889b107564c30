package model

import "strings"

const (
	GlyphAlive = "█"
	GlyphDead  = " "
)

// String renders the grid one row per line, alive cells as GlyphAlive and dead cells as GlyphDead.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.height * (g.width*len(GlyphAlive) + 1))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] {
				b.WriteString(GlyphAlive)
			} else {
				b.WriteString(GlyphDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
