// Package patterns stamps well-known Life patterns onto a grid.
//
// Every placement writes live cells at fixed offsets from a top-left origin
// through Grid.Set, so anything that falls off the board is dropped silently.
package patterns

import "github.com/sheikhrachel/go-life/model"

// Offset is a (dx, dy) displacement from a pattern's origin.
type Offset struct {
	DX, DY int
}

var (
	gliderOffsets = []Offset{
		{1, 0},
		{2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}
	blinkerOffsets = []Offset{
		{0, 0}, {1, 0}, {2, 0},
	}
	toadOffsets = []Offset{
		{1, 0}, {2, 0}, {3, 0},
		{0, 1}, {1, 1}, {2, 1},
	}
	beaconOffsets = []Offset{
		{0, 0}, {1, 0},
		{0, 1},
		{3, 2},
		{2, 3}, {3, 3},
	}
	pulsarOffsets = buildPulsar()
)

// buildPulsar lays out the 48 cells of a pulsar inside a 13x13 box.
func buildPulsar() []Offset {
	var (
		bars  = []int{0, 5, 7, 12}
		spans = []int{2, 3, 4, 8, 9, 10}
		out   = make([]Offset, 0, 48)
	)
	for dy := 0; dy <= 12; dy++ {
		for _, bar := range bars {
			if bar == dy {
				for _, dx := range spans {
					out = append(out, Offset{dx, dy})
				}
			}
		}
		for _, span := range spans {
			if span == dy {
				for _, dx := range bars {
					out = append(out, Offset{dx, dy})
				}
			}
		}
	}
	return out
}

func place(g *model.Grid, x, y int, offsets []Offset) {
	for _, o := range offsets {
		g.Set(x+o.DX, y+o.DY, true)
	}
}

// Glider places a 5-cell glider travelling down and to the right.
func Glider(g *model.Grid, x, y int) { place(g, x, y, gliderOffsets) }

// Blinker places a horizontal period-2 blinker.
func Blinker(g *model.Grid, x, y int) { place(g, x, y, blinkerOffsets) }

// Toad places a period-2 toad.
func Toad(g *model.Grid, x, y int) { place(g, x, y, toadOffsets) }

// Beacon places two diagonal blocks forming a period-2 beacon.
func Beacon(g *model.Grid, x, y int) { place(g, x, y, beaconOffsets) }

// Pulsar places a period-3 pulsar spanning a 13x13 box.
func Pulsar(g *model.Grid, x, y int) { place(g, x, y, pulsarOffsets) }

// Offsets returns a copy of the offset table for the named pattern
// ("glider", "blinker", "toad", "beacon" or "pulsar").
func Offsets(name string) ([]Offset, bool) {
	var src []Offset
	switch name {
	case "glider":
		src = gliderOffsets
	case "blinker":
		src = blinkerOffsets
	case "toad":
		src = toadOffsets
	case "beacon":
		src = beaconOffsets
	case "pulsar":
		src = pulsarOffsets
	default:
		return nil, false
	}
	return append([]Offset(nil), src...), true
}
