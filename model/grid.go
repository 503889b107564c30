package model

import (
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// RandomDensity is the probability that a cell starts alive in RandomGrid.
const RandomDensity = 0.3

// Grid is a fixed-size, non-wrapping board of live and dead cells.
//
// Cells outside [0,width)x[0,height) are never stored and always read as dead,
// so the edges of the board behave like a permanently dead border.
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates an all-dead grid with the specified dimensions.
// Negative dimensions are treated as zero; a zero-sized grid has no cells.
func NewGrid(width, height int) *Grid {
	width, height = max(0, width), max(0, height)
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// RandomGrid creates a grid where every cell is independently alive with
// probability RandomDensity.
func RandomGrid(width, height int) *Grid {
	g := NewGrid(width, height)
	g.Randomize(RandomDensity)
	return g
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// reset resizes the grid and kills every cell, reusing row storage where it can.
func (g *Grid) reset(width, height int) {
	width, height = max(0, width), max(0, height)
	g.width = width
	g.height = height

	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
			continue
		}
		clear(g.cells[i])
	}
}

// Set sets a cell to alive (true) or dead (false). Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y][x] = alive
	}
}

// Get returns the state of a cell. Out-of-range reads are dead.
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y][x]
}

// CountNeighbors counts living cells in the Moore neighborhood of (x, y).
// Positions outside the grid contribute nothing.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	// Clamp the 3x3 window to the board once instead of guarding every read
	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// NextGeneration returns a new grid holding the next generation. The receiver is not modified.
func (g *Grid) NextGeneration() *Grid {
	next := NewGrid(g.width, g.height)
	g.advanceRows(next, 0, g.height)
	return next
}

// NextGenerationParallel computes the same result as NextGeneration with rows
// split across one worker per CPU. When pool is non-nil the returned grid is
// taken from it.
func (g *Grid) NextGenerationParallel(pool *GridPool) *Grid {
	next := pool.Get(g.width, g.height)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.advanceRows(next, startRow, endRow)
			return nil
		})
	}

	// Workers never fail; Wait is only the join point.
	_ = eg.Wait()

	return next
}

// advanceRows writes rows [startRow, endRow) of the next generation into next.
// next must be all dead in that range and have the same dimensions as g.
func (g *Grid) advanceRows(next *Grid, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < g.width; x++ {
			if rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[y][x]) {
				next.cells[y][x] = true
			}
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same dimensions and identical cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	for y := 0; y < g.height; y++ {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// Randomize refills the grid, making each cell alive with the given probability
func (g *Grid) Randomize(density float64) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.cells[y][x] = rand.Float64() < density
		}
	}
}
