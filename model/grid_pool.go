package model

import "sync"

// GridPool recycles superseded generations so a long run does not allocate
// a fresh board every tick. A nil *GridPool is valid and never recycles.
type GridPool struct {
	grids sync.Pool
}

// NewGridPool returns an empty pool
func NewGridPool() *GridPool {
	p := &GridPool{}
	p.grids.New = func() any { return new(Grid) }
	return p
}

// Get returns an all-dead width x height grid, reusing a recycled one when available.
func (p *GridPool) Get(width, height int) *Grid {
	if p == nil {
		return NewGrid(width, height)
	}
	g := p.grids.Get().(*Grid)
	g.reset(width, height)
	return g
}

// Put recycles g. The caller must not use g afterwards.
func (p *GridPool) Put(g *Grid) {
	if p == nil || g == nil {
		return
	}
	p.grids.Put(g)
}

// GridToPool hands grid back to pool; either may be nil.
func GridToPool(grid *Grid, pool *GridPool) {
	pool.Put(grid)
}
