package service

import (
	"time"

	"github.com/pmylund/go-cache"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
)

type gridPosition struct {
	row int
	col int
}

// PlayfairGrid is the 5x5 letter square derived from a keyword. It is immutable
// once built and safe to share between goroutines.
type PlayfairGrid struct {
	cells     [cipherDomain.PlayfairGridSize][cipherDomain.PlayfairGridSize]byte
	positions [cipherDomain.TextModulus]gridPosition
}

// NewPlayfairGrid fills the square with the keyword letters in order of first
// appearance followed by the remaining letters of the alphabet. J shares the cell of I.
func NewPlayfairGrid(key cipherDomain.PlayfairKey) *PlayfairGrid {
	g := &PlayfairGrid{}
	var used [cipherDomain.TextModulus]bool
	n := 0

	place := func(c byte) {
		if c == 'J' {
			c = 'I'
		}
		if used[cipherDomain.Ordinal(c)] {
			return
		}
		used[cipherDomain.Ordinal(c)] = true
		row, col := n/cipherDomain.PlayfairGridSize, n%cipherDomain.PlayfairGridSize
		g.cells[row][col] = c
		g.positions[cipherDomain.Ordinal(c)] = gridPosition{row: row, col: col}
		n++
	}

	keyword := cipherDomain.Letters(key.Keyword)
	for i := 0; i < len(keyword); i++ {
		place(keyword[i])
	}
	for i := 0; i < len(cipherDomain.PlayfairAlphabet); i++ {
		place(cipherDomain.PlayfairAlphabet[i])
	}

	g.positions[cipherDomain.Ordinal('J')] = g.positions[cipherDomain.Ordinal('I')]
	return g
}

// Rows returns the grid as five strings of five letters.
func (g *PlayfairGrid) Rows() []string {
	rows := make([]string, cipherDomain.PlayfairGridSize)
	for i := range g.cells {
		rows[i] = string(g.cells[i][:])
	}
	return rows
}

func (g *PlayfairGrid) at(row, col int) byte {
	size := cipherDomain.PlayfairGridSize
	return g.cells[Mod(row, size)][Mod(col, size)]
}

func (g *PlayfairGrid) position(c byte) gridPosition {
	return g.positions[cipherDomain.Ordinal(c)]
}

// GridCache memoizes Playfair grids by keyword. A nil *GridCache is valid and builds
// every grid from scratch.
type GridCache struct {
	grids *cache.Cache
}

// NewGridCache creates a cache whose entries expire after ttl of not being stored.
func NewGridCache(ttl time.Duration) *GridCache {
	return &GridCache{grids: cache.New(ttl, 2*ttl)}
}

// Get returns the grid for key, building and storing it on a miss.
func (c *GridCache) Get(key cipherDomain.PlayfairKey) *PlayfairGrid {
	if c == nil {
		return NewPlayfairGrid(key)
	}

	if cached, ok := c.grids.Get(key.Keyword); ok {
		return cached.(*PlayfairGrid)
	}

	grid := NewPlayfairGrid(key)
	c.grids.Set(key.Keyword, grid, cache.DefaultExpiration)
	return grid
}
