package world

import (
	"math"

	"github.com/younwookim/scroller/internal/domain/entity"
)

// ChunkRange is a half-open rectangle of chunk coordinates.
type ChunkRange struct {
	X0, Y0 int
	X1, Y1 int // exclusive
}

// Count returns the number of chunks in the range.
func (r ChunkRange) Count() int {
	return (r.X1 - r.X0) * (r.Y1 - r.Y0)
}

// World lazily materialises chunks and answers viewport queries.
// It is not safe for concurrent use; the game loop owns it.
type World struct {
	gen      *Generator
	store    ChunkStore
	tileSize int

	// OnGenerate is called after a chunk is generated and stored.
	OnGenerate func(c *Chunk)
}

// New creates a world over the given store.
func New(gen *Generator, store ChunkStore, tileSize int) *World {
	return &World{gen: gen, store: store, tileSize: tileSize}
}

// TileSize returns the tile side in world pixels.
func (w *World) TileSize() int { return w.tileSize }

// ChunkSize returns the chunk side in tiles.
func (w *World) ChunkSize() int { return w.gen.ChunkSize() }

// Loaded returns how many chunks the store holds.
func (w *World) Loaded() int { return w.store.Len() }

// EnsureLoaded returns the chunk at (cx, cy), generating and caching it on
// first use. Cached chunks are returned untouched.
func (w *World) EnsureLoaded(cx, cy int) *Chunk {
	if c, ok := w.store.Get(cx, cy); ok {
		return c
	}
	c := w.gen.Generate(cx, cy)
	w.store.Put(c)
	if w.OnGenerate != nil {
		w.OnGenerate(c)
	}
	return c
}

// WindowRange returns the chunks covering a viewport whose top-left corner
// is scroll, with one extra chunk on every side.
func (w *World) WindowRange(scroll entity.Vector, tilesWide, tilesTall int) ChunkRange {
	size := w.gen.ChunkSize()
	chunkPx := float64(size * w.tileSize)
	x0 := int(math.RoundToEven(scroll.X/chunkPx)) - 1
	y0 := int(math.RoundToEven(scroll.Y/chunkPx)) - 1
	return ChunkRange{
		X0: x0,
		Y0: y0,
		X1: x0 + ceilDiv(tilesWide, size) + 2,
		Y1: y0 + ceilDiv(tilesTall, size) + 2,
	}
}

// VisibleWindow ensures every chunk around the viewport is loaded and
// returns their tiles, chunk by chunk in row-major chunk order.
func (w *World) VisibleWindow(scroll entity.Vector, tilesWide, tilesTall int) []entity.Tile {
	r := w.WindowRange(scroll, tilesWide, tilesTall)
	var tiles []entity.Tile
	for cy := r.Y0; cy < r.Y1; cy++ {
		for cx := r.X0; cx < r.X1; cx++ {
			tiles = append(tiles, w.EnsureLoaded(cx, cy).Tiles...)
		}
	}
	return tiles
}

// Colliders splits tiles into solid collision rectangles and decorative
// trigger rectangles.
func Colliders(tiles []entity.Tile, tileSize int) (solid, decorative []entity.Rect) {
	for _, t := range tiles {
		switch {
		case t.Kind.Solid():
			solid = append(solid, t.Rect(tileSize))
		case t.Kind == entity.TileDecoration:
			decorative = append(decorative, t.Rect(tileSize))
		}
	}
	return solid, decorative
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
