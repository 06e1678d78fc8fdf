// Package world procedurally generates the tile grid in fixed-size chunks and
// caches them as the camera explores.
package world

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/younwookim/scroller/internal/domain/entity"
)

// ErrChunkInvariant signals a generator bug: a chunk produced a tile outside
// its bounds or an empty tile. It is raised with panic, never returned.
var ErrChunkInvariant = errors.New("chunk generation invariant violated")

// GeneratorConfig describes the ground shape.
type GeneratorConfig struct {
	ChunkSize        int     // tiles per chunk side
	GroundRow        int     // absolute tile row of the surface
	HoleStart        int     // first absolute column of the hole
	HoleEnd          int     // last absolute column of the hole (inclusive)
	DecorationChance float64 // probability of a decoration above the surface
	Seed             uint64
}

// DefaultGeneratorConfig returns the classic layout: 8-tile chunks, ground at
// row 10, a three-column hole at x=6..8 and a one-in-five plant chance.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		ChunkSize:        8,
		GroundRow:        10,
		HoleStart:        6,
		HoleEnd:          8,
		DecorationChance: 0.2,
	}
}

// Chunk is a generated block of tiles. Tiles never change after generation.
type Chunk struct {
	X, Y  int
	Tiles []entity.Tile
}

// Generator builds chunks. The ground shape depends only on tile
// coordinates; decorations are drawn from a stream seeded by the run seed
// and the chunk coordinates, so a chunk regenerates identically.
type Generator struct {
	cfg GeneratorConfig
}

// NewGenerator creates a generator.
func NewGenerator(cfg GeneratorConfig) *Generator {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultGeneratorConfig().ChunkSize
	}
	return &Generator{cfg: cfg}
}

// ChunkSize returns the chunk side length in tiles.
func (g *Generator) ChunkSize() int { return g.cfg.ChunkSize }

// Seed returns the run seed.
func (g *Generator) Seed() uint64 { return g.cfg.Seed }

// KindAt returns the deterministic ground kind at absolute tile coordinates.
// The row above the surface reports TileEmpty here; whether it holds a
// decoration is decided per chunk.
func (g *Generator) KindAt(x, y int) entity.TileKind {
	if g.inHole(x) {
		return entity.TileEmpty
	}
	switch {
	case y > g.cfg.GroundRow:
		return entity.TileSubsurface
	case y == g.cfg.GroundRow:
		return entity.TileSurface
	default:
		return entity.TileEmpty
	}
}

// Generate builds the chunk at chunk coordinates (cx, cy).
func (g *Generator) Generate(cx, cy int) *Chunk {
	size := g.cfg.ChunkSize
	rng := rand.New(rand.NewPCG(g.cfg.Seed, chunkStream(cx, cy)))
	c := &Chunk{X: cx, Y: cy}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			x := cx*size + col
			y := cy*size + row
			kind := g.KindAt(x, y)
			// Roll for every candidate cell, hole or not, so the stream
			// position depends only on the cell.
			if y == g.cfg.GroundRow-1 {
				roll := rng.Float64()
				if !g.inHole(x) && roll < g.cfg.DecorationChance {
					kind = entity.TileDecoration
				}
			}
			if kind == entity.TileEmpty {
				continue
			}
			c.Tiles = append(c.Tiles, entity.Tile{X: x, Y: y, Kind: kind})
		}
	}

	g.check(c)
	return c
}

func (g *Generator) inHole(x int) bool {
	return x >= g.cfg.HoleStart && x <= g.cfg.HoleEnd
}

func (g *Generator) check(c *Chunk) {
	size := g.cfg.ChunkSize
	minX, minY := c.X*size, c.Y*size
	for _, t := range c.Tiles {
		if t.Kind == entity.TileEmpty {
			panic(fmt.Errorf("%w: empty tile stored at (%d, %d)", ErrChunkInvariant, t.X, t.Y))
		}
		if t.X < minX || t.X >= minX+size || t.Y < minY || t.Y >= minY+size {
			panic(fmt.Errorf("%w: tile (%d, %d) outside chunk (%d, %d)", ErrChunkInvariant, t.X, t.Y, c.X, c.Y))
		}
	}
}

// chunkStream packs chunk coordinates into a PCG stream selector.
func chunkStream(cx, cy int) uint64 {
	return uint64(uint32(int32(cx)))<<32 | uint64(uint32(int32(cy)))
}
