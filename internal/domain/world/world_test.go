package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/scroller/internal/domain/entity"
)

func createTestWorld(seed uint64) *World {
	cfg := DefaultGeneratorConfig()
	cfg.Seed = seed
	return New(NewGenerator(cfg), NewMapStore(), 16)
}

func tilesByPos(tiles []entity.Tile) map[[2]int]entity.TileKind {
	m := make(map[[2]int]entity.TileKind, len(tiles))
	for _, t := range tiles {
		m[[2]int{t.X, t.Y}] = t.Kind
	}
	return m
}

func TestGenerator_KindAt(t *testing.T) {
	gen := NewGenerator(DefaultGeneratorConfig())

	tests := []struct {
		name string
		x, y int
		want entity.TileKind
	}{
		{"deep subsurface", 0, 50, entity.TileSubsurface},
		{"just below surface", -3, 11, entity.TileSubsurface},
		{"surface", 20, 10, entity.TileSurface},
		{"above surface", 0, 9, entity.TileEmpty},
		{"sky", 0, -40, entity.TileEmpty},
		{"hole start", 6, 10, entity.TileEmpty},
		{"hole middle", 7, 30, entity.TileEmpty},
		{"hole end", 8, 11, entity.TileEmpty},
		{"right of hole", 9, 10, entity.TileSurface},
		{"left of hole", 5, 10, entity.TileSurface},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gen.KindAt(tt.x, tt.y))
		})
	}
}

func TestGenerator_Generate_GroundShape(t *testing.T) {
	gen := NewGenerator(DefaultGeneratorConfig())

	// Chunk (0,1) spans tiles x 0..7, y 8..15: rows 9..15 are interesting.
	for cx := -2; cx <= 2; cx++ {
		c := gen.Generate(cx, 1)
		got := tilesByPos(c.Tiles)

		for row := 8; row < 16; row++ {
			for col := 0; col < 8; col++ {
				x := cx*8 + col
				kind, stored := got[[2]int{x, row}]

				switch {
				case x >= 6 && x <= 8:
					assert.False(t, stored, "hole column %d row %d must be empty", x, row)
				case row > 10:
					assert.Equal(t, entity.TileSubsurface, kind, "(%d,%d)", x, row)
				case row == 10:
					assert.Equal(t, entity.TileSurface, kind, "(%d,%d)", x, row)
				case row == 9:
					if stored {
						assert.Equal(t, entity.TileDecoration, kind, "(%d,%d)", x, row)
					}
				default:
					assert.False(t, stored, "(%d,%d) above the plant row must be empty", x, row)
				}
			}
		}
	}
}

func TestGenerator_Generate_NeverStoresEmpty(t *testing.T) {
	gen := NewGenerator(DefaultGeneratorConfig())

	c := gen.Generate(0, -5)

	assert.Empty(t, c.Tiles, "sky chunk has no tiles")
	for _, tile := range gen.Generate(3, 1).Tiles {
		assert.NotEqual(t, entity.TileEmpty, tile.Kind)
	}
}

func TestGenerator_Generate_DeterministicPerSeed(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Seed = 42
	a := NewGenerator(cfg).Generate(4, 1)
	b := NewGenerator(cfg).Generate(4, 1)

	assert.Equal(t, a.Tiles, b.Tiles)
}

func TestGenerator_Generate_DecorationChance(t *testing.T) {
	always := DefaultGeneratorConfig()
	always.DecorationChance = 1
	never := DefaultGeneratorConfig()
	never.DecorationChance = 0

	plants := func(c *Chunk) int {
		n := 0
		for _, tile := range c.Tiles {
			if tile.Kind == entity.TileDecoration {
				n++
				assert.Equal(t, 9, tile.Y)
			}
		}
		return n
	}

	assert.Equal(t, 8, plants(NewGenerator(always).Generate(2, 1)))
	// Chunk 0 contains hole columns 6 and 7.
	assert.Equal(t, 6, plants(NewGenerator(always).Generate(0, 1)))
	assert.Equal(t, 0, plants(NewGenerator(never).Generate(2, 1)))
}

func TestGenerator_Check_PanicsOnViolation(t *testing.T) {
	gen := NewGenerator(DefaultGeneratorConfig())
	bad := &Chunk{X: 0, Y: 0, Tiles: []entity.Tile{{X: 99, Y: 0, Kind: entity.TileSurface}}}

	assert.Panics(t, func() { gen.check(bad) })
}

func TestWorld_EnsureLoaded_Idempotent(t *testing.T) {
	w := createTestWorld(7)
	generated := 0
	w.OnGenerate = func(*Chunk) { generated++ }

	first := w.EnsureLoaded(1, 1)
	second := w.EnsureLoaded(1, 1)

	assert.Same(t, first, second)
	assert.Equal(t, first.Tiles, second.Tiles)
	assert.Equal(t, 1, generated)
	assert.Equal(t, 1, w.Loaded())
}

func TestWorld_WindowRange(t *testing.T) {
	w := createTestWorld(0)

	tests := []struct {
		name   string
		scroll entity.Vector
		want   ChunkRange
	}{
		{"origin", entity.Vec(0, 0), ChunkRange{X0: -1, Y0: -1, X1: 4, Y1: 3}},
		{"rounds down below half", entity.Vec(60, 0), ChunkRange{X0: -1, Y0: -1, X1: 4, Y1: 3}},
		{"rounds up above half", entity.Vec(100, 0), ChunkRange{X0: 0, Y0: -1, X1: 5, Y1: 3}},
		{"negative scroll", entity.Vec(-300, -20), ChunkRange{X0: -3, Y0: -1, X1: 2, Y1: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 300x200 display with 16px tiles: 19 x 13 tiles.
			assert.Equal(t, tt.want, w.WindowRange(tt.scroll, 19, 13))
		})
	}
}

func TestWorld_VisibleWindow_CoversViewport(t *testing.T) {
	w := createTestWorld(3)
	scroll := entity.Vec(-150, 47)

	tiles := w.VisibleWindow(scroll, 19, 13)
	got := tilesByPos(tiles)

	// Every surface tile under the viewport must be present.
	for x := -150 / 16; x <= (-150+300)/16; x++ {
		if x >= 6 && x <= 8 {
			continue
		}
		assert.Equal(t, entity.TileSurface, got[[2]int{x, 10}], "surface at x=%d", x)
	}
	assert.Equal(t, w.WindowRange(scroll, 19, 13).Count(), w.Loaded())
}

func TestColliders(t *testing.T) {
	tiles := []entity.Tile{
		{X: 0, Y: 10, Kind: entity.TileSurface},
		{X: 0, Y: 11, Kind: entity.TileSubsurface},
		{X: 1, Y: 9, Kind: entity.TileDecoration},
	}

	solid, decorative := Colliders(tiles, 16)

	assert.Equal(t, []entity.Rect{entity.R(0, 160, 16, 16), entity.R(0, 176, 16, 16)}, solid)
	assert.Equal(t, []entity.Rect{entity.R(16, 144, 16, 16)}, decorative)
}

func TestBoundedStore(t *testing.T) {
	store, err := NewBoundedStore(4)
	require.NoError(t, err)
	defer store.Close()

	w := New(NewGenerator(DefaultGeneratorConfig()), store, 16)
	for cx := 0; cx < 20; cx++ {
		w.EnsureLoaded(cx, 1)
	}

	// Whatever was evicted regenerates with the same tiles.
	again := w.EnsureLoaded(0, 1)
	fresh := NewGenerator(DefaultGeneratorConfig()).Generate(0, 1)
	assert.Equal(t, fresh.Tiles, again.Tiles)
	assert.LessOrEqual(t, store.Len(), 20)
}

func TestNewBoundedStore_InvalidSize(t *testing.T) {
	_, err := NewBoundedStore(0)
	assert.Error(t, err)
}

func TestChunkKey(t *testing.T) {
	assert.Equal(t, "-1;3", ChunkKey(-1, 3))
}
