package entity

// TileKind identifies what occupies a tile. It carries no rendering
// resources; the renderer maps kinds to images.
type TileKind int

const (
	TileEmpty TileKind = iota
	TileSurface
	TileSubsurface
	TileDecoration
)

// Solid reports whether the kind blocks movement.
func (k TileKind) Solid() bool {
	return k == TileSurface || k == TileSubsurface
}

// String returns the string representation of the tile kind
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "empty"
	case TileSurface:
		return "surface"
	case TileSubsurface:
		return "subsurface"
	case TileDecoration:
		return "decoration"
	default:
		return "unknown"
	}
}

// Tile is a single non-empty grid cell in tile coordinates.
// Tiles are immutable once their chunk is generated.
type Tile struct {
	X, Y int
	Kind TileKind
}

// Rect returns the tile's rectangle in world pixels.
func (t Tile) Rect(tileSize int) Rect {
	return Rect{X: t.X * tileSize, Y: t.Y * tileSize, W: tileSize, H: tileSize}
}
