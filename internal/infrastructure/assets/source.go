package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"strconv"
	"strings"
)

// ErrAssetMissing is returned when an image cannot be found.
var ErrAssetMissing = errors.New("asset missing")

// Tile image paths.
const (
	TileGrass = "tiles/grass.png"
	TileDirt  = "tiles/dirt.png"
	TilePlant = "tiles/plant.png"
)

// Source loads raw, unkeyed pixels for an asset path.
type Source interface {
	Load(path string) (*image.RGBA, error)
}

// FileSource decodes PNG files from a filesystem.
type FileSource struct {
	fsys fs.FS
}

// NewFileSource creates a source rooted at fsys.
func NewFileSource(fsys fs.FS) *FileSource {
	return &FileSource{fsys: fsys}
}

// Load implements Source.
func (s *FileSource) Load(path string) (*image.RGBA, error) {
	f, err := s.fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAssetMissing, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return ToRGBA(img), nil
}

// PlaceholderSource draws solid rectangles so the game runs without any
// image files.
type PlaceholderSource struct {
	TileSize   int
	EntitySize image.Point
}

var placeholderColors = map[string]color.RGBA{
	TileGrass: {R: 72, G: 160, B: 52, A: 255},
	TileDirt:  {R: 120, G: 82, B: 44, A: 255},
	TilePlant: {R: 40, G: 120, B: 40, A: 255},
}

// Load implements Source.
func (s *PlaceholderSource) Load(path string) (*image.RGBA, error) {
	var (
		w, h int
		c    color.RGBA
	)
	switch {
	case strings.HasPrefix(path, "tiles/"):
		known, ok := placeholderColors[path]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrAssetMissing, path)
		}
		w, h, c = s.TileSize, s.TileSize, known
		if path == TilePlant {
			// Plants only fill the lower half of their cell.
			img := image.NewRGBA(image.Rect(0, 0, w, h))
			fill(img, image.Rect(0, h/2, w, h), c)
			return img, nil
		}
	case strings.HasPrefix(path, "entities/"):
		w, h = s.EntitySize.X, s.EntitySize.Y
		c = color.RGBA{R: 200, G: 40, B: 60, A: 255}
		if frameIndex(path)%2 == 1 {
			c = color.RGBA{R: 230, G: 80, B: 90, A: 255}
		}
	case strings.HasPrefix(path, "particles/"):
		// Key colour so tinted particles pick up their custom colour.
		w, h = 3, 3
		c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	default:
		return nil, fmt.Errorf("%w: %s", ErrAssetMissing, path)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, img.Bounds(), c)
	return img, nil
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// frameIndex extracts i from ".../name_i.png" or ".../i.png".
func frameIndex(path string) int {
	base := strings.TrimSuffix(path[strings.LastIndex(path, "/")+1:], ".png")
	if i := strings.LastIndex(base, "_"); i >= 0 {
		base = base[i+1:]
	}
	n, err := strconv.Atoi(base)
	if err != nil {
		return 0
	}
	return n
}
