package assets

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type tintKey struct {
	path  string
	color color.RGBA
}

// Store caches decoded pixels and the GPU images built from them.
type Store struct {
	src Source
	key color.RGBA
	log logrus.FieldLogger

	raw    map[string]*image.RGBA
	images map[string]*ebiten.Image
	tinted map[tintKey]*ebiten.Image
}

// NewStore creates an empty store that keys out the given colour.
func NewStore(src Source, key color.RGBA, log logrus.FieldLogger) *Store {
	return &Store{
		src:    src,
		key:    key,
		log:    log,
		raw:    make(map[string]*image.RGBA),
		images: make(map[string]*ebiten.Image),
		tinted: make(map[tintKey]*ebiten.Image),
	}
}

// Preload loads every path up front and fails on the first missing one.
func (s *Store) Preload(paths []string) error {
	for _, p := range paths {
		if _, err := s.pixels(p); err != nil {
			return fmt.Errorf("preload: %w", err)
		}
	}
	s.log.WithField("images", len(s.raw)).Info("assets preloaded")
	return nil
}

// Pixels returns the keyed pixels of path.
func (s *Store) Pixels(path string) (*image.RGBA, error) {
	raw, err := s.pixels(path)
	if err != nil {
		return nil, err
	}
	keyed := ToRGBA(raw)
	ApplyColorKey(keyed, s.key)
	return keyed, nil
}

// Image returns the keyed image for path.
func (s *Store) Image(path string) (*ebiten.Image, error) {
	if img, ok := s.images[path]; ok {
		return img, nil
	}
	keyed, err := s.Pixels(path)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(keyed)
	s.images[path] = img
	return img, nil
}

// Tinted returns path with its key-coloured pixels replaced by c.
func (s *Store) Tinted(path string, c color.RGBA) (*ebiten.Image, error) {
	k := tintKey{path: path, color: c}
	if img, ok := s.tinted[k]; ok {
		return img, nil
	}
	raw, err := s.pixels(path)
	if err != nil {
		return nil, err
	}
	swapped := SwapColor(raw, s.key, c)
	ApplyColorKey(swapped, s.key)
	img := ebiten.NewImageFromImage(swapped)
	s.tinted[k] = img
	return img, nil
}

// Len returns how many source images are cached.
func (s *Store) Len() int { return len(s.raw) }

func (s *Store) pixels(path string) (*image.RGBA, error) {
	if img, ok := s.raw[path]; ok {
		return img, nil
	}
	img, err := s.src.Load(path)
	if err != nil {
		return nil, err
	}
	s.raw[path] = img
	return img, nil
}
