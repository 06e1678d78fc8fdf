// Package render draws a gameplay frame onto an ebiten image.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/scroller/internal/domain/entity"
	"github.com/younwookim/scroller/internal/domain/parallax"
	"github.com/younwookim/scroller/internal/domain/particle"
	"github.com/younwookim/scroller/internal/infrastructure/assets"
	"github.com/younwookim/scroller/internal/infrastructure/config"
)

var colorOverlay = color.RGBA{0, 0, 0, 128}

// Frame is everything visible in one tick.
type Frame struct {
	Scroll     entity.Vector
	Anchor     entity.Vector // what the camera follows; parallax orbits it
	Background []*parallax.Object
	Tiles      []entity.Tile
	Player     *entity.Entity
	Particles  []*particle.Particle
	Paused     bool
}

// Renderer maps domain state to images from an asset store.
type Renderer struct {
	store    *assets.Store
	display  config.DisplayConfig
	sky      color.RGBA
	ground   color.RGBA
	tileSize int
	log      logrus.FieldLogger
	missing  map[string]bool
}

// New creates a renderer.
func New(store *assets.Store, cfg *config.GameConfig, log logrus.FieldLogger) *Renderer {
	return &Renderer{
		store:    store,
		display:  cfg.Display,
		sky:      cfg.Background.SkyColor.Color(),
		ground:   cfg.Background.GroundColor.Color(),
		tileSize: cfg.World.TileSize,
		log:      log,
		missing:  make(map[string]bool),
	}
}

// Draw renders f back to front: sky, far ground, parallax, tiles, player,
// particles and finally the pause overlay.
func (r *Renderer) Draw(screen *ebiten.Image, f Frame) {
	screen.Fill(r.sky)

	g := GroundRect(f.Anchor.Y, f.Scroll.Y, r.display)
	vector.DrawFilledRect(screen, float32(g.X), float32(g.Y), float32(g.W), float32(g.H), r.ground, false)

	for _, obj := range f.Background {
		rect := parallax.Project(obj, f.Anchor, f.Scroll)
		if !parallax.IsViewable(rect, r.display.Width) {
			continue
		}
		vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), parallax.Tint(obj), false)
	}

	r.drawTiles(screen, f.Tiles, f.Scroll)
	if f.Player != nil {
		r.drawEntity(screen, f.Player, f.Scroll)
	}
	for _, p := range f.Particles {
		r.drawParticle(screen, p, f.Scroll)
	}

	if f.Paused {
		vector.DrawFilledRect(screen, 0, 0, float32(r.display.Width), float32(r.display.Height), colorOverlay, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED", r.display.Width/2-18, r.display.Height/2-8)
	}
}

func (r *Renderer) drawTiles(screen *ebiten.Image, tiles []entity.Tile, scroll entity.Vector) {
	sx, sy := int(scroll.X), int(scroll.Y)
	for _, t := range tiles {
		path, ok := TileImagePath(t.Kind)
		if !ok {
			continue
		}
		img := r.image(path)
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(t.X*r.tileSize-sx), float64(t.Y*r.tileSize-sy))
		screen.DrawImage(img, op)
	}
}

func (r *Renderer) drawEntity(screen *ebiten.Image, e *entity.Entity, scroll entity.Vector) {
	view, ok := e.Sprite(scroll)
	if !ok {
		return
	}
	path := view.Image
	if view.Frame != "" {
		path = assets.FramePath(view.Frame)
	}
	img := r.image(path)
	if img == nil {
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{GeoM: SpriteGeoM(view, b.Dx(), b.Dy())}
	if view.HasAlpha {
		op.ColorScale.ScaleAlpha(float32(view.Alpha) / 255)
	}
	screen.DrawImage(img, op)
}

func (r *Renderer) drawParticle(screen *ebiten.Image, p *particle.Particle, scroll entity.Vector) {
	path := assets.ParticleFramePath(p.Type, p.FrameIndex())

	var img *ebiten.Image
	if p.Color != nil {
		var err error
		if img, err = r.store.Tinted(path, *p.Color); err != nil {
			r.warnOnce(path, err)
			return
		}
	} else if img = r.image(path); img == nil {
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(CenteredAt(p.Pos.Sub(scroll), b.Dx(), b.Dy()))
	screen.DrawImage(img, op)
}

func (r *Renderer) image(path string) *ebiten.Image {
	img, err := r.store.Image(path)
	if err != nil {
		r.warnOnce(path, err)
		return nil
	}
	return img
}

// warnOnce logs a missing asset the first time it is drawn.
func (r *Renderer) warnOnce(path string, err error) {
	if r.missing[path] {
		return
	}
	r.missing[path] = true
	r.log.WithError(err).WithField("path", path).Warn("skipping asset")
}

// TileImagePath maps a tile kind to its image, false for kinds never drawn.
func TileImagePath(k entity.TileKind) (string, bool) {
	switch k {
	case entity.TileSurface:
		return assets.TileGrass, true
	case entity.TileSubsurface:
		return assets.TileDirt, true
	case entity.TileDecoration:
		return assets.TilePlant, true
	default:
		return "", false
	}
}

// GroundRect is the far ground band drawn behind the tiles. Its top edge sits
// at the anchor's screen height so the ground never shows sky underneath.
func GroundRect(anchorY, scrollY float64, d config.DisplayConfig) entity.Rect {
	return entity.R(0, int(anchorY-scrollY), d.Width, d.Height)
}

// CenteredAt returns the translation that centres a w x h image on pos.
func CenteredAt(pos entity.Vector, w, h int) (float64, float64) {
	return math.Floor(pos.X) - float64(w/2), math.Floor(pos.Y) - float64(h/2)
}

// SpriteGeoM places a w x h sprite: mirrored if flipped, rotated
// counter-clockwise about its centre, centre kept where the unrotated image
// would have it.
func SpriteGeoM(v entity.SpriteView, w, h int) ebiten.GeoM {
	var m ebiten.GeoM
	cx, cy := float64(w)/2, float64(h)/2
	m.Translate(-cx, -cy)
	if v.Flip {
		m.Scale(-1, 1)
	}
	if v.Rotation != 0 {
		m.Rotate(-v.Rotation * math.Pi / 180)
	}
	m.Translate(float64(v.X)+cx, float64(v.Y)+cy)
	return m
}
