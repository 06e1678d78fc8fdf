// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/scroller/internal/application/scene"
	"github.com/younwookim/scroller/internal/application/state"
	"github.com/younwookim/scroller/internal/application/system"
	"github.com/younwookim/scroller/internal/domain/animation"
	"github.com/younwookim/scroller/internal/domain/entity"
	"github.com/younwookim/scroller/internal/domain/parallax"
	"github.com/younwookim/scroller/internal/domain/particle"
	"github.com/younwookim/scroller/internal/domain/world"
	"github.com/younwookim/scroller/internal/infrastructure/config"
	"github.com/younwookim/scroller/internal/infrastructure/logging"
	"github.com/younwookim/scroller/internal/infrastructure/render"
)

// Renderer draws a frame. *render.Renderer implements it.
type Renderer interface {
	Draw(screen *ebiten.Image, f render.Frame)
}

// Deps are the collaborators the scene uses but does not own.
type Deps struct {
	Intents   system.IntentSource
	Audio     system.Audio
	Particles particle.Catalog // nil uses the configured frame counts
	Renderer  Renderer         // nil draws nothing
	Log       logrus.FieldLogger

	// OnExit runs when the scene is left, e.g. to save a recording.
	OnExit func()
}

// Playing is the main gameplay scene
type Playing struct {
	config *config.GameConfig
	log    logrus.FieldLogger
	state  state.GameState
	seed   uint64
	rng    *rand.Rand

	world      *world.World
	store      world.ChunkStore
	player     *entity.Entity
	controller *system.Controller
	movement   *system.MovementSystem
	animation  *system.AnimationSystem
	camera     *system.CameraSystem
	footsteps  *system.FootstepSystem
	particles  *particle.System
	background []*parallax.Object

	intents  system.IntentSource
	audio    system.Audio
	renderer Renderer
	onExit   func()

	tilesWide int
	tilesTall int
	scroll    entity.Vector
	tiles     []entity.Tile
	ticks     int
}

// ResolveSeed returns configured, or a fresh random seed when it is 0.
func ResolveSeed(configured uint64) uint64 {
	for configured == 0 {
		configured = rand.Uint64()
	}
	return configured
}

// New creates a new Playing scene from a config whose world seed is already
// resolved. The same seed always yields the same world and background.
func New(cfg *config.GameConfig, anims *animation.Set, deps Deps) (*Playing, error) {
	seed := cfg.World.Seed
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	store, err := newChunkStore(cfg.World.MaxCachedChunks)
	if err != nil {
		return nil, err
	}
	w := world.New(world.NewGenerator(world.GeneratorConfig{
		ChunkSize:        cfg.World.ChunkSize,
		GroundRow:        cfg.World.GroundRow,
		HoleStart:        cfg.World.HoleStart,
		HoleEnd:          cfg.World.HoleEnd,
		DecorationChance: cfg.World.DecorationChance,
		Seed:             seed,
	}), store, cfg.World.TileSize)
	if deps.Log == nil {
		deps.Log = logging.Discard()
	}
	if deps.Particles == nil {
		deps.Particles = particle.Counts(cfg.Particles.Types)
	}
	log := deps.Log.WithField("seed", seed)
	w.OnGenerate = func(c *world.Chunk) {
		log.WithFields(logrus.Fields{
			"chunk": world.ChunkKey(c.X, c.Y),
			"tiles": len(c.Tiles),
		}).Debug("chunk generated")
	}

	pc := &cfg.Player
	player, err := entity.New(pc.SpawnX, pc.SpawnY, pc.Width, pc.Height, pc.Type, anims)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	player.SetOffset(entity.Vec(pc.OffsetX, pc.OffsetY))

	audio := deps.Audio
	if audio == nil {
		audio = system.Silent()
	}
	controller := system.NewController(pc)
	controller.OnJump = func() { audio.Play(system.SoundJump) }

	bg := cfg.Background
	background := parallax.NewField(parallax.FieldConfig{
		MinPercent: bg.MinPercent,
		MaxPercent: bg.MaxPercent,
		Width:      bg.Width,
		Height:     bg.Height,
		BaseY:      bg.BaseY,
	}, cfg.Display.Width, rng)

	p := &Playing{
		config:     cfg,
		log:        log,
		state:      state.StatePlaying,
		seed:       seed,
		rng:        rng,
		world:      w,
		store:      store,
		player:     player,
		controller: controller,
		movement:   system.NewMovementSystem(),
		animation:  system.NewAnimationSystem(),
		camera:     system.NewCameraSystem(&cfg.Camera, cfg.Display.Width),
		footsteps:  system.NewFootstepSystem(&cfg.Footsteps, audio),
		particles:  particle.NewSystem(deps.Particles),
		background: background,
		intents:    deps.Intents,
		audio:      audio,
		renderer:   deps.Renderer,
		onExit:     deps.OnExit,
		tilesWide:  cfg.Display.TilesWide(cfg.World.TileSize),
		tilesTall:  cfg.Display.TilesTall(cfg.World.TileSize),
	}
	return p, nil
}

func newChunkStore(maxChunks int) (world.ChunkStore, error) {
	if maxChunks <= 0 {
		return world.NewMapStore(), nil
	}
	store, err := world.NewBoundedStore(maxChunks)
	if err != nil {
		return nil, fmt.Errorf("failed to create chunk store: %w", err)
	}
	return store, nil
}

// Update proceeds the game state (implements scene.Scene). Input polled at
// the end of a tick takes effect on the next one.
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.state == state.StatePlaying {
		p.step()
	}
	p.audio.Update(dt)

	in := p.intents.Poll()
	if in.Quit {
		p.log.WithField("ticks", p.ticks).Info("quit requested")
		return nil, ebiten.Termination
	}
	if in.Pause {
		p.state = p.state.TogglePause()
		p.log.WithField("state", p.state).Info("pause toggled")
	}
	if p.state != state.StatePlaying {
		return nil, nil
	}

	if in.FadeMusic {
		p.audio.FadeOut()
	}
	p.controller.Apply(in)
	return nil, nil // nil = stay on this scene
}

func (p *Playing) step() {
	p.footsteps.Tick()

	p.scroll = p.camera.Follow(p.player.Pos())
	p.tiles = p.world.VisibleWindow(p.scroll, p.tilesWide, p.tilesTall)
	solid, decorative := world.Colliders(p.tiles, p.world.TileSize())

	step := p.movement.Update(p.controller, p.player, solid)
	if err := p.animation.Select(p.player, step.Movement); err != nil {
		p.log.WithError(err).Warn("animation not switched")
	}
	p.footsteps.Update(step, p.player.Rect(), decorative)
	if step.Landed(p.config.Particles.Dust.MinAirTicks) {
		p.spawnDust()
	}
	p.animation.Advance(p.player)
	p.particles.Update()
	p.ticks++
}

// spawnDust kicks up a burst at the player's feet.
func (p *Playing) spawnDust() {
	dust := p.config.Particles.Dust
	c := dust.Color.Color()
	r := p.player.Rect()
	feet := entity.Vec(float64(r.X)+float64(r.W)/2, float64(r.Bottom()))

	for range dust.Count {
		motion := entity.Vec((p.rng.Float64()*2-1)*dust.Speed, -p.rng.Float64()*dust.Speed/2)
		if err := p.particles.Spawn(feet, dust.Type, motion, dust.Decay, p.rng.Float64(), &c); err != nil {
			p.log.WithError(err).Debug("dust not spawned")
			return
		}
	}
}

// Frame returns what is visible this tick.
func (p *Playing) Frame() render.Frame {
	return render.Frame{
		Scroll:     p.scroll,
		Anchor:     p.player.Pos(),
		Background: p.background,
		Tiles:      p.tiles,
		Player:     p.player,
		Particles:  p.particles.Particles(),
		Paused:     p.state == state.StatePaused,
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	if p.renderer == nil {
		return
	}
	p.renderer.Draw(screen, p.Frame())
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.log.WithFields(logrus.Fields{
		"spawnX": p.config.Player.SpawnX,
		"spawnY": p.config.Player.SpawnY,
	}).Info("entering world")
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	if p.onExit != nil {
		p.onExit()
	}
	if b, ok := p.store.(*world.BoundedStore); ok {
		b.Close()
	}
	p.log.WithFields(logrus.Fields{
		"ticks":  p.ticks,
		"chunks": p.world.Loaded(),
	}).Info("left world")
}

// State returns whether the simulation is running.
func (p *Playing) State() state.GameState { return p.state }

// Seed returns the seed the world was generated from.
func (p *Playing) Seed() uint64 { return p.seed }

// Player returns the player entity.
func (p *Playing) Player() *entity.Entity { return p.player }

// Controller returns the player's control state.
func (p *Playing) Controller() *system.Controller { return p.controller }

// Ticks returns how many simulation ticks have run.
func (p *Playing) Ticks() int { return p.ticks }
