package main

import (
	"embed"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/younwookim/scroller/internal/application/game"
	"github.com/younwookim/scroller/internal/application/replay"
	"github.com/younwookim/scroller/internal/application/scene/playing"
	"github.com/younwookim/scroller/internal/application/system"
	"github.com/younwookim/scroller/internal/domain/animation"
	"github.com/younwookim/scroller/internal/domain/particle"
	"github.com/younwookim/scroller/internal/infrastructure/assets"
	"github.com/younwookim/scroller/internal/infrastructure/audio"
	"github.com/younwookim/scroller/internal/infrastructure/config"
	"github.com/younwookim/scroller/internal/infrastructure/logging"
	"github.com/younwookim/scroller/internal/infrastructure/render"
)

//go:embed configs
var configFS embed.FS

// flagKeys binds command-line flags onto config keys.
var flagKeys = map[string]string{
	"seed":       "world.seed",
	"max-chunks": "world.maxCachedChunks",
	"log-level":  "log.level",
	"log-file":   "log.file",
	"assets":     "assets.dir",
}

type options struct {
	configDir string
	record    string
	replay    string
	noAudio   bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		logrus.WithError(err).Fatal("platformer stopped")
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("platformer", pflag.ContinueOnError)
	var opts options
	flags.StringVar(&opts.configDir, "config-dir", "", "read game.json from this directory instead of the built-in one")
	flags.StringVar(&opts.record, "record", "", "record input to file (e.g. --record replay.json)")
	flags.StringVar(&opts.replay, "replay", "", "play back a recorded session")
	flags.BoolVar(&opts.noAudio, "no-audio", false, "disable sound and music")
	flags.Uint64("seed", 0, "world seed (0 picks one)")
	flags.Int("max-chunks", 0, "bound the chunk cache (0 keeps every chunk)")
	flags.String("log-level", "info", "log level")
	flags.String("log-file", "", "also write logs to this rotated file")
	flags.String("assets", "", "asset directory (empty draws placeholders)")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	loader, err := newLoader(opts.configDir)
	if err != nil {
		return err
	}
	if err := loader.LoadDotEnv(".env"); err != nil {
		return err
	}
	if err := loader.BindFlags(flags, flagKeys); err != nil {
		return err
	}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	if opts.noAudio {
		cfg.Audio.Enabled = false
	}

	logger, logCloser, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logCloser.Close() }()

	animData, err := loader.ReadFile(cfg.Assets.Animations)
	if err != nil {
		return err
	}
	anims, err := assets.LoadAnimations(animData)
	if err != nil {
		return err
	}

	store, catalog, err := loadAssets(cfg, anims, logger)
	if err != nil {
		return err
	}

	intents, onExit, err := newIntentSource(cfg, opts, logger)
	if err != nil {
		return err
	}

	sound, closeAudio := openAudio(cfg, logger)
	defer closeAudio()

	scene, err := playing.New(cfg, anims, playing.Deps{
		Intents:   intents,
		Audio:     sound,
		Particles: catalog,
		Renderer:  render.New(store, cfg, logger),
		Log:       logger,
		OnExit:    onExit,
	})
	if err != nil {
		return err
	}

	g := game.New(scene, cfg.Display.Width, cfg.Display.Height)
	g.SetDT(1 / float64(cfg.Display.TPS))
	defer g.Close()

	ebiten.SetWindowSize(cfg.Display.WindowWidth, cfg.Display.WindowHeight)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.TPS)
	ebiten.SetWindowClosingHandled(true)

	logger.WithFields(logrus.Fields{
		"seed":   cfg.World.Seed,
		"frames": len(anims.FrameIDs()),
		"audio":  cfg.Audio.Enabled,
	}).Info("starting")

	// RunGame returns nil when a scene ends the loop with ebiten.Termination.
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	logger.Info("bye")
	return nil
}

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadAssets preloads every image the game can draw. Without an asset
// directory solid placeholders are generated instead.
func loadAssets(cfg *config.GameConfig, anims *animation.Set, log logrus.FieldLogger) (*assets.Store, particle.Catalog, error) {
	var (
		src     assets.Source
		catalog *assets.ParticleCatalog
	)
	if dir := cfg.Assets.Dir; dir != "" {
		fsys := os.DirFS(dir)
		src = assets.NewFileSource(fsys)

		var reports []assets.LoadReport
		catalog, reports = assets.LoadParticles(fsys)
		for _, r := range reports {
			entry := log.WithFields(logrus.Fields{"particle": r.Type, "frames": r.Frames})
			if r.Err != nil {
				entry.WithError(r.Err).Warn("particle type skipped")
				continue
			}
			entry.Debug("particle type loaded")
		}
	} else {
		src = &assets.PlaceholderSource{
			TileSize:   cfg.World.TileSize,
			EntitySize: image.Pt(cfg.Player.Width, cfg.Player.Height),
		}
		catalog = assets.NewParticleCatalog(cfg.Particles.Types)
	}

	paths := []string{assets.TileGrass, assets.TileDirt, assets.TilePlant}
	for _, id := range anims.FrameIDs() {
		paths = append(paths, assets.FramePath(id))
	}
	paths = append(paths, catalog.Paths()...)

	store := assets.NewStore(src, cfg.Assets.ColorKey.Color(), log)
	if err := store.Preload(paths); err != nil {
		return nil, nil, err
	}
	return store, catalog, nil
}

// newIntentSource returns the keyboard, optionally recorded, or a replay.
// The returned hook saves a recording when the scene is left.
func newIntentSource(cfg *config.GameConfig, opts options, log logrus.FieldLogger) (system.IntentSource, func(), error) {
	keys, err := system.ParseKeyBindings(&cfg.Controls)
	if err != nil {
		return nil, nil, err
	}
	var intents system.IntentSource = system.NewInputSystem(keys)

	if opts.replay != "" {
		data, err := replay.LoadFile(opts.replay)
		if err != nil {
			return nil, nil, err
		}
		cfg.World.Seed = data.Seed
		r := replay.NewReplayer(*data)
		log.WithFields(logrus.Fields{"replay": r.ID(), "frames": r.TotalFrames()}).Info("replaying")
		intents = system.IntentFunc(func() system.Intent {
			in := r.Poll()
			in.Quit = in.Quit || ebiten.IsWindowBeingClosed()
			return in
		})
	}
	cfg.World.Seed = playing.ResolveSeed(cfg.World.Seed)

	if opts.record == "" {
		return intents, nil, nil
	}
	rec := replay.NewRecorder(intents, cfg.World.Seed)
	save := func() {
		entry := log.WithFields(logrus.Fields{"file": opts.record, "frames": rec.FrameCount()})
		if err := rec.SaveFile(opts.record); err != nil {
			entry.WithError(err).Error("failed to save recording")
			return
		}
		entry.Info("recording saved")
	}
	log.WithFields(logrus.Fields{"file": opts.record, "replay": rec.Data().ID}).Info("recording")
	return rec, save, nil
}

// openAudio starts the speaker. Audio is optional: any failure leaves the
// game silent.
func openAudio(cfg *config.GameConfig, log logrus.FieldLogger) (system.Audio, func()) {
	if !cfg.Audio.Enabled {
		return system.Silent(), func() {}
	}
	p, err := audio.Open(&cfg.Audio, os.DirFS("."), log)
	if err != nil {
		log.WithError(err).Warn("audio disabled")
		return system.Silent(), func() {}
	}
	return p, func() {
		p.Close()
		log.Debug("audio closed")
	}
}
