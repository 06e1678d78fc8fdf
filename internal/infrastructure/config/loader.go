package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PLATFORMER_WORLD_SEED.
const EnvPrefix = "PLATFORMER"

// ConfigFile is the name of the main config inside the loader's filesystem.
const ConfigFile = "game.json"

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
	v        *viper.Viper
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return NewFSLoader(os.DirFS(basePath), basePath)
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	return &Loader{
		fsys:     fsys,
		basePath: basePath,
		v:        v,
	}
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// A missing file is not an error.
func (l *Loader) LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// BindFlags lets explicitly set command-line flags override file and
// environment values. Each flag name maps to a dotted config key.
func (l *Loader) BindFlags(flags *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		f := flags.Lookup(name)
		if f == nil {
			return fmt.Errorf("unknown flag %q", name)
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads game.json and applies defaults, environment and bound flags.
func (l *Loader) Load() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}
	if err := l.v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}

	var cfg GameConfig
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", ConfigFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ReadFile reads a sibling file, such as the animation description.
func (l *Loader) ReadFile(name string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// FS returns the filesystem the loader reads from.
func (l *Loader) FS() fs.FS { return l.fsys }

// Validate rejects values the runtime cannot work with.
func (c *GameConfig) Validate() error {
	switch {
	case c.Display.Width <= 0 || c.Display.Height <= 0:
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	case c.World.TileSize <= 0:
		return fmt.Errorf("world.tileSize must be positive, got %d", c.World.TileSize)
	case c.World.ChunkSize <= 0:
		return fmt.Errorf("world.chunkSize must be positive, got %d", c.World.ChunkSize)
	case c.World.DecorationChance < 0 || c.World.DecorationChance > 1:
		return fmt.Errorf("world.decorationChance must be within [0, 1], got %g", c.World.DecorationChance)
	case c.Background.MinPercent <= 0 || c.Background.MinPercent > c.Background.MaxPercent:
		return fmt.Errorf("background percent range [%d, %d] is invalid", c.Background.MinPercent, c.Background.MaxPercent)
	case c.Camera.Lag < 1:
		return fmt.Errorf("camera.lag must be at least 1, got %g", c.Camera.Lag)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("display.width", 300)
	v.SetDefault("display.height", 200)
	v.SetDefault("display.windowWidth", 600)
	v.SetDefault("display.windowHeight", 400)
	v.SetDefault("display.tps", 60)
	v.SetDefault("display.title", "Platformer")

	v.SetDefault("world.tileSize", 16)
	v.SetDefault("world.chunkSize", 8)
	v.SetDefault("world.groundRow", 10)
	v.SetDefault("world.holeStart", 6)
	v.SetDefault("world.holeEnd", 8)
	v.SetDefault("world.decorationChance", 0.2)
	v.SetDefault("world.seed", 0)
	v.SetDefault("world.maxCachedChunks", 0)

	v.SetDefault("player.type", "player")
	v.SetDefault("player.spawnX", 100)
	v.SetDefault("player.spawnY", 100)
	v.SetDefault("player.width", 5)
	v.SetDefault("player.height", 13)
	v.SetDefault("player.runSpeed", 2)
	v.SetDefault("player.gravity", 0.2)
	v.SetDefault("player.maxFall", 3)
	v.SetDefault("player.jumpImpulse", -5)
	v.SetDefault("player.maxJumpAirTicks", 600)

	v.SetDefault("camera.offsetY", 106)
	v.SetDefault("camera.lag", 1)

	v.SetDefault("background.minPercent", 6)
	v.SetDefault("background.maxPercent", 100)
	v.SetDefault("background.width", 40)
	v.SetDefault("background.height", 100)
	v.SetDefault("background.baseY", 66)
	v.SetDefault("background.skyColor", []int{146, 244, 255})
	v.SetDefault("background.groundColor", []int{160, 150, 14})

	v.SetDefault("footsteps.cooldownTicks", 30)
	v.SetDefault("footsteps.minAirTicks", 3)

	v.SetDefault("assets.animations", "entity_animations.txt")
	v.SetDefault("assets.colorKey", []int{255, 255, 255})

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.sampleRate", 44100)
	v.SetDefault("audio.voices", 64)
	v.SetDefault("audio.musicVolume", 1.0)
	v.SetDefault("audio.fadeMillis", 1000)

	v.SetDefault("controls.left", "S")
	v.SetDefault("controls.right", "F")
	v.SetDefault("controls.jump", "Space")
	v.SetDefault("controls.down", "D")
	v.SetDefault("controls.fadeMusic", "W")
	v.SetDefault("controls.pause", "P")
	v.SetDefault("controls.quit", "Escape")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.maxSizeMB", 10)
	v.SetDefault("log.maxBackups", 3)
	v.SetDefault("log.maxAgeDays", 28)
}
