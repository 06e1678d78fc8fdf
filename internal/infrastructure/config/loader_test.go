package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.Display.Width)
	assert.Equal(t, 200, cfg.Display.Height)
	assert.Equal(t, 600, cfg.Display.WindowWidth)
	assert.Equal(t, 60, cfg.Display.TPS)
	assert.Equal(t, 16, cfg.World.TileSize)
	assert.Equal(t, 8, cfg.World.ChunkSize)
	assert.Equal(t, 0.2, cfg.World.DecorationChance)
	assert.Equal(t, 0.2, cfg.Player.Gravity)
	assert.Equal(t, -5.0, cfg.Player.JumpImpulse)
	assert.Equal(t, 600, cfg.Player.MaxJumpAirTicks)
	assert.Equal(t, 106.0, cfg.Camera.OffsetY)
	assert.Equal(t, RGB{146, 244, 255}, cfg.Background.SkyColor)
	assert.Equal(t, 30, cfg.Footsteps.CooldownTicks)
	assert.Equal(t, []string{"grass_0.wav", "grass_1.wav"}, cfg.Audio.Sounds["grass"])
	assert.Equal(t, 0.2, cfg.Audio.SoundVolumes["grass"])
	assert.Equal(t, 4, cfg.Particles.Types["dust"])
	assert.Equal(t, "Space", cfg.Controls.Jump)
}

func TestLoader_Load_Defaults(t *testing.T) {
	fsys := fstest.MapFS{
		ConfigFile: {Data: []byte(`{"world": {"seed": 7}}`)},
	}

	cfg, err := NewFSLoader(fsys, ".").Load()
	require.NoError(t, err)

	assert.Equal(t, uint64(7), cfg.World.Seed)
	assert.Equal(t, 300, cfg.Display.Width)
	assert.Equal(t, 10, cfg.World.GroundRow)
	assert.Equal(t, 2.0, cfg.Player.RunSpeed)
	assert.Equal(t, RGB{160, 150, 14}, cfg.Background.GroundColor)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoader_Load_EnvOverride(t *testing.T) {
	t.Setenv("PLATFORMER_WORLD_SEED", "99")
	t.Setenv("PLATFORMER_LOG_LEVEL", "debug")
	fsys := fstest.MapFS{ConfigFile: {Data: []byte(`{"world": {"seed": 7}}`)}}

	cfg, err := NewFSLoader(fsys, ".").Load()
	require.NoError(t, err)

	assert.Equal(t, uint64(99), cfg.World.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_BindFlags(t *testing.T) {
	fsys := fstest.MapFS{ConfigFile: {Data: []byte(`{"world": {"seed": 7, "maxCachedChunks": 3}}`)}}
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Uint64("seed", 0, "")
	flags.Int("max-chunks", 0, "")
	require.NoError(t, flags.Parse([]string{"--seed", "123"}))

	loader := NewFSLoader(fsys, ".")
	require.NoError(t, loader.BindFlags(flags, map[string]string{
		"seed":       "world.seed",
		"max-chunks": "world.maxCachedChunks",
	}))
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, uint64(123), cfg.World.Seed, "set flag wins over the file")
	assert.Equal(t, 3, cfg.World.MaxCachedChunks, "unset flag leaves the file value")

	assert.Error(t, loader.BindFlags(flags, map[string]string{"nope": "world.seed"}))
}

func TestLoader_LoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PLATFORMER_DISPLAY_TPS=30\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("PLATFORMER_DISPLAY_TPS") })

	loader := NewFSLoader(fstest.MapFS{ConfigFile: {Data: []byte(`{}`)}}, ".")
	require.NoError(t, loader.LoadDotEnv(path))
	require.NoError(t, loader.LoadDotEnv(filepath.Join(dir, "missing.env")))

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Display.TPS)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing file", fstest.MapFS{}},
		{"bad json", fstest.MapFS{ConfigFile: {Data: []byte(`{`)}}},
		{"zero tile size", fstest.MapFS{ConfigFile: {Data: []byte(`{"world": {"tileSize": 0}}`)}}},
		{"chance above one", fstest.MapFS{ConfigFile: {Data: []byte(`{"world": {"decorationChance": 1.5}}`)}}},
		{"inverted percents", fstest.MapFS{ConfigFile: {Data: []byte(`{"background": {"minPercent": 50, "maxPercent": 10}}`)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.fsys, ".").Load()
			assert.Error(t, err)
		})
	}
}

func TestDisplayConfig_Tiles(t *testing.T) {
	d := DisplayConfig{Width: 300, Height: 200}

	assert.Equal(t, 19, d.TilesWide(16))
	assert.Equal(t, 13, d.TilesTall(16))
}
