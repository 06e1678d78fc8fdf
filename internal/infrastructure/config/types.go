package config

import "image/color"

// GameConfig is the root config for game.json
type GameConfig struct {
	Display    DisplayConfig    `mapstructure:"display"`
	World      WorldConfig      `mapstructure:"world"`
	Player     PlayerConfig     `mapstructure:"player"`
	Camera     CameraConfig     `mapstructure:"camera"`
	Background BackgroundConfig `mapstructure:"background"`
	Footsteps  FootstepsConfig  `mapstructure:"footsteps"`
	Particles  ParticlesConfig  `mapstructure:"particles"`
	Assets     AssetsConfig     `mapstructure:"assets"`
	Audio      AudioConfig      `mapstructure:"audio"`
	Controls   ControlsConfig   `mapstructure:"controls"`
	Log        LogConfig        `mapstructure:"log"`
}

// DisplayConfig sizes the logical display surface and the OS window it is
// scaled into.
type DisplayConfig struct {
	Width        int    `mapstructure:"width"`
	Height       int    `mapstructure:"height"`
	WindowWidth  int    `mapstructure:"windowWidth"`
	WindowHeight int    `mapstructure:"windowHeight"`
	TPS          int    `mapstructure:"tps"`
	Title        string `mapstructure:"title"`
}

// TilesWide returns how many tiles span the display horizontally.
func (d DisplayConfig) TilesWide(tileSize int) int {
	return (d.Width + tileSize - 1) / tileSize
}

// TilesTall returns how many tiles span the display vertically.
func (d DisplayConfig) TilesTall(tileSize int) int {
	return (d.Height + tileSize - 1) / tileSize
}

type WorldConfig struct {
	TileSize         int     `mapstructure:"tileSize"`
	ChunkSize        int     `mapstructure:"chunkSize"`
	GroundRow        int     `mapstructure:"groundRow"`
	HoleStart        int     `mapstructure:"holeStart"`
	HoleEnd          int     `mapstructure:"holeEnd"`
	DecorationChance float64 `mapstructure:"decorationChance"`

	// Seed 0 picks a fresh seed per run.
	Seed uint64 `mapstructure:"seed"`

	// MaxCachedChunks > 0 bounds the chunk cache; 0 keeps every chunk.
	MaxCachedChunks int `mapstructure:"maxCachedChunks"`
}

type PlayerConfig struct {
	Type            string  `mapstructure:"type"`
	SpawnX          float64 `mapstructure:"spawnX"`
	SpawnY          float64 `mapstructure:"spawnY"`
	Width           int     `mapstructure:"width"`
	Height          int     `mapstructure:"height"`
	RunSpeed        float64 `mapstructure:"runSpeed"`
	Gravity         float64 `mapstructure:"gravity"`
	MaxFall         float64 `mapstructure:"maxFall"`
	JumpImpulse     float64 `mapstructure:"jumpImpulse"`
	MaxJumpAirTicks int     `mapstructure:"maxJumpAirTicks"`
	OffsetX         float64 `mapstructure:"offsetX"`
	OffsetY         float64 `mapstructure:"offsetY"`
}

type CameraConfig struct {
	OffsetY float64 `mapstructure:"offsetY"`

	// Lag divides the distance closed per tick; 1 snaps to the player.
	Lag float64 `mapstructure:"lag"`
}

type BackgroundConfig struct {
	MinPercent  int `mapstructure:"minPercent"`
	MaxPercent  int `mapstructure:"maxPercent"`
	Width       int `mapstructure:"width"`
	Height      int `mapstructure:"height"`
	BaseY       int `mapstructure:"baseY"`
	SkyColor    RGB `mapstructure:"skyColor"`
	GroundColor RGB `mapstructure:"groundColor"`
}

type FootstepsConfig struct {
	CooldownTicks int `mapstructure:"cooldownTicks"`
	MinAirTicks   int `mapstructure:"minAirTicks"`
}

type ParticlesConfig struct {
	// Types maps a particle type to its frame count when no asset directory
	// provides the frames.
	Types map[string]int `mapstructure:"types"`
	Dust  DustConfig     `mapstructure:"dust"`
}

// DustConfig describes the burst spawned when the player lands.
type DustConfig struct {
	Type        string  `mapstructure:"type"`
	Count       int     `mapstructure:"count"`
	Speed       float64 `mapstructure:"speed"`
	Decay       float64 `mapstructure:"decay"`
	MinAirTicks int     `mapstructure:"minAirTicks"`
	Color       RGB     `mapstructure:"color"`
}

type AssetsConfig struct {
	// Dir holds entities/, tiles/ and particles/. Empty draws placeholders.
	Dir string `mapstructure:"dir"`

	Animations string `mapstructure:"animations"`
	ColorKey   RGB    `mapstructure:"colorKey"`
}

type AudioConfig struct {
	Enabled      bool                `mapstructure:"enabled"`
	Dir          string              `mapstructure:"dir"`
	SampleRate   int                 `mapstructure:"sampleRate"`
	Voices       int                 `mapstructure:"voices"`
	Music        string              `mapstructure:"music"`
	MusicVolume  float64             `mapstructure:"musicVolume"`
	FadeMillis   int                 `mapstructure:"fadeMillis"`
	Sounds       map[string][]string `mapstructure:"sounds"`
	SoundVolumes map[string]float64  `mapstructure:"soundVolumes"`
}

// ControlsConfig names the ebiten keys bound to each action.
type ControlsConfig struct {
	Left      string `mapstructure:"left"`
	Right     string `mapstructure:"right"`
	Jump      string `mapstructure:"jump"`
	Down      string `mapstructure:"down"`
	FadeMusic string `mapstructure:"fadeMusic"`
	Pause     string `mapstructure:"pause"`
	Quit      string `mapstructure:"quit"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"maxSizeMB"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAgeDays"`
}

// RGB is an opaque colour written as [r, g, b] in config.
type RGB [3]uint8

// Color converts to an opaque color.RGBA.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}
