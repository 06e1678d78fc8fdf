package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/scroller/internal/infrastructure/config"
)

// KeyBindings maps actions to keys.
type KeyBindings struct {
	Left      ebiten.Key
	Right     ebiten.Key
	Jump      ebiten.Key
	Down      ebiten.Key
	FadeMusic ebiten.Key
	Pause     ebiten.Key
	Quit      ebiten.Key
}

// ParseKeyBindings resolves key names such as "Space" or "F".
func ParseKeyBindings(cfg *config.ControlsConfig) (KeyBindings, error) {
	var b KeyBindings
	for _, k := range []struct {
		name string
		dst  *ebiten.Key
	}{
		{cfg.Left, &b.Left},
		{cfg.Right, &b.Right},
		{cfg.Jump, &b.Jump},
		{cfg.Down, &b.Down},
		{cfg.FadeMusic, &b.FadeMusic},
		{cfg.Pause, &b.Pause},
		{cfg.Quit, &b.Quit},
	} {
		if err := k.dst.UnmarshalText([]byte(k.name)); err != nil {
			return KeyBindings{}, fmt.Errorf("invalid key %q: %w", k.name, err)
		}
	}
	return b, nil
}

// InputSystem reads the keyboard into intents.
type InputSystem struct {
	keys KeyBindings
}

// NewInputSystem creates a new input system
func NewInputSystem(keys KeyBindings) *InputSystem {
	return &InputSystem{keys: keys}
}

// Poll implements IntentSource.
func (s *InputSystem) Poll() Intent {
	return Intent{
		Left:        ebiten.IsKeyPressed(s.keys.Left),
		Right:       ebiten.IsKeyPressed(s.keys.Right),
		Jump:        inpututil.IsKeyJustPressed(s.keys.Jump),
		JumpRelease: inpututil.IsKeyJustReleased(s.keys.Jump),
		Down:        inpututil.IsKeyJustPressed(s.keys.Down),
		FadeMusic:   inpututil.IsKeyJustPressed(s.keys.FadeMusic),
		Pause:       inpututil.IsKeyJustPressed(s.keys.Pause),
		Quit:        inpututil.IsKeyJustPressed(s.keys.Quit) || ebiten.IsWindowBeingClosed(),
	}
}
