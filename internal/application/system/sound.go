package system

// Sound cues raised by gameplay.
const (
	SoundJump  = "jump"
	SoundGrass = "grass"
)

// SoundPlayer plays a cue fire-and-forget. Implementations must not block
// the game loop and must swallow their own failures.
type SoundPlayer interface {
	Play(id string)
}

// MusicPlayer controls the looping background track.
type MusicPlayer interface {
	FadeOut()
	// Update advances any running fade by dt seconds.
	Update(dt float64)
}

// Audio is the full sound collaborator used by the gameplay scene.
type Audio interface {
	SoundPlayer
	MusicPlayer
}

type silentPlayer struct{}

func (silentPlayer) Play(string)    {}
func (silentPlayer) FadeOut()       {}
func (silentPlayer) Update(float64) {}

// Silent returns a player that ignores every cue.
func Silent() Audio {
	return silentPlayer{}
}
