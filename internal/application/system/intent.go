package system

// Intent is what the player asked for during one tick. Held flags reflect the
// key state at poll time; the rest are edges that fire once.
type Intent struct {
	Left  bool // held
	Right bool // held

	Jump        bool // pressed
	JumpRelease bool
	Down        bool // pressed
	FadeMusic   bool
	Pause       bool
	Quit        bool
}

// IntentSource yields one Intent per tick.
type IntentSource interface {
	Poll() Intent
}

// IntentFunc adapts a function to IntentSource.
type IntentFunc func() Intent

// Poll implements IntentSource.
func (f IntentFunc) Poll() Intent { return f() }
