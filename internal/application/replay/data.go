package replay

import "github.com/younwookim/scroller/internal/application/system"

// Version is written into every recording.
const Version = "2"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left held
	R  bool `json:"r,omitempty"`  // Right held
	J  bool `json:"j,omitempty"`  // Jump pressed
	JR bool `json:"jr,omitempty"` // Jump released
	D  bool `json:"d,omitempty"`  // Down pressed
	FM bool `json:"fm,omitempty"` // Fade music
	P  bool `json:"p,omitempty"`  // Pause toggled
	Q  bool `json:"q,omitempty"`  // Quit
}

// ReplayData contains all data needed to replay a game session. Seed
// regenerates the same world and background.
type ReplayData struct {
	Version   string       `json:"version"`
	ID        string       `json:"id"`
	Seed      uint64       `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func frameFromIntent(frame int, in system.Intent) FrameInput {
	return FrameInput{
		F:  frame,
		L:  in.Left,
		R:  in.Right,
		J:  in.Jump,
		JR: in.JumpRelease,
		D:  in.Down,
		FM: in.FadeMusic,
		P:  in.Pause,
		Q:  in.Quit,
	}
}

// Intent converts the recorded frame back into gameplay input.
func (f FrameInput) Intent() system.Intent {
	return system.Intent{
		Left:        f.L,
		Right:       f.R,
		Jump:        f.J,
		JumpRelease: f.JR,
		Down:        f.D,
		FadeMusic:   f.FM,
		Pause:       f.P,
		Quit:        f.Q,
	}
}
