package replay

import "github.com/younwookim/girders/internal/application/system"

// Version is written into every recording
const Version = "1.0"

// FrameInput is the keys held on one tick. Released keys are left out of
// the JSON to keep long runs small.
type FrameInput struct {
	F int  `json:"f"` // tick index
	L bool `json:"l,omitempty"`
	R bool `json:"r,omitempty"`
	U bool `json:"u,omitempty"`
	D bool `json:"d,omitempty"`
	J bool `json:"j,omitempty"`
}

// NewFrameInput captures the input of frame f
func NewFrameInput(f int, in system.InputState) FrameInput {
	return FrameInput{
		F: f,
		L: in.Left,
		R: in.Right,
		U: in.Up,
		D: in.Down,
		J: in.Jump,
	}
}

// Input converts the recorded frame back to an input state
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:  fi.L,
		Right: fi.R,
		Up:    fi.U,
		Down:  fi.D,
		Jump:  fi.J,
	}
}

// ReplayData is a recorded run: the stage and seed it started from plus
// every tick of input
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
