package replay

import "github.com/younwookim/invaders/internal/application/system"

// Version of the replay file format
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	B bool `json:"b,omitempty"` // Boost
	S bool `json:"s,omitempty"` // Shoot
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	DT        float64      `json:"dt"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func frameOf(n int, in system.InputState) FrameInput {
	return FrameInput{F: n, L: in.Left, R: in.Right, B: in.Boost, S: in.Shoot}
}

func (f FrameInput) input() system.InputState {
	return system.InputState{Left: f.L, Right: f.R, Boost: f.B, Shoot: f.S}
}
