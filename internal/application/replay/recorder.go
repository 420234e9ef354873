package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/invaders/internal/application/system"
)

// ErrEmptyRecording is returned when saving a recorder with no frames
var ErrEmptyRecording = errors.New("no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data ReplayData
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64, dt float64) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			DT:        dt,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(in system.InputState) {
	r.data.Frames = append(r.data.Frames, frameOf(len(r.data.Frames), in))
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded replay
func (r *Recorder) Data() ReplayData {
	return r.data
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrEmptyRecording
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
