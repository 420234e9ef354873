package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/invaders/internal/application/system"
)

func recordScript(r *Recorder, frames int) []system.InputState {
	var inputs []system.InputState
	for i := 0; i < frames; i++ {
		in := system.InputState{
			Left:  i%4 == 0,
			Right: i%4 == 2,
			Boost: i%3 == 0,
			Shoot: i%5 == 0,
		}
		r.RecordFrame(in)
		inputs = append(inputs, in)
	}
	return inputs
}

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder(12345, 1.0/60.0)
	recordScript(r, 10)

	assert.Equal(t, 10, r.FrameCount())
	data := r.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Equal(t, 9, data.Frames[9].F)
	assert.NotEmpty(t, data.StartTime)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder(1, 1.0/60.0)
	err := r.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.ErrorIs(t, err, ErrEmptyRecording)
}

func TestSaveAndLoad_PlaysBackSameInputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	r := NewRecorder(777, 1.0/30.0)
	inputs := recordScript(r, 50)
	require.NoError(t, r.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)

	p := NewReplayer(*data)
	assert.Equal(t, int64(777), p.Seed())
	assert.Equal(t, 1.0/30.0, p.DT())
	assert.Equal(t, 50, p.TotalFrames())

	for i, want := range inputs {
		got, ok := p.GetInput()
		require.True(t, ok, "frame %d", i)
		assert.Equal(t, want, got, "frame %d", i)
	}

	_, ok := p.GetInput()
	assert.False(t, ok, "exhausted")
	assert.Equal(t, 50, p.CurrentFrame())

	p.Reset()
	assert.Equal(t, 0, p.CurrentFrame())
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReplay(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadReplay(bad)
	assert.Error(t, err)

	old := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(old, []byte(`{"version":"1.0","frames":[]}`), 0o644))
	_, err = LoadReplay(old)
	assert.ErrorContains(t, err, "unsupported replay version")
}

func TestReplayer_DefaultDT(t *testing.T) {
	p := NewReplayer(ReplayData{})
	assert.Equal(t, 1.0/60.0, p.DT())
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, name)
}
