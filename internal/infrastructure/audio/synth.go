// Package audio plays synthesized sound effects for simulation events.
package audio

import "math"

// SampleRate is the output rate for every clip
const SampleRate = 44100

// Cue identifies a sound effect
type Cue int

const (
	CuePlayerMissile Cue = iota
	CueEnemyMissile
	CueEnemyExplosion
	CuePlayerExplosion
	CueVictory
	CueGameOver
)

// Cues lists every cue
var Cues = []Cue{CuePlayerMissile, CueEnemyMissile, CueEnemyExplosion, CuePlayerExplosion, CueVictory, CueGameOver}

// Note is a tone sliding linearly from Freq to EndFreq over Dur seconds.
// Noise mixes in white noise, 0 for a pure tone and 1 for noise only.
type Note struct {
	Freq, EndFreq float64
	Dur           float64
	Noise         float64
	Decay         float64 // envelope exp(-Decay*t)
}

var cueNotes = map[Cue][]Note{
	CuePlayerMissile:   {{Freq: 1400, EndFreq: 600, Dur: 0.12, Decay: 12}},
	CueEnemyMissile:    {{Freq: 300, EndFreq: 180, Dur: 0.15, Decay: 10}},
	CueEnemyExplosion:  {{Freq: 200, EndFreq: 60, Dur: 0.3, Noise: 0.7, Decay: 9}},
	CuePlayerExplosion: {{Freq: 120, EndFreq: 30, Dur: 0.8, Noise: 0.8, Decay: 4}},
	CueVictory: {
		{Freq: 523.25, EndFreq: 523.25, Dur: 0.15, Decay: 3},
		{Freq: 659.25, EndFreq: 659.25, Dur: 0.15, Decay: 3},
		{Freq: 783.99, EndFreq: 783.99, Dur: 0.15, Decay: 3},
		{Freq: 1046.5, EndFreq: 1046.5, Dur: 0.4, Decay: 2},
	},
	CueGameOver: {
		{Freq: 392, EndFreq: 392, Dur: 0.25, Decay: 3},
		{Freq: 311.13, EndFreq: 311.13, Dur: 0.25, Decay: 3},
		{Freq: 261.63, EndFreq: 196, Dur: 0.7, Decay: 2},
	},
}

// Notes returns the note sequence for c
func Notes(c Cue) []Note {
	return cueNotes[c]
}

// Synthesize renders notes as 16-bit little-endian stereo PCM
func Synthesize(notes []Note, sampleRate int, amplitude float64) []byte {
	total := 0
	for _, n := range notes {
		total += int(float64(sampleRate) * n.Dur)
	}
	buf := make([]byte, 0, total*4)

	// xorshift keeps the noise reproducible
	seed := uint32(2463534242)
	for _, n := range notes {
		samples := int(float64(sampleRate) * n.Dur)
		phase := 0.0
		for i := 0; i < samples; i++ {
			t := float64(i) / float64(sampleRate)
			freq := n.Freq + (n.EndFreq-n.Freq)*(t/n.Dur)
			phase += 2 * math.Pi * freq / float64(sampleRate)

			seed ^= seed << 13
			seed ^= seed >> 17
			seed ^= seed << 5
			noise := float64(seed)/math.MaxUint32*2 - 1

			s := (1-n.Noise)*math.Sin(phase) + n.Noise*noise
			v := int16(s * amplitude * math.Exp(-n.Decay*t))
			for ch := 0; ch < 2; ch++ {
				buf = append(buf, byte(v), byte(v>>8))
			}
		}
	}
	return buf
}
