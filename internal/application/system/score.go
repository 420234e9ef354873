package system

import (
	"math"
	"time"

	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// ScoreTracker accumulates points with a time-windowed combo multiplier
type ScoreTracker struct {
	config *config.GameConfig

	score    int
	combo    int
	lastKill time.Duration
}

// NewScoreTracker creates a tracker at zero
func NewScoreTracker(cfg *config.GameConfig) *ScoreTracker {
	return &ScoreTracker{config: cfg}
}

// Reset zeroes score and combo
func (t *ScoreTracker) Reset() {
	t.score = 0
	t.combo = 0
	t.lastKill = 0
}

// AddScore records a kill at now and returns the points awarded.
// A kill within the combo window of the previous one extends the combo,
// otherwise the combo restarts at 1.
func (t *ScoreTracker) AddScore(points int, now time.Duration) int {
	if now-t.lastKill < config.Millis(t.config.Scoring.ComboWindowMs) {
		t.combo++
	} else {
		t.combo = 1
	}
	t.lastKill = now

	awarded := int(math.Round(float64(points) * t.Multiplier()))
	t.score += awarded
	return awarded
}

// Multiplier returns the factor for the current combo
func (t *ScoreTracker) Multiplier() float64 {
	if t.combo < 1 {
		return 1
	}
	sc := t.config.Scoring
	return math.Min(sc.MaxMultiplier, 1+float64(t.combo-1)*sc.ComboStep)
}

// Score returns the accumulated score
func (t *ScoreTracker) Score() int { return t.score }

// Combo returns the current combo length
func (t *ScoreTracker) Combo() int { return t.combo }

// LastKill returns the simulation time of the latest kill
func (t *ScoreTracker) LastKill() time.Duration { return t.lastKill }

// TimeBonus returns the victory bonus for clearing the wave after elapsed
func (t *ScoreTracker) TimeBonus(elapsed time.Duration) int {
	sc := t.config.Scoring
	bonus := sc.MaxTimeBonus - sc.TimeBonusPenaltyPerSecond*elapsed.Seconds()
	return int(math.Max(0, math.Round(bonus)))
}
