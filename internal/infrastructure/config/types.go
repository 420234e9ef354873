package config

import "time"

// GameConfig is the root config for game.json
type GameConfig struct {
	Stage   StageConfig   `json:"stage"`
	Enemy   EnemyConfig   `json:"enemy"`
	Player  PlayerConfig  `json:"player"`
	Missile MissileConfig `json:"missile"`
	Scoring ScoringConfig `json:"scoring"`
	Timing  TimingConfig  `json:"timing"`
}

// Size is a [width, height] pair in pixels
type Size [2]float64

// W returns the width
func (s Size) W() float64 { return s[0] }

// H returns the height
func (s Size) H() float64 { return s[1] }

type StageConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin float64 `json:"margin"`
}

type EnemyConfig struct {
	Rows            int     `json:"rows"`
	Columns         int     `json:"columns"`
	SpacingX        float64 `json:"spacingX"`
	SpacingY        float64 `json:"spacingY"`
	Size            Size    `json:"size"`
	Speed           float64 `json:"speed"` // px/s
	FireCooldownMs  int     `json:"fireCooldownMs"`
	FireProbability float64 `json:"fireProbability"` // per frame at the reference framerate
	Points          int     `json:"points"`
}

type PlayerConfig struct {
	Size            Size    `json:"size"`
	Speed           float64 `json:"speed"` // px/s
	BoostMultiplier float64 `json:"boostMultiplier"`
	SpawnY          float64 `json:"spawnY"` // 0 means stage height / 3
}

type MissileConfig struct {
	Size       Size    `json:"size"`
	Speed      float64 `json:"speed"` // px/s
	CooldownMs int     `json:"cooldownMs"`
}

type ScoringConfig struct {
	ComboWindowMs             int     `json:"comboWindowMs"`
	ComboStep                 float64 `json:"comboStep"`
	MaxMultiplier             float64 `json:"maxMultiplier"`
	MaxTimeBonus              float64 `json:"maxTimeBonus"`
	TimeBonusPenaltyPerSecond float64 `json:"timeBonusPenaltyPerSecond"`
}

type TimingConfig struct {
	VictoryDelayMs  int `json:"victoryDelayMs"`
	GameOverDelayMs int `json:"gameOverDelayMs"`
	ExplosionFrames int `json:"explosionFrames"`
	Framerate       int `json:"framerate"`
}

// Millis converts a millisecond option to a duration
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// HalfSpan returns the largest |x| an entity may reach horizontally
func (s StageConfig) HalfSpan() float64 {
	return (s.Width - 2*s.Margin) / 2
}

// PlayerSpawnY returns the configured spawn row or the stage default
func (c *GameConfig) PlayerSpawnY() float64 {
	if c.Player.SpawnY != 0 {
		return c.Player.SpawnY
	}
	return c.Stage.Height / 3
}
