package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Default returns the built-in tuning
func Default() *GameConfig {
	return &GameConfig{
		Stage: StageConfig{Width: 800, Height: 600, Margin: 40},
		Enemy: EnemyConfig{
			Rows:            4,
			Columns:         8,
			SpacingX:        60,
			SpacingY:        50,
			Size:            Size{40, 40},
			Speed:           60,
			FireCooldownMs:  250,
			FireProbability: 0.02,
			Points:          100,
		},
		Player: PlayerConfig{
			Size:            Size{20, 20},
			Speed:           180,
			BoostMultiplier: 2,
		},
		Missile: MissileConfig{
			Size:       Size{5, 20},
			Speed:      420,
			CooldownMs: 250,
		},
		Scoring: ScoringConfig{
			ComboWindowMs:             1000,
			ComboStep:                 0.5,
			MaxMultiplier:             4,
			MaxTimeBonus:              5000,
			TimeBonusPenaltyPerSecond: 50,
		},
		Timing: TimingConfig{
			VictoryDelayMs:  500,
			GameOverDelayMs: 1000,
			ExplosionFrames: 24,
			Framerate:       60,
		},
	}
}

// Validate checks that every option is usable
func (c *GameConfig) Validate() error {
	checks := []struct {
		field string
		ok    bool
	}{
		{"stage.width", c.Stage.Width > 0},
		{"stage.height", c.Stage.Height > 0},
		{"stage.margin", c.Stage.Margin >= 0 && 2*c.Stage.Margin < c.Stage.Width},
		{"enemy.rows", c.Enemy.Rows > 0},
		{"enemy.columns", c.Enemy.Columns > 0},
		{"enemy.spacingX", c.Enemy.SpacingX > 0},
		{"enemy.spacingY", c.Enemy.SpacingY > 0},
		{"enemy.size", validSize(c.Enemy.Size)},
		{"enemy.speed", c.Enemy.Speed >= 0},
		{"enemy.fireCooldownMs", c.Enemy.FireCooldownMs >= 0},
		{"enemy.fireProbability", c.Enemy.FireProbability >= 0 && c.Enemy.FireProbability <= 1},
		{"enemy.points", c.Enemy.Points >= 0},
		{"player.size", validSize(c.Player.Size)},
		{"player.speed", c.Player.Speed >= 0},
		{"player.boostMultiplier", c.Player.BoostMultiplier >= 1},
		{"missile.size", validSize(c.Missile.Size)},
		{"missile.speed", c.Missile.Speed > 0},
		{"missile.cooldownMs", c.Missile.CooldownMs >= 0},
		{"scoring.comboWindowMs", c.Scoring.ComboWindowMs >= 0},
		{"scoring.comboStep", c.Scoring.ComboStep >= 0},
		{"scoring.maxMultiplier", c.Scoring.MaxMultiplier >= 1},
		{"scoring.maxTimeBonus", c.Scoring.MaxTimeBonus >= 0},
		{"scoring.timeBonusPenaltyPerSecond", c.Scoring.TimeBonusPenaltyPerSecond >= 0},
		{"timing.victoryDelayMs", c.Timing.VictoryDelayMs >= 0},
		{"timing.gameOverDelayMs", c.Timing.GameOverDelayMs >= 0},
		{"timing.explosionFrames", c.Timing.ExplosionFrames > 0},
		{"timing.framerate", c.Timing.Framerate > 0},
	}

	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.field)
		}
	}
	return nil
}

func validSize(s Size) bool {
	return s.W() > 0 && s.H() > 0
}
