package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

func TestMissileSystem_Advance(t *testing.T) {
	cfg := config.Default()
	w := newTestWorld(cfg)
	up := spawnMissile(w, entity.KindPlayerMissile, 0, 0)
	down := spawnMissile(w, entity.KindEnemyMissile, 0, 0)
	s := NewMissileSystem(cfg, w)

	removed := s.Update(0.1)

	assert.Empty(t, removed)
	assert.InDelta(t, -42.0, up.Pos.Y, 1e-9)
	assert.InDelta(t, 42.0, down.Pos.Y, 1e-9)
}

func TestMissileSystem_VelocitySignNeverFlips(t *testing.T) {
	cfg := config.Default()
	w := newTestWorld(cfg)
	spawnMissile(w, entity.KindPlayerMissile, 0, 250)
	spawnMissile(w, entity.KindEnemyMissile, 0, -250)
	s := NewMissileSystem(cfg, w)

	for tick := 0; tick < 200; tick++ {
		for _, m := range w.AllMissiles() {
			if m.Kind == entity.KindPlayerMissile {
				require.Negative(t, m.VY())
			} else {
				require.Positive(t, m.VY())
			}
		}
		s.Update(1.0 / 60.0)
	}
	assert.Empty(t, w.AllMissiles(), "both left the stage")
}

func TestMissileSystem_OffscreenMargin(t *testing.T) {
	cfg := config.Default()
	cfg.Missile.Speed = 1
	w := newTestWorld(cfg)
	// Stage half height 300, missile height 20: cull beyond ±320.
	stays := spawnMissile(w, entity.KindPlayerMissile, 0, -319)
	goes := spawnMissile(w, entity.KindEnemyMissile, 0, 320)
	s := NewMissileSystem(cfg, w)

	removed := s.Update(1)

	require.Len(t, removed, 1)
	assert.Same(t, goes, removed[0])
	assert.False(t, w.Exists(goes.ID))
	assert.True(t, w.Exists(stays.ID))
	assert.Equal(t, -320.0, stays.Pos.Y)

	removed = s.Update(1)
	require.Len(t, removed, 1)
	assert.Same(t, stays, removed[0])
}
