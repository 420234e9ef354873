package ecs

import (
	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// TemplatesFromConfig derives entity sizes and missile speed from cfg.
// Explosions take the size of the entity they replace.
func TemplatesFromConfig(cfg *config.GameConfig) Templates {
	player := sizeOf(cfg.Player.Size)
	enemy := sizeOf(cfg.Enemy.Size)
	missile := sizeOf(cfg.Missile.Size)

	return Templates{
		Sizes: map[entity.Kind]entity.Size{
			entity.KindPlayer:          player,
			entity.KindEnemy:           enemy,
			entity.KindPlayerMissile:   missile,
			entity.KindEnemyMissile:    missile,
			entity.KindPlayerExplosion: player,
			entity.KindEnemyExplosion:  enemy,
		},
		MissileSpeed: cfg.Missile.Speed,
	}
}

func sizeOf(s config.Size) entity.Size {
	return entity.Size{W: s.W(), H: s.H()}
}
