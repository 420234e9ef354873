package event

const (
	MissileFired     EventType = "MissileFired"     // EntityData of the new missile
	MissileOffscreen EventType = "MissileOffscreen" // EntityData of the removed missile
	EnemyKilled      EventType = "EnemyKilled"      // KillData
	PlayerKilled     EventType = "PlayerKilled"     // EntityData of the player
	ExplosionSpawned EventType = "ExplosionSpawned" // EntityData of the explosion
	ExplosionRemoved EventType = "ExplosionRemoved" // EntityData of the explosion
	SessionStarted   EventType = "SessionStarted"   // session token (uint64)
	Victory          EventType = "Victory"          // OutcomeData
	GameOver         EventType = "GameOver"         // OutcomeData
)

// All lists every event type
var All = []EventType{
	MissileFired,
	MissileOffscreen,
	EnemyKilled,
	PlayerKilled,
	ExplosionSpawned,
	ExplosionRemoved,
	SessionStarted,
	Victory,
	GameOver,
}
