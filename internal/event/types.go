// internal/event/types.go
package event

import (
	"go-tile-defense/internal/defs"
	"go-tile-defense/internal/types"
	"go-tile-defense/pkg/gridmap"
)

const (
	MatchStarted     EventType = "MatchStarted"
	WaveStarted      EventType = "WaveStarted"
	WaveCleared      EventType = "WaveCleared"
	StageCleared     EventType = "StageCleared"
	EnemySpawned     EventType = "EnemySpawned"
	EnemyDefeated    EventType = "EnemyDefeated"    // враг убит, награда начислена
	EnemyReachedGoal EventType = "EnemyReachedGoal" // враг дошёл до базы
	UnitPlaced       EventType = "UnitPlaced"
	UnitUpgraded     EventType = "UnitUpgraded"
	BaseDestroyed    EventType = "BaseDestroyed"
)

type EnemyData struct {
	ID     types.EntityID
	Kind   defs.EnemyKind
	Reward int
}

type UnitData struct {
	Cell   gridmap.Cell
	UnitID string
	Level  int
	Cost   int
}

type WaveData struct {
	Wave  int // 1-based
	Total int
}
