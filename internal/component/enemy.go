// internal/component/enemy.go
package component

import (
	"go-tile-defense/internal/config"
	"go-tile-defense/internal/defs"
	"go-tile-defense/internal/types"
	"go-tile-defense/pkg/gridmap"
)

type FlightState int

const (
	Airborne FlightState = iota
	Landed
)

// Flight есть у врагов, которые сначала летят к точке посадки.
type Flight struct {
	State   FlightState
	Landing gridmap.Cell
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID     types.EntityID
	Kind   defs.EnemyKind
	Pos    Position
	Speed  float64 // клеток за кадр без баффов
	MaxHP  int
	HP     int
	Path   Path
	Alive  bool
	Reward int
	// FlyingType takes doubled damage from flying-bonus projectiles.
	FlyingType bool
	Flight     *Flight
	Buffs      BuffSet
	HPBarTimer int

	defeatReported bool
}

// NewEnemy создаёт врага в точке спавна. HP и награда умножаются на
// коэффициент этапа. С landing враг стартует в воздухе, а path ведёт от
// точки посадки к цели.
func NewEnemy(id types.EntityID, kind defs.EnemyKind, coefficient float64, spawn gridmap.Cell, landing *gridmap.Cell, path []gridmap.Cell) *Enemy {
	def := kind.Definition()
	hp, reward := def.Scaled(coefficient)
	e := &Enemy{
		ID:         id,
		Kind:       kind,
		Pos:        PositionOf(spawn),
		Speed:      def.Speed,
		MaxHP:      hp,
		HP:         hp,
		Path:       Path{Cells: path},
		Alive:      true,
		Reward:     reward,
		FlyingType: def.FlyingType,
	}
	if landing != nil {
		e.Flight = &Flight{State: Airborne, Landing: *landing}
	}
	return e
}

// Damage отнимает amount от HP и показывает полоску здоровья. true только
// у вызова, который убил врага.
func (e *Enemy) Damage(amount int) bool {
	if !e.Alive {
		return false
	}
	e.HP -= amount
	e.HPBarTimer = config.HPBarFrames
	if e.HP <= 0 {
		return e.Defeat()
	}
	return false
}

// Defeat снимает врага с поля. true только при первом вызове, чтобы награда
// начислялась один раз.
func (e *Enemy) Defeat() bool {
	e.Alive = false
	return e.markDefeated()
}

// markDefeated ставит флаг поражения и сообщает, был ли это первый раз.
func (e *Enemy) markDefeated() bool {
	if e.defeatReported {
		return false
	}
	e.defeatReported = true
	return true
}

// Defeated reports whether the enemy died from damage rather than leaking.
func (e *Enemy) Defeated() bool { return e.defeatReported }

// IsAirborne истинно, пока летающий враг не приземлился.
func (e *Enemy) IsAirborne() bool {
	return e.Flight != nil && e.Flight.State == Airborne
}

// IsGoalReached сообщает, прошёл ли враг последнюю точку пути.
// Враги в воздухе не считаются.
func (e *Enemy) IsGoalReached() bool {
	if e.IsAirborne() {
		return false
	}
	return e.Path.Done()
}

// EffectiveSpeed is the base speed scaled by buffs, floored at
// config.MinSpeedMultiplier of the base.
func (e *Enemy) EffectiveSpeed() float64 {
	m := e.Buffs.SpeedMultiplier()
	if m < config.MinSpeedMultiplier {
		m = config.MinSpeedMultiplier
	}
	return e.Speed * m
}

func (e *Enemy) HPRatio() float64 {
	if e.MaxHP <= 0 || e.HP <= 0 {
		return 0
	}
	return float64(e.HP) / float64(e.MaxHP)
}
