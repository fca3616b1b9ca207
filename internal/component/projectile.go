// internal/component/projectile.go
package component

import (
	"go-tile-defense/internal/types"
	"go-tile-defense/pkg/gridmap"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID     types.EntityID
	Origin gridmap.Cell
	Pos    Position
	// Target не принадлежит снаряду: перед каждым использованием проверять Target.Alive.
	Target       *Enemy
	Damage       int
	Speed        float64
	SplashRadius float64 // 0 — одиночная цель
	Buff         Buff    // optional, granted on hit
	FlyingBonus  bool
	Active       bool
	// Impact задан только на время прохода по площади.
	Impact *Position
}

func (p *Projectile) IsSplash() bool { return p.SplashRadius > 0 }
