// internal/component/unit.go
package component

import (
	"go-tile-defense/internal/defs"
	"go-tile-defense/pkg/gridmap"
)

// Unit — поставленный юнит игрока. Cell уникальна среди юнитов.
type Unit struct {
	Cell     gridmap.Cell
	Def      *defs.UnitDefinition
	Level    int
	Cooldown int
}

func NewUnit(cell gridmap.Cell, def *defs.UnitDefinition) *Unit {
	return &Unit{Cell: cell, Def: def, Level: 1}
}

func (u *Unit) Attack() int      { return u.Def.AttackAt(u.Level) }
func (u *Unit) Range() float64   { return u.Def.RangeAt(u.Level) }
func (u *Unit) Center() Position { return PositionOf(u.Cell) }

// UpgradeCost — цена следующего уровня, 0 на максимальном.
func (u *Unit) UpgradeCost() int {
	return u.Def.GetUpgradeCost(u.Level)
}

func (u *Unit) AtMaxLevel() bool {
	return u.Level >= u.Def.MaxLevel
}

// LevelUp поднимает уровень на один, не выше максимума. Сообщает, изменился
// ли уровень.
func (u *Unit) LevelUp() bool {
	if u.AtMaxLevel() {
		return false
	}
	u.Level++
	return true
}
