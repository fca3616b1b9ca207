// internal/defs/units.go
package defs

import (
	"fmt"

	"go-tile-defense/internal/config"
)

// SlowDef describes the speed-down effect a unit applies on hit.
type SlowDef struct {
	Duration   int     `yaml:"duration"`   // frames
	Multiplier float64 `yaml:"multiplier"` // subtracted from the speed multiplier
}

// UnitDefinition holds all the static data for a placeable unit type.
// Attack and Range are indexed by level-1. UpgradeCost is indexed by the
// current level, so index 0 is unused.
type UnitDefinition struct {
	ID           string    `yaml:"id"`
	Name         string    `yaml:"name"`
	Description  string    `yaml:"description"`
	Cost         int       `yaml:"cost"`
	Attack       []int     `yaml:"attack"`
	Range        []float64 `yaml:"range"`
	UpgradeCost  []int     `yaml:"upgradeCost"`
	FireInterval int       `yaml:"fireInterval"`
	MaxLevel     int       `yaml:"maxLevel"`
	Splash       bool      `yaml:"splash"`
	FlyingBonus  bool      `yaml:"flyingBonus"`
	Slow         *SlowDef  `yaml:"slow,omitempty"`
}

// GrantsStatus reports whether every shot carries a fresh speed-down buff.
func (d *UnitDefinition) GrantsStatus() bool {
	return d.Slow != nil
}

func clampIndex(level, n int) int {
	idx := level - 1
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// AttackAt returns the attack value for a level, clamped to the table.
func (d *UnitDefinition) AttackAt(level int) int {
	if len(d.Attack) == 0 {
		return 0
	}
	return d.Attack[clampIndex(level, len(d.Attack))]
}

// RangeAt returns the range in tiles for a level, clamped to the table.
func (d *UnitDefinition) RangeAt(level int) float64 {
	if len(d.Range) == 0 {
		return 0
	}
	return d.Range[clampIndex(level, len(d.Range))]
}

// GetUpgradeCost returns the price of going from level to level+1, or 0 when
// the unit is already at max level.
func (d *UnitDefinition) GetUpgradeCost(level int) int {
	if level >= d.MaxLevel || len(d.UpgradeCost) == 0 {
		return 0
	}
	idx := level
	if idx > len(d.UpgradeCost)-1 {
		idx = len(d.UpgradeCost) - 1
	}
	return d.UpgradeCost[idx]
}

// Catalog is the ordered list of unit types offered to the player.
type Catalog struct {
	Units []UnitDefinition `yaml:"units"`
}

// Lookup finds a unit type by ID.
func (c *Catalog) Lookup(id string) (*UnitDefinition, bool) {
	for i := range c.Units {
		if c.Units[i].ID == id {
			return &c.Units[i], true
		}
	}
	return nil, false
}

func applyUnitDefaults(def *UnitDefinition) {
	if def.MaxLevel == 0 {
		def.MaxLevel = config.DefaultMaxLevel
	}
	if def.FireInterval == 0 {
		def.FireInterval = config.DefaultFireInterval
	}
	if def.Name == "" {
		def.Name = def.ID
	}
}

func validateUnit(def *UnitDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("unit id is required")
	}
	if def.Cost < 0 {
		return fmt.Errorf("unit %s: cost cannot be negative", def.ID)
	}
	if len(def.Attack) == 0 || len(def.Range) == 0 {
		return fmt.Errorf("unit %s: attack and range tables cannot be empty", def.ID)
	}
	if def.MaxLevel > 1 && len(def.UpgradeCost) == 0 {
		return fmt.Errorf("unit %s: upgradeCost table required when maxLevel > 1", def.ID)
	}
	if def.FireInterval < 0 {
		return fmt.Errorf("unit %s: fireInterval cannot be negative", def.ID)
	}
	if def.Slow != nil && def.Slow.Duration <= 0 {
		return fmt.Errorf("unit %s: slow duration must be positive", def.ID)
	}
	return nil
}
