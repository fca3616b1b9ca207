// internal/app/snapshot.go
package app

import (
	"go-tile-defense/internal/component"
	"go-tile-defense/internal/defs"
	"go-tile-defense/internal/types"
	"go-tile-defense/pkg/gridmap"
)

type EnemyView struct {
	ID       types.EntityID
	Kind     defs.EnemyKind
	X, Y     float64
	HPRatio  float64
	Alive    bool
	Airborne bool
	Slowed   bool
	ShowHP   bool
}

type ProjectileView struct {
	X, Y   float64
	Splash bool
}

type UnitView struct {
	Cell        gridmap.Cell
	UnitID      string
	Index       int // позиция в каталоге, для цвета
	Level       int
	MaxLevel    int
	Range       float64
	UpgradeCost int
}

type FlashView struct {
	X, Y     float64
	Radius   float64
	Progress float64
}

// Snapshot — копия всего, что нужно просмотрщику на один кадр.
type Snapshot struct {
	Frame       int
	Phase       component.Phase
	BaseHP      int
	MaxBaseHP   int
	Funds       int
	Wave        int
	WaveCount   int
	Enemies     []EnemyView
	Projectiles []ProjectileView
	Units       []UnitView
	Flashes     []FlashView
}

func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	wave, total := g.WaveSystem.CurrentWave()
	snap := Snapshot{
		Frame:     ecs.Frame,
		Phase:     ecs.Phase,
		BaseHP:    ecs.Player.BaseHP,
		MaxBaseHP: ecs.Player.MaxBaseHP,
		Funds:     ecs.Player.Funds,
		Wave:      wave,
		WaveCount: total,
	}
	for _, e := range ecs.Enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:       e.ID,
			Kind:     e.Kind,
			X:        e.Pos.X,
			Y:        e.Pos.Y,
			HPRatio:  e.HPRatio(),
			Alive:    e.Alive,
			Airborne: e.IsAirborne(),
			Slowed:   e.Buffs.Has(component.BuffSpeedDown),
			ShowHP:   e.HPBarTimer > 0,
		})
	}
	for _, p := range ecs.Projectiles {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{X: p.Pos.X, Y: p.Pos.Y, Splash: p.IsSplash()})
	}
	for _, u := range g.CombatSystem.Units() {
		snap.Units = append(snap.Units, UnitView{
			Cell:        u.Cell,
			UnitID:      u.Def.ID,
			Index:       g.catalogIndex(u.Def.ID),
			Level:       u.Level,
			MaxLevel:    u.Def.MaxLevel,
			Range:       u.Range(),
			UpgradeCost: u.UpgradeCost(),
		})
	}
	for _, f := range ecs.Effects {
		snap.Flashes = append(snap.Flashes, FlashView{X: f.Pos.X, Y: f.Pos.Y, Radius: f.Radius, Progress: f.Progress()})
	}
	return snap
}

func (g *Game) catalogIndex(id string) int {
	for i := range g.Catalog.Units {
		if g.Catalog.Units[i].ID == id {
			return i
		}
	}
	return 0
}
