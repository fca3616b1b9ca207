// internal/state/render_system.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-tile-defense/internal/component"
	"go-tile-defense/internal/config"
	"go-tile-defense/internal/entity"
	"go-tile-defense/internal/system"
	"go-tile-defense/internal/utils"
	"go-tile-defense/pkg/render"
)

// RenderSystem рисует динамические сущности поверх карты. Живёт в слое
// просмотрщика, чтобы симуляция собиралась без ebiten.
type RenderSystem struct {
	ecs        *entity.ECS
	combat     *system.CombatSystem
	layout     render.Layout
	ShowRanges bool
	// UnitColor даёт цвет заливки по ID типа юнита.
	UnitColor func(id string) color.RGBA
}

func NewRenderSystem(ecs *entity.ECS, combat *system.CombatSystem, layout render.Layout) *RenderSystem {
	return &RenderSystem{
		ecs:        ecs,
		combat:     combat,
		layout:     layout,
		ShowRanges: true,
		UnitColor:  func(string) color.RGBA { return config.UnitColors[0] },
	}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	tile := float32(s.layout.TileSize)

	for _, u := range s.combat.Units() {
		x, y := s.layout.CellRect(u.Cell)
		clr := s.UnitColor(u.Def.ID)
		vector.DrawFilledRect(screen, float32(x)+config.UnitInset, float32(y)+config.UnitInset,
			tile-2*config.UnitInset, tile-2*config.UnitInset, clr, true)
		// одна полоска на каждый уровень
		for lvl := 0; lvl < u.Level; lvl++ {
			vector.DrawFilledRect(screen, float32(x)+config.UnitInset+float32(lvl)*4, float32(y)+tile-config.UnitInset-3,
				3, 2, config.TextLightColor, false)
		}
		if s.ShowRanges {
			cx, cy := s.layout.Center(float64(u.Cell.X), float64(u.Cell.Y))
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(u.Range()*s.layout.TileSize), 1, config.RangeColor, true)
		}
	}

	for _, f := range s.ecs.Effects {
		cx, cy := s.layout.Center(f.Pos.X, f.Pos.Y)
		alpha := uint8(utils.Lerp(160, 0, utils.Clamp(f.Progress(), 0, 1)))
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(f.Radius*s.layout.TileSize), config.StrokeWidth,
			render.WithAlpha(config.ProjectileColor, alpha), true)
	}

	for _, e := range s.ecs.Enemies {
		if !e.Alive {
			continue
		}
		s.drawEnemy(screen, e)
	}

	for _, p := range s.ecs.Projectiles {
		if !p.Active {
			continue
		}
		cx, cy := s.layout.Center(p.Pos.X, p.Pos.Y)
		r := float32(config.ProjRadius)
		if p.IsSplash() {
			r *= 1.5
		}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), r, config.ProjectileColor, true)
	}
}

func (s *RenderSystem) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	cx, cy := s.layout.Center(e.Pos.X, e.Pos.Y)
	var clr color.RGBA = config.EnemyColor
	if e.IsAirborne() {
		clr = config.FlyingEnemyColor
	}
	radius := float32(config.EnemyRadius)
	if e.Buffs.Has(component.BuffSpeedDown) {
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius+2, config.SlowedColor, true)
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius, clr, true)

	if e.HPBarTimer <= 0 {
		return
	}
	bx := float32(cx) - config.HPBarWidth/2
	by := float32(cy) - radius - config.HPBarHeight - 2
	vector.DrawFilledRect(screen, bx, by, config.HPBarWidth, config.HPBarHeight, config.HPBarBackColor, false)
	vector.DrawFilledRect(screen, bx, by, float32(config.HPBarWidth*e.HPRatio()), config.HPBarHeight, config.HPBarColor, false)
}
