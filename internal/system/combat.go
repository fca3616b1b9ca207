// internal/system/combat.go
package system

import (
	"github.com/charmbracelet/log"

	"go-tile-defense/internal/component"
	"go-tile-defense/internal/config"
	"go-tile-defense/internal/defs"
	"go-tile-defense/internal/entity"
	"go-tile-defense/pkg/gridmap"
)

// CombatSystem владеет размещёнными юнитами и управляет их атакой.
type CombatSystem struct {
	ecs   *entity.ECS
	grid  *gridmap.Map
	units map[gridmap.Cell]*component.Unit
	order []gridmap.Cell // порядок установки, для обхода и снимков
}

func NewCombatSystem(ecs *entity.ECS, grid *gridmap.Map) *CombatSystem {
	return &CombatSystem{
		ecs:   ecs,
		grid:  grid,
		units: make(map[gridmap.Cell]*component.Unit),
	}
}

// CanPlace сообщает, свободна ли клетка под установку.
func (s *CombatSystem) CanPlace(cell gridmap.Cell) bool {
	if !s.grid.IsPlaceable(cell) {
		return false
	}
	_, occupied := s.units[cell]
	return !occupied
}

// Place ставит юнит def первого уровня на cell. Средства здесь не трогаются.
func (s *CombatSystem) Place(cell gridmap.Cell, def *defs.UnitDefinition) (*component.Unit, bool) {
	if def == nil || !s.CanPlace(cell) {
		return nil, false
	}
	u := component.NewUnit(cell, def)
	s.units[cell] = u
	s.order = append(s.order, cell)
	log.Debug("unit placed", "unit", def.ID, "x", cell.X, "y", cell.Y)
	return u, true
}

// Upgrade повышает уровень юнита на cell. Не срабатывает на пустой клетке
// и на максимальном уровне.
func (s *CombatSystem) Upgrade(cell gridmap.Cell) (*component.Unit, bool) {
	u, ok := s.units[cell]
	if !ok || !u.LevelUp() {
		return nil, false
	}
	log.Debug("unit upgraded", "unit", u.Def.ID, "level", u.Level)
	return u, true
}

func (s *CombatSystem) Unit(cell gridmap.Cell) (*component.Unit, bool) {
	u, ok := s.units[cell]
	return u, ok
}

// Units возвращает юниты в порядке установки.
func (s *CombatSystem) Units() []*component.Unit {
	out := make([]*component.Unit, 0, len(s.order))
	for _, c := range s.order {
		out = append(out, s.units[c])
	}
	return out
}

// Update выбирает цели для всех юнитов и выпускает снаряды.
func (s *CombatSystem) Update() {
	for _, c := range s.order {
		s.attack(s.units[c])
	}
}

func (s *CombatSystem) attack(u *component.Unit) {
	if u.Cooldown > 0 {
		u.Cooldown--
		return
	}
	target := s.findTarget(u.Center(), u.Range())
	if target == nil {
		return
	}
	p := &component.Projectile{
		ID:          s.ecs.NewEntity(),
		Origin:      u.Cell,
		Pos:         u.Center(),
		Target:      target,
		Damage:      u.Attack(),
		Speed:       config.ProjectileSpeed,
		FlyingBonus: u.Def.FlyingBonus,
		Active:      true,
	}
	if u.Def.Splash {
		p.SplashRadius = config.SplashRadius
	}
	if u.Def.GrantsStatus() {
		p.Buff = component.NewSpeedDown(u.Def.Slow.Duration, u.Def.Slow.Multiplier)
	}
	s.ecs.Projectiles = append(s.ecs.Projectiles, p)
	u.Cooldown = u.Def.FireInterval
}

// findTarget возвращает первого живого врага в порядке коллекции в радиусе
// rng от from. Ближе он или дальше, не важно.
func (s *CombatSystem) findTarget(from component.Position, rng float64) *component.Enemy {
	for _, e := range s.ecs.Enemies {
		if !e.Alive {
			continue
		}
		if from.DistanceTo(e.Pos) <= rng {
			return e
		}
	}
	return nil
}
