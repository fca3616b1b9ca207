// internal/system/projectile.go
package system

import (
	"github.com/charmbracelet/log"

	"go-tile-defense/internal/component"
	"go-tile-defense/internal/entity"
)

const splashFlashFrames = 12

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs     *entity.ECS
	effects *StatusEffectSystem
}

func NewProjectileSystem(ecs *entity.ECS, effects *StatusEffectSystem) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, effects: effects}
}

// Update ведёт активные снаряды к целям и обрабатывает попадания.
// Возвращает убитых за кадр врагов, каждого ровно один раз. Отработавшие
// снаряды в конце убираются из мира.
func (s *ProjectileSystem) Update() []*component.Enemy {
	var defeated []*component.Enemy
	for _, p := range s.ecs.Projectiles {
		defeated = append(defeated, s.step(p)...)
	}
	s.ecs.RemoveInactiveProjectiles()
	return defeated
}

func (s *ProjectileSystem) step(p *component.Projectile) []*component.Enemy {
	if !p.Active || p.Target == nil || !p.Target.Alive {
		p.Active = false
		return nil
	}
	target := p.Target.Pos
	dx := target.X - p.Pos.X
	dy := target.Y - p.Pos.Y
	dist := p.Pos.DistanceTo(target)
	if dist < p.Speed || dist == 0 {
		p.Pos = target
		p.Active = false
		if p.IsSplash() {
			return s.splash(p, target)
		}
		if ApplyDamage(s.effects, p.Target, p.Damage, p.FlyingBonus, p.Buff) {
			return []*component.Enemy{p.Target}
		}
		return nil
	}
	p.Pos.X += dx / dist * p.Speed
	p.Pos.Y += dy / dist * p.Speed
	return nil
}

// splash бьёт всех живых врагов в радиусе от точки попадания. Impact
// хранится только на время прохода, второй раз снаряд не взрывается.
func (s *ProjectileSystem) splash(p *component.Projectile, at component.Position) []*component.Enemy {
	if p.Impact != nil {
		return nil
	}
	p.Impact = &at
	var defeated []*component.Enemy
	hits := 0
	for _, e := range s.ecs.Enemies {
		if !e.Alive || e.Pos.DistanceTo(*p.Impact) > p.SplashRadius {
			continue
		}
		hits++
		var buff component.Buff
		if p.Buff != nil {
			buff = p.Buff.Clone()
		}
		if ApplyDamage(s.effects, e, p.Damage, p.FlyingBonus, buff) {
			defeated = append(defeated, e)
		}
	}
	s.ecs.Effects = append(s.ecs.Effects, &component.SplashFlash{
		Pos:      at,
		Radius:   p.SplashRadius,
		Timer:    splashFlashFrames,
		Duration: splashFlashFrames,
	})
	log.Debug("splash", "projectile", p.ID, "hits", hits, "kills", len(defeated))
	p.Impact = nil
	return defeated
}
