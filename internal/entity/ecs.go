// internal/entity/ecs.go
package entity

import (
	"go-tile-defense/internal/component"
	"go-tile-defense/internal/types"
)

// ECS хранит сущности одного матча. Враги лежат в порядке спавна, в том же
// порядке их просматривают юниты.
type ECS struct {
	Frame       int
	NextID      types.EntityID
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile
	Effects     []*component.SplashFlash
	Player      *component.Player
	Phase       component.Phase
	Cursor      component.WaveCursor
}

func NewECS(baseHP, funds int) *ECS {
	return &ECS{
		NextID: 1,
		Player: &component.Player{
			BaseHP:    baseHP,
			MaxBaseHP: baseHP,
			Funds:     funds,
		},
		Phase: component.PreStart,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

func (ecs *ECS) AddEnemy(e *component.Enemy) {
	ecs.Enemies = append(ecs.Enemies, e)
}

// LiveEnemies считает врагов в коллекции, живых и нет.
func (ecs *ECS) LiveEnemies() int {
	return len(ecs.Enemies)
}

// RemoveEnemies убирает врагов, для которых drop вернул true, сохраняя порядок.
func (ecs *ECS) RemoveEnemies(drop func(*component.Enemy) bool) int {
	kept := ecs.Enemies[:0]
	removed := 0
	for _, e := range ecs.Enemies {
		if drop(e) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(ecs.Enemies); i++ {
		ecs.Enemies[i] = nil
	}
	ecs.Enemies = kept
	return removed
}

// RemoveInactiveProjectiles убирает отработавшие снаряды.
func (ecs *ECS) RemoveInactiveProjectiles() {
	kept := ecs.Projectiles[:0]
	for _, p := range ecs.Projectiles {
		if p.Active {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(ecs.Projectiles); i++ {
		ecs.Projectiles[i] = nil
	}
	ecs.Projectiles = kept
}

func (ecs *ECS) FindEnemy(id types.EntityID) *component.Enemy {
	for _, e := range ecs.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}
