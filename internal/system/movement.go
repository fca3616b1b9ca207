// internal/system/movement.go
package system

import (
	"math"

	"go-tile-defense/internal/component"
	"go-tile-defense/internal/entity"
)

// StepResult — что кадр движения сделал с врагом.
type StepResult int

const (
	StepMoving StepResult = iota
	StepGoalReached
	StepDefeated
	StepSkipped // уже мёртв
)

// MovementSystem обновляет позиции врагов
type MovementSystem struct {
	ecs     *entity.ECS
	effects *StatusEffectSystem
}

func NewMovementSystem(ecs *entity.ECS, effects *StatusEffectSystem) *MovementSystem {
	return &MovementSystem{ecs: ecs, effects: effects}
}

// Update двигает каждого врага один раз в порядке коллекции и возвращает
// дошедших до цели и убитых за этот кадр.
func (s *MovementSystem) Update() (reached, defeated []*component.Enemy) {
	for _, e := range s.ecs.Enemies {
		switch s.Step(e) {
		case StepGoalReached:
			reached = append(reached, e)
		case StepDefeated:
			defeated = append(defeated, e)
		}
	}
	return reached, defeated
}

// Step — покадровый автомат одного врага.
func (s *MovementSystem) Step(e *component.Enemy) StepResult {
	if !e.Alive {
		return StepSkipped
	}
	if e.HP <= 0 {
		if e.Defeat() {
			return StepDefeated
		}
		return StepSkipped
	}
	if e.HPBarTimer > 0 {
		e.HPBarTimer--
	}
	s.effects.Tick(e)
	speed := e.EffectiveSpeed()

	if e.IsAirborne() {
		target := component.PositionOf(e.Flight.Landing)
		if moveToward(&e.Pos, target, speed) {
			e.Flight.State = component.Landed
			e.Path.CurrentIndex = 0
		}
		return StepMoving
	}

	if cell, ok := e.Path.Current(); ok {
		if moveToward(&e.Pos, component.PositionOf(cell), speed) {
			e.Path.CurrentIndex++
		}
	}
	if e.IsGoalReached() {
		e.Alive = false
		return StepGoalReached
	}
	return StepMoving
}

// moveToward сдвигает pos на step к target и прилипает к цели, когда
// остаток меньше шага. Сообщает, произошло ли прилипание.
func moveToward(pos *component.Position, target component.Position, step float64) bool {
	dx := target.X - pos.X
	dy := target.Y - pos.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < step || dist == 0 {
		*pos = target
		return true
	}
	pos.X += dx / dist * step
	pos.Y += dy / dist * step
	return false
}
