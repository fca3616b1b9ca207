// internal/system/player_system.go
package system

import (
	"go-tile-defense/internal/entity"
	"go-tile-defense/internal/event"
)

// PlayerSystem ведёт экономику и здоровье базы по событиям матча.
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{ecs: ecs}
	dispatcher.Subscribe(event.EnemyDefeated, s)
	dispatcher.Subscribe(event.EnemyReachedGoal, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.EnemyData)
	if !ok {
		return
	}
	switch e.Type {
	case event.EnemyDefeated:
		s.ecs.Player.Funds += data.Reward
	case event.EnemyReachedGoal:
		s.ecs.Player.BaseHP--
	}
}
