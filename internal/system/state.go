// internal/system/state.go
package system

import (
	"github.com/charmbracelet/log"

	"go-tile-defense/internal/component"
	"go-tile-defense/internal/entity"
	"go-tile-defense/internal/event"
)

// StateSystem переключает фазы матча. Victory and Defeat are sticky.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.Phase
}

// Start выходит из PreStart. В других фазах ничего не делает.
func (s *StateSystem) Start() bool {
	if s.ecs.Phase != component.PreStart {
		return false
	}
	s.ecs.Phase = component.Playing
	s.eventDispatcher.Dispatch(event.Event{Type: event.MatchStarted, Frame: s.ecs.Frame})
	log.Info("match started")
	return true
}

// CheckDefeat переключает в Defeat, когда база разрушена.
func (s *StateSystem) CheckDefeat() bool {
	if s.ecs.Phase != component.Playing || s.ecs.Player.BaseHP > 0 {
		return false
	}
	s.ecs.Phase = component.Defeat
	s.eventDispatcher.Dispatch(event.Event{Type: event.BaseDestroyed, Frame: s.ecs.Frame})
	log.Info("base destroyed", "frame", s.ecs.Frame)
	return true
}

// CheckVictory переключает в Victory, когда расписание пройдено.
func (s *StateSystem) CheckVictory(stageCleared bool) bool {
	if s.ecs.Phase != component.Playing || !stageCleared {
		return false
	}
	s.ecs.Phase = component.Victory
	log.Info("victory", "frame", s.ecs.Frame, "base", s.ecs.Player.BaseHP)
	return true
}
