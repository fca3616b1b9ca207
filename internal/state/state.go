// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-tile-defense/internal/config"
	"go-tile-defense/internal/defs"
	"go-tile-defense/internal/storage"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Env — общее для всех экранов. Store может быть nil, если базу истории
// не удалось открыть.
type Env struct {
	Catalog  *defs.Catalog
	Settings *config.SettingsManager
	Store    *storage.Store
	Font     font.Face
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	Env     *Env
}

func NewStateMachine(env *Env) *StateMachine {
	return &StateMachine{Env: env}
}

// SetState вызывает Exit у текущего состояния и Enter у нового
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current возвращает активное состояние или nil.
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
