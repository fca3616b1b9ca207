// internal/system/status_effect.go
package system

import (
	"github.com/charmbracelet/log"

	"go-tile-defense/internal/component"
)

// StatusEffectSystem управляет жизненным циклом баффов на врагах.
type StatusEffectSystem struct{}

func NewStatusEffectSystem() *StatusEffectSystem {
	return &StatusEffectSystem{}
}

// Tick продвигает все баффы e на кадр. Движение вызывает его ровно раз
// за кадр для каждого врага, в воздухе или нет.
func (s *StatusEffectSystem) Tick(e *component.Enemy) {
	e.Buffs.Update()
}

// Grant вешает b на живого врага с учётом запрета дублей.
func (s *StatusEffectSystem) Grant(e *component.Enemy, b component.Buff) bool {
	if b == nil || !e.Alive {
		return false
	}
	if !e.Buffs.Add(b) {
		return false
	}
	log.Debug("buff granted", "enemy", e.ID, "kind", b.Kind())
	return true
}
