// internal/system/utils.go
package system

import (
	"go-tile-defense/internal/component"
	"go-tile-defense/internal/config"
)

// ApplyDamage наносит урон врагу с учётом бонуса против летающих и выдаёт
// бафф. Возвращает true, если именно это попадание убило врага.
func ApplyDamage(effects *StatusEffectSystem, e *component.Enemy, damage int, flyingBonus bool, buff component.Buff) bool {
	if !e.Alive {
		return false
	}
	if flyingBonus && e.FlyingType {
		damage *= config.FlyingDamageModifier
	}
	killed := e.Damage(damage)
	if !killed && buff != nil {
		effects.Grant(e, buff)
	}
	return killed
}
