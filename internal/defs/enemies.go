// internal/defs/enemies.go
package defs

import "strings"

// EnemyKind is the closed set of enemy types a stage can spawn.
type EnemyKind int

const (
	BasicEnemy EnemyKind = iota
	FastEnemy
	TankEnemy
	FlyingEnemy
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Kind   EnemyKind
	Name   string
	Health int
	Speed  float64 // tiles per frame
	Reward int
	// FlyingType marks enemies that take bonus damage from anti-air shots.
	FlyingType bool
}

// EnemyLibrary is the per-kind constants table.
var EnemyLibrary = map[EnemyKind]EnemyDefinition{
	BasicEnemy:  {Kind: BasicEnemy, Name: "BasicEnemy", Health: 16, Speed: 0.04, Reward: 5},
	FastEnemy:   {Kind: FastEnemy, Name: "FastEnemy", Health: 10, Speed: 0.09, Reward: 4},
	TankEnemy:   {Kind: TankEnemy, Name: "TankEnemy", Health: 29, Speed: 0.025, Reward: 5},
	FlyingEnemy: {Kind: FlyingEnemy, Name: "FlyingEnemy", Health: 22, Speed: 0.05, Reward: 6, FlyingType: true},
}

// ParseEnemyKind resolves a stage-file enemy name. Unknown names fall back
// to BasicEnemy; ok reports whether the name was recognised.
func ParseEnemyKind(name string) (kind EnemyKind, ok bool) {
	for k, def := range EnemyLibrary {
		if strings.EqualFold(def.Name, name) {
			return k, true
		}
	}
	return BasicEnemy, false
}

func (k EnemyKind) Definition() EnemyDefinition {
	if def, ok := EnemyLibrary[k]; ok {
		return def
	}
	return EnemyLibrary[BasicEnemy]
}

func (k EnemyKind) String() string {
	return k.Definition().Name
}

// Scaled returns max HP and reward multiplied by the stage coefficient,
// truncated toward zero.
func (d EnemyDefinition) Scaled(coefficient float64) (health, reward int) {
	return int(float64(d.Health) * coefficient), int(float64(d.Reward) * coefficient)
}
