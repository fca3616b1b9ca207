package system

import (
	"testing"

	"go-tile-defense/internal/component"
	"go-tile-defense/internal/defs"
	"go-tile-defense/internal/entity"
	"go-tile-defense/pkg/gridmap"
)

func mustGrid(t *testing.T, rows ...string) *gridmap.Map {
	t.Helper()
	m, err := gridmap.Parse(rows)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return m
}

func mustStage(t *testing.T, yaml string) *defs.StageDefinition {
	t.Helper()
	stage, err := defs.ParseStage([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseStage: %v", err)
	}
	return stage
}

// enemyAt adds a basic enemy with the given HP at a fixed position.
func enemyAt(ecs *entity.ECS, x, y float64, hp int) *component.Enemy {
	e := component.NewEnemy(ecs.NewEntity(), defs.BasicEnemy, 1.0, gridmap.Cell{}, nil, nil)
	e.Pos = component.Position{X: x, Y: y}
	e.MaxHP, e.HP = hp, hp
	ecs.AddEnemy(e)
	return e
}
