// internal/app/game.go
package app

import (
	"github.com/charmbracelet/log"

	"go-tile-defense/internal/component"
	"go-tile-defense/internal/defs"
	"go-tile-defense/internal/entity"
	"go-tile-defense/internal/event"
	"go-tile-defense/internal/system"
	"go-tile-defense/pkg/gridmap"
)

// Game — один матч на одном этапе. Update продвигает его ровно на кадр.
type Game struct {
	Stage   *defs.StageDefinition
	Catalog *defs.Catalog
	Grid    *gridmap.Map

	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	StatusEffectSystem *system.StatusEffectSystem
	ProjectileSystem   *system.ProjectileSystem
	CombatSystem       *system.CombatSystem
	PlayerSystem       *system.PlayerSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem
	Stats              *Stats

	pending   *Command
	listeners []event.Listener
}

// NewGame создаёт новый матч в фазе PreStart.
func NewGame(stage *defs.StageDefinition, catalog *defs.Catalog) *Game {
	if stage == nil || stage.Map() == nil {
		panic("stage must be loaded")
	}
	g := &Game{Stage: stage, Catalog: catalog, Grid: stage.Map()}
	g.reset()
	return g
}

func (g *Game) reset() {
	ecs := entity.NewECS(g.Stage.BaseHP, g.Stage.InitialFunds)
	dispatcher := event.NewDispatcher()
	effects := system.NewStatusEffectSystem()

	g.ECS = ecs
	g.EventDispatcher = dispatcher
	g.StatusEffectSystem = effects
	g.WaveSystem = system.NewWaveSystem(ecs, g.Stage, dispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, effects)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, effects)
	g.CombatSystem = system.NewCombatSystem(ecs, g.Grid)
	g.PlayerSystem = system.NewPlayerSystem(ecs, dispatcher)
	g.StateSystem = system.NewStateSystem(ecs, dispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.Stats = NewStats(g.Stage.InitialFunds)
	g.pending = nil

	dispatcher.SubscribeAll(g.Stats)
	for _, l := range g.listeners {
		dispatcher.SubscribeAll(l)
	}
}

// Subscribe подписывает слушателя на все события матча. Подписка переживает Restart.
func (g *Game) Subscribe(l event.Listener) {
	g.listeners = append(g.listeners, l)
	g.EventDispatcher.SubscribeAll(l)
}

// Start выводит матч из PreStart и запускает симуляцию.
func (g *Game) Start() bool {
	return g.StateSystem.Start()
}

// Restart пересобирает матч из данных этапа. Ничего не переносится.
func (g *Game) Restart() {
	log.Info("match restarted", "stage", g.Stage.ID)
	g.reset()
}

func (g *Game) Phase() component.Phase { return g.ECS.Phase }
func (g *Game) Frame() int             { return g.ECS.Frame }

// Update продвигает матч на один кадр. После конца матча ничего не
// происходит, до Start применяются только отложенные команды.
func (g *Game) Update() {
	if g.ECS.Phase.Terminal() {
		return
	}
	g.applyPending()
	if g.ECS.Phase != component.Playing {
		return
	}
	g.step()
	g.ECS.Frame++
}

// порядок шага: расписание, враги, урон базе, проверка поражения, снаряды
// и юниты, награды, проверка победы.
func (g *Game) step() {
	g.WaveSystem.Update()

	reached, defeated := g.MovementSystem.Update()
	if len(reached) > 0 {
		leaked := make(map[*component.Enemy]bool, len(reached))
		for _, e := range reached {
			leaked[e] = true
			g.dispatchEnemy(event.EnemyReachedGoal, e)
		}
		g.ECS.RemoveEnemies(func(e *component.Enemy) bool { return leaked[e] })
	}
	if g.StateSystem.CheckDefeat() {
		return
	}

	defeated = append(defeated, g.ProjectileSystem.Update()...)
	g.CombatSystem.Update()

	for _, e := range defeated {
		g.dispatchEnemy(event.EnemyDefeated, e)
	}
	g.ECS.RemoveEnemies(func(e *component.Enemy) bool { return !e.Alive })
	g.VisualEffectSystem.Update()

	g.StateSystem.CheckVictory(g.WaveSystem.StageCleared())
}

func (g *Game) dispatchEnemy(t event.EventType, e *component.Enemy) {
	g.EventDispatcher.Dispatch(event.Event{
		Type:  t,
		Frame: g.ECS.Frame,
		Data:  event.EnemyData{ID: e.ID, Kind: e.Kind, Reward: e.Reward},
	})
}
