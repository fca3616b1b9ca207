// internal/system/wave.go
package system

import (
	"github.com/charmbracelet/log"

	"go-tile-defense/internal/component"
	"go-tile-defense/internal/defs"
	"go-tile-defense/internal/entity"
	"go-tile-defense/internal/event"
	"go-tile-defense/pkg/gridmap"
)

// WaveSystem идёт по расписанию волн и спавнит врагов.
type WaveSystem struct {
	ecs             *entity.ECS
	grid            *gridmap.Map
	stage           *defs.StageDefinition
	eventDispatcher *event.Dispatcher
	started         bool
	cleared         bool
}

func NewWaveSystem(ecs *entity.ECS, stage *defs.StageDefinition, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		grid:            stage.Map(),
		stage:           stage,
		eventDispatcher: eventDispatcher,
	}
}

// Update продвигает расписание на кадр. Сначала считается задержка; когда
// она кончается, все спавны до следующей задержки идут в том же кадре.
// Волна заканчивается только после последней записи и без живых врагов.
func (s *WaveSystem) Update() {
	if s.StageCleared() {
		return
	}
	cur := &s.ecs.Cursor
	if !s.started {
		s.started = true
		s.dispatch(event.WaveStarted, event.WaveData{Wave: cur.Wave + 1, Total: len(s.stage.Waves)})
	}
	entries := s.stage.Waves[cur.Wave].Entries

	if cur.Entry < len(entries) && entries[cur.Entry].IsDelay() {
		cur.DelayCounter++
		if cur.DelayCounter < entries[cur.Entry].Delay {
			return
		}
		cur.DelayCounter = 0
		cur.Entry++
	}
	for cur.Entry < len(entries) && !entries[cur.Entry].IsDelay() {
		s.spawn(entries[cur.Entry].Spawn)
		cur.Entry++
	}

	if cur.Entry >= len(entries) && s.ecs.LiveEnemies() == 0 {
		s.completeWave()
	}
}

func (s *WaveSystem) completeWave() {
	cur := &s.ecs.Cursor
	s.dispatch(event.WaveCleared, event.WaveData{Wave: cur.Wave + 1, Total: len(s.stage.Waves)})
	log.Info("wave cleared", "wave", cur.Wave+1, "of", len(s.stage.Waves))
	cur.Wave++
	cur.Entry = 0
	cur.DelayCounter = 0
	if cur.Wave >= len(s.stage.Waves) {
		s.cleared = true
		s.dispatch(event.StageCleared, nil)
		log.Info("stage cleared", "stage", s.stage.ID)
		return
	}
	s.dispatch(event.WaveStarted, event.WaveData{Wave: cur.Wave + 1, Total: len(s.stage.Waves)})
}

// StageCleared остаётся true после завершения всех волн.
func (s *WaveSystem) StageCleared() bool {
	return s.cleared || s.ecs.Cursor.Wave >= len(s.stage.Waves)
}

// CurrentWave возвращает номер волны с единицы и их общее число.
func (s *WaveSystem) CurrentWave() (int, int) {
	total := len(s.stage.Waves)
	n := s.ecs.Cursor.Wave + 1
	if n > total {
		n = total
	}
	return n, total
}

func (s *WaveSystem) spawn(entry *defs.SpawnEntry) *component.Enemy {
	kind, known := defs.ParseEnemyKind(entry.Enemy)
	if !known {
		log.Warn("unknown enemy type, using basic", "name", entry.Enemy)
	}
	goal := s.grid.Goal()
	var path []gridmap.Cell
	if entry.Land != nil {
		path = s.grid.ShortestPath(*entry.Land, goal)
	} else {
		path = s.grid.ShortestPath(entry.At, goal)
	}
	if len(path) == 0 {
		log.Warn("spawn has no route to goal", "enemy", kind, "x", entry.At.X, "y", entry.At.Y)
	}

	e := component.NewEnemy(s.ecs.NewEntity(), kind, s.stage.Coefficient, entry.At, entry.Land, path)
	s.ecs.AddEnemy(e)
	s.dispatch(event.EnemySpawned, event.EnemyData{ID: e.ID, Kind: kind, Reward: e.Reward})
	log.Debug("enemy spawned", "id", e.ID, "kind", kind, "hp", e.HP)
	return e
}

func (s *WaveSystem) dispatch(t event.EventType, data any) {
	if s.eventDispatcher == nil {
		return
	}
	s.eventDispatcher.Dispatch(event.Event{Type: t, Frame: s.ecs.Frame, Data: data})
}
