// internal/defs/stages.go
package defs

import (
	"errors"
	"fmt"

	"go-tile-defense/internal/config"
	"go-tile-defense/pkg/gridmap"
)

// SpawnEntry places one enemy (or Count enemies Every frames apart) at At.
// Land makes the enemy fly in a straight line to Land before joining the path.
type SpawnEntry struct {
	Enemy string        `yaml:"enemy"`
	At    gridmap.Cell  `yaml:"at"`
	Land  *gridmap.Cell `yaml:"land,omitempty"`
	Count int           `yaml:"count,omitempty"`
	Every int           `yaml:"every,omitempty"`
}

// Kind resolves the enemy name, falling back to BasicEnemy.
func (s *SpawnEntry) Kind() EnemyKind {
	kind, _ := ParseEnemyKind(s.Enemy)
	return kind
}

// WaveEntry is either a spawn command or a delay in frames.
type WaveEntry struct {
	Spawn *SpawnEntry `yaml:"spawn,omitempty"`
	Delay int         `yaml:"delay,omitempty"`
}

func (e WaveEntry) IsDelay() bool { return e.Spawn == nil }

type WaveDefinition struct {
	Entries []WaveEntry `yaml:"entries"`
}

// StageDefinition is one playable stage: map, economy and wave schedule.
type StageDefinition struct {
	ID           string           `yaml:"id"`
	Name         string           `yaml:"name"`
	Coefficient  float64          `yaml:"coefficient"`
	BaseHP       int              `yaml:"baseHP"`
	InitialFunds int              `yaml:"initialFunds"`
	Tiles        []string         `yaml:"tiles"`
	Waves        []WaveDefinition `yaml:"waves"`

	grid *gridmap.Map
}

// Map returns the parsed tile grid. It is nil until the stage is loaded.
func (s *StageDefinition) Map() *gridmap.Map { return s.grid }

// SpawnCount returns the number of enemies the whole stage will spawn.
func (s *StageDefinition) SpawnCount() int {
	n := 0
	for _, w := range s.Waves {
		for _, e := range w.Entries {
			if !e.IsDelay() {
				n++
			}
		}
	}
	return n
}

// expandEntries rewrites spawn entries with Count > 1 into explicit
// spawn/delay sequences so the scheduler only sees single spawns.
func expandEntries(entries []WaveEntry) []WaveEntry {
	out := make([]WaveEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsDelay() || e.Spawn.Count <= 1 {
			if e.Spawn != nil {
				e.Spawn.Count = 0
			}
			out = append(out, e)
			continue
		}
		for i := 0; i < e.Spawn.Count; i++ {
			if i > 0 && e.Spawn.Every > 0 {
				out = append(out, WaveEntry{Delay: e.Spawn.Every})
			}
			single := *e.Spawn
			single.Count = 0
			single.Every = 0
			out = append(out, WaveEntry{Spawn: &single})
		}
	}
	return out
}

func applyStageDefaults(s *StageDefinition) {
	if s.Coefficient == 0 {
		s.Coefficient = config.DefaultCoefficient
	}
	if s.BaseHP == 0 {
		s.BaseHP = config.DefaultBaseHP
	}
	if s.InitialFunds == 0 {
		s.InitialFunds = config.DefaultInitialFunds
	}
	if s.Name == "" {
		s.Name = s.ID
	}
}

// expandWaves runs after validation, so an entry that mixes spawn and delay
// is rejected before expansion could hide the delay.
func (s *StageDefinition) expandWaves() {
	for i := range s.Waves {
		s.Waves[i].Entries = expandEntries(s.Waves[i].Entries)
	}
}

func validateStage(s *StageDefinition) error {
	if s.ID == "" {
		return fmt.Errorf("stage id is required")
	}
	if s.Coefficient < 0 {
		return fmt.Errorf("coefficient cannot be negative")
	}
	if s.BaseHP < 0 || s.InitialFunds < 0 {
		return fmt.Errorf("baseHP and initialFunds cannot be negative")
	}
	grid, err := gridmap.Parse(s.Tiles)
	if err != nil {
		return fmt.Errorf("tiles: %w", err)
	}
	s.grid = grid
	if len(s.Waves) == 0 {
		return fmt.Errorf("stage must have at least one wave")
	}
	for wi, w := range s.Waves {
		for ei, e := range w.Entries {
			if e.Spawn != nil && e.Delay != 0 {
				return fmt.Errorf("wave %d entry %d: set either spawn or delay, not both", wi+1, ei+1)
			}
			if e.IsDelay() && e.Delay <= 0 {
				return fmt.Errorf("wave %d entry %d: delay must be positive", wi+1, ei+1)
			}
		}
	}
	return nil
}

// ValidateRoutes checks that every spawn can reach the goal: ground spawns
// from their spawn tile, flying spawns from their landing tile. It returns
// all problems joined.
func ValidateRoutes(s *StageDefinition) error {
	grid := s.Map()
	if grid == nil {
		return fmt.Errorf("stage %s is not loaded", s.ID)
	}
	var errs []error
	for wi, w := range s.Waves {
		for ei, e := range w.Entries {
			if e.IsDelay() {
				continue
			}
			if _, ok := ParseEnemyKind(e.Spawn.Enemy); !ok {
				errs = append(errs, fmt.Errorf("wave %d entry %d: unknown enemy %q, BasicEnemy will be used", wi+1, ei+1, e.Spawn.Enemy))
			}
			from := e.Spawn.At
			if e.Spawn.Land != nil {
				from = *e.Spawn.Land
			}
			if len(grid.ShortestPath(from, grid.Goal())) == 0 {
				errs = append(errs, fmt.Errorf("wave %d entry %d: no route from (%d,%d) to goal", wi+1, ei+1, from.X, from.Y))
			}
		}
	}
	return errors.Join(errs...)
}
