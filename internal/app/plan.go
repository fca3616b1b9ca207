// internal/app/plan.go
package app

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"go-tile-defense/internal/component"
	"go-tile-defense/internal/storage"
	"go-tile-defense/pkg/gridmap"
)

// PlanStep — одна команда сценария, подаётся, когда матч доходит до Frame.
type PlanStep struct {
	Frame  int    `yaml:"frame"`
	Action string `yaml:"action"` // place | upgrade
	Unit   string `yaml:"unit,omitempty"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
}

type Plan struct {
	Steps []PlanStep `yaml:"steps"`
}

func ParsePlan(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse plan YAML: %w", err)
	}
	for i, s := range p.Steps {
		if _, err := s.Command(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if s.Frame < 0 {
			return nil, fmt.Errorf("step %d: frame cannot be negative", i)
		}
	}
	sort.SliceStable(p.Steps, func(i, j int) bool { return p.Steps[i].Frame < p.Steps[j].Frame })
	return &p, nil
}

func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file %s: %w", path, err)
	}
	return ParsePlan(data)
}

func (s PlanStep) Command() (Command, error) {
	cell := gridmap.Cell{X: s.X, Y: s.Y}
	switch s.Action {
	case "place":
		if s.Unit == "" {
			return Command{}, fmt.Errorf("place needs a unit")
		}
		return Command{Kind: CommandPlace, Cell: cell, UnitID: s.Unit}, nil
	case "upgrade":
		return Command{Kind: CommandUpgrade, Cell: cell}, nil
	default:
		return Command{}, fmt.Errorf("unknown action %q", s.Action)
	}
}

// RunResult — итог матча без окна.
type RunResult struct {
	Phase  component.Phase
	Frames int
	BaseHP int
	Funds  int
	Stats  Stats
}

// Run starts g and steps it until it ends or maxFrames have passed. Plan
// steps sharing a frame are applied on consecutive frames, since only one
// command is accepted per frame.
func Run(g *Game, plan *Plan, maxFrames int) RunResult {
	var steps []PlanStep
	if plan != nil {
		steps = plan.Steps
	}
	// шаги кадра 0 применяются до первого спавна
	g.Start()
	next := 0
	for !g.Phase().Terminal() && (maxFrames <= 0 || g.Frame() < maxFrames) {
		if next < len(steps) && steps[next].Frame <= g.Frame() {
			cmd, _ := steps[next].Command()
			if g.Submit(cmd) {
				next++
			}
		}
		g.Update()
	}
	if next < len(steps) {
		log.Warn("plan steps left unapplied", "count", len(steps)-next)
	}
	return ResultOf(g)
}

// ResultOf подводит итог матча в текущем состоянии.
func ResultOf(g *Game) RunResult {
	return RunResult{
		Phase:  g.Phase(),
		Frames: g.Frame(),
		BaseHP: g.ECS.Player.BaseHP,
		Funds:  g.ECS.Player.Funds,
		Stats:  *g.Stats,
	}
}

// Record превращает законченный матч в строку истории.
func (r RunResult) Record(stageID string) storage.RunResult {
	outcome := "defeat"
	if r.Phase == component.Victory {
		outcome = "victory"
	}
	return storage.RunResult{
		StageID: stageID,
		Outcome: outcome,
		Frames:  r.Frames,
		BaseHP:  r.BaseHP,
		Funds:   r.Funds,
		Kills:   r.Stats.Kills,
		Leaks:   r.Stats.Leaks,
	}
}
