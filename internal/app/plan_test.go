package app

import (
	"strings"
	"testing"

	"go-tile-defense/internal/component"
)

func TestParsePlan(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"valid", "steps:\n  - {frame: 10, action: upgrade, x: 1, y: 1}\n  - {frame: 0, action: place, unit: archer, x: 1, y: 1}\n", ""},
		{"unknown action", "steps:\n  - {frame: 0, action: sell, x: 1, y: 1}\n", "unknown action"},
		{"place without unit", "steps:\n  - {frame: 0, action: place, x: 1, y: 1}\n", "needs a unit"},
		{"negative frame", "steps:\n  - {frame: -1, action: upgrade, x: 1, y: 1}\n", "negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePlan([]byte(tt.yaml))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePlan: %v", err)
			}
			if p.Steps[0].Action != "place" {
				t.Error("steps must be sorted by frame")
			}
		})
	}
}

func TestRunWithPlan(t *testing.T) {
	plan, err := ParsePlan([]byte(`
steps:
  - { frame: 0, action: place, unit: archer, x: 2, y: 0 }
  - { frame: 0, action: upgrade, x: 2, y: 0 }
`))
	if err != nil {
		t.Fatalf("ParsePlan: %v", err)
	}
	g := newGame(t, singleEnemyStage)
	res := Run(g, plan, 2000)

	if res.Phase != component.Victory {
		t.Fatalf("phase = %v, want victory", res.Phase)
	}
	// 100 - 20 (archer) - 15 (level 2) + 5 reward
	if res.Funds != 70 {
		t.Errorf("funds = %d, want 70", res.Funds)
	}
	if res.Stats.UnitsPlaced != 1 || res.Stats.Upgrades != 1 {
		t.Errorf("stats = %+v", res.Stats)
	}
}

func TestRunStopsAtMaxFrames(t *testing.T) {
	g := newGame(t, singleEnemyStage)
	res := Run(g, nil, 5)
	if res.Frames != 5 || res.Phase != component.Playing {
		t.Errorf("frames=%d phase=%v", res.Frames, res.Phase)
	}
}

func TestRecordOutcome(t *testing.T) {
	win := RunResult{Phase: component.Victory, Frames: 300, BaseHP: 9, Stats: Stats{Kills: 4, Leaks: 1}}
	row := win.Record("1")
	if row.Outcome != "victory" || row.StageID != "1" || row.Kills != 4 || row.Leaks != 1 || row.BaseHP != 9 {
		t.Errorf("row = %+v", row)
	}
	if (RunResult{Phase: component.Defeat}).Record("1").Outcome != "defeat" {
		t.Error("defeat outcome")
	}
}
