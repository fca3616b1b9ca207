package defs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-tile-defense/pkg/gridmap"
)

func TestBuiltinStages(t *testing.T) {
	ids := BuiltinStageIDs()
	if len(ids) < 2 {
		t.Fatalf("expected at least two built-in stages, got %v", ids)
	}
	for _, id := range ids {
		stage, err := BuiltinStage(id)
		if err != nil {
			t.Fatalf("BuiltinStage(%s): %v", id, err)
		}
		if stage.Map() == nil {
			t.Fatalf("stage %s has no map", id)
		}
		if err := ValidateRoutes(stage); err != nil {
			t.Errorf("stage %s routes: %v", id, err)
		}
	}
	if _, err := BuiltinStage("nope"); err == nil {
		t.Error("expected error for unknown stage")
	}
}

func TestStageOneMatchesSampleLayout(t *testing.T) {
	stage, err := BuiltinStage("1")
	if err != nil {
		t.Fatal(err)
	}
	m := stage.Map()
	if m.Width() != 21 || m.Height() != 21 {
		t.Fatalf("size = %dx%d", m.Width(), m.Height())
	}
	if m.Goal() != (gridmap.Cell{X: 9, Y: 20}) {
		t.Errorf("goal = %v", m.Goal())
	}
	if m.Tile(13, 6) != gridmap.Path {
		t.Errorf("landing tile (13,6) should be path")
	}
	// 5 basic + 5 fast + 5 tank + 5 flying, then 2 + 4 + 3
	if got := stage.SpawnCount(); got != 29 {
		t.Errorf("SpawnCount = %d, want 29", got)
	}
}

func TestParseStageExpandsCounts(t *testing.T) {
	stage, err := ParseStage([]byte(`
id: t
tiles: [".G"]
waves:
  - entries:
      - spawn: { enemy: FastEnemy, at: { x: 0, y: 0 }, count: 3, every: 10 }
`))
	if err != nil {
		t.Fatal(err)
	}
	entries := stage.Waves[0].Entries
	if len(entries) != 5 {
		t.Fatalf("expected spawn, delay, spawn, delay, spawn; got %d entries", len(entries))
	}
	for i, e := range entries {
		wantDelay := i%2 == 1
		if e.IsDelay() != wantDelay {
			t.Fatalf("entry %d delay=%v", i, e.IsDelay())
		}
		if wantDelay && e.Delay != 10 {
			t.Errorf("entry %d delay = %d", i, e.Delay)
		}
	}
	if stage.Coefficient != 1.0 || stage.BaseHP != 10 || stage.InitialFunds != 100 {
		t.Errorf("defaults not applied: %+v", stage)
	}
}

func TestParseStageErrors(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		errContains string
	}{
		{"missing id", `tiles: [".G"]` + "\nwaves: [{entries: []}]", "id is required"},
		{"bad tiles", "id: x\ntiles: [\".?\"]\nwaves: [{entries: []}]", "tiles"},
		{"no waves", "id: x\ntiles: [\".G\"]", "at least one wave"},
		{"zero delay", "id: x\ntiles: [\".G\"]\nwaves: [{entries: [{delay: -1}]}]", "delay must be positive"},
		{"bad yaml", "id: [", "parse"},
		{"spawn and delay", "id: x\ntiles: [\".G\"]\nwaves: [{entries: [{spawn: {enemy: BasicEnemy, at: {x: 0, y: 0}}, delay: 30}]}]", "not both"},
		{"spawn count and delay", "id: x\ntiles: [\".G\"]\nwaves: [{entries: [{spawn: {enemy: BasicEnemy, at: {x: 0, y: 0}, count: 3}, delay: 30}]}]", "not both"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStage([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q does not contain %q", err, tt.errContains)
			}
		})
	}
}

func TestValidateRoutesReportsUnreachableAndUnknown(t *testing.T) {
	stage, err := ParseStage([]byte(`
id: t
tiles: [".#.G"]
waves:
  - entries:
      - spawn: { enemy: Dragon, at: { x: 0, y: 0 } }
      - spawn: { enemy: FlyingEnemy, at: { x: -2, y: 0 }, land: { x: 2, y: 0 } }
`))
	if err != nil {
		t.Fatal(err)
	}
	err = ValidateRoutes(stage)
	if err == nil {
		t.Fatal("expected route error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "unknown enemy") || !strings.Contains(msg, "no route from (0,0)") {
		t.Errorf("unexpected error: %v", msg)
	}
	if strings.Contains(msg, "entry 2") {
		t.Errorf("landing route should be valid: %v", msg)
	}
}

func TestLoadStageFromFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "stage.yaml")
	content := "id: file\ntiles: [\"..G\"]\nwaves: [{entries: [{spawn: {enemy: TankEnemy, at: {x: 0, y: 0}}}]}]\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	stage, err := ResolveStage(p)
	if err != nil {
		t.Fatal(err)
	}
	if stage.ID != "file" || stage.Waves[0].Entries[0].Spawn.Kind() != TankEnemy {
		t.Errorf("unexpected stage %+v", stage)
	}
	if _, err := LoadStage(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseEnemyKind(t *testing.T) {
	tests := []struct {
		name string
		want EnemyKind
		ok   bool
	}{
		{"BasicEnemy", BasicEnemy, true},
		{"fastenemy", FastEnemy, true},
		{"TankEnemy", TankEnemy, true},
		{"FlyingEnemy", FlyingEnemy, true},
		{"Goblin", BasicEnemy, false},
		{"", BasicEnemy, false},
	}
	for _, tt := range tests {
		got, ok := ParseEnemyKind(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseEnemyKind(%q) = %v,%v want %v,%v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
	if !FlyingEnemy.Definition().FlyingType || BasicEnemy.Definition().FlyingType {
		t.Error("flying classification wrong")
	}
}

func TestEnemyScaled(t *testing.T) {
	hp, reward := EnemyLibrary[TankEnemy].Scaled(1.5)
	if hp != 43 || reward != 7 {
		t.Errorf("Scaled(1.5) = %d,%d want 43,7", hp, reward)
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatal(err)
	}
	mage, ok := catalog.Lookup("mage")
	if !ok || !mage.Splash || mage.Cost != 50 {
		t.Fatalf("mage = %+v", mage)
	}
	frost, _ := catalog.Lookup("frost")
	if frost == nil || !frost.GrantsStatus() || frost.FireInterval != 40 {
		t.Fatalf("frost = %+v", frost)
	}
	melee, _ := catalog.Lookup("melee")
	if melee.FireInterval != 30 || melee.MaxLevel != 5 {
		t.Errorf("defaults not applied to melee: %+v", melee)
	}
	if _, ok := catalog.Lookup("cannon"); ok {
		t.Error("unexpected unit")
	}
}

func TestUpgradeCostAtMaxLevel(t *testing.T) {
	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatal(err)
	}
	for _, def := range catalog.Units {
		if got := def.GetUpgradeCost(def.MaxLevel); got != 0 {
			t.Errorf("%s: cost at max = %d, want 0", def.ID, got)
		}
		last := def.UpgradeCost[len(def.UpgradeCost)-1]
		if got := def.GetUpgradeCost(def.MaxLevel - 1); got != last {
			t.Errorf("%s: cost at max-1 = %d, want %d", def.ID, got, last)
		}
	}
}

func TestLevelTablesClamp(t *testing.T) {
	def := UnitDefinition{Attack: []int{1, 2}, Range: []float64{1.5}, MaxLevel: 5, UpgradeCost: []int{0, 5}}
	if def.AttackAt(1) != 1 || def.AttackAt(2) != 2 || def.AttackAt(5) != 2 {
		t.Error("attack table not clamped")
	}
	if def.RangeAt(4) != 1.5 {
		t.Error("range table not clamped")
	}
	if def.GetUpgradeCost(3) != 5 {
		t.Errorf("upgrade cost should clamp to last entry, got %d", def.GetUpgradeCost(3))
	}
}

func TestCatalogRequiresUpgradeCosts(t *testing.T) {
	if _, err := ParseCatalog([]byte("units: [{id: a, attack: [1], range: [1], maxLevel: 3}]")); err == nil ||
		!strings.Contains(err.Error(), "upgradeCost") {
		t.Errorf("err = %v, want missing upgradeCost", err)
	}
	c, err := ParseCatalog([]byte("units: [{id: a, attack: [1], range: [1], maxLevel: 1}]"))
	if err != nil {
		t.Fatalf("single-level unit needs no upgrade table: %v", err)
	}
	if got := c.Units[0].GetUpgradeCost(1); got != 0 {
		t.Errorf("cost at max = %d, want 0", got)
	}
}

func TestParseCatalogErrors(t *testing.T) {
	tests := []string{
		"units: []",
		"units: [{id: a, cost: 1, attack: [], range: [1]}]",
		"units: [{id: a, attack: [1], range: [1]}, {id: a, attack: [1], range: [1]}]",
		"units: [{id: a, attack: [1], range: [1], upgradeCost: [0, 5], slow: {duration: 0, multiplier: 0.5}}]",
	}
	for _, in := range tests {
		if _, err := ParseCatalog([]byte(in)); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}
