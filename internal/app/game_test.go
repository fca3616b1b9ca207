package app

import (
	"testing"

	"go-tile-defense/internal/component"
	"go-tile-defense/internal/defs"
	"go-tile-defense/internal/event"
	"go-tile-defense/pkg/gridmap"
)

func newGame(t *testing.T, yaml string) *Game {
	t.Helper()
	stage, err := defs.ParseStage([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseStage: %v", err)
	}
	catalog, err := defs.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	return NewGame(stage, catalog)
}

const singleEnemyStage = `
id: single
tiles:
  - "#####"
  - "....G"
waves:
  - entries:
      - spawn: { enemy: BasicEnemy, at: { x: 0, y: 1 } }
`

func runUntilOver(g *Game, limit int) {
	for i := 0; i < limit && !g.Phase().Terminal(); i++ {
		g.Update()
	}
}

func TestArcherDefendsAndRewardIsCreditedOnce(t *testing.T) {
	g := newGame(t, singleEnemyStage)
	if !g.PlaceUnit(gridmap.Cell{X: 2, Y: 0}, "archer") {
		t.Fatal("placement failed")
	}
	if g.ECS.Player.Funds != 80 {
		t.Fatalf("funds after placement = %d", g.ECS.Player.Funds)
	}
	g.Start()
	runUntilOver(g, 500)

	if g.Phase() != component.Victory {
		t.Fatalf("phase = %v, want victory", g.Phase())
	}
	if g.ECS.Player.Funds != 85 || g.ECS.Player.BaseHP != 10 {
		t.Errorf("funds=%d base=%d", g.ECS.Player.Funds, g.ECS.Player.BaseHP)
	}
	if g.Stats.Kills != 1 || g.Stats.Leaks != 0 || g.Stats.FundsEarned != 5 || g.Stats.FundsSpent != 20 {
		t.Errorf("stats = %+v", g.Stats)
	}

	frame := g.Frame()
	for i := 0; i < 100; i++ {
		g.Update()
	}
	if g.Phase() != component.Victory || g.Frame() != frame || g.ECS.Player.Funds != 85 {
		t.Error("victory must be sticky")
	}
}

func TestLeaksCostBaseHPAndDefeatIsSticky(t *testing.T) {
	g := newGame(t, `
id: leak
baseHP: 2
tiles: ["..G"]
waves:
  - entries:
      - spawn: { enemy: FastEnemy, at: { x: 0, y: 0 }, count: 3, every: 10 }
`)
	g.Start()
	runUntilOver(g, 1000)

	if g.Phase() != component.Defeat {
		t.Fatalf("phase = %v, want defeat", g.Phase())
	}
	if g.ECS.Player.BaseHP != 0 || g.Stats.Leaks != 2 {
		t.Errorf("base=%d leaks=%d", g.ECS.Player.BaseHP, g.Stats.Leaks)
	}
	frame := g.Frame()
	enemies := len(g.ECS.Enemies)
	for i := 0; i < 200; i++ {
		g.Update()
	}
	if g.Stats.Leaks != 2 || g.ECS.Player.BaseHP != 0 || g.Frame() != frame || len(g.ECS.Enemies) != enemies {
		t.Error("simulation continued after defeat")
	}
	if g.PlaceUnit(gridmap.Cell{X: 0, Y: 0}, "melee") || g.Submit(Command{Kind: CommandCancel}) {
		t.Error("commands must be refused after the match ends")
	}
}

func TestNothingMovesBeforeStart(t *testing.T) {
	g := newGame(t, singleEnemyStage)
	for i := 0; i < 10; i++ {
		g.Update()
	}
	if g.Phase() != component.PreStart || g.Frame() != 0 || len(g.ECS.Enemies) != 0 {
		t.Errorf("phase=%v frame=%d enemies=%d", g.Phase(), g.Frame(), len(g.ECS.Enemies))
	}
	if !g.Start() || g.Start() {
		t.Error("Start should succeed exactly once")
	}
	g.Update()
	if len(g.ECS.Enemies) != 1 {
		t.Errorf("enemies after first frame = %d", len(g.ECS.Enemies))
	}
}

func TestCommandQueue(t *testing.T) {
	g := newGame(t, singleEnemyStage)
	a := Command{Kind: CommandPlace, Cell: gridmap.Cell{X: 1, Y: 0}, UnitID: "melee"}
	b := Command{Kind: CommandPlace, Cell: gridmap.Cell{X: 3, Y: 0}, UnitID: "melee"}

	if !g.Submit(a) || g.Submit(b) {
		t.Fatal("only one command per frame may be queued")
	}
	g.Submit(Command{Kind: CommandCancel})
	if _, ok := g.Pending(); ok {
		t.Fatal("cancel should drop the queued command")
	}
	if !g.Submit(b) {
		t.Fatal("queue should be free after cancel")
	}
	g.Update()
	if _, ok := g.CombatSystem.Unit(b.Cell); !ok {
		t.Fatal("queued placement was not applied")
	}
	if _, ok := g.CombatSystem.Unit(a.Cell); ok {
		t.Fatal("cancelled placement was applied")
	}
	if g.ECS.Player.Funds != 90 {
		t.Errorf("funds = %d, want 90", g.ECS.Player.Funds)
	}

	g.Submit(Command{Kind: CommandUpgrade, Cell: b.Cell})
	g.Update()
	if u, _ := g.CombatSystem.Unit(b.Cell); u.Level != 2 || g.ECS.Player.Funds != 80 {
		t.Errorf("upgrade: level=%d funds=%d", u.Level, g.ECS.Player.Funds)
	}
}

func TestPlacementAndUpgradeRefusals(t *testing.T) {
	g := newGame(t, singleEnemyStage)
	cell := gridmap.Cell{X: 0, Y: 0}
	tests := []struct {
		name string
		ok   bool
	}{
		{"unknown unit", g.PlaceUnit(cell, "cannon")},
		{"path tile", g.PlaceUnit(gridmap.Cell{X: 0, Y: 1}, "melee")},
		{"upgrade empty", g.UpgradeUnit(cell)},
	}
	for _, tt := range tests {
		if tt.ok {
			t.Errorf("%s: expected refusal", tt.name)
		}
	}
	if g.ECS.Player.Funds != 100 {
		t.Fatalf("refusals changed funds: %d", g.ECS.Player.Funds)
	}

	g.PlaceUnit(cell, "mage")
	g.PlaceUnit(gridmap.Cell{X: 1, Y: 0}, "mage")
	if g.ECS.Player.Funds != 0 {
		t.Fatalf("funds = %d", g.ECS.Player.Funds)
	}
	if g.PlaceUnit(gridmap.Cell{X: 2, Y: 0}, "melee") {
		t.Error("unaffordable placement accepted")
	}
	if g.UpgradeUnit(cell) {
		t.Error("unaffordable upgrade accepted")
	}

	g.ECS.Player.Funds = 1000
	upgrades := 0
	for g.UpgradeUnit(cell) {
		upgrades++
	}
	u, _ := g.CombatSystem.Unit(cell)
	if u.Level != u.Def.MaxLevel || upgrades != 4 {
		t.Errorf("level = %d, want max", u.Level)
	}
	// 30 + 40 + 50 + 70
	if g.ECS.Player.Funds != 1000-190 {
		t.Errorf("funds after upgrades = %d", g.ECS.Player.Funds)
	}
}

func TestRestartRebuildsEverything(t *testing.T) {
	g := newGame(t, singleEnemyStage)
	var seen []event.EventType
	g.Subscribe(event.ListenerFunc(func(e event.Event) { seen = append(seen, e.Type) }))

	g.PlaceUnit(gridmap.Cell{X: 2, Y: 0}, "archer")
	g.Start()
	for i := 0; i < 20; i++ {
		g.Update()
	}
	g.Restart()

	if g.Phase() != component.PreStart || g.Frame() != 0 || g.ECS.Player.Funds != 100 {
		t.Errorf("after restart: phase=%v frame=%d funds=%d", g.Phase(), g.Frame(), g.ECS.Player.Funds)
	}
	if len(g.CombatSystem.Units()) != 0 || len(g.ECS.Enemies) != 0 || len(g.ECS.Projectiles) != 0 {
		t.Error("state carried over across restart")
	}
	seen = nil
	g.Start()
	g.Update()
	if len(seen) == 0 {
		t.Error("listener lost on restart")
	}
}

func TestSnapshot(t *testing.T) {
	g := newGame(t, singleEnemyStage)
	g.PlaceUnit(gridmap.Cell{X: 2, Y: 0}, "archer")
	g.Start()
	g.Update()
	snap := g.Snapshot()
	if snap.Phase != component.Playing || snap.Frame != 1 || snap.Funds != 80 {
		t.Errorf("snapshot header = %+v", snap)
	}
	if snap.BaseHP != 10 || snap.MaxBaseHP != 10 || snap.Wave != 1 || snap.WaveCount != 1 {
		t.Errorf("snapshot hp/wave = %+v", snap)
	}
	if len(snap.Enemies) != 1 || snap.Enemies[0].HPRatio != 1 || !snap.Enemies[0].Alive {
		t.Errorf("enemies = %+v", snap.Enemies)
	}
	if len(snap.Projectiles) != 1 || len(snap.Units) != 1 {
		t.Errorf("projectiles=%d units=%d", len(snap.Projectiles), len(snap.Units))
	}
	if u := snap.Units[0]; u.UnitID != "archer" || u.Index != 1 || u.Level != 1 || u.UpgradeCost != 15 {
		t.Errorf("unit view = %+v", u)
	}
}

func TestBuiltinStageRunsToCompletion(t *testing.T) {
	stage, err := defs.BuiltinStage("1")
	if err != nil {
		t.Fatal(err)
	}
	catalog, _ := defs.DefaultCatalog()
	g := NewGame(stage, catalog)
	g.Start()
	runUntilOver(g, 20000)
	if !g.Phase().Terminal() {
		t.Fatalf("stage did not finish, phase %v at frame %d", g.Phase(), g.Frame())
	}
	// undefended: every leak costs one HP and the base falls
	if g.Phase() != component.Defeat || g.Stats.Leaks < 10 || g.ECS.Player.BaseHP > 0 {
		t.Errorf("phase=%v leaks=%d base=%d", g.Phase(), g.Stats.Leaks, g.ECS.Player.BaseHP)
	}
}
