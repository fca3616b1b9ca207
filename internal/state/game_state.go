// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-tile-defense/internal/app"
	"go-tile-defense/internal/component"
	"go-tile-defense/internal/config"
	"go-tile-defense/internal/defs"
	"go-tile-defense/internal/ui"
	"go-tile-defense/pkg/gridmap"
	"go-tile-defense/pkg/render"
)

// GameState — состояние матча
type GameState struct {
	sm           *StateMachine
	stage        *defs.StageDefinition
	game         *app.Game
	renderer     *render.GridRenderer
	renderSystem *RenderSystem

	infoPanel   *ui.InfoPanel
	speedButton *ui.SpeedButton
	pauseButton *ui.PauseButton
	indicator   *ui.StateIndicator
	health      *ui.PlayerHealthIndicator
	wave        *ui.WaveIndicator
	progress    *ui.StageProgressIndicator
	ranges      *ui.RangeIndicator

	snap     app.Snapshot
	hover    gridmap.Cell
	recorded bool
}

func NewGameState(sm *StateMachine, stage *defs.StageDefinition) *GameState {
	env := sm.Env
	layout := render.Layout{OriginX: config.MapOffsetX, OriginY: config.MapOffsetY, TileSize: config.TileSize}
	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		PathColor:       config.PathColor,
		PlaceableColor:  config.PlaceableColor,
		BlockedColor:    config.BlockedColor,
		GoalColor:       config.GoalColor,
		GridLineColor:   config.GridLineColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     config.StrokeWidth,
	}

	g := &GameState{
		sm:          sm,
		stage:       stage,
		game:        app.NewGame(stage, env.Catalog),
		renderer:    render.NewGridRenderer(stage.Map(), layout, config.ScreenWidth, config.ScreenHeight, env.Font, mapColors),
		infoPanel:   ui.NewInfoPanel(config.PanelX, config.PanelTop, config.PanelWidth, config.ScreenHeight, env.Catalog, env.Font),
		speedButton: ui.NewSpeedButton(config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors),
		pauseButton: ui.NewPauseButton(config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize, config.PauseButtonColor, config.PlayingColor),
		indicator:   ui.NewStateIndicator(config.IndicatorX, config.IndicatorY, config.IndicatorRadius),
		wave:        ui.NewWaveIndicator(config.MapOffsetX+200, 30, env.Font),
		progress:    ui.NewStageProgressIndicator(config.MapOffsetX+280, 10),
		ranges:      ui.NewRangeIndicator(config.RangeIndicatorX, config.IndicatorY, env.Font),
	}
	paletteBottom := config.PanelTop + len(env.Catalog.Units)*34 + 16
	g.health = ui.NewPlayerHealthIndicator(config.PanelX, float32(paletteBottom), env.Font)
	g.speedButton.SetState(env.Settings.SpeedIndex())
	g.attachRenderSystem()
	log.Info("stage opened", "id", stage.ID, "name", stage.Name)
	return g
}

// attachRenderSystem привязывает отрисовку к текущему миру матча. Restart
// заменяет мир, поэтому вызывается после каждого рестарта.
func (g *GameState) attachRenderSystem() {
	g.renderSystem = NewRenderSystem(g.game.ECS, g.game.CombatSystem, g.renderer.Layout())
	catalog := g.sm.Env.Catalog
	g.renderSystem.UnitColor = func(id string) color.RGBA {
		for i := range catalog.Units {
			if catalog.Units[i].ID == id {
				return config.UnitColors[i%len(config.UnitColors)]
			}
		}
		return config.UnitColors[0]
	}
	g.recorded = false
	g.snap = g.game.Snapshot()
}

// Enter вызывается и при выходе из паузы.
func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	settings := g.sm.Env.Settings

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.sm.SetState(NewMenuState(g.sm))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.game.Phase().Terminal() {
		g.game.Restart()
		g.attachRenderSystem()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.game.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.cancel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.cycleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		settings.ToggleRanges()
		g.saveSettings()
	}
	for i, k := range digitKeys {
		if i < len(g.infoPanel.Palette) && inpututil.IsKeyJustPressed(k) {
			g.infoPanel.Select(i)
		}
	}

	x, y := ebiten.CursorPosition()
	g.hover = g.renderer.Layout().CellAt(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.isClickOnUI(x, y) {
			g.handleUIClick(x, y)
		} else {
			g.handleMapClick(g.hover, ebiten.MouseButtonLeft)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.handleMapClick(g.hover, ebiten.MouseButtonRight)
	}

	for i := 0; i < settings.Settings().SpeedMultiplier; i++ {
		g.game.Update()
	}
	g.renderSystem.ShowRanges = settings.Settings().ShowRanges
	g.snap = g.game.Snapshot()
	g.infoPanel.Update(&g.snap)

	if g.game.Phase().Terminal() && !g.recorded {
		g.recordResult()
	}
}

func (g *GameState) pause() {
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) cancel() {
	g.game.Submit(app.Command{Kind: app.CommandCancel})
	g.infoPanel.Select(-1)
	g.infoPanel.Hide()
}

func (g *GameState) cycleSpeed() {
	g.sm.Env.Settings.CycleSpeed()
	g.speedButton.ToggleState()
	g.saveSettings()
}

func (g *GameState) saveSettings() {
	if err := g.sm.Env.Settings.Save(); err != nil {
		log.Warn("could not save settings", "err", err)
	}
}

func (g *GameState) isClickOnUI(x, y int) bool {
	return g.speedButton.IsClicked(x, y) ||
		g.pauseButton.IsClicked(x, y) ||
		g.indicator.IsClicked(x, y) ||
		g.infoPanel.Contains(x, y)
}

func (g *GameState) handleUIClick(x, y int) {
	switch {
	case g.speedButton.IsClicked(x, y):
		g.cycleSpeed()
	case g.pauseButton.IsClicked(x, y):
		g.pause()
	case g.indicator.IsClicked(x, y):
		g.indicator.HandleClick()
		g.game.Start()
	default:
		if g.infoPanel.HandleClick(x, y) == ui.PanelUpgrade {
			g.game.Submit(app.Command{Kind: app.CommandUpgrade, Cell: g.infoPanel.Target})
		}
	}
}

// handleMapClick: левый клик ставит выбранный юнит или открывает инфо о
// юните, правый улучшает юнит под курсором.
func (g *GameState) handleMapClick(cell gridmap.Cell, button ebiten.MouseButton) {
	if !g.stage.Map().InBounds(cell) {
		return
	}
	_, occupied := g.game.CombatSystem.Unit(cell)

	if button == ebiten.MouseButtonRight {
		if occupied {
			g.game.Submit(app.Command{Kind: app.CommandUpgrade, Cell: cell})
		}
		return
	}

	if occupied {
		g.infoPanel.SetTarget(cell)
		return
	}
	g.infoPanel.Hide()
	if id, ok := g.infoPanel.SelectedUnit(); ok {
		if !g.game.Submit(app.Command{Kind: app.CommandPlace, Cell: cell, UnitID: id}) {
			log.Debug("command dropped, one already pending")
		}
	}
}

func (g *GameState) recordResult() {
	g.recorded = true
	res := app.ResultOf(g.game)
	log.Info("match over", "stage", g.stage.ID, "outcome", res.Phase, "frames", res.Frames, "base", res.BaseHP)
	store := g.sm.Env.Store
	if store == nil {
		return
	}
	if _, err := store.SaveResult(res.Record(g.stage.ID)); err != nil {
		log.Warn("could not record result", "err", err)
	}
}

func (g *GameState) phaseColor() color.Color {
	switch g.snap.Phase {
	case component.PreStart:
		return config.PreStartColor
	case component.Playing:
		return config.PlayingColor
	case component.Victory:
		return config.VictoryColor
	default:
		return config.DefeatColor
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen)

	if g.stage.Map().IsPlaceable(g.hover) {
		if id, ok := g.infoPanel.SelectedUnit(); ok && g.game.CanPlace(g.hover, id) {
			g.renderer.DrawHover(screen, g.hover, config.HoverColor)
		}
	}
	g.renderSystem.Draw(screen)
	for _, u := range g.snap.Units {
		g.renderer.DrawLabel(screen, u.Cell, fmt.Sprint(u.Level), config.TextDarkColor)
	}
	if cmd, ok := g.game.Pending(); ok && cmd.Kind != app.CommandCancel {
		g.renderer.DrawHover(screen, cmd.Cell, config.ProjectileColor)
	}

	g.drawHUD(screen)

	switch g.snap.Phase {
	case component.PreStart:
		g.drawBanner(screen, "Place units, then press Space", config.PreStartColor)
	case component.Victory:
		g.drawBanner(screen, "VICTORY  R retry, Q menu", config.VictoryColor)
	case component.Defeat:
		g.drawBanner(screen, "DEFEAT  R retry, Q menu", config.DefeatColor)
	}
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	face := g.sm.Env.Font
	text.Draw(screen, fmt.Sprintf("$%d", g.snap.Funds), face, int(config.MapOffsetX), 30, config.TextLightColor)
	text.Draw(screen, g.stage.Name, face, int(config.MapOffsetX)+60, 30, config.TextLightColor)

	g.wave.Draw(screen, g.snap.Wave, g.snap.WaveCount)
	g.progress.Draw(screen, g.game.Stats.Spawned, g.stage.SpawnCount(), g.game.Stats.WavesCleared, g.snap.WaveCount)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.indicator.Draw(screen, g.phaseColor())
	g.ranges.Draw(screen, g.sm.Env.Settings.Settings().ShowRanges)

	mx, my := ebiten.CursorPosition()
	g.infoPanel.Draw(screen, &g.snap, mx, my)
	g.health.Draw(screen, g.snap.BaseHP, g.snap.MaxBaseHP)
}

func (g *GameState) drawBanner(screen *ebiten.Image, msg string, clr color.Color) {
	h := float32(40)
	y := float32(config.ScreenHeight)/2 - h/2
	vector.DrawFilledRect(screen, 0, y, config.PanelX, h, config.OverlayColor, false)
	tx := (config.PanelX - len(msg)*config.TextCharWidth) / 2
	text.Draw(screen, msg, g.sm.Env.Font, tx, int(y)+int(h)/2+config.TextOffsetY, clr)
}

func (g *GameState) Exit() {}
