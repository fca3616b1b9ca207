// internal/state/menu_state.go
package state

import (
	"errors"
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-tile-defense/internal/config"
	"go-tile-defense/internal/defs"
	"go-tile-defense/internal/storage"
	"go-tile-defense/internal/ui"
)

const (
	menuButtonWidth  = 320
	menuButtonHeight = 36
	menuButtonGap    = 12
	menuTop          = 200
)

// MenuState — выбор этапа
type MenuState struct {
	sm       *StateMachine
	stageIDs []string
	buttons  []*ui.Button
	best     map[string]string
	err      string
}

func NewMenuState(sm *StateMachine) *MenuState {
	m := &MenuState{sm: sm, stageIDs: defs.BuiltinStageIDs(), best: map[string]string{}}
	x := (config.ScreenWidth - menuButtonWidth) / 2
	for i, id := range m.stageIDs {
		label := "Stage " + id
		if stage, err := defs.BuiltinStage(id); err == nil && stage.Name != "" {
			label = fmt.Sprintf("%d  %s", i+1, stage.Name)
		}
		top := menuTop + i*(menuButtonHeight+menuButtonGap)
		m.buttons = append(m.buttons, ui.NewButton(image.Rect(x, top, x+menuButtonWidth, top+menuButtonHeight), label, sm.Env.Font))
	}
	return m
}

// Enter обновляет лучшие результаты: матч мог только что закончиться.
func (m *MenuState) Enter() {
	if m.sm.Env.Store == nil {
		return
	}
	for _, id := range m.stageIDs {
		best, err := m.sm.Env.Store.BestResult(id)
		switch {
		case errors.Is(err, storage.ErrNoResults):
			delete(m.best, id)
		case err != nil:
			log.Warn("could not read best result", "stage", id, "err", err)
		default:
			m.best[id] = fmt.Sprintf("best: base %d, %.0fs", best.BaseHP, float64(best.Frames)/config.FrameRate)
		}
	}
}

func (m *MenuState) Update(deltaTime float64) {
	for i := range m.stageIDs {
		if i < len(digitKeys) && inpututil.IsKeyJustPressed(digitKeys[i]) {
			m.open(i)
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.openID(m.sm.Env.Settings.Settings().LastStage)
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i, b := range m.buttons {
			if b.IsClicked(x, y) {
				m.open(i)
				return
			}
		}
	}
}

func (m *MenuState) open(i int) {
	m.openID(m.stageIDs[i])
}

func (m *MenuState) openID(id string) {
	stage, err := defs.BuiltinStage(id)
	if err != nil {
		m.err = err.Error()
		return
	}
	m.sm.Env.Settings.SetLastStage(id)
	if err := m.sm.Env.Settings.Save(); err != nil {
		log.Warn("could not save settings", "err", err)
	}
	m.sm.SetState(NewGameState(m.sm, stage))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := m.sm.Env.Font
	title := "TILE DEFENSE"
	text.Draw(screen, title, face, (config.ScreenWidth-len(title)*config.TextCharWidth)/2, 140, config.TextLightColor)
	hint := "1-9 or click to pick a stage, Enter for the last one"
	text.Draw(screen, hint, face, (config.ScreenWidth-len(hint)*config.TextCharWidth)/2, 170, config.TextLightColor)

	mx, my := ebiten.CursorPosition()
	for i, b := range m.buttons {
		b.Draw(screen, mx, my)
		if best, ok := m.best[m.stageIDs[i]]; ok {
			text.Draw(screen, best, face, b.Rect.Max.X+12, b.Rect.Min.Y+menuButtonHeight/2+config.TextOffsetY, config.TextLightColor)
		}
	}
	if m.err != "" {
		text.Draw(screen, m.err, face, 16, config.ScreenHeight-24, config.DefeatColor)
	}
}

func (m *MenuState) Exit() {}

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}
