// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-tile-defense/internal/config"
)

var _ State = (*PauseState)(nil)

// PauseState замораживает матч и рисует его под затемнением.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	resume := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		resume = resume || s.previous.pauseButton.IsClicked(x, y)
	}
	if resume {
		s.previous.pauseButton.TogglePause()
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	msg := "PAUSED"
	text.Draw(screen, msg, s.sm.Env.Font, (config.ScreenWidth-len(msg)*config.TextCharWidth)/2, config.ScreenHeight/2, config.TextLightColor)
	s.previous.pauseButton.Draw(screen)
}

func (s *PauseState) Exit() {}
