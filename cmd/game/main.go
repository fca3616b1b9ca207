// cmd/game/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/basicfont"

	"go-tile-defense/internal/config"
	"go-tile-defense/internal/defs"
	"go-tile-defense/internal/state"
	"go-tile-defense/internal/storage"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

var (
	flagStage    string
	flagCatalog  string
	flagDBPath   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:          "tile-defense",
	Short:        "Play tile defense stages in a window",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagStage, "stage", "", "Stage ID or YAML file to open directly (default: stage menu)")
	rootCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Unit catalog YAML (default: built-in)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.tile-defense/runs.db", "Path to run history database")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func run(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(level)

	catalog, err := defs.DefaultCatalog()
	if flagCatalog != "" {
		catalog, err = defs.LoadCatalog(flagCatalog)
	}
	if err != nil {
		return err
	}

	// история необязательна: без базы игра всё равно запускается
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open run history", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	sm := state.NewStateMachine(&state.Env{
		Catalog:  catalog,
		Settings: config.OpenSettings(),
		Store:    store,
		Font:     basicfont.Face7x13,
	})
	if flagStage != "" {
		stage, err := defs.ResolveStage(flagStage)
		if err != nil {
			return err
		}
		if err := defs.ValidateRoutes(stage); err != nil {
			log.Warn("stage has unreachable spawns", "err", err)
		}
		sm.SetState(state.NewGameState(sm, stage))
	} else {
		sm.SetState(state.NewMenuState(sm))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tile Defense")
	ebiten.SetTPS(config.FrameRate)
	return ebiten.RunGame(&AppGame{stateMachine: sm, lastUpdateTime: time.Now()})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
