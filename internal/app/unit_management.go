// internal/app/unit_management.go
package app

import (
	"github.com/charmbracelet/log"

	"go-tile-defense/internal/event"
	"go-tile-defense/pkg/gridmap"
)

type CommandKind int

const (
	CommandPlace CommandKind = iota
	CommandUpgrade
	CommandCancel
)

func (k CommandKind) String() string {
	switch k {
	case CommandPlace:
		return "place"
	case CommandUpgrade:
		return "upgrade"
	case CommandCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Command — действие игрока, применяется в начале следующего кадра.
type Command struct {
	Kind   CommandKind
	Cell   gridmap.Cell
	UnitID string // только для place
}

// Submit ставит cmd в очередь до следующего Update. За кадр принимается
// одна команда; Cancel сбрасывает отложенную.
func (g *Game) Submit(cmd Command) bool {
	if g.ECS.Phase.Terminal() {
		return false
	}
	if cmd.Kind == CommandCancel {
		g.pending = nil
		return true
	}
	if g.pending != nil {
		return false
	}
	g.pending = &cmd
	return true
}

// Pending возвращает отложенную команду, если она есть.
func (g *Game) Pending() (Command, bool) {
	if g.pending == nil {
		return Command{}, false
	}
	return *g.pending, true
}

func (g *Game) applyPending() {
	if g.pending == nil {
		return
	}
	cmd := *g.pending
	g.pending = nil
	var ok bool
	switch cmd.Kind {
	case CommandPlace:
		ok = g.PlaceUnit(cmd.Cell, cmd.UnitID)
	case CommandUpgrade:
		ok = g.UpgradeUnit(cmd.Cell)
	}
	if !ok {
		log.Debug("command refused", "cmd", cmd.Kind, "x", cmd.Cell.X, "y", cmd.Cell.Y, "unit", cmd.UnitID)
	}
}

// CanPlace сообщает, можно ли сейчас поставить юнит unitID на cell.
func (g *Game) CanPlace(cell gridmap.Cell, unitID string) bool {
	def, ok := g.Catalog.Lookup(unitID)
	if !ok {
		return false
	}
	return g.CombatSystem.CanPlace(cell) && g.ECS.Player.Funds >= def.Cost
}

// PlaceUnit ставит юнит и списывает его стоимость. При неизвестном типе,
// плохой клетке или нехватке средств ничего не меняет.
func (g *Game) PlaceUnit(cell gridmap.Cell, unitID string) bool {
	if g.ECS.Phase.Terminal() || !g.CanPlace(cell, unitID) {
		return false
	}
	def, _ := g.Catalog.Lookup(unitID)
	if _, ok := g.CombatSystem.Place(cell, def); !ok {
		return false
	}
	g.ECS.Player.Spend(def.Cost)
	g.EventDispatcher.Dispatch(event.Event{
		Type:  event.UnitPlaced,
		Frame: g.ECS.Frame,
		Data:  event.UnitData{Cell: cell, UnitID: def.ID, Level: 1, Cost: def.Cost},
	})
	return true
}

// UpgradeUnit повышает уровень юнита на cell, если он не максимальный и
// игроку хватает средств.
func (g *Game) UpgradeUnit(cell gridmap.Cell) bool {
	if g.ECS.Phase.Terminal() {
		return false
	}
	u, ok := g.CombatSystem.Unit(cell)
	if !ok || u.AtMaxLevel() {
		return false
	}
	cost := u.UpgradeCost()
	if g.ECS.Player.Funds < cost {
		return false
	}
	if _, ok := g.CombatSystem.Upgrade(cell); !ok {
		return false
	}
	g.ECS.Player.Spend(cost)
	g.EventDispatcher.Dispatch(event.Event{
		Type:  event.UnitUpgraded,
		Frame: g.ECS.Frame,
		Data:  event.UnitData{Cell: cell, UnitID: u.Def.ID, Level: u.Level, Cost: cost},
	})
	return true
}
