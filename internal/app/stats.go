// internal/app/stats.go
package app

import "go-tile-defense/internal/event"

// Stats считает итоги матча по его событиям.
type Stats struct {
	Kills        int
	Leaks        int
	Spawned      int
	FundsStart   int
	FundsEarned  int
	FundsSpent   int
	UnitsPlaced  int
	Upgrades     int
	WavesCleared int
	LastFrame    int
}

func NewStats(initialFunds int) *Stats {
	return &Stats{FundsStart: initialFunds}
}

func (s *Stats) OnEvent(e event.Event) {
	s.LastFrame = e.Frame
	switch e.Type {
	case event.EnemySpawned:
		s.Spawned++
	case event.EnemyDefeated:
		s.Kills++
		if d, ok := e.Data.(event.EnemyData); ok {
			s.FundsEarned += d.Reward
		}
	case event.EnemyReachedGoal:
		s.Leaks++
	case event.UnitPlaced:
		s.UnitsPlaced++
		if d, ok := e.Data.(event.UnitData); ok {
			s.FundsSpent += d.Cost
		}
	case event.UnitUpgraded:
		s.Upgrades++
		if d, ok := e.Data.(event.UnitData); ok {
			s.FundsSpent += d.Cost
		}
	case event.WaveCleared:
		s.WavesCleared++
	}
}
