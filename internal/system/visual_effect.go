// internal/system/visual_effect.go
package system

import "go-tile-defense/internal/entity"

// VisualEffectSystem управляет визуальными эффектами попаданий.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update старит вспышки на кадр и убирает догоревшие.
func (s *VisualEffectSystem) Update() {
	kept := s.ecs.Effects[:0]
	for _, f := range s.ecs.Effects {
		f.Timer--
		if f.Timer > 0 {
			kept = append(kept, f)
		}
	}
	for i := len(kept); i < len(s.ecs.Effects); i++ {
		s.ecs.Effects[i] = nil
	}
	s.ecs.Effects = kept
}
