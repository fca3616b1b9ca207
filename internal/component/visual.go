// internal/component/visual.go
package component

// SplashFlash — место взрыва снаряда по площади, только для отрисовки.
type SplashFlash struct {
	Pos      Position
	Radius   float64
	Timer    int // осталось кадров
	Duration int
}

// Progress goes from 0 to 1 over the flash lifetime.
func (f *SplashFlash) Progress() float64 {
	if f.Duration <= 0 {
		return 1
	}
	return 1 - float64(f.Timer)/float64(f.Duration)
}
