// internal/component/wave.go
package component

// WaveCursor — единственное изменяемое состояние расписания.
type WaveCursor struct {
	Wave         int // индекс волны
	Entry        int // индекс записи в текущей волне
	DelayCounter int // кадров прошло в текущей задержке
}
