// internal/component/game_state.go
package component

// Phase — состояние матча
type Phase int

const (
	PreStart Phase = iota
	Playing
	Victory
	Defeat
)

func (p Phase) String() string {
	switch p {
	case PreStart:
		return "prestart"
	case Playing:
		return "playing"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Terminal — матч окончен
func (p Phase) Terminal() bool {
	return p == Victory || p == Defeat
}
