// internal/component/buff.go
package component

type BuffKind int

const (
	BuffSpeedDown BuffKind = iota
)

func (k BuffKind) String() string {
	switch k {
	case BuffSpeedDown:
		return "speed_down"
	default:
		return "unknown"
	}
}

// Buff — временный эффект на враге.
type Buff interface {
	Kind() BuffKind
	// AllowDuplicate reports whether several buffs of this kind may stack.
	AllowDuplicate() bool
	// Tick продвигает бафф на кадр и сообщает, истёк ли он.
	Tick() bool
	Clone() Buff
}

// SpeedModifier is implemented by buffs that change movement speed.
type SpeedModifier interface {
	SpeedDelta() float64
}

// SpeedDown lowers the speed multiplier by Multiplier for Remaining frames.
type SpeedDown struct {
	Remaining  int
	Multiplier float64
}

func NewSpeedDown(duration int, multiplier float64) *SpeedDown {
	return &SpeedDown{Remaining: duration, Multiplier: multiplier}
}

func (b *SpeedDown) Kind() BuffKind       { return BuffSpeedDown }
func (b *SpeedDown) AllowDuplicate() bool { return false }
func (b *SpeedDown) SpeedDelta() float64  { return -b.Multiplier }

func (b *SpeedDown) Tick() bool {
	b.Remaining--
	return b.Remaining <= 0
}

func (b *SpeedDown) Clone() Buff {
	c := *b
	return &c
}

// BuffSet — активные баффы одного врага.
type BuffSet struct {
	buffs []Buff
}

// Add attaches b unless a buff of the same kind is present and the kind does
// not stack. It reports whether the buff was attached.
func (s *BuffSet) Add(b Buff) bool {
	if b == nil {
		return false
	}
	if !b.AllowDuplicate() && s.Has(b.Kind()) {
		return false
	}
	s.buffs = append(s.buffs, b)
	return true
}

// Update тикает каждый бафф один раз и убирает истёкшие.
func (s *BuffSet) Update() {
	kept := s.buffs[:0]
	for _, b := range s.buffs {
		if !b.Tick() {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(s.buffs); i++ {
		s.buffs[i] = nil
	}
	s.buffs = kept
}

// SpeedMultiplier равен 1.0 плюс поправки всех баффов скорости. Здесь
// не ограничивается.
func (s *BuffSet) SpeedMultiplier() float64 {
	m := 1.0
	for _, b := range s.buffs {
		if sm, ok := b.(SpeedModifier); ok {
			m += sm.SpeedDelta()
		}
	}
	return m
}

func (s *BuffSet) Has(kind BuffKind) bool {
	for _, b := range s.buffs {
		if b.Kind() == kind {
			return true
		}
	}
	return false
}

func (s *BuffSet) Len() int { return len(s.buffs) }
