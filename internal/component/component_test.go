package component

import (
	"math"
	"testing"

	"go-tile-defense/internal/defs"
	"go-tile-defense/pkg/gridmap"
)

func TestBuffSetSuppressesDuplicateKinds(t *testing.T) {
	var set BuffSet
	if !set.Add(NewSpeedDown(10, 0.5)) {
		t.Fatal("first buff should be added")
	}
	if set.Add(NewSpeedDown(100, 0.9)) {
		t.Fatal("second speed-down should be suppressed")
	}
	if set.Len() != 1 {
		t.Fatalf("Len = %d, want 1", set.Len())
	}
	if got := set.SpeedMultiplier(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("SpeedMultiplier = %v, want 0.5", got)
	}
	if set.Add(nil) {
		t.Error("nil buff should not be added")
	}
}

type stackingBuff struct {
	SpeedDown
}

func (b *stackingBuff) AllowDuplicate() bool { return true }
func (b *stackingBuff) Clone() Buff {
	c := *b
	return &c
}

func TestBuffSetStacksWhenAllowed(t *testing.T) {
	var set BuffSet
	set.Add(&stackingBuff{SpeedDown{Remaining: 5, Multiplier: 0.7}})
	set.Add(&stackingBuff{SpeedDown{Remaining: 5, Multiplier: 0.7}})
	if set.Len() != 2 {
		t.Fatalf("Len = %d, want 2", set.Len())
	}
	// the multiplier itself is not clamped
	if got := set.SpeedMultiplier(); math.Abs(got-(-0.4)) > 1e-9 {
		t.Errorf("SpeedMultiplier = %v, want -0.4", got)
	}
}

func TestBuffExpiresWhenCounterReachesZero(t *testing.T) {
	var set BuffSet
	set.Add(NewSpeedDown(3, 0.5))
	for frame := 1; frame <= 2; frame++ {
		set.Update()
		if !set.Has(BuffSpeedDown) {
			t.Fatalf("buff expired early at frame %d", frame)
		}
	}
	set.Update()
	if set.Has(BuffSpeedDown) || set.Len() != 0 {
		t.Fatal("buff should expire on the third update")
	}
	if set.SpeedMultiplier() != 1.0 {
		t.Errorf("multiplier after expiry = %v", set.SpeedMultiplier())
	}
}

func TestSpeedDownCloneIsIndependent(t *testing.T) {
	orig := NewSpeedDown(5, 0.3)
	clone := orig.Clone()
	clone.Tick()
	if orig.Remaining != 5 {
		t.Errorf("original ticked through clone: %d", orig.Remaining)
	}
}

func newTestEnemy(hp int) *Enemy {
	e := NewEnemy(1, defs.BasicEnemy, 1.0, gridmap.Cell{}, nil, []gridmap.Cell{{X: 1, Y: 0}})
	e.MaxHP, e.HP = hp, hp
	return e
}

func TestEnemyDamageReportsDefeatOnce(t *testing.T) {
	e := newTestEnemy(15)
	if e.Damage(10) {
		t.Fatal("first hit should not kill")
	}
	if e.HP != 5 || !e.Alive || e.HPBarTimer != 60 {
		t.Fatalf("after first hit: hp=%d alive=%v bar=%d", e.HP, e.Alive, e.HPBarTimer)
	}
	if !e.Damage(10) {
		t.Fatal("second hit should report defeat")
	}
	if e.HP != -5 || e.Alive {
		t.Fatalf("after second hit: hp=%d alive=%v", e.HP, e.Alive)
	}
	if e.Damage(10) {
		t.Fatal("damage after death must not report defeat again")
	}
	if e.HP != -5 {
		t.Errorf("HP changed after death: %d", e.HP)
	}
	if !e.Defeated() {
		t.Error("Defeated() should be true")
	}
}

func TestEnemyScalesWithCoefficient(t *testing.T) {
	e := NewEnemy(7, defs.FlyingEnemy, 2.0, gridmap.Cell{X: -2, Y: 5}, &gridmap.Cell{X: 13, Y: 6}, nil)
	if e.MaxHP != 44 || e.HP != 44 || e.Reward != 12 {
		t.Errorf("scaled stats: hp=%d reward=%d", e.MaxHP, e.Reward)
	}
	if !e.FlyingType || !e.IsAirborne() {
		t.Error("flying enemy should start airborne")
	}
	// empty path, but airborne enemies never count as arrived
	if e.IsGoalReached() {
		t.Error("airborne enemy reported goal reached")
	}
	e.Flight.State = Landed
	if !e.IsGoalReached() {
		t.Error("landed enemy with empty path should be at goal")
	}
}

func TestEffectiveSpeedFloor(t *testing.T) {
	e := newTestEnemy(10)
	e.Buffs.Add(&stackingBuff{SpeedDown{Remaining: 5, Multiplier: 0.8}})
	e.Buffs.Add(&stackingBuff{SpeedDown{Remaining: 5, Multiplier: 0.8}})
	want := e.Speed * 0.1
	if got := e.EffectiveSpeed(); math.Abs(got-want) > 1e-12 {
		t.Errorf("EffectiveSpeed = %v, want %v", got, want)
	}
}

func TestHPRatio(t *testing.T) {
	e := newTestEnemy(20)
	e.Damage(5)
	if e.HPRatio() != 0.75 {
		t.Errorf("HPRatio = %v", e.HPRatio())
	}
	e.Damage(50)
	if e.HPRatio() != 0 {
		t.Errorf("HPRatio after death = %v", e.HPRatio())
	}
}

func TestUnitLevelUpCaps(t *testing.T) {
	def := &defs.UnitDefinition{ID: "u", Attack: []int{1, 2, 3}, Range: []float64{1, 2, 3}, MaxLevel: 3, UpgradeCost: []int{0, 5, 9}}
	u := NewUnit(gridmap.Cell{X: 1, Y: 1}, def)
	if u.Level != 1 || u.Attack() != 1 || u.UpgradeCost() != 5 {
		t.Fatalf("fresh unit: %+v", u)
	}
	u.LevelUp()
	if u.UpgradeCost() != 9 {
		t.Errorf("upgrade cost at max-1 = %d, want 9", u.UpgradeCost())
	}
	u.LevelUp()
	if u.LevelUp() {
		t.Error("level up past max should fail")
	}
	if u.Level != 3 || u.UpgradeCost() != 0 || u.Range() != 3 {
		t.Errorf("max-level unit: level=%d cost=%d range=%v", u.Level, u.UpgradeCost(), u.Range())
	}
}

func TestPlayerSpend(t *testing.T) {
	p := Player{Funds: 30}
	if !p.Spend(20) || p.Funds != 10 {
		t.Fatalf("spend 20: funds=%d", p.Funds)
	}
	if p.Spend(11) || p.Funds != 10 {
		t.Fatalf("overspend allowed: funds=%d", p.Funds)
	}
	if p.Spend(-1) {
		t.Fatal("negative spend allowed")
	}
}
