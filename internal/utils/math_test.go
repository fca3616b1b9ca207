package utils

import "testing"

func TestLerp(t *testing.T) {
	tests := []struct {
		from, to, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.25, 2.5},
		{160, 0, 0.5, 80},
	}
	for _, tt := range tests {
		if got := Lerp(tt.from, tt.to, tt.t); got != tt.want {
			t.Errorf("Lerp(%v,%v,%v) = %v, want %v", tt.from, tt.to, tt.t, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 || Clamp(2, 0, 1) != 1 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp out of range")
	}
}
