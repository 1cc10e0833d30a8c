package utils

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{-5, 0, 770, 0},
		{800, 0, 770, 770},
		{300, 0, 770, 300},
		{0, 0, 770, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	enemy := Rect{X: 100, Y: 50, W: 30, H: 20}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 110, Y: 55, W: 4, H: 10}, true},
		{"crossing bottom edge", Rect{X: 110, Y: 65, W: 4, H: 10}, true},
		{"touching bottom edge", Rect{X: 110, Y: 70, W: 4, H: 10}, false},
		{"touching left edge", Rect{X: 96, Y: 55, W: 4, H: 10}, false},
		{"touching right edge", Rect{X: 130, Y: 55, W: 4, H: 10}, false},
		{"touching top edge", Rect{X: 110, Y: 40, W: 4, H: 10}, false},
		{"far away", Rect{X: 500, Y: 500, W: 4, H: 10}, false},
		{"covering", Rect{X: 0, Y: 0, W: 800, H: 600}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(enemy, tt.b); got != tt.want {
				t.Errorf("Overlaps(enemy, %+v) = %v, want %v", tt.b, got, tt.want)
			}
			if got := Overlaps(tt.b, enemy); got != tt.want {
				t.Errorf("Overlaps(%+v, enemy) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}
