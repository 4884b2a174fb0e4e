package model

import (
	"math"
	"testing"
)

func TestBBoxDimensions(t *testing.T) {
	b := NewBBox(10, 20, 110, 50)

	if got := b.Width(); got != 100 {
		t.Errorf("Width() = %v, want 100", got)
	}
	if got := b.Height(); got != 30 {
		t.Errorf("Height() = %v, want 30", got)
	}
	if got := b.Area(); got != 3000 {
		t.Errorf("Area() = %v, want 3000", got)
	}
	if got := b.Top(); got != 20 {
		t.Errorf("Top() = %v, want 20", got)
	}
	if got := b.Bottom(); got != 50 {
		t.Errorf("Bottom() = %v, want 50", got)
	}
}

func TestBBoxCenter(t *testing.T) {
	b := NewBBox(0, 0, 10, 20)
	c := b.Center()
	if c.X != 5 || c.Y != 10 {
		t.Errorf("Center() = %+v, want (5, 10)", c)
	}
}

func TestBBoxContains(t *testing.T) {
	b := NewBBox(0, 0, 10, 10)

	tests := []struct {
		name     string
		point    Point
		expected bool
	}{
		{"inside", Point{5, 5}, true},
		{"on edge", Point{0, 5}, true},
		{"on corner", Point{10, 10}, true},
		{"outside right", Point{11, 5}, false},
		{"outside below", Point{5, 11}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.point); got != tt.expected {
				t.Errorf("Contains(%+v) = %v, want %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestBBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     BBox
		expected bool
	}{
		{"overlapping", NewBBox(0, 0, 10, 10), NewBBox(5, 5, 15, 15), true},
		{"touching edge", NewBBox(0, 0, 10, 10), NewBBox(10, 0, 20, 10), true},
		{"disjoint horizontal", NewBBox(0, 0, 10, 10), NewBBox(20, 0, 30, 10), false},
		{"disjoint vertical", NewBBox(0, 0, 10, 10), NewBBox(0, 20, 10, 30), false},
		{"contained", NewBBox(0, 0, 100, 100), NewBBox(10, 10, 20, 20), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.expected {
				t.Errorf("Intersects = %v, want %v", got, tt.expected)
			}
			if got := tt.b.Intersects(tt.a); got != tt.expected {
				t.Errorf("Intersects (reversed) = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(5, 5, 20, 30)

	u := a.Union(b)
	want := NewBBox(0, 0, 20, 30)
	if u != want {
		t.Errorf("Union = %+v, want %+v", u, want)
	}
}

func TestBBoxIsEmpty(t *testing.T) {
	if NewBBox(0, 0, 10, 10).IsEmpty() {
		t.Error("non-degenerate box reported empty")
	}
	if !NewBBox(10, 10, 10, 20).IsEmpty() {
		t.Error("zero-width box not reported empty")
	}
	if !NewBBox(10, 10, 5, 20).IsEmpty() {
		t.Error("negative-width box not reported empty")
	}
}

func TestPointDistance(t *testing.T) {
	p := Point{0, 0}
	q := Point{3, 4}
	if got := p.Distance(q); math.Abs(got-5) > 1e-9 {
		t.Errorf("Distance = %v, want 5", got)
	}
}
