package track

import (
	"math"
	"testing"
)

func TestEuclideanDistance(t *testing.T) {
	p1 := NewPoint(0.0, 0.0)
	p2 := NewPoint(3.0, 4.0)
	if d := euclideanDistance(p1, p2); d != 5.0 {
		t.Errorf("expected distance 5, got %v", d)
	}
	if d := euclideanDistance(p1, p1); d != 0.0 {
		t.Errorf("expected zero distance, got %v", d)
	}
}

func TestFinitePoint(t *testing.T) {
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{-12.5, 3e8}, true},
		{Point{math.NaN(), 0}, false},
		{Point{0, math.NaN()}, false},
		{Point{math.Inf(1), 0}, false},
		{Point{0, math.Inf(-1)}, false},
	}
	for _, c := range cases {
		if got := finitePoint(c.p); got != c.want {
			t.Errorf("finitePoint(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}
