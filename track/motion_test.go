package track

import (
	"math"
	"testing"
)

func TestMotionFilterTracksConstantVelocity(t *testing.T) {
	f := newMotionFilter(Point{0, 0}, 1.0)

	// Feed a cell moving +10 px per step along x.
	for i := 1; i <= 5; i++ {
		p := f.predict()
		if !finitePoint(p) {
			t.Fatalf("non-finite prediction at step %d: %v", i, p)
		}
		if err := f.observe(Point{X: float64(i) * 10, Y: 0}); err != nil {
			t.Fatalf("observe failed at step %d: %v", i, err)
		}
	}

	// After several consistent observations the prediction should land in
	// the neighbourhood of the true next position (60, 0). The bound is
	// loose: prediction quality only biases matching, it never decides
	// identity on its own.
	p := f.predict()
	if math.Abs(p.X-60) > 30 {
		t.Errorf("prediction x=%v too far from 60", p.X)
	}
	if math.Abs(p.Y) > 10 {
		t.Errorf("prediction y=%v should stay near 0", p.Y)
	}
}
