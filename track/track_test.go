package track

import (
	"math"
	"testing"
)

func memberAt(timepoint int, x, y float64) Member {
	return Member{Timepoint: timepoint, Region: Region{Centroid: Point{X: x, Y: y}}}
}

func TestTrackStats(t *testing.T) {
	tr := &Track{
		ID:     1,
		Status: StatusEnded,
		Members: []Member{
			memberAt(0, 0, 0),
			memberAt(1, 3, 4),  // step 5
			memberAt(3, 3, 14), // step 10 across a skipped timepoint
		},
	}
	s := tr.Stats()
	if s.Observations != 3 {
		t.Errorf("expected 3 observations, got %d", s.Observations)
	}
	if s.Span != 3 {
		t.Errorf("expected span 3, got %d", s.Span)
	}
	if math.Abs(s.PathLength-15) > 1e-9 {
		t.Errorf("expected path length 15, got %v", s.PathLength)
	}
	if math.Abs(s.MeanStep-7.5) > 1e-9 {
		t.Errorf("expected mean step 7.5, got %v", s.MeanStep)
	}
	if s.MaxStep != 10 {
		t.Errorf("expected max step 10, got %v", s.MaxStep)
	}
}

func TestTrackStatsSingleObservation(t *testing.T) {
	tr := &Track{ID: 1, Members: []Member{memberAt(5, 1, 1)}}
	s := tr.Stats()
	if s.Observations != 1 || s.Span != 0 || s.PathLength != 0 || s.MeanStep != 0 || s.MaxStep != 0 {
		t.Errorf("unexpected stats for single observation: %+v", s)
	}
}

func TestTrackStatsEmpty(t *testing.T) {
	tr := &Track{ID: 1}
	s := tr.Stats()
	if s.Observations != 0 {
		t.Errorf("expected zero observations, got %d", s.Observations)
	}
}

func TestTrackTimepointAccessors(t *testing.T) {
	tr := &Track{Members: []Member{memberAt(2, 0, 0), memberAt(4, 1, 1), memberAt(7, 2, 2)}}
	if tr.FirstTimepoint() != 2 {
		t.Errorf("expected first timepoint 2, got %d", tr.FirstTimepoint())
	}
	if tr.LastTimepoint() != 7 {
		t.Errorf("expected last timepoint 7, got %d", tr.LastTimepoint())
	}
}
