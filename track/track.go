package track

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Status is the lifecycle state of a track. Ended is terminal: an ended
// track is never reopened and never removed from its table.
type Status string

const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
)

// Member is one observation of a track: the region seen at a timepoint.
type Member struct {
	Timepoint int
	Region    Region
}

// Track is the ordered sequence of region observations believed to belong
// to one physical cell. IDs are positive, unique within a group, and
// assigned in strictly increasing order of first appearance; they are
// never reused. Members hold strictly increasing timepoints with no
// duplicates. Tracks are owned and mutated exclusively by their group's
// Manager.
type Track struct {
	ID           int
	Status       Status
	LastCentroid Point
	Members      []Member

	// Consecutive unmatched boundaries; resets on every match.
	misses int
	// Motion state for predictive matching, nil when disabled or dropped.
	filter        *motionFilter
	predicted     Point
	hasPrediction bool
}

func newTrack(id, timepoint int, region Region) *Track {
	return &Track{
		ID:           id,
		Status:       StatusActive,
		LastCentroid: region.Centroid,
		Members:      []Member{{Timepoint: timepoint, Region: region}},
	}
}

// matchPosition is the position this track competes with in the next
// assignment round: the motion-predicted position when available,
// otherwise the last observed centroid.
func (t *Track) matchPosition() Point {
	if t.hasPrediction {
		return t.predicted
	}
	return t.LastCentroid
}

func (t *Track) extend(timepoint int, region Region) {
	t.Members = append(t.Members, Member{Timepoint: timepoint, Region: region})
	t.LastCentroid = region.Centroid
	t.misses = 0
}

// FirstTimepoint returns the timepoint of the track's birth observation.
func (t *Track) FirstTimepoint() int {
	return t.Members[0].Timepoint
}

// LastTimepoint returns the timepoint of the most recent observation.
func (t *Track) LastTimepoint() int {
	return t.Members[len(t.Members)-1].Timepoint
}

// Stats summarises a track's motion for longitudinal analysis.
type Stats struct {
	// Observations is the number of timepoints at which the cell was seen.
	Observations int
	// Span is LastTimepoint - FirstTimepoint.
	Span int
	// PathLength is the summed centroid displacement over all steps.
	PathLength float64
	// MeanStep and MaxStep describe per-boundary displacements; zero when
	// the track has fewer than two observations.
	MeanStep float64
	MaxStep  float64
}

// Stats computes displacement statistics over the track's member
// centroids. Pure read; safe to call on live or ended tracks.
func (t *Track) Stats() Stats {
	s := Stats{
		Observations: len(t.Members),
	}
	if len(t.Members) == 0 {
		return s
	}
	s.Span = t.LastTimepoint() - t.FirstTimepoint()
	if len(t.Members) < 2 {
		return s
	}
	steps := make([]float64, 0, len(t.Members)-1)
	for i := 1; i < len(t.Members); i++ {
		steps = append(steps, euclideanDistance(t.Members[i-1].Region.Centroid, t.Members[i].Region.Centroid))
	}
	s.PathLength = floats.Sum(steps)
	s.MeanStep = stat.Mean(steps, nil)
	s.MaxStep = floats.Max(steps)
	return s
}
