package track

import "fmt"

// WarningKind classifies a recoverable per-timepoint anomaly. Anomalies
// degrade matching locally and never abort a group; callers receive them
// alongside the step result for logging or reporting.
type WarningKind string

const (
	// WarnMalformedRegion marks a region excluded from matching because
	// its centroid is not a finite position.
	WarnMalformedRegion WarningKind = "malformed_region"
	// WarnDegenerateCostMatrix marks a timepoint boundary where a
	// non-finite distance forced zero accepted pairings: every active
	// track missed and every region became a birth.
	WarnDegenerateCostMatrix WarningKind = "degenerate_cost_matrix"
	// WarnMotionFilterDropped marks a track whose Kalman filter failed to
	// accept a measurement and was discarded; the track falls back to
	// last-centroid matching.
	WarnMotionFilterDropped WarningKind = "motion_filter_dropped"
)

// Warning records one anomaly observed while stepping a group.
type Warning struct {
	Kind      WarningKind
	Timepoint int
	// RegionIndex is the offending region's index within its timepoint,
	// or -1 when the warning is not scoped to a single region.
	RegionIndex int
	Detail      string
}

func (w Warning) String() string {
	if w.RegionIndex >= 0 {
		return fmt.Sprintf("%s at timepoint %d, region %d: %s", w.Kind, w.Timepoint, w.RegionIndex, w.Detail)
	}
	return fmt.Sprintf("%s at timepoint %d: %s", w.Kind, w.Timepoint, w.Detail)
}
