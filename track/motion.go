package track

import (
	kalman_filter "github.com/LdDl/kalman-filter"
	"github.com/pkg/errors"
)

// motionFilter wraps a 2-D Kalman filter over a track's centroid so that
// matching can use the predicted next position instead of the last
// observed one. Prediction quality only affects which pairings the solver
// prefers; emitted identities always reference observed regions.
type motionFilter struct {
	kf *kalman_filter.Kalman2D
}

func newMotionFilter(start Point, dt float64) *motionFilter {
	ux := 1.0
	uy := 1.0
	stdDevA := 2.0
	stdDevMx := 0.1
	stdDevMy := 0.1
	kf := kalman_filter.NewKalman2D(dt, ux, uy, stdDevA, stdDevMx, stdDevMy, kalman_filter.WithState2D(start.X, start.Y))
	return &motionFilter{kf: kf}
}

// predict advances the filter one step and returns the predicted
// position. Called once per timepoint boundary for every active track, so
// an unmatched track keeps coasting along its estimated velocity.
func (f *motionFilter) predict() Point {
	f.kf.Predict()
	x, y := f.kf.GetState()
	return Point{X: x, Y: y}
}

// observe feeds a matched centroid into the filter's update step.
func (f *motionFilter) observe(p Point) error {
	if err := f.kf.Update(p.X, p.Y); err != nil {
		return errors.Wrap(err, "can't update motion filter")
	}
	return nil
}
