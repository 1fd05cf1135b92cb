package track

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Config holds the tracker's tunables. The zero value is not valid; start
// from DefaultConfig.
type Config struct {
	// MaxDisplacement is the gating threshold: the maximum centroid
	// displacement, in pixels, a cell may travel between consecutive
	// timepoints of one acquisition. Default 30.0.
	MaxDisplacement float64
	// Algorithm selects the assignment strategy. Default AlgorithmHungarian.
	Algorithm Algorithm
	// MissTolerance is how many consecutive unmatched boundaries a track
	// survives before ending. Default 0: a track ends the first time no
	// region gates-matches it.
	MissTolerance int
	// Predictive matches against Kalman-predicted positions instead of
	// last observed centroids. Default false.
	Predictive bool
	// DT is the filter time step per boundary when Predictive is set.
	DT float64
}

// DefaultConfig returns the documented default tracker parameters.
func DefaultConfig() Config {
	return Config{
		MaxDisplacement: 30.0,
		Algorithm:       AlgorithmHungarian,
		MissTolerance:   0,
		Predictive:      false,
		DT:              1.0,
	}
}

func (c Config) Validate() error {
	if !finiteValue(c.MaxDisplacement) || c.MaxDisplacement <= 0 {
		return errors.Errorf("max displacement must be a positive finite number, got %v", c.MaxDisplacement)
	}
	if c.MissTolerance < 0 {
		return errors.Errorf("miss tolerance must be non-negative, got %d", c.MissTolerance)
	}
	if c.DT <= 0 {
		return errors.Errorf("filter time step must be positive, got %v", c.DT)
	}
	return nil
}

// Manager owns the authoritative track table for one group and advances
// it one timepoint at a time. It is not safe for concurrent use; run one
// Manager per group and parallelise across groups instead (see
// TrackGroups).
type Manager struct {
	group Group
	cfg   Config
	log   *slog.Logger
	runID uuid.UUID

	// All tracks ever created, in ID order. Ended tracks stay: the table
	// is the authoritative history for their member regions.
	tracks []*Track
	nextID int

	lastTimepoint int
	stepped       bool
}

// NewManager creates a tracker for one group. A nil logger falls back to
// slog.Default; every warning line carries the manager's run id so
// parallel groups stay distinguishable in shared logs.
func NewManager(group Group, cfg Config, logger *slog.Logger) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid tracker config")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		group:  group,
		cfg:    cfg,
		log:    logger,
		runID:  uuid.New(),
		nextID: 1,
	}, nil
}

// Group returns the scope this manager tracks.
func (m *Manager) Group() Group { return m.group }

// RunID returns the correlation id stamped on this manager's log lines.
func (m *Manager) RunID() uuid.UUID { return m.runID }

// Step consumes the region set observed at one timepoint and updates the
// track table: gated matches extend active tracks, unmatched regions
// become births, unmatched tracks miss (and end once past the miss
// tolerance).
//
// Timepoint indices must be non-negative and strictly increasing across
// calls; violations are contract errors and fail immediately. Data
// anomalies never fail: malformed regions are excluded and a degenerate
// cost matrix collapses the boundary to all deaths plus all births, both
// reported through the returned warnings.
func (m *Manager) Step(timepoint int, regions []Region) ([]Warning, error) {
	if timepoint < 0 {
		return nil, errors.Errorf("negative timepoint index %d", timepoint)
	}
	if m.stepped && timepoint <= m.lastTimepoint {
		return nil, errors.Errorf("timepoint %d is not after previous timepoint %d", timepoint, m.lastTimepoint)
	}
	m.stepped = true
	m.lastTimepoint = timepoint

	var warnings []Warning

	// Exclude regions without a usable centroid.
	validIdx := make([]int, 0, len(regions))
	for i, r := range regions {
		if !finitePoint(r.Centroid) {
			warnings = append(warnings, Warning{
				Kind:        WarnMalformedRegion,
				Timepoint:   timepoint,
				RegionIndex: i,
				Detail:      "centroid is not a finite position",
			})
			m.log.Warn("excluding region without usable centroid",
				"run", m.runID.String(), "group", m.group.String(),
				"timepoint", timepoint, "region", i)
			continue
		}
		validIdx = append(validIdx, i)
	}

	active := m.activeTracks()

	// Advance motion state once per boundary so unmatched tracks keep
	// coasting along their estimated velocity.
	if m.cfg.Predictive {
		for _, tr := range active {
			if tr.filter != nil {
				tr.predicted = tr.filter.predict()
				tr.hasPrediction = true
			}
		}
	}

	// Pure-birth and pure-death boundaries never reach the solver.
	if len(active) == 0 || len(validIdx) == 0 {
		for _, tr := range active {
			m.recordMiss(tr)
		}
		for _, i := range validIdx {
			m.birth(timepoint, regions[i])
		}
		return warnings, nil
	}

	positions := make([]Point, len(active))
	for i, tr := range active {
		positions[i] = tr.matchPosition()
	}
	centroids := make([]Point, len(validIdx))
	for k, i := range validIdx {
		centroids[k] = regions[i].Centroid
	}

	cost, finite := buildCostMatrix(positions, centroids)
	if !finite {
		warnings = append(warnings, Warning{
			Kind:        WarnDegenerateCostMatrix,
			Timepoint:   timepoint,
			RegionIndex: -1,
			Detail:      "non-finite distance encountered; boundary treated as all deaths and all births",
		})
		m.log.Warn("degenerate cost matrix, accepting zero pairings",
			"run", m.runID.String(), "group", m.group.String(),
			"timepoint", timepoint)
		for _, tr := range active {
			m.recordMiss(tr)
		}
		for _, i := range validIdx {
			m.birth(timepoint, regions[i])
		}
		return warnings, nil
	}

	assignment := solveAssignment(cost, m.cfg.Algorithm)
	gated := applyGate(cost, assignment, len(active), len(validIdx), m.cfg.MaxDisplacement)

	for _, match := range gated.matches {
		tr := active[match[0]]
		regionIdx := validIdx[match[1]]
		region := regions[regionIdx]
		tr.extend(timepoint, region)
		if tr.filter != nil {
			if err := tr.filter.observe(region.Centroid); err != nil {
				warnings = append(warnings, Warning{
					Kind:        WarnMotionFilterDropped,
					Timepoint:   timepoint,
					RegionIndex: regionIdx,
					Detail:      err.Error(),
				})
				m.log.Warn("dropping motion filter, track falls back to last-centroid matching",
					"run", m.runID.String(), "group", m.group.String(),
					"timepoint", timepoint, "track", tr.ID, "error", err)
				tr.filter = nil
				tr.hasPrediction = false
			}
		}
	}
	for _, row := range gated.unmatchedTracks {
		m.recordMiss(active[row])
	}
	for _, col := range gated.unmatchedRegions {
		m.birth(timepoint, regions[validIdx[col]])
	}

	return warnings, nil
}

// activeTracks returns the current active subset in ID order, which fixes
// the cost matrix row order and with it the solver's tie-break scan.
func (m *Manager) activeTracks() []*Track {
	active := make([]*Track, 0, len(m.tracks))
	for _, tr := range m.tracks {
		if tr.Status == StatusActive {
			active = append(active, tr)
		}
	}
	return active
}

func (m *Manager) recordMiss(tr *Track) {
	tr.misses++
	if tr.misses > m.cfg.MissTolerance {
		tr.Status = StatusEnded
	}
}

func (m *Manager) birth(timepoint int, region Region) {
	tr := newTrack(m.nextID, timepoint, region)
	m.nextID++
	if m.cfg.Predictive {
		tr.filter = newMotionFilter(region.Centroid, m.cfg.DT)
	}
	m.tracks = append(m.tracks, tr)
}

// Tracks returns all tracks in ID order, ended ones included. The slice
// is a copy but the tracks themselves are the manager's live state.
func (m *Manager) Tracks() []*Track {
	out := make([]*Track, len(m.tracks))
	copy(out, m.tracks)
	return out
}

// Table finalizes the current state into an identity table. Still-active
// tracks are read as final; no explicit close step exists.
func (m *Manager) Table() *Table {
	return &Table{
		Group:  m.group,
		Tracks: m.Tracks(),
	}
}

// TrackSequence runs a complete ordered sequence through a fresh Manager
// and returns the finalized table with all accumulated warnings. An empty
// sequence yields an empty table and no error.
func TrackSequence(group Group, cfg Config, logger *slog.Logger, sequence []Timepoint) (*Table, []Warning, error) {
	m, err := NewManager(group, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	var warnings []Warning
	for _, tp := range sequence {
		w, err := m.Step(tp.Index, tp.Regions)
		warnings = append(warnings, w...)
		if err != nil {
			return nil, warnings, errors.Wrapf(err, "group %s", group)
		}
	}
	return m.Table(), warnings, nil
}
