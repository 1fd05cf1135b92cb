package track

import (
	"log/slog"
	"sync"
)

// GroupSequence is one group's complete input: its ordered timepoints.
type GroupSequence struct {
	Group      Group
	Timepoints []Timepoint
}

// GroupResult is the outcome of tracking one group.
type GroupResult struct {
	Group    Group
	Table    *Table
	Warnings []Warning
	Err      error
}

// TrackGroups tracks independent groups concurrently, one Manager per
// group. Groups share no state beyond the logger, so no ordering between
// them is imposed; results are returned index-aligned with the input.
func TrackGroups(cfg Config, logger *slog.Logger, groups []GroupSequence) []GroupResult {
	results := make([]GroupResult, len(groups))
	var wg sync.WaitGroup
	for i, gs := range groups {
		wg.Add(1)
		go func(i int, gs GroupSequence) {
			defer wg.Done()
			table, warnings, err := TrackSequence(gs.Group, cfg, logger, gs.Timepoints)
			results[i] = GroupResult{
				Group:    gs.Group,
				Table:    table,
				Warnings: warnings,
				Err:      err,
			}
		}(i, gs)
	}
	wg.Wait()
	return results
}
