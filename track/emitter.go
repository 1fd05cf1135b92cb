package track

import "sort"

// Table is the finalized track table for one group: every track ever
// created, births through deaths, in ID order.
type Table struct {
	Group  Group
	Tracks []*Track
}

// LabeledRegion pairs a region's opaque reference with its persistent
// identity. Downstream consumers (rescaling, channel duplication,
// extraction) persist the identity however they see fit; this package
// never writes it anywhere.
type LabeledRegion struct {
	Ref     any
	TrackID int
}

// LabeledTimepoint is one timepoint's region set after relabeling.
type LabeledTimepoint struct {
	Index   int
	Regions []LabeledRegion
}

// Labels projects the track table back onto per-timepoint region
// collections, in ascending timepoint order. Every member region of every
// track appears exactly once; regions that were excluded as malformed
// never joined a track and so never appear. Within a timepoint regions
// are ordered by track ID. No matching logic runs here.
func (tbl *Table) Labels() []LabeledTimepoint {
	byTimepoint := make(map[int][]LabeledRegion)
	for _, tr := range tbl.Tracks {
		for _, member := range tr.Members {
			byTimepoint[member.Timepoint] = append(byTimepoint[member.Timepoint], LabeledRegion{
				Ref:     member.Region.Ref,
				TrackID: tr.ID,
			})
		}
	}
	indices := make([]int, 0, len(byTimepoint))
	for idx := range byTimepoint {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	out := make([]LabeledTimepoint, 0, len(indices))
	for _, idx := range indices {
		regions := byTimepoint[idx]
		sort.Slice(regions, func(i, j int) bool { return regions[i].TrackID < regions[j].TrackID })
		out = append(out, LabeledTimepoint{Index: idx, Regions: regions})
	}
	return out
}

// TrackByID returns the track with the given ID, or nil.
func (tbl *Table) TrackByID(id int) *Track {
	for _, tr := range tbl.Tracks {
		if tr.ID == id {
			return tr
		}
	}
	return nil
}

// ActiveAt returns the tracks that were observed at the given timepoint.
func (tbl *Table) ActiveAt(timepoint int) []*Track {
	var out []*Track
	for _, tr := range tbl.Tracks {
		for _, member := range tr.Members {
			if member.Timepoint == timepoint {
				out = append(out, tr)
				break
			}
		}
	}
	return out
}
