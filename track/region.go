package track

import "fmt"

// Region is one segmented cell observation at a single timepoint. The
// tracker reads only the centroid; Ref is an opaque handle to the full
// geometry, owned by the segmentation layer and passed through untouched.
type Region struct {
	Centroid Point
	Ref      any
}

// Timepoint is the region set detected at one acquisition index. Indices
// must be non-negative and strictly increasing within a sequence, but need
// not be consecutive.
type Timepoint struct {
	Index   int
	Regions []Region
}

// Group names one independent tracking scope. Regions from different
// groups are never compared and each group owns its own identifier space.
type Group struct {
	Condition string
	Region    string
	Channel   string
}

func (g Group) String() string {
	if g.Channel == "" {
		return fmt.Sprintf("%s/%s", g.Condition, g.Region)
	}
	return fmt.Sprintf("%s/%s/%s", g.Condition, g.Region, g.Channel)
}
