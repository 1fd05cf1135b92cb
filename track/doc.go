// Package track assigns persistent identities to segmented cell regions
// across the timepoints of a time-lapse microscopy sequence.
//
// Segmentation produces an unordered set of regions per timepoint with no
// correspondence between timepoints. For each independent group
// (condition × region × channel) a Manager consumes one timepoint at a
// time, associates the new regions with its active tracks by solving a
// minimum-cost assignment over centroid displacements, gates out
// physically implausible matches, and maintains the authoritative track
// table. The finalized Table projects every observed region back onto its
// owning track identifier for downstream consumers.
//
// Responsibilities: cost matrix construction, optimal assignment, gating,
// track lifecycle (birth, extension, death), identity emission, and
// per-track displacement statistics.
//
// Dependency rule: this package performs no file, database or network
// I/O. Region geometry stays behind the opaque Region.Ref handle owned by
// the segmentation layer; only centroids are read here.
package track
