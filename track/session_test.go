package track

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackGroupsIndependence(t *testing.T) {
	groups := []GroupSequence{
		{
			Group: Group{Condition: "control", Region: "R_1", Channel: "ch00"},
			Timepoints: []Timepoint{
				timepointAt(0, Point{0, 0}),
				timepointAt(1, Point{2, 2}),
			},
		},
		{
			Group: Group{Condition: "treated", Region: "R_1", Channel: "ch00"},
			Timepoints: []Timepoint{
				timepointAt(0, Point{10, 10}, Point{80, 80}),
				timepointAt(1, Point{12, 11}, Point{81, 82}),
			},
		},
		{
			Group:      Group{Condition: "treated", Region: "R_2", Channel: "ch01"},
			Timepoints: nil,
		},
	}

	results := TrackGroups(DefaultConfig(), nil, groups)
	require.Len(t, results, len(groups))

	// Results stay aligned with their input groups.
	for i, res := range results {
		require.NoError(t, res.Err)
		require.Equal(t, groups[i].Group, res.Group)
		require.Equal(t, groups[i].Group, res.Table.Group)
	}

	// Each group owns its own identifier space, restarting at 1.
	require.Len(t, results[0].Table.Tracks, 1)
	require.Equal(t, 1, results[0].Table.Tracks[0].ID)

	require.Len(t, results[1].Table.Tracks, 2)
	require.Equal(t, 1, results[1].Table.Tracks[0].ID)
	require.Equal(t, 2, results[1].Table.Tracks[1].ID)

	require.Empty(t, results[2].Table.Tracks)
}

func TestTrackGroupsReportsPreconditionErrors(t *testing.T) {
	groups := []GroupSequence{
		{
			Group: Group{Condition: "control", Region: "R_1"},
			Timepoints: []Timepoint{
				timepointAt(0, Point{0, 0}),
			},
		},
		{
			Group: Group{Condition: "control", Region: "R_2"},
			Timepoints: []Timepoint{
				timepointAt(1, Point{0, 0}),
				timepointAt(0, Point{1, 1}), // out of order
			},
		},
	}
	results := TrackGroups(DefaultConfig(), nil, groups)
	require.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
	require.Nil(t, results[1].Table)
}

func TestTrackGroupsDeterministicAcrossRuns(t *testing.T) {
	groups := []GroupSequence{
		{
			Group: Group{Condition: "control", Region: "R_1"},
			Timepoints: []Timepoint{
				timepointAt(0, Point{0, 0}, Point{20, 0}),
				timepointAt(1, Point{10, 0}, Point{10, 5}),
			},
		},
	}
	first := TrackGroups(DefaultConfig(), nil, groups)
	second := TrackGroups(DefaultConfig(), nil, groups)
	require.Equal(t, first[0].Table.Labels(), second[0].Table.Labels())
}
