package operator_service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkpulse-analytics/inout"
	"parkpulse-analytics/model/operator_model"
	"parkpulse-analytics/utils"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestSummarizeParksZeroFillsQuietParks(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	parks := []inout.ParkRef{
		{ParkID: "jibowu-park", ParkName: "Jibowu Park"},
		{ParkID: "ojota-park", ParkName: "Ojota Park"},
	}

	items := summarizeParks(parks, nil, now)

	require.Len(t, items, 2)
	assert.Equal(t, "ojota-park", items[1].ParkID)
	assert.Equal(t, int64(0), items[1].ActiveTrips)
	assert.Equal(t, int64(0), items[1].DepartedToday)
}

func TestSummarizeParksActiveAndBoarding(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	parks := []inout.ParkRef{{ParkID: "jibowu-park", ParkName: "Jibowu Park"}}

	items := summarizeParks(parks, []parkTripRow{
		{ParkID: "jibowu-park", Status: operator_model.TripStatusScheduled},
		{ParkID: "jibowu-park", Status: operator_model.TripStatusBoarding},
		{ParkID: "jibowu-park", Status: operator_model.TripStatusReadyToDepart},
		{ParkID: "jibowu-park", Status: operator_model.TripStatusCompleted},
	}, now)

	require.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].ActiveTrips)
	assert.Equal(t, int64(1), items[0].BoardingTrips)
}

func TestSummarizeParksDayCountsUseTransitionTimestamps(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	startOfDay := utils.StartOfDay(now)
	parks := []inout.ParkRef{{ParkID: "jibowu-park", ParkName: "Jibowu Park"}}

	items := summarizeParks(parks, []parkTripRow{
		// Departed this morning and already completed: counts for both.
		{
			ParkID:      "jibowu-park",
			Status:      operator_model.TripStatusCompleted,
			DepartedAt:  timePtr(startOfDay.Add(6 * time.Hour)),
			CompletedAt: timePtr(startOfDay.Add(10 * time.Hour)),
		},
		// Departed yesterday: not today's departure.
		{
			ParkID:     "jibowu-park",
			Status:     operator_model.TripStatusDeparted,
			DepartedAt: timePtr(startOfDay.Add(-2 * time.Hour)),
		},
		// Cancelled after "now": outside the window even though it is today.
		{
			ParkID:      "jibowu-park",
			Status:      operator_model.TripStatusCancelled,
			CancelledAt: timePtr(now.Add(time.Hour)),
		},
	}, now)

	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].DepartedToday)
	assert.Equal(t, int64(1), items[0].CompletedToday)
	assert.Equal(t, int64(0), items[0].CancelledToday)
}

func TestSummarizeParksIgnoresUnresolvedParks(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	parks := []inout.ParkRef{{ParkID: "jibowu-park", ParkName: "Jibowu Park"}}

	items := summarizeParks(parks, []parkTripRow{
		{ParkID: "ghost-park", Status: operator_model.TripStatusBoarding},
	}, now)

	require.Len(t, items, 1)
	assert.Equal(t, int64(0), items[0].ActiveTrips)
}
