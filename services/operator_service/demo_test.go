package operator_service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// db.Dao is nil in these tests, so any accidental store access would
// panic. Passing proves the sentinel short-circuits before the query.

func TestDemoTenantDistinctParks(t *testing.T) {
	svc := &AnalyticsService{}

	parks, err := svc.GetDistinctParks(DemoTenantID)

	require.NoError(t, err)
	require.Len(t, parks, 3)
	assert.Equal(t, "Jibowu Park", parks[0].ParkName)
}

func TestDemoTenantDashboard(t *testing.T) {
	svc := &AnalyticsService{}

	dashboard, err := svc.GetOperatorDashboard(DemoTenantID)

	require.NoError(t, err)
	assert.True(t, dashboard.IsDemo)
	assert.NotEmpty(t, dashboard.Parks)
	assert.NotEmpty(t, dashboard.ActiveTrips)
	assert.WithinDuration(t, time.Now(), dashboard.AsOfTime, 5*time.Second)
	assert.True(t, dashboard.DateRange.Start.Before(dashboard.DateRange.End))
}

func TestDemoTenantTicketSalesConsistent(t *testing.T) {
	svc := &AnalyticsService{}

	sales, err := svc.GetTicketSalesSummary(DemoTenantID, time.Now(), time.Now())

	require.NoError(t, err)
	count := int64(0)
	for _, stat := range sales.TicketsByPark {
		count += stat.TicketCount
	}
	assert.Equal(t, sales.TotalTicketsSold, count)
}

func TestDemoTenantActiveTripsNullableAssignments(t *testing.T) {
	svc := &AnalyticsService{}

	trips, err := svc.GetActiveTrips(DemoTenantID, 10)

	require.NoError(t, err)
	require.NotEmpty(t, trips)

	var sawUnassigned bool
	for _, trip := range trips {
		if trip.DriverName == nil {
			assert.Nil(t, trip.VehiclePlate)
			sawUnassigned = true
		}
	}
	assert.True(t, sawUnassigned, "fixtures should include an unassigned trip")
}

func TestDemoTenantAgentActivity(t *testing.T) {
	svc := &AnalyticsService{}

	activity, err := svc.GetAgentActivitySummary(DemoTenantID)

	require.NoError(t, err)
	require.NotEmpty(t, activity.AgentPerformance)
	// Ranking is by ticket count.
	for i := 1; i < len(activity.AgentPerformance); i++ {
		assert.GreaterOrEqual(t,
			activity.AgentPerformance[i-1].TicketCount,
			activity.AgentPerformance[i].TicketCount)
	}
}
