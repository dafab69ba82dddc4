package operator_service

import (
	"sync"
	"time"

	"parkpulse-analytics/inout"
	"parkpulse-analytics/pkg/monitoring"
	"parkpulse-analytics/utils"
)

// GetOperatorDashboard assembles the operator dashboard snapshot. The
// clock is captured exactly once here and threaded into every
// sub-aggregation, so all four rollups describe the same day even though
// they run concurrently.
func (s *AnalyticsService) GetOperatorDashboard(tenantID string) (*inout.OperatorDashboard, error) {
	if tenantID == DemoTenantID {
		return demoDashboard(time.Now()), nil
	}
	return s.composeDashboard(tenantID, time.Now())
}

func (s *AnalyticsService) composeDashboard(tenantID string, now time.Time) (*inout.OperatorDashboard, error) {
	started := time.Now()
	startOfDay := utils.StartOfDay(now)
	endOfDay := utils.EndOfDay(now)

	var (
		parks  []inout.ParkSummaryItem
		trips  []inout.ActiveTripItem
		sales  inout.TicketSalesSummary
		agents inout.AgentActivitySummary
		errs   [4]error
	)

	// Fan-out over independent reads. No transaction wraps the four
	// queries; the shared window is the only consistency guarantee.
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		parks, errs[0] = s.getParksSummary(tenantID, now)
	}()
	go func() {
		defer wg.Done()
		trips, errs[1] = s.getActiveTrips(tenantID, DefaultActiveTripsLimit)
	}()
	go func() {
		defer wg.Done()
		sales, errs[2] = s.getTicketSalesSummary(tenantID, startOfDay, endOfDay)
	}()
	go func() {
		defer wg.Done()
		agents, errs[3] = s.getAgentActivitySummary(tenantID, now)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			monitoring.ObserveAggregation("operator", "dashboard", started, err)
			return nil, err
		}
	}
	monitoring.ObserveAggregation("operator", "dashboard", started, nil)

	return &inout.OperatorDashboard{
		AsOfTime:      now,
		DateRange:     inout.DateRange{Start: startOfDay, End: endOfDay},
		Parks:         parks,
		ActiveTrips:   trips,
		TicketSales:   sales,
		AgentActivity: agents,
	}, nil
}
