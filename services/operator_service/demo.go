package operator_service

import (
	"time"

	"github.com/shopspring/decimal"

	"parkpulse-analytics/inout"
	"parkpulse-analytics/utils"
)

// DemoTenantID is the reserved sentinel used for sales demos. Every
// method must short-circuit on it before touching the store: no real
// rows exist for this tenant.
const DemoTenantID = "demo-park-operator"

func strPtr(s string) *string { return &s }

func demoParkRefs() []inout.ParkRef {
	return []inout.ParkRef{
		{ParkID: "jibowu-park", ParkName: utils.ParkNameFromSlug("jibowu-park")},
		{ParkID: "ojota-park", ParkName: utils.ParkNameFromSlug("ojota-park")},
		{ParkID: "yaba-park", ParkName: utils.ParkNameFromSlug("yaba-park")},
	}
}

func demoParksSummary() []inout.ParkSummaryItem {
	return []inout.ParkSummaryItem{
		{ParkID: "jibowu-park", ParkName: "Jibowu Park", ActiveTrips: 6, BoardingTrips: 2, DepartedToday: 9, CompletedToday: 7, CancelledToday: 1},
		{ParkID: "ojota-park", ParkName: "Ojota Park", ActiveTrips: 4, BoardingTrips: 1, DepartedToday: 5, CompletedToday: 5, CancelledToday: 0},
		{ParkID: "yaba-park", ParkName: "Yaba Park", ActiveTrips: 3, BoardingTrips: 1, DepartedToday: 4, CompletedToday: 3, CancelledToday: 0},
	}
}

func demoActiveTrips() []inout.ActiveTripItem {
	departure := utils.StartOfDay(time.Now()).Add(9 * time.Hour)
	return []inout.ActiveTripItem{
		{
			TripID: "demo-trip-001", RouteID: "demo-route-lag-ib", ParkID: "jibowu-park", ParkName: "Jibowu Park",
			Origin: "Lagos", Destination: "Ibadan", Status: "boarding",
			SeatCapacity: 14, SeatsBooked: 11, ScheduledDepartureAt: departure,
			DriverName: strPtr("Emeka Obi"), VehiclePlate: strPtr("LAG-234-XA"),
		},
		{
			TripID: "demo-trip-002", RouteID: "demo-route-lag-abj", ParkID: "jibowu-park", ParkName: "Jibowu Park",
			Origin: "Lagos", Destination: "Abuja", Status: "ready_to_depart",
			SeatCapacity: 18, SeatsBooked: 18, ScheduledDepartureAt: departure.Add(30 * time.Minute),
			DriverName: strPtr("Sule Adamu"), VehiclePlate: strPtr("ABJ-771-KJ"),
		},
		{
			TripID: "demo-trip-003", RouteID: "demo-route-oj-ben", ParkID: "ojota-park", ParkName: "Ojota Park",
			Origin: "Lagos", Destination: "Benin City", Status: "scheduled",
			SeatCapacity: 14, SeatsBooked: 3, ScheduledDepartureAt: departure.Add(2 * time.Hour),
			DriverName: nil, VehiclePlate: nil,
		},
	}
}

func demoTicketSales() inout.TicketSalesSummary {
	return inout.TicketSalesSummary{
		TotalTicketsSold:   42,
		TotalRevenue:       decimal.NewFromInt(189500),
		AverageTicketPrice: decimal.NewFromFloat(4511.90),
		ByPaymentMethod: inout.PaymentMethodBreakdown{
			Cash:     decimal.NewFromInt(98500),
			Card:     decimal.NewFromInt(36000),
			Transfer: decimal.NewFromInt(55000),
		},
		TicketsByPark: []inout.ParkTicketStat{
			{ParkID: "jibowu-park", ParkName: "Jibowu Park", TicketCount: 22, Revenue: decimal.NewFromInt(104500)},
			{ParkID: "ojota-park", ParkName: "Ojota Park", TicketCount: 12, Revenue: decimal.NewFromInt(52000)},
			{ParkID: "yaba-park", ParkName: "Yaba Park", TicketCount: 8, Revenue: decimal.NewFromInt(33000)},
		},
	}
}

func demoAgentActivity() inout.AgentActivitySummary {
	now := time.Now()
	return inout.AgentActivitySummary{
		Date:              utils.FormatDate(now),
		TotalTicketsToday: 42,
		TotalRevenueToday: decimal.NewFromInt(189500),
		AgentPerformance: []inout.AgentActivityItem{
			{AgentID: "demo-agent-chidi", AgentName: "Chidi Okafor", TicketCount: 17, Revenue: decimal.NewFromInt(71500), LastActivityAt: now.Add(-8 * time.Minute)},
			{AgentID: "demo-agent-amina", AgentName: "Amina Bello", TicketCount: 15, Revenue: decimal.NewFromInt(76000), LastActivityAt: now.Add(-22 * time.Minute)},
			{AgentID: "demo-agent-tunde", AgentName: "Tunde Bakare", TicketCount: 10, Revenue: decimal.NewFromInt(42000), LastActivityAt: now.Add(-51 * time.Minute)},
		},
	}
}

func demoDashboard(now time.Time) *inout.OperatorDashboard {
	return &inout.OperatorDashboard{
		AsOfTime:      now,
		DateRange:     inout.DateRange{Start: utils.StartOfDay(now), End: utils.EndOfDay(now)},
		Parks:         demoParksSummary(),
		ActiveTrips:   demoActiveTrips(),
		TicketSales:   demoTicketSales(),
		AgentActivity: demoAgentActivity(),
		IsDemo:        true,
	}
}
