package inout

import (
	"time"

	"github.com/shopspring/decimal"
)

type ParkRef struct {
	ParkID   string `json:"park_id"`
	ParkName string `json:"park_name"`
}

type ParkSummaryItem struct {
	ParkID         string `json:"park_id"`
	ParkName       string `json:"park_name"`
	ActiveTrips    int64  `json:"active_trips"`
	BoardingTrips  int64  `json:"boarding_trips"`
	DepartedToday  int64  `json:"departed_today"`
	CompletedToday int64  `json:"completed_today"`
	CancelledToday int64  `json:"cancelled_today"`
}

type ActiveTripItem struct {
	TripID               string    `json:"trip_id"`
	RouteID              string    `json:"route_id"`
	ParkID               string    `json:"park_id"`
	ParkName             string    `json:"park_name"`
	Origin               string    `json:"origin"`
	Destination          string    `json:"destination"`
	Status               string    `json:"status"`
	SeatCapacity         int       `json:"seat_capacity"`
	SeatsBooked          int       `json:"seats_booked"`
	ScheduledDepartureAt time.Time `json:"scheduled_departure_at"`
	// Null when the trip has no driver/vehicle assigned yet.
	DriverName   *string `json:"driver_name"`
	VehiclePlate *string `json:"vehicle_plate"`
}

// PaymentMethodBreakdown only carries the three named methods; tickets
// sold through any other channel do not land in these fields.
type PaymentMethodBreakdown struct {
	Cash     decimal.Decimal `json:"cash"`
	Card     decimal.Decimal `json:"card"`
	Transfer decimal.Decimal `json:"transfer"`
}

type ParkTicketStat struct {
	ParkID      string          `json:"park_id"`
	ParkName    string          `json:"park_name"`
	TicketCount int64           `json:"ticket_count"`
	Revenue     decimal.Decimal `json:"revenue"`
}

type TicketSalesSummary struct {
	TotalTicketsSold   int64                  `json:"total_tickets_sold"`
	TotalRevenue       decimal.Decimal        `json:"total_revenue"`
	AverageTicketPrice decimal.Decimal        `json:"average_ticket_price"`
	ByPaymentMethod    PaymentMethodBreakdown `json:"by_payment_method"`
	TicketsByPark      []ParkTicketStat       `json:"tickets_by_park"`
}

type AgentActivityItem struct {
	AgentID        string          `json:"agent_id"`
	AgentName      string          `json:"agent_name"`
	TicketCount    int64           `json:"ticket_count"`
	Revenue        decimal.Decimal `json:"revenue"`
	LastActivityAt time.Time       `json:"last_activity_at"`
}

type AgentActivitySummary struct {
	Date              string              `json:"date"`
	TotalTicketsToday int64               `json:"total_tickets_today"`
	TotalRevenueToday decimal.Decimal     `json:"total_revenue_today"`
	AgentPerformance  []AgentActivityItem `json:"agent_performance"`
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type OperatorDashboard struct {
	AsOfTime      time.Time            `json:"as_of_time"`
	DateRange     DateRange            `json:"date_range"`
	Parks         []ParkSummaryItem    `json:"parks"`
	ActiveTrips   []ActiveTripItem     `json:"active_trips"`
	TicketSales   TicketSalesSummary   `json:"ticket_sales"`
	AgentActivity AgentActivitySummary `json:"agent_activity"`
	IsDemo        bool                 `json:"is_demo"`
}
