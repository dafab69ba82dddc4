package operator_model

import "time"

// Trip lifecycle statuses.
const (
	TripStatusScheduled     = "scheduled"
	TripStatusBoarding      = "boarding"
	TripStatusReadyToDepart = "ready_to_depart"
	TripStatusDeparted      = "departed"
	TripStatusCompleted     = "completed"
	TripStatusCancelled     = "cancelled"
)

// ActiveTripStatuses are the statuses counted as "active" on the dashboard.
var ActiveTripStatuses = []string{
	TripStatusScheduled,
	TripStatusBoarding,
	TripStatusReadyToDepart,
}

type Trip struct {
	ID                   string     `json:"id" gorm:"column:id;primaryKey"`
	TenantID             string     `json:"tenant_id" gorm:"column:tenant_id"`
	RouteID              string     `json:"route_id" gorm:"column:route_id"`
	DriverID             *string    `json:"driver_id" gorm:"column:driver_id"`
	VehicleID            *string    `json:"vehicle_id" gorm:"column:vehicle_id"`
	Status               string     `json:"status" gorm:"column:status"`
	SeatCapacity         int        `json:"seat_capacity" gorm:"column:seat_capacity"`
	SeatsBooked          int        `json:"seats_booked" gorm:"column:seats_booked"`
	ScheduledDepartureAt time.Time  `json:"scheduled_departure_at" gorm:"column:scheduled_departure_at"`
	DepartedAt           *time.Time `json:"departed_at" gorm:"column:departed_at"`
	CompletedAt          *time.Time `json:"completed_at" gorm:"column:completed_at"`
	CancelledAt          *time.Time `json:"cancelled_at" gorm:"column:cancelled_at"`
	CreateTime           time.Time  `json:"create_time" gorm:"column:create_time"`
}

func (Trip) TableName() string {
	return "trip"
}
