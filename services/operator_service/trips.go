package operator_service

import (
	"fmt"
	"time"

	"parkpulse-analytics/db"
	"parkpulse-analytics/inout"
	"parkpulse-analytics/model/operator_model"
	"parkpulse-analytics/utils"
)

// DefaultActiveTripsLimit caps the active trips listing when the caller
// does not ask for a specific page size.
const DefaultActiveTripsLimit = 50

type activeTripRow struct {
	TripID               string
	RouteID              string
	ParkID               string
	Origin               string
	Destination          string
	Status               string
	SeatCapacity         int
	SeatsBooked          int
	ScheduledDepartureAt time.Time
	DriverName           *string
	VehiclePlate         *string
}

// GetActiveTrips lists trips in scheduled/boarding/ready_to_depart,
// ordered by status then scheduled departure so trips closest to leaving
// surface first within a tier. Missing driver or vehicle assignments come
// back as null, never as placeholder text.
func (s *AnalyticsService) GetActiveTrips(tenantID string, limit int) ([]inout.ActiveTripItem, error) {
	if tenantID == DemoTenantID {
		return demoActiveTrips(), nil
	}
	return s.getActiveTrips(tenantID, limit)
}

func (s *AnalyticsService) getActiveTrips(tenantID string, limit int) ([]inout.ActiveTripItem, error) {
	if limit <= 0 {
		limit = DefaultActiveTripsLimit
	}

	var rows []activeTripRow
	err := db.Dao.Model(&operator_model.Trip{}).
		Select(`trip.id AS trip_id, trip.route_id, route.park_id, route.origin, route.destination,
			trip.status, trip.seat_capacity, trip.seats_booked, trip.scheduled_departure_at,
			driver.full_name AS driver_name, vehicle.plate_number AS vehicle_plate`).
		Joins("JOIN route ON route.id = trip.route_id").
		Joins("LEFT JOIN driver ON driver.id = trip.driver_id").
		Joins("LEFT JOIN vehicle ON vehicle.id = trip.vehicle_id").
		Where("trip.tenant_id = ?", tenantID).
		Where("trip.status IN ?", operator_model.ActiveTripStatuses).
		Order("trip.status ASC, trip.scheduled_departure_at ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query active trips: %w", err)
	}

	items := make([]inout.ActiveTripItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, inout.ActiveTripItem{
			TripID:               row.TripID,
			RouteID:              row.RouteID,
			ParkID:               row.ParkID,
			ParkName:             utils.ParkNameFromSlug(row.ParkID),
			Origin:               row.Origin,
			Destination:          row.Destination,
			Status:               row.Status,
			SeatCapacity:         row.SeatCapacity,
			SeatsBooked:          row.SeatsBooked,
			ScheduledDepartureAt: row.ScheduledDepartureAt,
			DriverName:           row.DriverName,
			VehiclePlate:         row.VehiclePlate,
		})
	}
	return items, nil
}
