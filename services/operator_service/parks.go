package operator_service

import (
	"fmt"
	"time"

	"parkpulse-analytics/db"
	"parkpulse-analytics/inout"
	"parkpulse-analytics/model/operator_model"
	"parkpulse-analytics/utils"
)

// AnalyticsService computes read-only rollups for a single transport
// operator (tenant). Every query is tenant-scoped; there is no write path.
type AnalyticsService struct{}

// GetDistinctParks resolves the set of parks the tenant operates out of.
// Parks are derived from routes; a tenant with no routes gets an empty
// list, not an error.
func (s *AnalyticsService) GetDistinctParks(tenantID string) ([]inout.ParkRef, error) {
	if tenantID == DemoTenantID {
		return demoParkRefs(), nil
	}

	var parkIDs []string
	err := db.Dao.Model(&operator_model.Route{}).
		Where("tenant_id = ?", tenantID).
		Distinct().
		Order("park_id ASC").
		Pluck("park_id", &parkIDs).Error
	if err != nil {
		return nil, fmt.Errorf("query distinct parks: %w", err)
	}

	parks := make([]inout.ParkRef, 0, len(parkIDs))
	for _, id := range parkIDs {
		parks = append(parks, inout.ParkRef{
			ParkID:   id,
			ParkName: utils.ParkNameFromSlug(id),
		})
	}
	return parks, nil
}

// GetParksSummary returns per-park trip counts for the current day.
func (s *AnalyticsService) GetParksSummary(tenantID string) ([]inout.ParkSummaryItem, error) {
	if tenantID == DemoTenantID {
		return demoParksSummary(), nil
	}
	return s.getParksSummary(tenantID, time.Now())
}

// parkTripRow is the flattened trip row the summary is computed from.
type parkTripRow struct {
	ParkID      string
	Status      string
	DepartedAt  *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
}

func (s *AnalyticsService) getParksSummary(tenantID string, now time.Time) ([]inout.ParkSummaryItem, error) {
	parks, err := s.GetDistinctParks(tenantID)
	if err != nil {
		return nil, err
	}

	var rows []parkTripRow
	err = db.Dao.Model(&operator_model.Trip{}).
		Select("route.park_id AS park_id, trip.status, trip.departed_at, trip.completed_at, trip.cancelled_at").
		Joins("JOIN route ON route.id = trip.route_id").
		Where("trip.tenant_id = ?", tenantID).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query park trips: %w", err)
	}

	return summarizeParks(parks, rows, now), nil
}

// summarizeParks folds trip rows into one summary item per resolved
// park. Parks without any trips stay in the result zero-filled; the
// dashboard must show every park the tenant operates from.
func summarizeParks(parks []inout.ParkRef, rows []parkTripRow, now time.Time) []inout.ParkSummaryItem {
	startOfDay := utils.StartOfDay(now)

	items := make([]inout.ParkSummaryItem, len(parks))
	index := make(map[string]*inout.ParkSummaryItem, len(parks))
	for i, park := range parks {
		items[i] = inout.ParkSummaryItem{ParkID: park.ParkID, ParkName: park.ParkName}
		index[park.ParkID] = &items[i]
	}

	inToday := func(t *time.Time) bool {
		return t != nil && !t.Before(startOfDay) && !t.After(now)
	}

	for _, row := range rows {
		item, ok := index[row.ParkID]
		if !ok {
			continue
		}

		switch row.Status {
		case operator_model.TripStatusScheduled,
			operator_model.TripStatusBoarding,
			operator_model.TripStatusReadyToDepart:
			item.ActiveTrips++
		}
		if row.Status == operator_model.TripStatusBoarding {
			item.BoardingTrips++
		}

		// Day-scoped counts key off the transition timestamp, not the
		// current status; a trip that departed this morning and has since
		// completed still counts as departed today.
		if inToday(row.DepartedAt) {
			item.DepartedToday++
		}
		if inToday(row.CompletedAt) {
			item.CompletedToday++
		}
		if inToday(row.CancelledAt) {
			item.CancelledToday++
		}
	}

	return items
}
