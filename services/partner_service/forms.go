package partner_service

import (
	"fmt"
	"time"

	"parkpulse-analytics/db"
	"parkpulse-analytics/inout"
	"parkpulse-analytics/model/partner_model"
)

// formStatusCount is one (form, status) bucket from the grouped query.
type formStatusCount struct {
	FormID string
	Status string
	Total  int64
}

// GetFormPerformance reports window-scoped submission counts per form.
// Revenue comes from the form's persisted running total — the webhook
// that records payments owns that counter, and this service never
// recomputes it from transaction history.
func (s *PartnerAnalyticsService) GetFormPerformance(params inout.PartnerAnalyticsReq) ([]inout.FormPerformanceItem, error) {
	if params.PartnerID == DemoPartnerID {
		return demoFormPerformance(), nil
	}
	return s.getFormPerformance(params, time.Now())
}

func (s *PartnerAnalyticsService) getFormPerformance(params inout.PartnerAnalyticsReq, now time.Time) ([]inout.FormPerformanceItem, error) {
	window := DateRangeFromFilter(params.TimeFilter, now)

	tenantIDs, err := s.GetPartnerTenantIDs(params.PartnerID)
	if err != nil {
		return nil, err
	}
	tenantIDs = scopedTenantIDs(tenantIDs, params.TenantID)
	if len(tenantIDs) == 0 {
		return []inout.FormPerformanceItem{}, nil
	}

	var forms []partner_model.Form
	err = db.Dao.
		Scopes(applyTenantScope(tenantIDs), applyDemoFilter(params.IncludeDemo)).
		Order("create_time ASC").
		Find(&forms).Error
	if err != nil {
		return nil, fmt.Errorf("query forms: %w", err)
	}

	var counts []formStatusCount
	err = db.Dao.Model(&partner_model.Submission{}).
		Select("form_id, status, COUNT(*) AS total").
		Scopes(applyTenantScope(tenantIDs), applyWindow(window), applyDemoFilter(params.IncludeDemo)).
		Group("form_id, status").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("query submission buckets: %w", err)
	}

	return composeFormPerformance(forms, counts), nil
}

// composeFormPerformance partitions each form's submissions into
// completed (COMPLETED ∪ PAYMENT_COMPLETED) and pending (PENDING ∪
// PAYMENT_PENDING) buckets.
func composeFormPerformance(forms []partner_model.Form, counts []formStatusCount) []inout.FormPerformanceItem {
	byForm := make(map[string]map[string]int64)
	for _, count := range counts {
		if byForm[count.FormID] == nil {
			byForm[count.FormID] = make(map[string]int64)
		}
		byForm[count.FormID][count.Status] += count.Total
	}

	items := make([]inout.FormPerformanceItem, 0, len(forms))
	for _, form := range forms {
		buckets := byForm[form.ID]
		item := inout.FormPerformanceItem{
			FormID:         form.ID,
			FormName:       form.Name,
			TenantID:       form.TenantID,
			PaymentEnabled: form.PaymentEnabled,
			Completed:      buckets[partner_model.SubmissionStatusCompleted] + buckets[partner_model.SubmissionStatusPaymentCompleted],
			Pending:        buckets[partner_model.SubmissionStatusPending] + buckets[partner_model.SubmissionStatusPaymentPending],
			Revenue:        form.TotalRevenue,
		}
		for _, total := range buckets {
			item.Submissions += total
		}
		items = append(items, item)
	}
	return items
}
