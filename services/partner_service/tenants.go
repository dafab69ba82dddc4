package partner_service

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"parkpulse-analytics/db"
	"parkpulse-analytics/inout"
	"parkpulse-analytics/model/partner_model"
)

// tenantPaymentAgg is a per-tenant payment rollup row.
type tenantPaymentAgg struct {
	SuccessCount int64
	Revenue      decimal.Decimal
}

// GetTenantPerformance reports submissions, successful payments, revenue
// and conversion rate per referred tenant, plus the top performer by
// revenue.
func (s *PartnerAnalyticsService) GetTenantPerformance(params inout.PartnerAnalyticsReq) (*inout.TenantPerformanceList, error) {
	if params.PartnerID == DemoPartnerID {
		return demoTenantPerformance(), nil
	}
	return s.getTenantPerformance(params, time.Now())
}

func (s *PartnerAnalyticsService) getTenantPerformance(params inout.PartnerAnalyticsReq, now time.Time) (*inout.TenantPerformanceList, error) {
	window := DateRangeFromFilter(params.TimeFilter, now)

	tenantIDs, err := s.GetPartnerTenantIDs(params.PartnerID)
	if err != nil {
		return nil, err
	}
	tenantIDs = scopedTenantIDs(tenantIDs, params.TenantID)
	if len(tenantIDs) == 0 {
		return &inout.TenantPerformanceList{Items: []inout.TenantPerformanceItem{}}, nil
	}

	var tenants []partner_model.Tenant
	if err := db.Dao.Where("id IN ?", tenantIDs).Find(&tenants).Error; err != nil {
		return nil, fmt.Errorf("query tenants: %w", err)
	}
	names := make(map[string]string, len(tenants))
	for _, tenant := range tenants {
		names[tenant.ID] = tenant.Name
	}

	var subRows []struct {
		TenantID string
		Total    int64
	}
	err = db.Dao.Model(&partner_model.Submission{}).
		Select("tenant_id, COUNT(*) AS total").
		Scopes(applyTenantScope(tenantIDs), applyWindow(window), applyDemoFilter(params.IncludeDemo)).
		Group("tenant_id").
		Scan(&subRows).Error
	if err != nil {
		return nil, fmt.Errorf("query submission counts: %w", err)
	}
	subCounts := make(map[string]int64, len(subRows))
	for _, row := range subRows {
		subCounts[row.TenantID] = row.Total
	}

	var payRows []struct {
		TenantID     string
		SuccessCount int64
		Revenue      decimal.NullDecimal
	}
	err = db.Dao.Model(&partner_model.PaymentTransaction{}).
		Select(`tenant_id,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS success_count,
			SUM(CASE WHEN status = ? THEN amount ELSE 0 END) AS revenue`,
			partner_model.PaymentStatusSuccess, partner_model.PaymentStatusSuccess).
		Scopes(applyTenantScope(tenantIDs), applyWindow(window), applyDemoFilter(params.IncludeDemo)).
		Group("tenant_id").
		Scan(&payRows).Error
	if err != nil {
		return nil, fmt.Errorf("query payment rollups: %w", err)
	}
	payStats := make(map[string]tenantPaymentAgg, len(payRows))
	for _, row := range payRows {
		agg := tenantPaymentAgg{SuccessCount: row.SuccessCount, Revenue: decimal.Zero}
		if row.Revenue.Valid {
			agg.Revenue = row.Revenue.Decimal
		}
		payStats[row.TenantID] = agg
	}

	return composeTenantPerformance(tenantIDs, names, subCounts, payStats), nil
}

// composeTenantPerformance combines the grouped counts in referral
// order, so ties in the top-performer pick resolve the same way run
// after run.
func composeTenantPerformance(tenantIDs []string, names map[string]string, subCounts map[string]int64, payStats map[string]tenantPaymentAgg) *inout.TenantPerformanceList {
	items := make([]inout.TenantPerformanceItem, 0, len(tenantIDs))
	for _, id := range tenantIDs {
		pay := payStats[id]
		if pay.Revenue.IsZero() {
			pay.Revenue = decimal.Zero
		}
		subs := subCounts[id]
		items = append(items, inout.TenantPerformanceItem{
			TenantID:           id,
			TenantName:         names[id],
			Submissions:        subs,
			SuccessfulPayments: pay.SuccessCount,
			Revenue:            pay.Revenue,
			ConversionRate:     conversionRate(pay.SuccessCount, subs),
		})
	}

	return &inout.TenantPerformanceList{
		Items:        items,
		TopPerformer: pickTopPerformer(items),
	}
}

// conversionRate is successfulPayments / submissions as a percentage,
// rounded to 2 decimal places. Zero submissions yields 0, never NaN.
// The value is not clamped; more payments than submissions reads >100.
func conversionRate(successful, submissions int64) float64 {
	if submissions == 0 {
		return 0
	}
	return math.Round(float64(successful)/float64(submissions)*100*100) / 100
}

// pickTopPerformer keeps the first tenant reaching the maximum revenue.
// The comparison is strict `>`: on a tie the earlier tenant wins, and
// switching to `>=` would change which tenant is reported.
func pickTopPerformer(items []inout.TenantPerformanceItem) *inout.TopPerformer {
	if len(items) == 0 {
		return nil
	}
	top := items[0]
	for _, item := range items[1:] {
		if item.Revenue.GreaterThan(top.Revenue) {
			top = item
		}
	}
	return &inout.TopPerformer{
		TenantID:   top.TenantID,
		TenantName: top.TenantName,
		Revenue:    top.Revenue,
	}
}
