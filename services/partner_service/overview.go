package partner_service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"parkpulse-analytics/db"
	"parkpulse-analytics/inout"
	"parkpulse-analytics/model/partner_model"
	"parkpulse-analytics/pkg/monitoring"
)

// GetOverview is the partner dashboard headline: tenant, form,
// submission and payment totals over the resolved time window, computed
// concurrently against one shared window.
func (s *PartnerAnalyticsService) GetOverview(params inout.PartnerAnalyticsReq) (*inout.PartnerOverview, error) {
	if params.PartnerID == DemoPartnerID {
		return demoOverview(time.Now()), nil
	}
	return s.getOverview(params, time.Now())
}

func (s *PartnerAnalyticsService) getOverview(params inout.PartnerAnalyticsReq, now time.Time) (*inout.PartnerOverview, error) {
	started := time.Now()

	var partner partner_model.Partner
	if err := db.Dao.First(&partner, "id = ?", params.PartnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, fmt.Errorf("load partner: %w", err)
	}

	window := DateRangeFromFilter(params.TimeFilter, now)

	tenantIDs, err := s.GetPartnerTenantIDs(params.PartnerID)
	if err != nil {
		return nil, err
	}
	tenantIDs = scopedTenantIDs(tenantIDs, params.TenantID)

	overview := &inout.PartnerOverview{
		PartnerID:   partner.ID,
		PartnerName: partner.Name,
		TimeFilter:  normalizeTimeFilter(params.TimeFilter),
		DateRange:   inout.PartnerDateRange{From: window.From, To: window.To},
		Payments:    inout.PaymentTotals{TotalRevenue: decimal.Zero},
	}
	if len(tenantIDs) == 0 {
		return overview, nil
	}
	overview.TotalTenants = int64(len(tenantIDs))

	var (
		activeTenants int64
		totalForms    int64
		totalSubs     int64
		payments      inout.PaymentTotals
		errs          [4]error
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		errs[0] = db.Dao.Model(&partner_model.Tenant{}).
			Where("id IN ?", tenantIDs).
			Where("status = ?", partner_model.TenantStatusActive).
			Count(&activeTenants).Error
	}()
	go func() {
		defer wg.Done()
		// Forms are inventory, not events; the window does not apply.
		errs[1] = db.Dao.Model(&partner_model.Form{}).
			Scopes(applyTenantScope(tenantIDs), applyDemoFilter(params.IncludeDemo)).
			Count(&totalForms).Error
	}()
	go func() {
		defer wg.Done()
		errs[2] = db.Dao.Model(&partner_model.Submission{}).
			Scopes(applyTenantScope(tenantIDs), applyWindow(window), applyDemoFilter(params.IncludeDemo)).
			Count(&totalSubs).Error
	}()
	go func() {
		defer wg.Done()
		payments, errs[3] = paymentTotals(tenantIDs, window, params.IncludeDemo)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			monitoring.ObserveAggregation("partner", "overview", started, err)
			return nil, fmt.Errorf("compose partner overview: %w", err)
		}
	}
	monitoring.ObserveAggregation("partner", "overview", started, nil)

	overview.ActiveTenants = activeTenants
	overview.TotalForms = totalForms
	overview.TotalSubmissions = totalSubs
	overview.Payments = payments
	return overview, nil
}

func paymentTotals(tenantIDs []string, window TimeWindow, includeDemo bool) (inout.PaymentTotals, error) {
	var row struct {
		Total        int64
		SuccessCount int64
		Revenue      decimal.NullDecimal
	}
	err := db.Dao.Model(&partner_model.PaymentTransaction{}).
		Select(`COUNT(*) AS total,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS success_count,
			SUM(CASE WHEN status = ? THEN amount ELSE 0 END) AS revenue`,
			partner_model.PaymentStatusSuccess, partner_model.PaymentStatusSuccess).
		Scopes(applyTenantScope(tenantIDs), applyWindow(window), applyDemoFilter(includeDemo)).
		Scan(&row).Error
	if err != nil {
		return inout.PaymentTotals{}, err
	}

	totals := inout.PaymentTotals{
		TotalTransactions:      row.Total,
		SuccessfulTransactions: row.SuccessCount,
		TotalRevenue:           decimal.Zero,
	}
	if row.Revenue.Valid {
		totals.TotalRevenue = row.Revenue.Decimal
	}
	return totals, nil
}
