package partner_service

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"parkpulse-analytics/db"
	"parkpulse-analytics/inout"
	"parkpulse-analytics/model/partner_model"
)

// GetPaymentsAnalytics classifies every transaction in the window into
// exactly one status bucket, splits demo from live traffic, and breaks
// the volume down by source module and channel.
func (s *PartnerAnalyticsService) GetPaymentsAnalytics(params inout.PartnerAnalyticsReq) (*inout.PaymentsAnalytics, error) {
	if params.PartnerID == DemoPartnerID {
		return demoPaymentsAnalytics(), nil
	}
	return s.getPaymentsAnalytics(params, time.Now())
}

func (s *PartnerAnalyticsService) getPaymentsAnalytics(params inout.PartnerAnalyticsReq, now time.Time) (*inout.PaymentsAnalytics, error) {
	window := DateRangeFromFilter(params.TimeFilter, now)

	tenantIDs, err := s.GetPartnerTenantIDs(params.PartnerID)
	if err != nil {
		return nil, err
	}
	tenantIDs = scopedTenantIDs(tenantIDs, params.TenantID)
	if len(tenantIDs) == 0 {
		return emptyPaymentsAnalytics(), nil
	}

	var transactions []partner_model.PaymentTransaction
	err = db.Dao.
		Scopes(applyTenantScope(tenantIDs), applyWindow(window), applyDemoFilter(params.IncludeDemo)).
		Order("create_time ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("query payment transactions: %w", err)
	}

	return classifyPayments(transactions), nil
}

func emptyPaymentsAnalytics() *inout.PaymentsAnalytics {
	return &inout.PaymentsAnalytics{
		TotalRevenue:   decimal.Zero,
		ByChannel:      map[string]inout.ChannelStat{},
		BySourceModule: []inout.SourceModuleStat{},
	}
}

// classifyPayments folds transactions into the analytics payload.
// Revenue only ever counts SUCCESS rows. Unlike the operator ticket
// summary, the channel map here captures every method value, named or
// not.
func classifyPayments(transactions []partner_model.PaymentTransaction) *inout.PaymentsAnalytics {
	out := emptyPaymentsAnalytics()

	moduleStats := make(map[string]*inout.SourceModuleStat)

	for _, txn := range transactions {
		out.TotalTransactions++

		success := txn.Status == partner_model.PaymentStatusSuccess
		switch txn.Status {
		case partner_model.PaymentStatusSuccess:
			out.StatusBuckets.Successful++
			out.TotalRevenue = out.TotalRevenue.Add(txn.Amount)
		case partner_model.PaymentStatusFailed:
			out.StatusBuckets.Failed++
		case partner_model.PaymentStatusAbandoned:
			out.StatusBuckets.Abandoned++
		case partner_model.PaymentStatusExpired, partner_model.PaymentStatusCancelled:
			out.StatusBuckets.Expired++
		default:
			// PENDING, PROCESSING and anything unrecognized count as
			// in-flight.
			out.StatusBuckets.Pending++
		}

		if txn.IsDemo {
			out.DemoTransactions++
		} else {
			out.LiveTransactions++
		}

		channel := txn.Channel
		if channel == "" {
			channel = "unknown"
		}
		stat := out.ByChannel[channel]
		stat.Count++
		if stat.Revenue.IsZero() {
			stat.Revenue = decimal.Zero
		}
		if success {
			stat.Revenue = stat.Revenue.Add(txn.Amount)
		}
		out.ByChannel[channel] = stat

		module := "unknown"
		if txn.SourceModule != nil && *txn.SourceModule != "" {
			module = *txn.SourceModule
		}
		moduleStat, ok := moduleStats[module]
		if !ok {
			moduleStat = &inout.SourceModuleStat{SourceModule: module, Revenue: decimal.Zero}
			moduleStats[module] = moduleStat
		}
		moduleStat.Count++
		if success {
			moduleStat.Revenue = moduleStat.Revenue.Add(txn.Amount)
		}
	}

	for _, stat := range moduleStats {
		out.BySourceModule = append(out.BySourceModule, *stat)
	}
	sort.Slice(out.BySourceModule, func(i, j int) bool {
		a, b := out.BySourceModule[i], out.BySourceModule[j]
		if !a.Revenue.Equal(b.Revenue) {
			return a.Revenue.GreaterThan(b.Revenue)
		}
		return a.SourceModule < b.SourceModule
	})

	return out
}
