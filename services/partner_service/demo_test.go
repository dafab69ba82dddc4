package partner_service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkpulse-analytics/inout"
)

// db.Dao is nil here; a query against the store would panic, so every
// passing test proves the demo sentinel short-circuits first.

func demoReq() inout.PartnerAnalyticsReq {
	return inout.PartnerAnalyticsReq{PartnerID: DemoPartnerID, TimeFilter: inout.TimeFilterToday}
}

func TestDemoPartnerOverview(t *testing.T) {
	svc := &PartnerAnalyticsService{}

	overview, err := svc.GetOverview(demoReq())

	require.NoError(t, err)
	assert.True(t, overview.IsDemo)
	assert.Equal(t, DemoPartnerID, overview.PartnerID)
	assert.Equal(t, int64(3), overview.TotalTenants)
	require.NotNil(t, overview.DateRange.From)
	assert.True(t, overview.DateRange.From.Before(overview.DateRange.To))
}

func TestDemoPartnerTenantPerformance(t *testing.T) {
	svc := &PartnerAnalyticsService{}

	list, err := svc.GetTenantPerformance(demoReq())

	require.NoError(t, err)
	require.NotEmpty(t, list.Items)
	require.NotNil(t, list.TopPerformer)

	// The fixture's top performer really is the revenue maximum.
	for _, item := range list.Items {
		assert.False(t, item.Revenue.GreaterThan(list.TopPerformer.Revenue))
	}
}

func TestDemoPartnerTenantPerformanceConversionRates(t *testing.T) {
	svc := &PartnerAnalyticsService{}

	list, err := svc.GetTenantPerformance(demoReq())

	require.NoError(t, err)
	for _, item := range list.Items {
		assert.Equal(t, conversionRate(item.SuccessfulPayments, item.Submissions), item.ConversionRate,
			"tenant %s", item.TenantID)
	}
}

func TestDemoPartnerFormPerformance(t *testing.T) {
	svc := &PartnerAnalyticsService{}

	forms, err := svc.GetFormPerformance(demoReq())

	require.NoError(t, err)
	require.NotEmpty(t, forms)
	for _, form := range forms {
		assert.Equal(t, form.Submissions, form.Completed+form.Pending, "form %s", form.FormID)
	}
}

func TestDemoPartnerPaymentsAnalytics(t *testing.T) {
	svc := &PartnerAnalyticsService{}

	analytics, err := svc.GetPaymentsAnalytics(demoReq())

	require.NoError(t, err)
	buckets := analytics.StatusBuckets
	sum := buckets.Pending + buckets.Successful + buckets.Failed + buckets.Abandoned + buckets.Expired
	assert.Equal(t, analytics.TotalTransactions, sum)
	assert.Equal(t, analytics.TotalTransactions, analytics.DemoTransactions+analytics.LiveTransactions)
}

func TestScopedTenantIDs(t *testing.T) {
	ids := []string{"t1", "t2", "t3"}

	assert.Equal(t, ids, scopedTenantIDs(ids, ""))
	assert.Equal(t, []string{"t2"}, scopedTenantIDs(ids, "t2"))
	// A tenant outside the referral graph scopes down to nothing.
	assert.Empty(t, scopedTenantIDs(ids, "t9"))
}
