package partner_service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkpulse-analytics/inout"
)

func TestConversionRate(t *testing.T) {
	tests := []struct {
		name        string
		successful  int64
		submissions int64
		want        float64
	}{
		{"zero submissions yields zero", 5, 0, 0},
		{"zero payments", 0, 10, 0},
		{"half", 5, 10, 50},
		{"rounds to 2dp", 1, 3, 33.33},
		{"rounds up", 2, 3, 66.67},
		{"not clamped above 100", 12, 10, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, conversionRate(tt.successful, tt.submissions))
		})
	}
}

func TestPickTopPerformerEmpty(t *testing.T) {
	assert.Nil(t, pickTopPerformer(nil))
	assert.Nil(t, pickTopPerformer([]inout.TenantPerformanceItem{}))
}

func TestPickTopPerformerStrictTieBreak(t *testing.T) {
	items := []inout.TenantPerformanceItem{
		{TenantID: "t1", TenantName: "Harbour Suites", Revenue: decimal.NewFromInt(5000)},
		{TenantID: "t2", TenantName: "Bloom Clinic", Revenue: decimal.NewFromInt(5000)},
	}

	top := pickTopPerformer(items)

	// Equal revenue keeps the earlier tenant.
	require.NotNil(t, top)
	assert.Equal(t, "t1", top.TenantID)
}

func TestPickTopPerformerLaterHigherWins(t *testing.T) {
	items := []inout.TenantPerformanceItem{
		{TenantID: "t1", Revenue: decimal.NewFromInt(5000)},
		{TenantID: "t2", Revenue: decimal.NewFromInt(5001)},
	}

	top := pickTopPerformer(items)

	require.NotNil(t, top)
	assert.Equal(t, "t2", top.TenantID)
}

func TestComposeTenantPerformanceKeepsReferralOrder(t *testing.T) {
	tenantIDs := []string{"t2", "t1"}
	names := map[string]string{"t1": "Bloom Clinic", "t2": "Harbour Suites"}
	subCounts := map[string]int64{"t1": 10, "t2": 4}
	payStats := map[string]tenantPaymentAgg{
		"t1": {SuccessCount: 5, Revenue: decimal.NewFromInt(75000)},
	}

	list := composeTenantPerformance(tenantIDs, names, subCounts, payStats)

	require.Len(t, list.Items, 2)
	assert.Equal(t, "t2", list.Items[0].TenantID)
	assert.Equal(t, "Harbour Suites", list.Items[0].TenantName)
	// t2 has no payment rows at all: zero-valued, not missing.
	assert.Equal(t, int64(0), list.Items[0].SuccessfulPayments)
	assert.Equal(t, "0", list.Items[0].Revenue.String())
	assert.Equal(t, float64(0), list.Items[0].ConversionRate)

	assert.Equal(t, "t1", list.Items[1].TenantID)
	assert.Equal(t, float64(50), list.Items[1].ConversionRate)

	require.NotNil(t, list.TopPerformer)
	assert.Equal(t, "t1", list.TopPerformer.TenantID)
	assert.Equal(t, "75000", list.TopPerformer.Revenue.String())
}
