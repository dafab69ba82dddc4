package partner_service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkpulse-analytics/model/partner_model"
)

func txn(status, channel string, amount int64) partner_model.PaymentTransaction {
	return partner_model.PaymentTransaction{
		Status:  status,
		Channel: channel,
		Amount:  decimal.NewFromInt(amount),
	}
}

func TestClassifyPaymentsEmpty(t *testing.T) {
	out := classifyPayments(nil)

	assert.Equal(t, int64(0), out.TotalTransactions)
	assert.Equal(t, "0", out.TotalRevenue.String())
	assert.Empty(t, out.ByChannel)
	assert.Empty(t, out.BySourceModule)
}

func TestClassifyPaymentsEveryTransactionLandsInOneBucket(t *testing.T) {
	out := classifyPayments([]partner_model.PaymentTransaction{
		txn(partner_model.PaymentStatusSuccess, "card", 1000),
		txn(partner_model.PaymentStatusPending, "card", 1000),
		txn(partner_model.PaymentStatusProcessing, "card", 1000),
		txn(partner_model.PaymentStatusFailed, "card", 1000),
		txn(partner_model.PaymentStatusAbandoned, "card", 1000),
		txn(partner_model.PaymentStatusExpired, "card", 1000),
		txn(partner_model.PaymentStatusCancelled, "card", 1000),
		txn("SOMETHING_NEW", "card", 1000),
	})

	buckets := out.StatusBuckets
	sum := buckets.Pending + buckets.Successful + buckets.Failed + buckets.Abandoned + buckets.Expired
	assert.Equal(t, out.TotalTransactions, sum)

	// PROCESSING and unknown statuses count as in-flight.
	assert.Equal(t, int64(4), buckets.Pending)
	assert.Equal(t, int64(1), buckets.Successful)
	// EXPIRED and CANCELLED share a bucket.
	assert.Equal(t, int64(2), buckets.Expired)
}

func TestClassifyPaymentsRevenueIsSuccessOnly(t *testing.T) {
	out := classifyPayments([]partner_model.PaymentTransaction{
		txn(partner_model.PaymentStatusSuccess, "card", 5000),
		txn(partner_model.PaymentStatusFailed, "card", 90000),
		txn(partner_model.PaymentStatusPending, "transfer", 7000),
	})

	assert.Equal(t, "5000", out.TotalRevenue.String())
	assert.Equal(t, "5000", out.ByChannel["card"].Revenue.String())
	assert.Equal(t, "0", out.ByChannel["transfer"].Revenue.String())
}

func TestClassifyPaymentsChannelMapCapturesEverything(t *testing.T) {
	out := classifyPayments([]partner_model.PaymentTransaction{
		txn(partner_model.PaymentStatusSuccess, "card", 1000),
		txn(partner_model.PaymentStatusSuccess, "ussd", 800),
		txn(partner_model.PaymentStatusFailed, "", 500),
	})

	require.Len(t, out.ByChannel, 3)
	assert.Equal(t, int64(1), out.ByChannel["card"].Count)
	assert.Equal(t, int64(1), out.ByChannel["ussd"].Count)
	// Blank channel is folded into "unknown".
	assert.Equal(t, int64(1), out.ByChannel["unknown"].Count)
}

func TestClassifyPaymentsSourceModules(t *testing.T) {
	forms := "forms"
	bookings := "bookings"
	blank := ""

	transactions := []partner_model.PaymentTransaction{
		{Status: partner_model.PaymentStatusSuccess, Channel: "card", Amount: decimal.NewFromInt(3000), SourceModule: &forms},
		{Status: partner_model.PaymentStatusSuccess, Channel: "card", Amount: decimal.NewFromInt(3000), SourceModule: &bookings},
		{Status: partner_model.PaymentStatusSuccess, Channel: "card", Amount: decimal.NewFromInt(9000), SourceModule: &forms},
		{Status: partner_model.PaymentStatusFailed, Channel: "card", Amount: decimal.NewFromInt(500), SourceModule: &blank},
		{Status: partner_model.PaymentStatusFailed, Channel: "card", Amount: decimal.NewFromInt(500), SourceModule: nil},
	}

	out := classifyPayments(transactions)

	require.Len(t, out.BySourceModule, 3)
	// Revenue descending; nil and blank modules collapse into "unknown".
	assert.Equal(t, "forms", out.BySourceModule[0].SourceModule)
	assert.Equal(t, "12000", out.BySourceModule[0].Revenue.String())
	assert.Equal(t, "bookings", out.BySourceModule[1].SourceModule)
	assert.Equal(t, "unknown", out.BySourceModule[2].SourceModule)
	assert.Equal(t, int64(2), out.BySourceModule[2].Count)
}

func TestClassifyPaymentsSourceModuleTieBreaksByName(t *testing.T) {
	forms := "forms"
	bookings := "bookings"

	out := classifyPayments([]partner_model.PaymentTransaction{
		{Status: partner_model.PaymentStatusSuccess, Channel: "card", Amount: decimal.NewFromInt(3000), SourceModule: &forms},
		{Status: partner_model.PaymentStatusSuccess, Channel: "card", Amount: decimal.NewFromInt(3000), SourceModule: &bookings},
	})

	require.Len(t, out.BySourceModule, 2)
	assert.Equal(t, "bookings", out.BySourceModule[0].SourceModule)
	assert.Equal(t, "forms", out.BySourceModule[1].SourceModule)
}

func TestClassifyPaymentsDemoSplit(t *testing.T) {
	out := classifyPayments([]partner_model.PaymentTransaction{
		{Status: partner_model.PaymentStatusSuccess, Channel: "card", Amount: decimal.NewFromInt(1000), IsDemo: true},
		{Status: partner_model.PaymentStatusSuccess, Channel: "card", Amount: decimal.NewFromInt(1000)},
		{Status: partner_model.PaymentStatusFailed, Channel: "card", Amount: decimal.NewFromInt(1000)},
	})

	assert.Equal(t, int64(1), out.DemoTransactions)
	assert.Equal(t, int64(2), out.LiveTransactions)
	assert.Equal(t, out.TotalTransactions, out.DemoTransactions+out.LiveTransactions)
}
