package partner_service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkpulse-analytics/model/partner_model"
)

func TestComposeFormPerformanceStatusPartition(t *testing.T) {
	forms := []partner_model.Form{
		{ID: "f1", Name: "Room Booking Request", TenantID: "t1", PaymentEnabled: true, TotalRevenue: decimal.NewFromInt(90000)},
	}
	counts := []formStatusCount{
		{FormID: "f1", Status: partner_model.SubmissionStatusCompleted, Total: 4},
		{FormID: "f1", Status: partner_model.SubmissionStatusPaymentCompleted, Total: 3},
		{FormID: "f1", Status: partner_model.SubmissionStatusPending, Total: 2},
		{FormID: "f1", Status: partner_model.SubmissionStatusPaymentPending, Total: 1},
	}

	items := composeFormPerformance(forms, counts)

	require.Len(t, items, 1)
	item := items[0]
	assert.Equal(t, int64(7), item.Completed)
	assert.Equal(t, int64(3), item.Pending)
	assert.Equal(t, int64(10), item.Submissions)
}

func TestComposeFormPerformanceUnknownStatusStillCounted(t *testing.T) {
	forms := []partner_model.Form{
		{ID: "f1", Name: "Enquiry", TenantID: "t1"},
	}
	counts := []formStatusCount{
		{FormID: "f1", Status: partner_model.SubmissionStatusCompleted, Total: 2},
		{FormID: "f1", Status: "ARCHIVED", Total: 5},
	}

	items := composeFormPerformance(forms, counts)

	require.Len(t, items, 1)
	// Unknown statuses count toward the total but neither partition.
	assert.Equal(t, int64(7), items[0].Submissions)
	assert.Equal(t, int64(2), items[0].Completed)
	assert.Equal(t, int64(0), items[0].Pending)
}

func TestComposeFormPerformanceRevenueFromPersistedCounter(t *testing.T) {
	forms := []partner_model.Form{
		{ID: "f1", Name: "Enquiry", TenantID: "t1", TotalRevenue: decimal.NewFromInt(12345)},
	}

	// No submissions in the window, yet the lifetime revenue counter
	// still shows: the window never applies to it.
	items := composeFormPerformance(forms, nil)

	require.Len(t, items, 1)
	assert.Equal(t, int64(0), items[0].Submissions)
	assert.Equal(t, "12345", items[0].Revenue.String())
}

func TestComposeFormPerformanceKeepsFormOrder(t *testing.T) {
	forms := []partner_model.Form{
		{ID: "f2", Name: "Second", TenantID: "t1"},
		{ID: "f1", Name: "First", TenantID: "t1"},
	}

	items := composeFormPerformance(forms, nil)

	require.Len(t, items, 2)
	assert.Equal(t, "f2", items[0].FormID)
	assert.Equal(t, "f1", items[1].FormID)
}
