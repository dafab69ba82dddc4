package partner_service

import (
	"time"

	"github.com/shopspring/decimal"

	"parkpulse-analytics/inout"
	"parkpulse-analytics/utils"
)

// DemoPartnerID is the reserved sentinel partner. Like the operator
// sentinel, it must short-circuit before any store access.
const DemoPartnerID = "demo-partner"

func demoTenantIDs() []string {
	return []string{"demo-tenant-suites", "demo-tenant-academy", "demo-tenant-clinic"}
}

func demoOverview(now time.Time) *inout.PartnerOverview {
	from := utils.StartOfDay(now)
	return &inout.PartnerOverview{
		PartnerID:        DemoPartnerID,
		PartnerName:      "Demo Partner Network",
		TimeFilter:       inout.TimeFilterToday,
		DateRange:        inout.PartnerDateRange{From: &from, To: now},
		TotalTenants:     3,
		ActiveTenants:    3,
		TotalForms:       11,
		TotalSubmissions: 86,
		Payments: inout.PaymentTotals{
			TotalTransactions:      54,
			SuccessfulTransactions: 41,
			TotalRevenue:           decimal.NewFromInt(612000),
		},
		IsDemo: true,
	}
}

func demoTenantPerformance() *inout.TenantPerformanceList {
	items := []inout.TenantPerformanceItem{
		{TenantID: "demo-tenant-suites", TenantName: "Harbour Suites", Submissions: 38, SuccessfulPayments: 21, Revenue: decimal.NewFromInt(315000), ConversionRate: 55.26},
		{TenantID: "demo-tenant-academy", TenantName: "Crestfield Academy", Submissions: 29, SuccessfulPayments: 14, Revenue: decimal.NewFromInt(210000), ConversionRate: 48.28},
		{TenantID: "demo-tenant-clinic", TenantName: "Bloom Clinic", Submissions: 19, SuccessfulPayments: 6, Revenue: decimal.NewFromInt(87000), ConversionRate: 31.58},
	}
	return &inout.TenantPerformanceList{
		Items: items,
		TopPerformer: &inout.TopPerformer{
			TenantID:   "demo-tenant-suites",
			TenantName: "Harbour Suites",
			Revenue:    decimal.NewFromInt(315000),
		},
	}
}

func demoFormPerformance() []inout.FormPerformanceItem {
	return []inout.FormPerformanceItem{
		{FormID: "demo-form-booking", FormName: "Room Booking Request", TenantID: "demo-tenant-suites", PaymentEnabled: true, Submissions: 38, Completed: 24, Pending: 14, Revenue: decimal.NewFromInt(315000)},
		{FormID: "demo-form-admission", FormName: "Admission Enquiry", TenantID: "demo-tenant-academy", PaymentEnabled: true, Submissions: 29, Completed: 16, Pending: 13, Revenue: decimal.NewFromInt(210000)},
		{FormID: "demo-form-appointment", FormName: "Appointment Booking", TenantID: "demo-tenant-clinic", PaymentEnabled: false, Submissions: 19, Completed: 11, Pending: 8, Revenue: decimal.Zero},
	}
}

func demoPaymentsAnalytics() *inout.PaymentsAnalytics {
	return &inout.PaymentsAnalytics{
		TotalTransactions: 54,
		StatusBuckets: inout.PaymentStatusBuckets{
			Pending:    5,
			Successful: 41,
			Failed:     4,
			Abandoned:  2,
			Expired:    2,
		},
		TotalRevenue:     decimal.NewFromInt(612000),
		DemoTransactions: 54,
		LiveTransactions: 0,
		ByChannel: map[string]inout.ChannelStat{
			"card":     {Count: 31, Revenue: decimal.NewFromInt(402000)},
			"transfer": {Count: 18, Revenue: decimal.NewFromInt(186000)},
			"ussd":     {Count: 5, Revenue: decimal.NewFromInt(24000)},
		},
		BySourceModule: []inout.SourceModuleStat{
			{SourceModule: "forms", Count: 33, Revenue: decimal.NewFromInt(398000)},
			{SourceModule: "bookings", Count: 16, Revenue: decimal.NewFromInt(190000)},
			{SourceModule: "unknown", Count: 5, Revenue: decimal.NewFromInt(24000)},
		},
	}
}
