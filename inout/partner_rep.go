package inout

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartnerDateRange is the resolved time window. From is null for the
// "all" filter, meaning unbounded, not epoch.
type PartnerDateRange struct {
	From *time.Time `json:"from"`
	To   time.Time  `json:"to"`
}

type PaymentTotals struct {
	TotalTransactions      int64           `json:"total_transactions"`
	SuccessfulTransactions int64           `json:"successful_transactions"`
	TotalRevenue           decimal.Decimal `json:"total_revenue"`
}

type PartnerOverview struct {
	PartnerID        string           `json:"partner_id"`
	PartnerName      string           `json:"partner_name"`
	TimeFilter       string           `json:"time_filter"`
	DateRange        PartnerDateRange `json:"date_range"`
	TotalTenants     int64            `json:"total_tenants"`
	ActiveTenants    int64            `json:"active_tenants"`
	TotalForms       int64            `json:"total_forms"`
	TotalSubmissions int64            `json:"total_submissions"`
	Payments         PaymentTotals    `json:"payments"`
	IsDemo           bool             `json:"is_demo"`
}

type TenantPerformanceItem struct {
	TenantID           string          `json:"tenant_id"`
	TenantName         string          `json:"tenant_name"`
	Submissions        int64           `json:"submissions"`
	SuccessfulPayments int64           `json:"successful_payments"`
	Revenue            decimal.Decimal `json:"revenue"`
	// successfulPayments / submissions * 100, rounded to 2 places.
	ConversionRate float64 `json:"conversion_rate"`
}

type TopPerformer struct {
	TenantID   string          `json:"tenant_id"`
	TenantName string          `json:"tenant_name"`
	Revenue    decimal.Decimal `json:"revenue"`
}

type TenantPerformanceList struct {
	Items        []TenantPerformanceItem `json:"items"`
	TopPerformer *TopPerformer           `json:"top_performer"`
}

type FormPerformanceItem struct {
	FormID         string `json:"form_id"`
	FormName       string `json:"form_name"`
	TenantID       string `json:"tenant_id"`
	PaymentEnabled bool   `json:"payment_enabled"`
	Submissions    int64  `json:"submissions"`
	Completed      int64  `json:"completed"`
	Pending        int64  `json:"pending"`
	// From the form's persisted running total, not recomputed.
	Revenue decimal.Decimal `json:"revenue"`
}

type PaymentStatusBuckets struct {
	Pending    int64 `json:"pending"`
	Successful int64 `json:"successful"`
	Failed     int64 `json:"failed"`
	Abandoned  int64 `json:"abandoned"`
	Expired    int64 `json:"expired"`
}

type ChannelStat struct {
	Count   int64           `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

type SourceModuleStat struct {
	SourceModule string          `json:"source_module"`
	Count        int64           `json:"count"`
	Revenue      decimal.Decimal `json:"revenue"`
}

type PaymentsAnalytics struct {
	TotalTransactions int64                `json:"total_transactions"`
	StatusBuckets     PaymentStatusBuckets `json:"status_buckets"`
	// Revenue only counts SUCCESS transactions.
	TotalRevenue     decimal.Decimal        `json:"total_revenue"`
	DemoTransactions int64                  `json:"demo_transactions"`
	LiveTransactions int64                  `json:"live_transactions"`
	ByChannel        map[string]ChannelStat `json:"by_channel"`
	BySourceModule   []SourceModuleStat     `json:"by_source_module"`
}
