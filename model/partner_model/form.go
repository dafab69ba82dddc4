package partner_model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Submission statuses.
const (
	SubmissionStatusPending          = "PENDING"
	SubmissionStatusCompleted        = "COMPLETED"
	SubmissionStatusPaymentPending   = "PAYMENT_PENDING"
	SubmissionStatusPaymentCompleted = "PAYMENT_COMPLETED"
)

// Form is a tenant's lead-capture form. TotalRevenue is a running
// counter maintained by the payment webhook; it is the system of record
// for form revenue and is never recomputed from transactions here.
type Form struct {
	ID             string          `json:"id" gorm:"column:id;primaryKey"`
	TenantID       string          `json:"tenant_id" gorm:"column:tenant_id"`
	Name           string          `json:"name" gorm:"column:name"`
	PaymentEnabled bool            `json:"payment_enabled" gorm:"column:payment_enabled"`
	PaymentAmount  decimal.Decimal `json:"payment_amount" gorm:"column:payment_amount"`
	TotalRevenue   decimal.Decimal `json:"total_revenue" gorm:"column:total_revenue"`
	IsDemo         bool            `json:"is_demo" gorm:"column:is_demo"`
	CreateTime     time.Time       `json:"create_time" gorm:"column:create_time"`
}

type Submission struct {
	ID         string    `json:"id" gorm:"column:id;primaryKey"`
	TenantID   string    `json:"tenant_id" gorm:"column:tenant_id"`
	FormID     string    `json:"form_id" gorm:"column:form_id"`
	Status     string    `json:"status" gorm:"column:status"`
	IsDemo     bool      `json:"is_demo" gorm:"column:is_demo"`
	CreateTime time.Time `json:"create_time" gorm:"column:create_time"`
}

func (Form) TableName() string {
	return "form"
}

func (Submission) TableName() string {
	return "form_submission"
}
