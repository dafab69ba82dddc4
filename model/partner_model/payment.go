package partner_model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment transaction statuses.
const (
	PaymentStatusPending    = "PENDING"
	PaymentStatusProcessing = "PROCESSING"
	PaymentStatusSuccess    = "SUCCESS"
	PaymentStatusFailed     = "FAILED"
	PaymentStatusAbandoned  = "ABANDONED"
	PaymentStatusExpired    = "EXPIRED"
	PaymentStatusCancelled  = "CANCELLED"
)

// PaymentTransaction is one payment attempt. SourceModule names the
// product surface that created it (forms, bookings, invoices, ...) and
// may be absent on older rows.
type PaymentTransaction struct {
	ID           string          `json:"id" gorm:"column:id;primaryKey"`
	TenantID     string          `json:"tenant_id" gorm:"column:tenant_id"`
	PartnerID    *string         `json:"partner_id" gorm:"column:partner_id"`
	Amount       decimal.Decimal `json:"amount" gorm:"column:amount"`
	Status       string          `json:"status" gorm:"column:status"`
	Channel      string          `json:"channel" gorm:"column:channel"`
	SourceModule *string         `json:"source_module" gorm:"column:source_module"`
	IsDemo       bool            `json:"is_demo" gorm:"column:is_demo"`
	CreateTime   time.Time       `json:"create_time" gorm:"column:create_time"`
}

func (PaymentTransaction) TableName() string {
	return "payment_transaction"
}
