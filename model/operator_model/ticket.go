package operator_model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TicketStatusActive    = "active"
	TicketStatusCancelled = "cancelled"
)

// Named payment methods. Tickets may carry other method values (POS
// integrations write their own codes); the sales summary only buckets
// these three.
const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
)

// Ticket is a sale record attached to a trip. Amount is decimal at the
// data-access boundary; no float money.
type Ticket struct {
	ID            string          `json:"id" gorm:"column:id;primaryKey"`
	TenantID      string          `json:"tenant_id" gorm:"column:tenant_id"`
	TripID        string          `json:"trip_id" gorm:"column:trip_id"`
	Amount        decimal.Decimal `json:"amount" gorm:"column:amount"`
	PaymentMethod string          `json:"payment_method" gorm:"column:payment_method"`
	SoldByID      string          `json:"sold_by_id" gorm:"column:sold_by_id"`
	SoldByName    string          `json:"sold_by_name" gorm:"column:sold_by_name"`
	SoldAt        time.Time       `json:"sold_at" gorm:"column:sold_at"`
	Status        string          `json:"status" gorm:"column:status"`
}

func (Ticket) TableName() string {
	return "ticket"
}
