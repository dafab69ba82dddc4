package partner_model

import "time"

const (
	TenantStatusActive   = "active"
	TenantStatusInactive = "inactive"
)

type Partner struct {
	ID         string    `json:"id" gorm:"column:id;primaryKey"`
	Name       string    `json:"name" gorm:"column:name"`
	CreateTime time.Time `json:"create_time" gorm:"column:create_time"`
}

// Referral joins a partner to a tenant it brought onto the platform.
// The referral set bounds every partner-scoped aggregation.
type Referral struct {
	ID         string    `json:"id" gorm:"column:id;primaryKey"`
	PartnerID  string    `json:"partner_id" gorm:"column:partner_id"`
	TenantID   string    `json:"tenant_id" gorm:"column:tenant_id"`
	CreateTime time.Time `json:"create_time" gorm:"column:create_time"`
}

type Tenant struct {
	ID         string    `json:"id" gorm:"column:id;primaryKey"`
	Name       string    `json:"name" gorm:"column:name"`
	Status     string    `json:"status" gorm:"column:status"`
	CreateTime time.Time `json:"create_time" gorm:"column:create_time"`
}

func (Partner) TableName() string {
	return "partner"
}

func (Referral) TableName() string {
	return "referral"
}

func (Tenant) TableName() string {
	return "tenants"
}
