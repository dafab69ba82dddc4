package operator_model

import "time"

// Route belongs to a motor park identified by a slug (e.g. "jibowu-park").
// Park is not a first-class table; the park set is derived from routes.
type Route struct {
	ID          string    `json:"id" gorm:"column:id;primaryKey"`
	TenantID    string    `json:"tenant_id" gorm:"column:tenant_id"`
	ParkID      string    `json:"park_id" gorm:"column:park_id"`
	Origin      string    `json:"origin" gorm:"column:origin"`
	Destination string    `json:"destination" gorm:"column:destination"`
	CreateTime  time.Time `json:"create_time" gorm:"column:create_time"`
}

func (Route) TableName() string {
	return "route"
}
