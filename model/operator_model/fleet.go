package operator_model

type Driver struct {
	ID       string `json:"id" gorm:"column:id;primaryKey"`
	TenantID string `json:"tenant_id" gorm:"column:tenant_id"`
	FullName string `json:"full_name" gorm:"column:full_name"`
	Phone    string `json:"phone" gorm:"column:phone"`
}

type Vehicle struct {
	ID          string `json:"id" gorm:"column:id;primaryKey"`
	TenantID    string `json:"tenant_id" gorm:"column:tenant_id"`
	PlateNumber string `json:"plate_number" gorm:"column:plate_number"`
	Capacity    int    `json:"capacity" gorm:"column:capacity"`
}

func (Driver) TableName() string {
	return "driver"
}

func (Vehicle) TableName() string {
	return "vehicle"
}
