package inout

// Time filter tokens accepted by the partner analytics endpoints.
const (
	TimeFilterToday = "today"
	TimeFilter7d    = "7d"
	TimeFilter30d   = "30d"
	TimeFilterAll   = "all"
)

type PartnerAnalyticsReq struct {
	PartnerID  string `form:"partner_id" binding:"required"`
	TimeFilter string `form:"time_filter" binding:"omitempty,oneof=today 7d 30d all"`
	// Demo records are excluded unless explicitly requested.
	IncludeDemo bool `form:"include_demo"`
	// Narrows the partner scope to a single referred tenant.
	TenantID string `form:"tenant_id"`
}
