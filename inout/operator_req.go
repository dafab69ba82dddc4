package inout

type GetOperatorDashboardReq struct {
	TenantID string `form:"tenant_id" binding:"required"`
}

type GetParksSummaryReq struct {
	TenantID string `form:"tenant_id" binding:"required"`
}

type GetActiveTripsReq struct {
	TenantID string `form:"tenant_id" binding:"required"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

type GetTicketSalesReq struct {
	TenantID string `form:"tenant_id" binding:"required"`
	// Optional date bounds, "2006-01-02". Defaults to today.
	Start string `form:"start" binding:"omitempty,datetime=2006-01-02"`
	End   string `form:"end" binding:"omitempty,datetime=2006-01-02"`
}

type GetAgentActivityReq struct {
	TenantID string `form:"tenant_id" binding:"required"`
}
