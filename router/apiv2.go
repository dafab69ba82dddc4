package router

import (
	"github.com/gin-gonic/gin"

	"parkpulse-analytics/controllers/partner"
)

// Partner analytics endpoints. Everything is scoped to the tenants the
// partner referred.
func InitPartner(r *gin.Engine) {
	partnerGroup := r.Group("/api/partner")
	{
		partnerGroup.GET("/overview", partner.GetOverview)
		partnerGroup.GET("/tenants/performance", partner.GetTenantPerformance)
		partnerGroup.GET("/forms/performance", partner.GetFormPerformance)
		partnerGroup.GET("/payments/analytics", partner.GetPaymentsAnalytics)
	}
}
