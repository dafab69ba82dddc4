package router

import (
	"github.com/gin-gonic/gin"

	"parkpulse-analytics/controllers/operator"
)

// Operator analytics endpoints. Read-only rollups over a tenant's own
// booking data.
func InitOperator(r *gin.Engine) {
	operatorGroup := r.Group("/api/operator")
	{
		operatorGroup.GET("/parks", operator.GetParks)
		operatorGroup.GET("/parks/summary", operator.GetParksSummary)
		operatorGroup.GET("/trips/active", operator.GetActiveTrips)
		operatorGroup.GET("/tickets/summary", operator.GetTicketSales)
		operatorGroup.GET("/agents/activity", operator.GetAgentActivity)
		operatorGroup.GET("/dashboard", operator.GetDashboard)
		operatorGroup.GET("/dashboard/stream", operator.StreamDashboard)
	}
}
