package operator

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"parkpulse-analytics/inout"
	"parkpulse-analytics/middleware"
	"parkpulse-analytics/pkg/cache"
	"parkpulse-analytics/pkg/config"
	"parkpulse-analytics/pkg/monitoring"
	"parkpulse-analytics/pkg/response"
	"parkpulse-analytics/services/operator_service"
)

const dashboardCachePrefix = "dashboard:snapshot:"

// GetDashboard serves the composed operator dashboard. Snapshots are
// cached briefly so a wall of dashboard clients does not multiply the
// aggregation fan-out. Demo tenants bypass the cache; their fixtures
// are cheaper than the cache round trip.
func GetDashboard(c *gin.Context) {
	var params inout.GetOperatorDashboardReq
	if !middleware.BindQuery(c, &params) {
		return
	}

	if params.TenantID != operator_service.DemoTenantID && cache.GlobalCache != nil {
		var cached inout.OperatorDashboard
		err := cache.GlobalCache.Get(c.Request.Context(), dashboardCachePrefix+params.TenantID, &cached)
		if err == nil {
			monitoring.RecordSnapshotCache(true)
			response.Success(c, &cached)
			return
		}
		monitoring.RecordSnapshotCache(false)
	}

	dashboard, err := analyticsService.GetOperatorDashboard(params.TenantID)
	if err != nil {
		response.Error(c, response.ERROR, err.Error())
		return
	}

	if params.TenantID != operator_service.DemoTenantID && cache.GlobalCache != nil {
		ttl := config.GetConfig().Analytics.SnapshotCacheTTL
		if ttl <= 0 {
			ttl = 30 * time.Second
		}
		cache.GlobalCache.Set(context.Background(), dashboardCachePrefix+params.TenantID, dashboard, ttl)
	}

	response.Success(c, dashboard)
}
