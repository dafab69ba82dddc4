package operator

import (
	"time"

	"github.com/gin-gonic/gin"

	"parkpulse-analytics/inout"
	"parkpulse-analytics/middleware"
	"parkpulse-analytics/pkg/config"
	"parkpulse-analytics/pkg/response"
	"parkpulse-analytics/services/operator_service"
	"parkpulse-analytics/utils"
)

var analyticsService = &operator_service.AnalyticsService{}

// GetParks lists the distinct parks a tenant operates from.
func GetParks(c *gin.Context) {
	var params inout.GetParksSummaryReq
	if !middleware.BindQuery(c, &params) {
		return
	}

	parks, err := analyticsService.GetDistinctParks(params.TenantID)
	if err != nil {
		response.Error(c, response.ERROR, err.Error())
		return
	}
	response.Success(c, parks)
}

// GetParksSummary returns per-park trip counts for today.
func GetParksSummary(c *gin.Context) {
	var params inout.GetParksSummaryReq
	if !middleware.BindQuery(c, &params) {
		return
	}

	summary, err := analyticsService.GetParksSummary(params.TenantID)
	if err != nil {
		response.Error(c, response.ERROR, err.Error())
		return
	}
	response.Success(c, summary)
}

// GetActiveTrips lists trips currently moving toward departure.
func GetActiveTrips(c *gin.Context) {
	var params inout.GetActiveTripsReq
	if !middleware.BindQuery(c, &params) {
		return
	}

	limit := params.Limit
	if limit <= 0 {
		limit = config.GetConfig().Analytics.ActiveTripsLimit
	}

	trips, err := analyticsService.GetActiveTrips(params.TenantID, limit)
	if err != nil {
		response.Error(c, response.ERROR, err.Error())
		return
	}
	response.Success(c, trips)
}

// GetTicketSales returns the ticket sales rollup for a date range,
// defaulting to today.
func GetTicketSales(c *gin.Context) {
	var params inout.GetTicketSalesReq
	if !middleware.BindQuery(c, &params) {
		return
	}

	now := time.Now()
	from := utils.StartOfDay(now)
	to := utils.EndOfDay(now)

	if params.Start != "" {
		day, err := time.ParseInLocation(utils.DateFormat, params.Start, now.Location())
		if err != nil {
			response.Error(c, response.INVALID_PARAMS, "invalid start date: "+err.Error())
			return
		}
		from = utils.StartOfDay(day)
	}
	if params.End != "" {
		day, err := time.ParseInLocation(utils.DateFormat, params.End, now.Location())
		if err != nil {
			response.Error(c, response.INVALID_PARAMS, "invalid end date: "+err.Error())
			return
		}
		to = utils.EndOfDay(day)
	}
	if to.Before(from) {
		response.Error(c, response.INVALID_PARAMS, "end date is before start date")
		return
	}

	summary, err := analyticsService.GetTicketSalesSummary(params.TenantID, from, to)
	if err != nil {
		response.Error(c, response.ERROR, err.Error())
		return
	}
	response.Success(c, summary)
}

// GetAgentActivity returns today's per-agent sales ranking.
func GetAgentActivity(c *gin.Context) {
	var params inout.GetAgentActivityReq
	if !middleware.BindQuery(c, &params) {
		return
	}

	summary, err := analyticsService.GetAgentActivitySummary(params.TenantID)
	if err != nil {
		response.Error(c, response.ERROR, err.Error())
		return
	}
	response.Success(c, summary)
}
