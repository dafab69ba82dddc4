package partner

import (
	"errors"

	"github.com/gin-gonic/gin"

	"parkpulse-analytics/inout"
	"parkpulse-analytics/middleware"
	"parkpulse-analytics/pkg/response"
	"parkpulse-analytics/services/partner_service"
)

var partnerService = &partner_service.PartnerAnalyticsService{}

func bindPartnerReq(c *gin.Context) (inout.PartnerAnalyticsReq, bool) {
	var params inout.PartnerAnalyticsReq
	if !middleware.BindQuery(c, &params) {
		return params, false
	}
	return params, true
}

func writePartnerError(c *gin.Context, err error) {
	if errors.Is(err, partner_service.ErrPartnerNotFound) {
		response.Error(c, response.NOT_FOUND, err.Error())
		return
	}
	response.Error(c, response.ERROR, err.Error())
}

// GetOverview returns the partner's headline counters.
func GetOverview(c *gin.Context) {
	params, ok := bindPartnerReq(c)
	if !ok {
		return
	}

	overview, err := partnerService.GetOverview(params)
	if err != nil {
		writePartnerError(c, err)
		return
	}
	response.Success(c, overview)
}

// GetTenantPerformance ranks the partner's referred tenants.
func GetTenantPerformance(c *gin.Context) {
	params, ok := bindPartnerReq(c)
	if !ok {
		return
	}

	list, err := partnerService.GetTenantPerformance(params)
	if err != nil {
		writePartnerError(c, err)
		return
	}
	response.Success(c, list)
}

// GetFormPerformance lists submission funnels per form.
func GetFormPerformance(c *gin.Context) {
	params, ok := bindPartnerReq(c)
	if !ok {
		return
	}

	forms, err := partnerService.GetFormPerformance(params)
	if err != nil {
		writePartnerError(c, err)
		return
	}
	response.Success(c, forms)
}

// GetPaymentsAnalytics breaks transactions down by status, channel and
// source module.
func GetPaymentsAnalytics(c *gin.Context) {
	params, ok := bindPartnerReq(c)
	if !ok {
		return
	}

	analytics, err := partnerService.GetPaymentsAnalytics(params)
	if err != nil {
		writePartnerError(c, err)
		return
	}
	response.Success(c, analytics)
}
