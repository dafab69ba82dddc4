package partner_service

import (
	"errors"
	"fmt"

	"parkpulse-analytics/db"
	"parkpulse-analytics/model/partner_model"
)

// PartnerAnalyticsService computes read-only rollups across the tenants
// a partner has referred onto the platform.
type PartnerAnalyticsService struct{}

// ErrPartnerNotFound is returned by GetOverview when the partner record
// itself is missing. A partner with zero referrals is not an error.
var ErrPartnerNotFound = errors.New("partner not found")

// GetPartnerTenantIDs resolves the referral graph to the tenant ids in
// the partner's analytics scope, in referral order. Empty means "zero
// metrics", never a failure.
func (s *PartnerAnalyticsService) GetPartnerTenantIDs(partnerID string) ([]string, error) {
	if partnerID == DemoPartnerID {
		return demoTenantIDs(), nil
	}

	var tenantIDs []string
	err := db.Dao.Model(&partner_model.Referral{}).
		Where("partner_id = ?", partnerID).
		Order("create_time ASC").
		Pluck("tenant_id", &tenantIDs).Error
	if err != nil {
		return nil, fmt.Errorf("query partner referrals: %w", err)
	}
	return tenantIDs, nil
}

// scopedTenantIDs optionally narrows the resolved scope to one tenant.
// Asking for a tenant outside the referral graph yields an empty scope
// rather than leaking another partner's data.
func scopedTenantIDs(tenantIDs []string, tenantID string) []string {
	if tenantID == "" {
		return tenantIDs
	}
	for _, id := range tenantIDs {
		if id == tenantID {
			return []string{tenantID}
		}
	}
	return []string{}
}
