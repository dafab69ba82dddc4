package partner_service

import "gorm.io/gorm"

// applyTenantScope restricts a query to the partner's resolved tenants.
func applyTenantScope(tenantIDs []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id IN ?", tenantIDs)
	}
}

// applyWindow filters on create_time. The lower bound is skipped when
// the window is unbounded.
func applyWindow(w TimeWindow) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if w.From != nil {
			db = db.Where("create_time >= ?", *w.From)
		}
		return db.Where("create_time <= ?", w.To)
	}
}

// applyDemoFilter drops demo rows unless the caller asked for them.
func applyDemoFilter(includeDemo bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if includeDemo {
			return db
		}
		return db.Where("is_demo = ?", false)
	}
}
