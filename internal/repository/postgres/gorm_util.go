package postgres

import (
	"gorm.io/gorm"
)

// tenantScope narrows a query to one tenant's rows. Every read in this
// package goes through it except point lookups on globally unique keys.
func tenantScope(db *gorm.DB, tenantID string) *gorm.DB {
	return db.Where("tenant_id = ?", tenantID)
}
