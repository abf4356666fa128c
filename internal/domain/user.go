package domain

import (
	"time"
)

// User is a profile bound 1:1 to an authentication identity. Its ID is the
// identity id, so the row never exists without a matching identity.
type User struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID  string    `gorm:"type:uuid;not null" json:"tenant_id"`
	Email     string    `gorm:"type:text;not null;unique" json:"email"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Role      Role      `gorm:"type:text;not null;default:'viewer'" json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant    *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
