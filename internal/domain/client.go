package domain

import (
	"time"
)

type ClientStatus string

const (
	ClientStatusOnboarding ClientStatus = "onboarding"
	ClientStatusActive     ClientStatus = "active"
	ClientStatusArchived   ClientStatus = "archived"
)

// Client is a company serviced by a bureau tenant. It is created in
// onboarding status; the transition out happens elsewhere once the
// checklist completes.
type Client struct {
	ID            string            `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID      string            `gorm:"type:uuid;not null" json:"tenant_id"`
	Name          string            `gorm:"type:text;not null" json:"name"`
	Status        ClientStatus      `gorm:"type:text;not null;default:'onboarding'" json:"status"`
	ContactName   string            `gorm:"type:text" json:"contact_name"`
	ContactEmail  string            `gorm:"type:text" json:"contact_email"`
	PayeReference string            `gorm:"type:text" json:"paye_reference"`
	CreatedAt     time.Time         `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant        *Tenant           `gorm:"foreignKey:TenantID" json:"-"`
	Onboarding    *ClientOnboarding `gorm:"foreignKey:ClientID" json:"onboarding,omitempty"`
}

func (Client) TableName() string {
	return "clients"
}
