package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type TenantPlan string

const (
	TenantPlanTrial   TenantPlan = "trial"
	TenantPlanStarter TenantPlan = "starter"
	TenantPlanPro     TenantPlan = "pro"
)

type TenantMode string

const (
	TenantModePlayground TenantMode = "playground"
	TenantModeLive       TenantMode = "live"
)

// ChecklistTemplateItem is one entry of the per-tenant checklist template
// that seeds every new client's onboarding task list.
type ChecklistTemplateItem struct {
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// TenantSettings is the structured settings document stored as jsonb.
// Forward-compatible extra fields live in Extensions.
type TenantSettings struct {
	Industry          string                  `json:"industry"`
	CompanyDomain     string                  `json:"company_domain"`
	SetupCompleted    bool                    `json:"setup_completed"`
	ChecklistTemplate []ChecklistTemplateItem `json:"checklist_template"`
	Extensions        map[string]any          `json:"extensions,omitempty"`
}

func (s TenantSettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *TenantSettings) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = TenantSettings{}
		return nil
	default:
		return fmt.Errorf("unsupported type for TenantSettings: %T", value)
	}
}

type Tenant struct {
	ID             string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name           string         `gorm:"type:text;not null" json:"name"`
	Plan           TenantPlan     `gorm:"type:text;not null;default:'trial'" json:"plan"`
	Mode           TenantMode     `gorm:"type:text;not null;default:'playground'" json:"mode"`
	AllowedDomains pq.StringArray `gorm:"type:text[];not null" json:"allowed_domains"`
	DemoDataActive bool           `gorm:"not null;default:false" json:"demo_data_active"`
	CanSwitchModes bool           `gorm:"not null;default:true" json:"can_switch_modes"`
	Settings       TenantSettings `gorm:"type:jsonb" json:"settings"`
	CreatedAt      time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// DefaultChecklistTemplate is the fixed payroll cycle seeded into every
// tenant created through registration or lazy provisioning.
func DefaultChecklistTemplate() []ChecklistTemplateItem {
	return []ChecklistTemplateItem{
		{Name: "Receive payroll changes", SortOrder: 0},
		{Name: "Process payroll", SortOrder: 1},
		{Name: "Review & approve", SortOrder: 2},
		{Name: "Send payslips", SortOrder: 3},
		{Name: "Submit RTI to HMRC", SortOrder: 4},
		{Name: "BACS payment", SortOrder: 5},
		{Name: "Pension submission", SortOrder: 6},
	}
}
