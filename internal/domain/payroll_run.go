package domain

import (
	"time"
)

type RunStatus string

const (
	RunStatusDraft      RunStatus = "draft"
	RunStatusProcessing RunStatus = "processing"
	RunStatusReview     RunStatus = "review"
	RunStatusComplete   RunStatus = "complete"
)

// PayrollRun is one pay period for a client. Runs are created and mutated
// by the payroll-processing flows; this service only reads them.
type PayrollRun struct {
	ID         string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID   string     `gorm:"type:uuid;not null" json:"tenant_id"`
	ClientID   string     `gorm:"type:uuid;not null" json:"client_id"`
	Status     RunStatus  `gorm:"type:text;not null;default:'draft'" json:"status"`
	PayDate    time.Time  `gorm:"type:date;not null" json:"pay_date"`
	RTIDueDate *time.Time `gorm:"type:date" json:"rti_due_date"`
	EPSDueDate *time.Time `gorm:"type:date" json:"eps_due_date"`
	UpdatedAt  *time.Time `gorm:"type:timestamp with time zone" json:"updated_at"`
	CreatedAt  time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	Client     *Client    `gorm:"foreignKey:ClientID" json:"-"`
}

func (PayrollRun) TableName() string {
	return "payroll_runs"
}
