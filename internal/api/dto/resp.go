package dto

import (
	"time"

	"github.com/payrollhq/bureau-api/internal/domain"
)

// RegisterResponse reports a provisioned registration. Email verification
// is still pending at this point, handled outside this service.
type RegisterResponse struct {
	UserID      string `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantID    string `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	CompanyName string `json:"company_name" example:"Acme Payroll Ltd"`
	Email       string `json:"email" example:"jane@acmepayroll.co.uk"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantID string `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Role     string `json:"role" example:"admin"`
}

const (
	DeadlineTypeFPS = "FPS"
	DeadlineTypeEPS = "EPS"
)

// UpcomingDeadline is one HMRC filing deadline derived from a payroll run.
type UpcomingDeadline struct {
	ClientName   string    `json:"client_name" example:"Bluebird Cafe Ltd"`
	Type         string    `json:"type" example:"FPS"`
	Date         time.Time `json:"date" example:"2025-07-19T00:00:00Z"`
	PayrollRunID string    `json:"payroll_run_id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// DashboardStatsResponse is the dashboard snapshot for one tenant.
type DashboardStatsResponse struct {
	TotalClients       int64              `json:"total_clients" example:"12"`
	DueThisWeek        int                `json:"due_this_week" example:"3"`
	Overdue            int                `json:"overdue" example:"1"`
	CompletedThisMonth int                `json:"completed_this_month" example:"7"`
	UpcomingDeadlines  []UpcomingDeadline `json:"upcoming_deadlines"`
}

type ClientResponse struct {
	ID            string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantID      string    `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name          string    `json:"name" example:"Bluebird Cafe Ltd"`
	Status        string    `json:"status" example:"onboarding"`
	ContactName   string    `json:"contact_name" example:"Sam Smith"`
	ContactEmail  string    `json:"contact_email" example:"sam@bluebirdcafe.co.uk"`
	PayeReference string    `json:"paye_reference" example:"123/AB456"`
	CreatedAt     time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

type OnboardingRecordResponse struct {
	ID                 string                 `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ClientID           string                 `json:"client_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Tasks              []domain.ChecklistTask `json:"tasks"`
	ProgressPercentage int                    `json:"progress_percentage" example:"43"`
	CompletedAt        *time.Time             `json:"completed_at"`
	Revision           int                    `json:"revision" example:"4"`
}

// OnboardingClientResponse is a client in onboarding status with its
// checklist record.
type OnboardingClientResponse struct {
	ClientResponse
	Onboarding *OnboardingRecordResponse `json:"onboarding"`
}
