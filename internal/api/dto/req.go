package dto

// RegisterRequest starts tenant provisioning for a new bureau.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required" example:"jane@acmepayroll.co.uk"`
	Password    string `json:"password" binding:"required" example:"Str0ngPass"`
	CompanyName string `json:"company_name" binding:"required" example:"Acme Payroll Ltd"`
	AdminName   string `json:"admin_name" binding:"required" example:"Jane Doe"`
	Phone       string `json:"phone" example:"+44 20 7946 0000"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jane@acmepayroll.co.uk"`
	Password string `json:"password" binding:"required" example:"Str0ngPass"`
}

type CreateClientRequest struct {
	Name          string `json:"name" binding:"required" example:"Bluebird Cafe Ltd"`
	ContactName   string `json:"contact_name" example:"Sam Smith"`
	ContactEmail  string `json:"contact_email" example:"sam@bluebirdcafe.co.uk"`
	PayeReference string `json:"paye_reference" example:"123/AB456"`
}

// UpdateOnboardingTaskRequest sets one checklist task's completed flag.
// Completed is a pointer so that an explicit false binds.
type UpdateOnboardingTaskRequest struct {
	ClientID  string `json:"client_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	TaskID    int    `json:"task_id" binding:"required" example:"1"`
	Completed *bool  `json:"completed" binding:"required" example:"true"`
}
