package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// ChecklistTask is one task of a client's onboarding checklist.
type ChecklistTask struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
	Required  bool   `json:"required"`
	Completed bool   `json:"completed"`
}

// ChecklistTasks is the ordered task list, stored as a jsonb document.
type ChecklistTasks []ChecklistTask

func (t ChecklistTasks) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *ChecklistTasks) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	case nil:
		*t = nil
		return nil
	default:
		return fmt.Errorf("unsupported type for ChecklistTasks: %T", value)
	}
}

// WithTaskCompleted returns a copy of the list with the completed flag of
// the task matching taskID set to completed. An unknown taskID leaves the
// list unchanged; callers get the copy either way.
func (t ChecklistTasks) WithTaskCompleted(taskID int, completed bool) ChecklistTasks {
	out := make(ChecklistTasks, len(t))
	copy(out, t)
	for i := range out {
		if out[i].ID == taskID {
			out[i].Completed = completed
		}
	}
	return out
}

// Progress computes the completion percentage over required tasks,
// rounded to the nearest integer. A checklist with no required tasks is
// considered complete, since nothing blocks it.
func (t ChecklistTasks) Progress() int {
	var total, done int
	for _, task := range t {
		if !task.Required {
			continue
		}
		total++
		if task.Completed {
			done++
		}
	}
	if total == 0 {
		return 100
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

// ClientOnboarding tracks the checklist of a client in onboarding status,
// 1:1 with the client. Revision guards concurrent checklist updates.
type ClientOnboarding struct {
	ID                 string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ClientID           string         `gorm:"type:uuid;not null;unique" json:"client_id"`
	Tasks              ChecklistTasks `gorm:"type:jsonb;not null" json:"tasks"`
	ProgressPercentage int            `gorm:"not null;default:0" json:"progress_percentage"`
	CompletedAt        *time.Time     `gorm:"type:timestamp with time zone" json:"completed_at"`
	Revision           int            `gorm:"not null;default:0" json:"revision"`
	CreatedAt          time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (ClientOnboarding) TableName() string {
	return "client_onboarding"
}
