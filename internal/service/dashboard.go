package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/payrollhq/bureau-api/internal/api/dto"
	"github.com/payrollhq/bureau-api/internal/domain"
	"github.com/payrollhq/bureau-api/internal/repository"
	"github.com/payrollhq/bureau-api/pkg/utils"
)

// maxUpcomingDeadlines caps the dashboard deadline feed.
const maxUpcomingDeadlines = 10

// unknownClientName is shown when a run's client join produced no name.
const unknownClientName = "Unknown Client"

// DashboardService derives the per-tenant dashboard snapshot from the
// tenant's payroll runs and client count.
type DashboardService struct {
	repo        repository.Repository
	provisioner *ProvisioningService
	now         func() time.Time
}

func NewDashboardService(repo repository.Repository, provisioner *ProvisioningService) *DashboardService {
	return &DashboardService{
		repo:        repo,
		provisioner: provisioner,
		now:         time.Now,
	}
}

// GetStats resolves the principal's tenant (provisioning it lazily on
// first access) and computes the dashboard snapshot. Apart from that
// possible provisioning it is read-only.
func (s *DashboardService) GetStats(ctx context.Context, p Principal) (*dto.DashboardStatsResponse, error) {
	user, err := s.provisioner.EnsureUser(ctx, p)
	if err != nil {
		return nil, err
	}

	runs, err := s.repo.PayrollRun().ListForTenant(ctx, user.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payroll runs: %w", err)
	}

	totalClients, err := s.repo.Client().CountForTenant(ctx, user.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	stats := ComputeStats(runs, totalClients, s.now())
	return &stats, nil
}

// ComputeStats classifies payroll runs into the dashboard counters and
// derives the capped deadline feed. All comparisons are on calendar days;
// the week and two-week windows are half-open [today, today+N).
func ComputeStats(runs []domain.PayrollRun, totalClients int64, now time.Time) dto.DashboardStatsResponse {
	today := utils.StartOfDay(now)
	weekFromNow := today.AddDate(0, 0, 7)
	twoWeeksFromNow := today.AddDate(0, 0, 14)
	monthStart := utils.StartOfMonth(now)

	stats := dto.DashboardStatsResponse{
		TotalClients:      totalClients,
		UpcomingDeadlines: []dto.UpcomingDeadline{},
	}

	for i := range runs {
		run := &runs[i]

		if run.Status == domain.RunStatusComplete {
			if run.UpdatedAt == nil {
				continue
			}
			updatedDay := utils.StartOfDay(*run.UpdatedAt)
			if !updatedDay.Before(monthStart) && !updatedDay.After(today) {
				stats.CompletedThisMonth++
			}
			continue
		}

		payDay := utils.StartOfDay(run.PayDate)

		if payDay.Before(today) {
			stats.Overdue++
			continue
		}
		if payDay.Before(weekFromNow) {
			stats.DueThisWeek++
		}
		if payDay.Before(twoWeeksFromNow) {
			stats.UpcomingDeadlines = append(stats.UpcomingDeadlines, deadlinesForRun(run)...)
		}
	}

	sort.SliceStable(stats.UpcomingDeadlines, func(i, j int) bool {
		return stats.UpcomingDeadlines[i].Date.Before(stats.UpcomingDeadlines[j].Date)
	})
	if len(stats.UpcomingDeadlines) > maxUpcomingDeadlines {
		stats.UpcomingDeadlines = stats.UpcomingDeadlines[:maxUpcomingDeadlines]
	}

	return stats
}

// deadlinesForRun emits up to two filing deadlines for a run: FPS from the
// RTI due date and EPS from the EPS due date, whichever are set.
func deadlinesForRun(run *domain.PayrollRun) []dto.UpcomingDeadline {
	clientName := unknownClientName
	if run.Client != nil && run.Client.Name != "" {
		clientName = run.Client.Name
	}

	var deadlines []dto.UpcomingDeadline
	if run.RTIDueDate != nil {
		deadlines = append(deadlines, dto.UpcomingDeadline{
			ClientName:   clientName,
			Type:         dto.DeadlineTypeFPS,
			Date:         *run.RTIDueDate,
			PayrollRunID: run.ID,
		})
	}
	if run.EPSDueDate != nil {
		deadlines = append(deadlines, dto.UpcomingDeadline{
			ClientName:   clientName,
			Type:         dto.DeadlineTypeEPS,
			Date:         *run.EPSDueDate,
			PayrollRunID: run.ID,
		})
	}
	return deadlines
}
