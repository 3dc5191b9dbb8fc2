package metrics

import (
	"context"

	"github.com/pm-tools/teampulse/pkg/models/domain"
)

const unknownUserName = "Unknown"

// Salaries allocates the project's labor cost across contributors: each
// user's logged hours times the ideal hourly rate. Users with zero logged
// hours produce no allocation. Output order is unspecified.
func (e *Engine) Salaries(ctx context.Context, projectID string) ([]domain.SalaryAllocation, error) {
	project, err := e.getProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	entries, err := e.timeEntries.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return e.allocateSalaries(ctx, idealRate(project.Budget, entries), entries)
}

// allocateSalaries distributes hours*rate per contributor, resolving display
// names through the user accessor. Shared by Salaries and FinancialReport so
// the report does not re-fetch time entries.
func (e *Engine) allocateSalaries(
	ctx context.Context,
	rate float64,
	entries []domain.TimeEntry,
) ([]domain.SalaryAllocation, error) {
	allocations := make([]domain.SalaryAllocation, 0)
	for userID, hours := range hoursByUser(entries) {
		name := unknownUserName
		user, err := e.users.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			name = user.Name
		}

		allocations = append(allocations, domain.SalaryAllocation{
			UserID:          userID,
			UserName:        name,
			Salary:          round2(hours * rate),
			IdealHourlyRate: rate,
		})
	}

	return allocations, nil
}

func hoursByUser(entries []domain.TimeEntry) map[string]float64 {
	hours := make(map[string]float64)
	for _, e := range entries {
		if e.Hours == 0 {
			continue
		}
		hours[e.UserID] += e.Hours
	}
	return hours
}
