package metrics

import (
	"context"

	"github.com/pm-tools/teampulse/pkg/models/domain"
)

// IdealHourlyRate is the project's break-even billing rate: budget divided
// by total logged hours, two-decimal rounded. Zero logged hours yields a
// zero rate, not an error.
func (e *Engine) IdealHourlyRate(ctx context.Context, projectID string) (float64, error) {
	project, err := e.getProject(ctx, projectID)
	if err != nil {
		return 0, err
	}

	entries, err := e.timeEntries.ListByProject(ctx, projectID)
	if err != nil {
		return 0, err
	}

	return idealRate(project.Budget, entries), nil
}

func idealRate(budget float64, entries []domain.TimeEntry) float64 {
	total := totalHours(entries)
	if total == 0 {
		return 0
	}
	return round2(budget / total)
}

func totalHours(entries []domain.TimeEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Hours
	}
	return total
}
