package metrics

import (
	"context"
	"time"

	"github.com/pm-tools/teampulse/pkg/models/domain"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Dashboard rolls project metrics up across every project that is neither
// completed nor archived. Per-project computations run concurrently, bounded
// by the configured fan-out; one failure aborts the whole rollup. Switching
// to a partial-result policy only touches this function.
func (e *Engine) Dashboard(ctx context.Context) (*domain.DashboardSnapshot, error) {
	projects, err := e.projects.List(ctx)
	if err != nil {
		return nil, err
	}

	var active []domain.Project
	for _, p := range projects {
		if p.Status == domain.ProjectCompleted || p.Status == domain.ProjectArchived {
			continue
		}
		active = append(active, p)
	}

	zerolog.Ctx(ctx).Debug().
		Int("active_projects", len(active)).
		Msg("computing dashboard rollup")

	snapshots := make([]domain.ProjectMetricsSnapshot, len(active))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.fanOut)
	for i, p := range active {
		i, p := i, p
		g.Go(func() error {
			snapshot, err := e.ProjectMetrics(gctx, p.ID)
			if err != nil {
				return err
			}
			snapshots[i] = *snapshot
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rollUpDashboard(time.Now().UTC(), snapshots), nil
}

func rollUpDashboard(now time.Time, snapshots []domain.ProjectMetricsSnapshot) *domain.DashboardSnapshot {
	dashboard := &domain.DashboardSnapshot{
		Timestamp:     now,
		TotalProjects: len(snapshots),
		Projects:      snapshots,
	}

	for _, s := range snapshots {
		dashboard.TotalBudget += s.Budget
		dashboard.TotalSpent += s.Spent
		dashboard.TotalTasks += s.TotalTasks
		dashboard.CompletedTasks += s.CompletedTasks
	}

	dashboard.RemainingBudget = dashboard.TotalBudget - dashboard.TotalSpent
	if dashboard.TotalBudget > 0 {
		dashboard.BudgetUtilization = roundPct(dashboard.TotalSpent / dashboard.TotalBudget * 100)
	}
	if dashboard.TotalTasks > 0 {
		dashboard.OverallProgress = roundPct(
			float64(dashboard.CompletedTasks) / float64(dashboard.TotalTasks) * 100)
	}

	return dashboard
}
