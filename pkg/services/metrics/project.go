package metrics

import (
	"context"

	"github.com/pm-tools/teampulse/pkg/models/domain"
)

// ProjectMetrics computes a single project's progress, budget utilization
// and sprint velocity rollup.
func (e *Engine) ProjectMetrics(ctx context.Context, projectID string) (*domain.ProjectMetricsSnapshot, error) {
	project, err := e.getProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	sprints, err := e.sprints.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	tasks, err := e.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	snapshot := buildProjectMetrics(project, sprints, tasks)
	return &snapshot, nil
}

func buildProjectMetrics(
	project *domain.Project,
	sprints []domain.Sprint,
	tasks []domain.Task,
) domain.ProjectMetricsSnapshot {
	snapshot := domain.ProjectMetricsSnapshot{
		ProjectID:    project.ID,
		Budget:       project.Budget,
		Spent:        project.Spent,
		Remaining:    project.Budget - project.Spent,
		TotalTasks:   len(tasks),
		TotalSprints: len(sprints),
	}

	for _, t := range tasks {
		snapshot.TotalStoryPoints += t.StoryPoints
		if t.Status == domain.TaskDone {
			snapshot.CompletedTasks++
			snapshot.CompletedStoryPoints += t.StoryPoints
		}
	}

	if snapshot.TotalTasks > 0 {
		snapshot.Progress = roundPct(float64(snapshot.CompletedTasks) / float64(snapshot.TotalTasks) * 100)
	}

	// Not clamped: utilization above 100 signals overspend.
	if project.Budget > 0 {
		snapshot.BudgetUtilization = roundPct(project.Spent / project.Budget * 100)
	}

	var velocitySum float64
	for _, s := range sprints {
		if s.Status == domain.SprintCompleted {
			snapshot.CompletedSprints++
			velocitySum += s.Velocity
		}
	}
	if snapshot.CompletedSprints > 0 {
		snapshot.AverageVelocity = round2(velocitySum / float64(snapshot.CompletedSprints))
	}

	return snapshot
}
