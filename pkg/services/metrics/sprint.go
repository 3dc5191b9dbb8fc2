package metrics

import (
	"context"

	"github.com/pm-tools/teampulse/pkg/models/domain"
)

const hoursPerDay = 24

// SprintMetrics computes a sprint's completion rate and task cycle-time
// statistics.
func (e *Engine) SprintMetrics(ctx context.Context, sprintID string) (*domain.SprintMetricsSnapshot, error) {
	sprint, err := e.sprints.GetByID(ctx, sprintID)
	if err != nil {
		return nil, err
	}
	if sprint == nil {
		return nil, &domain.NotFoundError{Kind: "sprint", ID: sprintID}
	}

	tasks, err := e.tasks.ListBySprint(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	snapshot := buildSprintMetrics(sprint, tasks)
	return &snapshot, nil
}

func buildSprintMetrics(sprint *domain.Sprint, tasks []domain.Task) domain.SprintMetricsSnapshot {
	snapshot := domain.SprintMetricsSnapshot{
		SprintID:             sprint.ID,
		StoryPointsCommitted: sprint.StoryPointsCommitted,
		StoryPointsCompleted: sprint.StoryPointsCompleted,
		Velocity:             sprint.Velocity,
		TotalTasks:           len(tasks),
		StartDate:            sprint.StartDate,
		EndDate:              sprint.EndDate,
	}

	if sprint.StoryPointsCommitted > 0 {
		snapshot.CompletionRate = roundPct(
			float64(sprint.StoryPointsCompleted) / float64(sprint.StoryPointsCommitted) * 100)
	}

	// Cycle time: creation to last update of a done task, in 24h days.
	var cycleSum float64
	for _, t := range tasks {
		if t.Status != domain.TaskDone {
			continue
		}
		snapshot.CompletedTasks++
		cycleSum += t.UpdatedAt.Sub(t.CreatedAt).Hours() / hoursPerDay
	}
	if snapshot.CompletedTasks > 0 {
		snapshot.AverageCycleTime = round2(cycleSum / float64(snapshot.CompletedTasks))
	}

	return snapshot
}
