package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pm-tools/teampulse/pkg/models/domain"
)

type SprintStore struct {
	db *sql.DB
}

func NewSprintStore(db *sql.DB) (*SprintStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &SprintStore{db: db}, nil
}

const sprintColumns = `id, project_id, status, start_date, end_date,
	story_points_committed, story_points_completed, velocity`

func scanSprint(row interface{ Scan(...any) error }) (*domain.Sprint, error) {
	var s domain.Sprint
	err := row.Scan(&s.ID, &s.ProjectID, &s.Status, &s.StartDate, &s.EndDate,
		&s.StoryPointsCommitted, &s.StoryPointsCompleted, &s.Velocity)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *SprintStore) GetByID(ctx context.Context, id string) (*domain.Sprint, error) {
	query := `SELECT ` + sprintColumns + ` FROM sprints WHERE id = ?`
	sprint, err := scanSprint(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning sprint: %w", err)
	}
	return sprint, nil
}

func (s *SprintStore) ListByProject(ctx context.Context, projectID string) ([]domain.Sprint, error) {
	query := `SELECT ` + sprintColumns + ` FROM sprints WHERE project_id = ? ORDER BY start_date`
	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing sprints: %w", err)
	}
	defer rows.Close()

	var sprints []domain.Sprint
	for rows.Next() {
		sprint, err := scanSprint(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning sprint: %w", err)
		}
		sprints = append(sprints, *sprint)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sprints: %w", err)
	}
	return sprints, nil
}

func (s *SprintStore) Create(ctx context.Context, sprint *domain.Sprint) error {
	if sprint.ID == "" {
		sprint.ID = uuid.NewString()
	}
	query := `INSERT INTO sprints (` + sprintColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		sprint.ID, sprint.ProjectID, string(sprint.Status),
		sprint.StartDate, sprint.EndDate,
		sprint.StoryPointsCommitted, sprint.StoryPointsCompleted, sprint.Velocity)
	if err != nil {
		return fmt.Errorf("inserting sprint: %w", err)
	}
	return nil
}
