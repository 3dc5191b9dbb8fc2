package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/pm-tools/teampulse/pkg/models/domain"
)

type TaskStore struct {
	db *sql.DB
}

func NewTaskStore(db *sql.DB) (*TaskStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &TaskStore{db: db}, nil
}

const taskColumns = `id, project_id, sprint_id, status, story_points, created_at, updated_at`

func (s *TaskStore) ListByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ?`
	return s.list(ctx, query, projectID)
}

func (s *TaskStore) ListBySprint(ctx context.Context, sprintID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE sprint_id = ?`
	return s.list(ctx, query, sprintID)
}

func (s *TaskStore) list(ctx context.Context, query string, arg any) ([]domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		var sprintID sql.NullString
		err := rows.Scan(&t.ID, &t.ProjectID, &sprintID, &t.Status,
			&t.StoryPoints, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		t.SprintID = sprintID.String
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskStore) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	var sprintID any
	if t.SprintID != "" {
		sprintID = t.SprintID
	}
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		t.ID, t.ProjectID, sprintID, string(t.Status), t.StoryPoints, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}
