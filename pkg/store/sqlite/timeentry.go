package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/pm-tools/teampulse/pkg/models/domain"
)

type TimeEntryStore struct {
	db *sql.DB
}

func NewTimeEntryStore(db *sql.DB) (*TimeEntryStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &TimeEntryStore{db: db}, nil
}

const timeEntryColumns = `id, task_id, project_id, user_id, hours`

func (s *TimeEntryStore) ListByProject(ctx context.Context, projectID string) ([]domain.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE project_id = ?`
	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.TimeEntry
	for rows.Next() {
		var e domain.TimeEntry
		var taskID sql.NullString
		if err := rows.Scan(&e.ID, &taskID, &e.ProjectID, &e.UserID, &e.Hours); err != nil {
			return nil, fmt.Errorf("scanning time entry: %w", err)
		}
		e.TaskID = taskID.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time entries: %w", err)
	}
	return entries, nil
}

func (s *TimeEntryStore) Create(ctx context.Context, e *domain.TimeEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	var taskID any
	if e.TaskID != "" {
		taskID = e.TaskID
	}
	query := `INSERT INTO time_entries (` + timeEntryColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := executor(ctx, s.db).ExecContext(ctx, query, e.ID, taskID, e.ProjectID, e.UserID, e.Hours)
	if err != nil {
		return fmt.Errorf("inserting time entry: %w", err)
	}
	return nil
}
