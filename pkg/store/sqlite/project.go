package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pm-tools/teampulse/pkg/models/domain"
)

// ProjectStore is the read accessor for projects, plus the seed write used
// by tests and the seeding CLI. Lookups return (nil, nil) when the id does
// not exist; callers decide whether absence is an error.
type ProjectStore struct {
	db *sql.DB
}

func NewProjectStore(db *sql.DB) (*ProjectStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &ProjectStore{db: db}, nil
}

const projectColumns = `id, name, status, budget, spent, progress`

func (s *ProjectStore) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	row := s.db.QueryRowContext(ctx, query, id)

	var p domain.Project
	err := row.Scan(&p.ID, &p.Name, &p.Status, &p.Budget, &p.Spent, &p.Progress)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	return &p, nil
}

func (s *ProjectStore) List(ctx context.Context) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY name`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Status, &p.Budget, &p.Spent, &p.Progress); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectStore) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `INSERT INTO projects (` + projectColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		p.ID, p.Name, string(p.Status), p.Budget, p.Spent, p.Progress)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}
