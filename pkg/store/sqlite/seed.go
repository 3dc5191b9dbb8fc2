package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Seeder populates the database with a small demo dataset so the CLI and a
// freshly started server have something to aggregate over.
type Seeder struct {
	db *sql.DB
}

func NewSeeder(db *sql.DB) (*Seeder, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &Seeder{db: db}, nil
}

func (s *Seeder) Seed(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	ctx = WithTransaction(ctx, tx)

	projects, _ := NewProjectStore(s.db)
	sprints, _ := NewSprintStore(s.db)
	tasks, _ := NewTaskStore(s.db)
	timeEntries, _ := NewTimeEntryStore(s.db)
	transactions, _ := NewTransactionStore(s.db)
	invoices, _ := NewInvoiceStore(s.db)
	users, _ := NewUserStore(s.db)

	if err := seedDemoData(ctx, projects, sprints, tasks, timeEntries, transactions, invoices, users); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}

func seedDemoData(
	ctx context.Context,
	projects *ProjectStore,
	sprints *SprintStore,
	tasks *TaskStore,
	timeEntries *TimeEntryStore,
	transactions *TransactionStore,
	invoices *InvoiceStore,
	users *UserStore,
) error {
	now := time.Now().UTC()

	for _, u := range demoUsers() {
		if err := users.Create(ctx, &u); err != nil {
			return err
		}
	}

	for _, p := range demoProjects() {
		if err := projects.Create(ctx, &p); err != nil {
			return err
		}
	}

	for _, sp := range demoSprints(now) {
		if err := sprints.Create(ctx, &sp); err != nil {
			return err
		}
	}

	for _, t := range demoTasks(now) {
		if err := tasks.Create(ctx, &t); err != nil {
			return err
		}
	}

	for _, e := range demoTimeEntries() {
		if err := timeEntries.Create(ctx, &e); err != nil {
			return err
		}
	}

	for _, tr := range demoTransactions(now) {
		if err := transactions.Create(ctx, &tr); err != nil {
			return err
		}
	}

	for _, inv := range demoInvoices() {
		if err := invoices.Create(ctx, &inv); err != nil {
			return err
		}
	}

	return nil
}
