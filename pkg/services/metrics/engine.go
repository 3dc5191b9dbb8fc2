package metrics

import (
	"context"

	"github.com/pm-tools/teampulse/pkg/models/domain"
)

// Accessor interfaces are defined on the consumer side; pkg/store/sqlite
// satisfies them. By-id lookups return (nil, nil) for a missing id; the
// engine decides whether absence is an error.

type ProjectAccessor interface {
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
}

type SprintAccessor interface {
	GetByID(ctx context.Context, id string) (*domain.Sprint, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Sprint, error)
}

type TaskAccessor interface {
	ListByProject(ctx context.Context, projectID string) ([]domain.Task, error)
	ListBySprint(ctx context.Context, sprintID string) ([]domain.Task, error)
}

type TimeEntryAccessor interface {
	ListByProject(ctx context.Context, projectID string) ([]domain.TimeEntry, error)
}

type TransactionAccessor interface {
	ListByProject(ctx context.Context, projectID string) ([]domain.Transaction, error)
}

type InvoiceAccessor interface {
	ListByProject(ctx context.Context, projectID string) ([]domain.Invoice, error)
}

type UserAccessor interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

const defaultDashboardFanOut = 8

type Dependencies struct {
	Projects     ProjectAccessor
	Sprints      SprintAccessor
	Tasks        TaskAccessor
	TimeEntries  TimeEntryAccessor
	Transactions TransactionAccessor
	Invoices     InvoiceAccessor
	Users        UserAccessor

	// DashboardFanOut bounds concurrent per-project computations during a
	// dashboard rollup. Zero means the default.
	DashboardFanOut int
}

// Engine derives metrics and financial reports from persisted
// project-management data. It never mutates or persists anything; every
// call recomputes from the current state of the accessors.
type Engine struct {
	projects     ProjectAccessor
	sprints      SprintAccessor
	tasks        TaskAccessor
	timeEntries  TimeEntryAccessor
	transactions TransactionAccessor
	invoices     InvoiceAccessor
	users        UserAccessor
	fanOut       int
}

func NewEngine(deps Dependencies) *Engine {
	fanOut := deps.DashboardFanOut
	if fanOut <= 0 {
		fanOut = defaultDashboardFanOut
	}
	return &Engine{
		projects:     deps.Projects,
		sprints:      deps.Sprints,
		tasks:        deps.Tasks,
		timeEntries:  deps.TimeEntries,
		transactions: deps.Transactions,
		invoices:     deps.Invoices,
		users:        deps.Users,
		fanOut:       fanOut,
	}
}

func (e *Engine) getProject(ctx context.Context, id string) (*domain.Project, error) {
	project, err := e.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, &domain.NotFoundError{Kind: "project", ID: id}
	}
	return project, nil
}
