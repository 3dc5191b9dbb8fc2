package domain

import "time"

// HourlyRateEstimate is a project's break-even billing rate: budget divided
// by total logged hours.
type HourlyRateEstimate struct {
	ProjectID string
	Rate      float64
}

// SalaryAllocation is one contributor's share of a project's labor cost.
type SalaryAllocation struct {
	UserID          string
	UserName        string
	Salary          float64
	IdealHourlyRate float64
}

// ProjectMetricsSnapshot is the derived state of a single project at read
// time. Never persisted.
type ProjectMetricsSnapshot struct {
	ProjectID            string
	Progress             int // 0-100, from task completion
	TotalTasks           int
	CompletedTasks       int
	TotalStoryPoints     int
	CompletedStoryPoints int
	Budget               float64
	Spent                float64
	Remaining            float64
	BudgetUtilization    int // percent, may exceed 100 when overspent
	TotalSprints         int
	CompletedSprints     int
	AverageVelocity      float64
}

// SprintMetricsSnapshot is the derived state of a single sprint.
type SprintMetricsSnapshot struct {
	SprintID             string
	StoryPointsCommitted int
	StoryPointsCompleted int
	Velocity             float64
	CompletionRate       int // percent
	TotalTasks           int
	CompletedTasks       int
	AverageCycleTime     float64 // days
	StartDate            time.Time
	EndDate              time.Time
}

// FinancialReport is a project profitability rollup. TotalIncome sums
// invoice totals only; income-type transactions contribute to
// TransactionCount but not to the sum.
type FinancialReport struct {
	ProjectID        string
	Budget           float64
	Spent            float64
	TotalIncome      float64
	TotalExpenses    float64
	TotalSalaries    float64
	NetProfit        float64
	InvoiceCount     int
	TransactionCount int
	TeamMemberCount  int
	Salaries         []SalaryAllocation
}

// DashboardSnapshot is a portfolio rollup across all projects that are not
// completed or archived.
type DashboardSnapshot struct {
	Timestamp         time.Time
	TotalProjects     int
	TotalBudget       float64
	TotalSpent        float64
	RemainingBudget   float64
	BudgetUtilization int
	TotalTasks        int
	CompletedTasks    int
	OverallProgress   int
	Projects          []ProjectMetricsSnapshot
}

type EventKind string

const (
	EventKindSprint    EventKind = "sprint"
	EventKindProject   EventKind = "project"
	EventKindDashboard EventKind = "dashboard"
)

// MetricsUpdateEvent announces a metric change to live subscribers. Events
// are not durable; anything published without an active subscriber is lost.
type MetricsUpdateEvent struct {
	ProjectID string
	Kind      EventKind
	Payload   map[string]any
	Timestamp time.Time
}
