package api

import "time"

type HourlyRate struct {
	ProjectID string  `json:"projectId"`
	Rate      float64 `json:"rate"`
}

type SalaryAllocation struct {
	UserID          string  `json:"userId"`
	UserName        string  `json:"userName"`
	Salary          float64 `json:"salary"`
	IdealHourlyRate float64 `json:"idealHourlyRate"`
}

type ProjectMetrics struct {
	ProjectID            string  `json:"projectId"`
	Progress             int     `json:"progress"`
	TotalTasks           int     `json:"totalTasks"`
	CompletedTasks       int     `json:"completedTasks"`
	TotalStoryPoints     int     `json:"totalStoryPoints"`
	CompletedStoryPoints int     `json:"completedStoryPoints"`
	Budget               float64 `json:"budget"`
	Spent                float64 `json:"spent"`
	Remaining            float64 `json:"remaining"`
	BudgetUtilization    int     `json:"budgetUtilization"`
	TotalSprints         int     `json:"totalSprints"`
	CompletedSprints     int     `json:"completedSprints"`
	AverageVelocity      float64 `json:"averageVelocity"`
}

type SprintMetrics struct {
	SprintID             string    `json:"sprintId"`
	StoryPointsCommitted int       `json:"storyPointsCommitted"`
	StoryPointsCompleted int       `json:"storyPointsCompleted"`
	Velocity             float64   `json:"velocity"`
	CompletionRate       int       `json:"completionRate"`
	TotalTasks           int       `json:"totalTasks"`
	CompletedTasks       int       `json:"completedTasks"`
	AverageCycleTime     float64   `json:"averageCycleTime"`
	StartDate            time.Time `json:"startDate"`
	EndDate              time.Time `json:"endDate"`
}

type FinancialReport struct {
	ProjectID        string             `json:"projectId"`
	Budget           float64            `json:"budget"`
	Spent            float64            `json:"spent"`
	TotalIncome      float64            `json:"totalIncome"`
	TotalExpenses    float64            `json:"totalExpenses"`
	TotalSalaries    float64            `json:"totalSalaries"`
	NetProfit        float64            `json:"netProfit"`
	InvoiceCount     int                `json:"invoiceCount"`
	TransactionCount int                `json:"transactionCount"`
	TeamMemberCount  int                `json:"teamMemberCount"`
	Salaries         []SalaryAllocation `json:"salaries"`
}

type Dashboard struct {
	Timestamp         time.Time        `json:"timestamp"`
	TotalProjects     int              `json:"totalProjects"`
	TotalBudget       float64          `json:"totalBudget"`
	TotalSpent        float64          `json:"totalSpent"`
	RemainingBudget   float64          `json:"remainingBudget"`
	BudgetUtilization int              `json:"budgetUtilization"`
	TotalTasks        int              `json:"totalTasks"`
	CompletedTasks    int              `json:"completedTasks"`
	OverallProgress   int              `json:"overallProgress"`
	Projects          []ProjectMetrics `json:"projects"`
}

type MetricsUpdateEvent struct {
	ProjectID string         `json:"projectId,omitempty"`
	Kind      string         `json:"kind"`
	Payload   map[string]any `json:"payload,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
