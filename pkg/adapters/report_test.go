package adapters

import (
	"testing"
	"time"

	"github.com/pm-tools/teampulse/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFinancialReportToReport(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	report := MapFinancialReportToReport(&domain.FinancialReport{
		ProjectID: "p1", Budget: 1000, Spent: 400,
		TotalIncome: 500, TotalExpenses: 200, TotalSalaries: 300, NetProfit: 0,
		InvoiceCount: 1, TransactionCount: 2, TeamMemberCount: 1,
		Salaries: []domain.SalaryAllocation{
			{UserID: "u1", UserName: "Ada", Salary: 300, IdealHourlyRate: 30},
		},
	}, now)

	assert.Equal(t, "Financial report for project p1", report.Title)
	assert.Equal(t, now, report.GeneratedAt)
	assert.Equal(t, 0.0, report.TotalAmount)
	require.Len(t, report.Sections, 3)
	assert.Equal(t, "Budget", report.Sections[0].Title)
	assert.Equal(t, "Profitability", report.Sections[1].Title)

	salaries := report.Sections[2]
	require.Len(t, salaries.Details, 1)
	assert.Equal(t, "Ada", salaries.Details[0].Name)
	assert.Equal(t, "at 30.00/h", salaries.Details[0].Description)
}

func TestMapDashboardToReport(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	report := MapDashboardToReport(&domain.DashboardSnapshot{
		Timestamp: now, TotalProjects: 1, TotalBudget: 1000, TotalSpent: 400,
		RemainingBudget: 600, BudgetUtilization: 40, OverallProgress: 50,
		Projects: []domain.ProjectMetricsSnapshot{
			{ProjectID: "p1", Progress: 50, TotalTasks: 2, CompletedTasks: 1, BudgetUtilization: 40},
		},
	})

	assert.Equal(t, "Dashboard", report.Title)
	assert.Equal(t, now, report.GeneratedAt)
	require.Len(t, report.Sections, 2)

	projects := report.Sections[1]
	require.Len(t, projects.Details, 1)
	assert.Equal(t, "p1", projects.Details[0].Name)
	assert.Equal(t, "1/2 tasks done, 40% of budget used", projects.Details[0].Description)
}

func TestMapEventRoundTrip(t *testing.T) {
	event := domain.MetricsUpdateEvent{
		ProjectID: "p1",
		Kind:      domain.EventKindSprint,
		Payload:   map[string]any{"sprintId": "s1"},
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, event, MapEventApiToDomain(MapEventDomainToApi(event)))
}
