package adapters

import (
	"fmt"
	"time"

	"github.com/pm-tools/teampulse/pkg/models/domain"
)

// MapFinancialReportToReport flattens a financial report into the generic
// renderable form used by the terminal reporters.
func MapFinancialReportToReport(r *domain.FinancialReport, now time.Time) *domain.Report {
	budget := domain.ReportSection{
		Title: "Budget",
		Details: []domain.ReportDetail{
			{Name: "Budget", Value: r.Budget, Unit: "USD"},
			{Name: "Spent", Value: r.Spent, Unit: "USD"},
		},
	}

	profitability := domain.ReportSection{
		Title: "Profitability",
		Details: []domain.ReportDetail{
			{Name: "Total income", Value: r.TotalIncome, Unit: "USD",
				Description: fmt.Sprintf("%d invoices", r.InvoiceCount)},
			{Name: "Total expenses", Value: r.TotalExpenses, Unit: "USD",
				Description: fmt.Sprintf("%d transactions", r.TransactionCount)},
			{Name: "Total salaries", Value: r.TotalSalaries, Unit: "USD",
				Description: fmt.Sprintf("%d contributors", r.TeamMemberCount)},
			{Name: "Net profit", Value: r.NetProfit, Unit: "USD"},
		},
	}

	salaries := domain.ReportSection{Title: "Salary allocations"}
	for _, s := range r.Salaries {
		salaries.Details = append(salaries.Details, domain.ReportDetail{
			Name:        s.UserName,
			Value:       s.Salary,
			Unit:        "USD",
			Description: fmt.Sprintf("at %.2f/h", s.IdealHourlyRate),
		})
	}

	return &domain.Report{
		Title:       fmt.Sprintf("Financial report for project %s", r.ProjectID),
		GeneratedAt: now,
		Sections:    []domain.ReportSection{budget, profitability, salaries},
		TotalAmount: r.NetProfit,
		Currency:    "USD",
	}
}

// MapSprintMetricsToReport flattens a sprint snapshot for display.
func MapSprintMetricsToReport(s *domain.SprintMetricsSnapshot, now time.Time) *domain.Report {
	section := domain.ReportSection{
		Title: "Sprint metrics",
		Details: []domain.ReportDetail{
			{Name: "Committed", Value: s.StoryPointsCommitted, Unit: "points"},
			{Name: "Completed", Value: s.StoryPointsCompleted, Unit: "points"},
			{Name: "Completion rate", Value: s.CompletionRate, Unit: "%"},
			{Name: "Velocity", Value: s.Velocity, Unit: "points"},
			{Name: "Tasks", Value: s.TotalTasks},
			{Name: "Tasks done", Value: s.CompletedTasks},
			{Name: "Average cycle time", Value: s.AverageCycleTime, Unit: "days"},
		},
	}

	return &domain.Report{
		Title: fmt.Sprintf("Sprint %s (%s to %s)", s.SprintID,
			s.StartDate.Format("2006-01-02"), s.EndDate.Format("2006-01-02")),
		GeneratedAt: now,
		Sections:    []domain.ReportSection{section},
	}
}

// MapDashboardToReport flattens the portfolio rollup for display.
func MapDashboardToReport(d *domain.DashboardSnapshot) *domain.Report {
	totals := domain.ReportSection{
		Title: "Portfolio",
		Details: []domain.ReportDetail{
			{Name: "Active projects", Value: d.TotalProjects},
			{Name: "Total budget", Value: d.TotalBudget, Unit: "USD"},
			{Name: "Total spent", Value: d.TotalSpent, Unit: "USD"},
			{Name: "Remaining", Value: d.RemainingBudget, Unit: "USD"},
			{Name: "Budget utilization", Value: d.BudgetUtilization, Unit: "%"},
			{Name: "Overall progress", Value: d.OverallProgress, Unit: "%"},
		},
	}

	projects := domain.ReportSection{Title: "Projects"}
	for _, p := range d.Projects {
		projects.Details = append(projects.Details, domain.ReportDetail{
			Name:  p.ProjectID,
			Value: p.Progress,
			Unit:  "%",
			Description: fmt.Sprintf("%d/%d tasks done, %d%% of budget used",
				p.CompletedTasks, p.TotalTasks, p.BudgetUtilization),
		})
	}

	return &domain.Report{
		Title:       "Dashboard",
		GeneratedAt: d.Timestamp,
		Sections:    []domain.ReportSection{totals, projects},
		TotalAmount: d.TotalBudget,
		Currency:    "USD",
	}
}
