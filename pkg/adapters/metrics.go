package adapters

import (
	"github.com/pm-tools/teampulse/pkg/models/api"
	"github.com/pm-tools/teampulse/pkg/models/domain"
)

func MapSalaryAllocationDomainToApi(s domain.SalaryAllocation) api.SalaryAllocation {
	return api.SalaryAllocation{
		UserID:          s.UserID,
		UserName:        s.UserName,
		Salary:          s.Salary,
		IdealHourlyRate: s.IdealHourlyRate,
	}
}

func MapSalaryAllocationsDomainToApi(salaries []domain.SalaryAllocation) []api.SalaryAllocation {
	out := make([]api.SalaryAllocation, 0, len(salaries))
	for _, s := range salaries {
		out = append(out, MapSalaryAllocationDomainToApi(s))
	}
	return out
}

func MapProjectMetricsDomainToApi(s domain.ProjectMetricsSnapshot) api.ProjectMetrics {
	return api.ProjectMetrics{
		ProjectID:            s.ProjectID,
		Progress:             s.Progress,
		TotalTasks:           s.TotalTasks,
		CompletedTasks:       s.CompletedTasks,
		TotalStoryPoints:     s.TotalStoryPoints,
		CompletedStoryPoints: s.CompletedStoryPoints,
		Budget:               s.Budget,
		Spent:                s.Spent,
		Remaining:            s.Remaining,
		BudgetUtilization:    s.BudgetUtilization,
		TotalSprints:         s.TotalSprints,
		CompletedSprints:     s.CompletedSprints,
		AverageVelocity:      s.AverageVelocity,
	}
}

func MapSprintMetricsDomainToApi(s domain.SprintMetricsSnapshot) api.SprintMetrics {
	return api.SprintMetrics{
		SprintID:             s.SprintID,
		StoryPointsCommitted: s.StoryPointsCommitted,
		StoryPointsCompleted: s.StoryPointsCompleted,
		Velocity:             s.Velocity,
		CompletionRate:       s.CompletionRate,
		TotalTasks:           s.TotalTasks,
		CompletedTasks:       s.CompletedTasks,
		AverageCycleTime:     s.AverageCycleTime,
		StartDate:            s.StartDate,
		EndDate:              s.EndDate,
	}
}

func MapFinancialReportDomainToApi(r *domain.FinancialReport) api.FinancialReport {
	return api.FinancialReport{
		ProjectID:        r.ProjectID,
		Budget:           r.Budget,
		Spent:            r.Spent,
		TotalIncome:      r.TotalIncome,
		TotalExpenses:    r.TotalExpenses,
		TotalSalaries:    r.TotalSalaries,
		NetProfit:        r.NetProfit,
		InvoiceCount:     r.InvoiceCount,
		TransactionCount: r.TransactionCount,
		TeamMemberCount:  r.TeamMemberCount,
		Salaries:         MapSalaryAllocationsDomainToApi(r.Salaries),
	}
}

func MapDashboardDomainToApi(d *domain.DashboardSnapshot) api.Dashboard {
	projects := make([]api.ProjectMetrics, 0, len(d.Projects))
	for _, p := range d.Projects {
		projects = append(projects, MapProjectMetricsDomainToApi(p))
	}
	return api.Dashboard{
		Timestamp:         d.Timestamp,
		TotalProjects:     d.TotalProjects,
		TotalBudget:       d.TotalBudget,
		TotalSpent:        d.TotalSpent,
		RemainingBudget:   d.RemainingBudget,
		BudgetUtilization: d.BudgetUtilization,
		TotalTasks:        d.TotalTasks,
		CompletedTasks:    d.CompletedTasks,
		OverallProgress:   d.OverallProgress,
		Projects:          projects,
	}
}

func MapEventApiToDomain(e api.MetricsUpdateEvent) domain.MetricsUpdateEvent {
	return domain.MetricsUpdateEvent{
		ProjectID: e.ProjectID,
		Kind:      domain.EventKind(e.Kind),
		Payload:   e.Payload,
		Timestamp: e.Timestamp,
	}
}

func MapEventDomainToApi(e domain.MetricsUpdateEvent) api.MetricsUpdateEvent {
	return api.MetricsUpdateEvent{
		ProjectID: e.ProjectID,
		Kind:      string(e.Kind),
		Payload:   e.Payload,
		Timestamp: e.Timestamp,
	}
}
