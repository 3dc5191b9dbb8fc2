package metrics

import (
	"context"

	"github.com/pm-tools/teampulse/pkg/models/domain"
)

// FinancialReport composes income, expenses and salary allocations into a
// profitability report. All inputs are fetched once; the rate and salary
// stages reuse the same time entries.
//
// TotalIncome sums invoice totals only. Income-type transactions count
// toward TransactionCount but not the sum.
func (e *Engine) FinancialReport(ctx context.Context, projectID string) (*domain.FinancialReport, error) {
	project, err := e.getProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	entries, err := e.timeEntries.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	transactions, err := e.transactions.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	invoices, err := e.invoices.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	rate := idealRate(project.Budget, entries)
	salaries, err := e.allocateSalaries(ctx, rate, entries)
	if err != nil {
		return nil, err
	}

	report := buildFinancialReport(project, transactions, invoices, salaries)
	return &report, nil
}

func buildFinancialReport(
	project *domain.Project,
	transactions []domain.Transaction,
	invoices []domain.Invoice,
	salaries []domain.SalaryAllocation,
) domain.FinancialReport {
	report := domain.FinancialReport{
		ProjectID:        project.ID,
		Budget:           project.Budget,
		Spent:            project.Spent,
		InvoiceCount:     len(invoices),
		TransactionCount: len(transactions),
		TeamMemberCount:  len(salaries),
		Salaries:         salaries,
	}

	for _, inv := range invoices {
		report.TotalIncome += inv.Total
	}

	for _, t := range transactions {
		if t.Type == domain.TransactionExpense {
			report.TotalExpenses += t.Amount
		}
	}

	for _, s := range salaries {
		report.TotalSalaries += s.Salary
	}

	report.NetProfit = report.TotalIncome - report.TotalExpenses - report.TotalSalaries
	return report
}
