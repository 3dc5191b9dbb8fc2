package sqlite

import (
	"time"

	"github.com/pm-tools/teampulse/pkg/models/domain"
)

func demoUsers() []domain.User {
	return []domain.User{
		{ID: "user-ada", Name: "Ada Fernandez"},
		{ID: "user-bo", Name: "Bo Lindqvist"},
		{ID: "user-chi", Name: "Chi Nguyen"},
	}
}

func demoProjects() []domain.Project {
	return []domain.Project{
		{ID: "proj-atlas", Name: "Atlas Redesign", Status: domain.ProjectActive, Budget: 50000, Spent: 21000},
		{ID: "proj-beacon", Name: "Beacon Mobile", Status: domain.ProjectActive, Budget: 30000, Spent: 34000},
		{ID: "proj-cove", Name: "Cove Migration", Status: domain.ProjectCompleted, Budget: 12000, Spent: 11800},
	}
}

func demoSprints(now time.Time) []domain.Sprint {
	return []domain.Sprint{
		{
			ID: "sprint-atlas-1", ProjectID: "proj-atlas", Status: domain.SprintCompleted,
			StartDate: now.AddDate(0, 0, -28), EndDate: now.AddDate(0, 0, -14),
			StoryPointsCommitted: 20, StoryPointsCompleted: 15, Velocity: 15,
		},
		{
			ID: "sprint-atlas-2", ProjectID: "proj-atlas", Status: domain.SprintActive,
			StartDate: now.AddDate(0, 0, -14), EndDate: now,
			StoryPointsCommitted: 18, StoryPointsCompleted: 7, Velocity: 0,
		},
		{
			ID: "sprint-beacon-1", ProjectID: "proj-beacon", Status: domain.SprintCompleted,
			StartDate: now.AddDate(0, 0, -21), EndDate: now.AddDate(0, 0, -7),
			StoryPointsCommitted: 12, StoryPointsCompleted: 12, Velocity: 12,
		},
	}
}

func demoTasks(now time.Time) []domain.Task {
	return []domain.Task{
		{
			ID: "task-atlas-1", ProjectID: "proj-atlas", SprintID: "sprint-atlas-1",
			Status: domain.TaskDone, StoryPoints: 8,
			CreatedAt: now.AddDate(0, 0, -27), UpdatedAt: now.AddDate(0, 0, -20),
		},
		{
			ID: "task-atlas-2", ProjectID: "proj-atlas", SprintID: "sprint-atlas-1",
			Status: domain.TaskDone, StoryPoints: 7,
			CreatedAt: now.AddDate(0, 0, -26), UpdatedAt: now.AddDate(0, 0, -16),
		},
		{
			ID: "task-atlas-3", ProjectID: "proj-atlas", SprintID: "sprint-atlas-2",
			Status: domain.TaskInProgress, StoryPoints: 10,
			CreatedAt: now.AddDate(0, 0, -13), UpdatedAt: now.AddDate(0, 0, -2),
		},
		{
			ID: "task-beacon-1", ProjectID: "proj-beacon", SprintID: "sprint-beacon-1",
			Status: domain.TaskDone, StoryPoints: 12,
			CreatedAt: now.AddDate(0, 0, -20), UpdatedAt: now.AddDate(0, 0, -8),
		},
		{
			ID: "task-beacon-2", ProjectID: "proj-beacon",
			Status: domain.TaskBlocked, StoryPoints: 5,
			CreatedAt: now.AddDate(0, 0, -6), UpdatedAt: now.AddDate(0, 0, -6),
		},
	}
}

func demoTimeEntries() []domain.TimeEntry {
	return []domain.TimeEntry{
		{ID: "entry-1", TaskID: "task-atlas-1", ProjectID: "proj-atlas", UserID: "user-ada", Hours: 40},
		{ID: "entry-2", TaskID: "task-atlas-2", ProjectID: "proj-atlas", UserID: "user-bo", Hours: 60},
		{ID: "entry-3", TaskID: "task-atlas-3", ProjectID: "proj-atlas", UserID: "user-ada", Hours: 12},
		{ID: "entry-4", TaskID: "task-beacon-1", ProjectID: "proj-beacon", UserID: "user-chi", Hours: 55},
	}
}

func demoTransactions(now time.Time) []domain.Transaction {
	return []domain.Transaction{
		{
			ID: "txn-1", Type: domain.TransactionExpense, Amount: 1200, Currency: "USD",
			ProjectID: "proj-atlas", Category: "software", Date: now.AddDate(0, 0, -18),
		},
		{
			ID: "txn-2", Type: domain.TransactionExpense, Amount: 800, Currency: "USD",
			ProjectID: "proj-atlas", Category: "contractors", Date: now.AddDate(0, 0, -9),
		},
		{
			ID: "txn-3", Type: domain.TransactionIncome, Amount: 5000, Currency: "USD",
			ProjectID: "proj-atlas", ClientID: "client-orla", Category: "retainer", Date: now.AddDate(0, 0, -5),
		},
	}
}

func demoInvoices() []domain.Invoice {
	return []domain.Invoice{
		{
			ID: "inv-1", ClientID: "client-orla", ProjectID: "proj-atlas",
			Amount: 20000, Tax: 2000, Total: 22000, Status: domain.InvoicePaid,
		},
		{
			ID: "inv-2", ClientID: "client-orla", ProjectID: "proj-atlas",
			Amount: 10000, Tax: 1000, Total: 11000, Status: domain.InvoiceSent,
		},
	}
}
