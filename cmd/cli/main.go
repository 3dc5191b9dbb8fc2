package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pm-tools/teampulse/pkg/config"
	"github.com/pm-tools/teampulse/pkg/runtime/terminal"
	"github.com/pm-tools/teampulse/pkg/services/metrics"
	"github.com/pm-tools/teampulse/pkg/store/sqlite"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("TEAMPULSE_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.DBPath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	projects, _ := sqlite.NewProjectStore(db)
	sprints, _ := sqlite.NewSprintStore(db)
	tasks, _ := sqlite.NewTaskStore(db)
	timeEntries, _ := sqlite.NewTimeEntryStore(db)
	transactions, _ := sqlite.NewTransactionStore(db)
	invoices, _ := sqlite.NewInvoiceStore(db)
	users, _ := sqlite.NewUserStore(db)
	seeder, _ := sqlite.NewSeeder(db)

	engine := metrics.NewEngine(metrics.Dependencies{
		Projects:        projects,
		Sprints:         sprints,
		Tasks:           tasks,
		TimeEntries:     timeEntries,
		Transactions:    transactions,
		Invoices:        invoices,
		Users:           users,
		DashboardFanOut: cfg.DashboardFanOut,
	})

	cli := terminal.NewCLI(terminal.Options{
		Engine: engine,
		Seeder: seeder,
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
