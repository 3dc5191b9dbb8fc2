package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pm-tools/teampulse/pkg/config"
	"github.com/pm-tools/teampulse/pkg/server"
	"github.com/pm-tools/teampulse/pkg/services/bus"
	"github.com/pm-tools/teampulse/pkg/services/metrics"
	"github.com/pm-tools/teampulse/pkg/store/sqlite"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the TeamPulse metrics server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (optional; env vars apply either way)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.DBPath})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	projects, err := sqlite.NewProjectStore(db)
	if err != nil {
		return fmt.Errorf("failed to create project store: %w", err)
	}
	sprints, err := sqlite.NewSprintStore(db)
	if err != nil {
		return fmt.Errorf("failed to create sprint store: %w", err)
	}
	tasks, err := sqlite.NewTaskStore(db)
	if err != nil {
		return fmt.Errorf("failed to create task store: %w", err)
	}
	timeEntries, err := sqlite.NewTimeEntryStore(db)
	if err != nil {
		return fmt.Errorf("failed to create time entry store: %w", err)
	}
	transactions, err := sqlite.NewTransactionStore(db)
	if err != nil {
		return fmt.Errorf("failed to create transaction store: %w", err)
	}
	invoices, err := sqlite.NewInvoiceStore(db)
	if err != nil {
		return fmt.Errorf("failed to create invoice store: %w", err)
	}
	users, err := sqlite.NewUserStore(db)
	if err != nil {
		return fmt.Errorf("failed to create user store: %w", err)
	}

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

	events := bus.New(bus.Options{BufferSize: cfg.EventBufferSize})
	defer events.Close()

	logger.Info().Str("db", cfg.DBPath).Msg("storage ready")

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Server.Addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Engine: engine,
			Events: events,
			Logger: logger,
		},
	})

	return api.Start()
}
