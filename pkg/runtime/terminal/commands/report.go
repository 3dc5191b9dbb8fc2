package commands

import (
	"context"
	"time"

	"github.com/pm-tools/teampulse/pkg/adapters"
	"github.com/pm-tools/teampulse/pkg/models/domain"
	"github.com/spf13/cobra"
)

const commandTimeout = 30 * time.Second

// Engine is the slice of the metrics engine the CLI renders.
type Engine interface {
	FinancialReport(ctx context.Context, projectID string) (*domain.FinancialReport, error)
	SprintMetrics(ctx context.Context, sprintID string) (*domain.SprintMetricsSnapshot, error)
	Dashboard(ctx context.Context) (*domain.DashboardSnapshot, error)
}

// Seeder populates the store with demo data.
type Seeder interface {
	Seed(ctx context.Context) error
}

// Reporter renders a report to the terminal.
type Reporter interface {
	Handle(report *domain.Report) error
}

type ReportCmd struct {
	projectID string
	engine    Engine
	reporter  Reporter
}

func NewReportCmd(engine Engine, reporter Reporter) *cobra.Command {
	rc := &ReportCmd{engine: engine, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a project financial report",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.projectID, "project", "", "Project id to report on")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	report, err := rc.engine.FinancialReport(ctx, rc.projectID)
	if err != nil {
		return err
	}

	return rc.reporter.Handle(adapters.MapFinancialReportToReport(report, time.Now().UTC()))
}
