package commands

import (
	"context"

	"github.com/pm-tools/teampulse/pkg/adapters"
	"github.com/spf13/cobra"
)

type DashboardCmd struct {
	engine   Engine
	reporter Reporter
}

func NewDashboardCmd(engine Engine, reporter Reporter) *cobra.Command {
	dc := &DashboardCmd{engine: engine, reporter: reporter}
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the portfolio dashboard across active projects",
		RunE:  dc.run,
	}
}

func (dc *DashboardCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	dashboard, err := dc.engine.Dashboard(ctx)
	if err != nil {
		return err
	}

	return dc.reporter.Handle(adapters.MapDashboardToReport(dashboard))
}
