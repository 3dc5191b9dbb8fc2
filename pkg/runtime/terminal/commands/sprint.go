package commands

import (
	"context"
	"time"

	"github.com/pm-tools/teampulse/pkg/adapters"
	"github.com/spf13/cobra"
)

type SprintCmd struct {
	sprintID string
	engine   Engine
	reporter Reporter
}

func NewSprintCmd(engine Engine, reporter Reporter) *cobra.Command {
	sc := &SprintCmd{engine: engine, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "sprint",
		Short: "Show completion and cycle-time metrics for a sprint",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.sprintID, "sprint", "", "Sprint id to report on")
	_ = cmd.MarkFlagRequired("sprint")

	return cmd
}

func (sc *SprintCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	snapshot, err := sc.engine.SprintMetrics(ctx, sc.sprintID)
	if err != nil {
		return err
	}

	return sc.reporter.Handle(adapters.MapSprintMetricsToReport(snapshot, time.Now().UTC()))
}
