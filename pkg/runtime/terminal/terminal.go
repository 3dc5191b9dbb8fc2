package terminal

import (
	"io"
	"os"

	"github.com/pm-tools/teampulse/pkg/runtime/terminal/commands"
	"github.com/pm-tools/teampulse/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	engine   commands.Engine
	seeder   commands.Seeder
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Engine commands.Engine
	Seeder commands.Seeder
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		engine:   opts.Engine,
		seeder:   opts.Seeder,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teampulse",
		Short: "Project metrics and financial reporting tool",
	}

	cmd.AddCommand(commands.NewReportCmd(cli.engine, cli.reporter))
	cmd.AddCommand(commands.NewDashboardCmd(cli.engine, cli.reporter))
	cmd.AddCommand(commands.NewSprintCmd(cli.engine, cli.reporter))
	cmd.AddCommand(commands.NewSeedCmd(cli.seeder))

	return cmd
}
