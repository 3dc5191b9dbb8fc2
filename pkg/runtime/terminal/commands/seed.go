package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type SeedCmd struct {
	seeder Seeder
}

func NewSeedCmd(seeder Seeder) *cobra.Command {
	sc := &SeedCmd{seeder: seeder}
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with demo data",
		RunE:  sc.run,
	}
}

func (sc *SeedCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	if err := sc.seeder.Seed(ctx); err != nil {
		return fmt.Errorf("seeding demo data: %w", err)
	}
	return nil
}
