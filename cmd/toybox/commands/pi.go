package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"toybox/internal/montecarlo"
)

func piCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pi [samples]",
		Short: "Estimate π by Monte Carlo sampling",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 1_000_000
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("bad sample count %q: %w", args[0], err)
				}
				n = v
			}
			s, err := rollSeed()
			if err != nil {
				return err
			}
			est, err := montecarlo.EstimatePi(n, s)
			if err != nil {
				return err
			}
			fmt.Printf("π ≈ %.6f  (%d of %d inside)\n", est.Pi, est.Inside, est.Samples)
			fmt.Printf("abs error %.6f, 95%% CI ±%.6f\n", est.AbsError, est.CI95)
			return nil
		},
	}
}
