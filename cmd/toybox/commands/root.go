package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"toybox/internal/app"
	"toybox/internal/chance"
)

var (
	home       string
	passphrase string
	seed       int64

	wire   *app.Wire
	appCtx *app.App
)

// rollSeed resolves the --seed flag: 0 means a fresh crypto seed.
func rollSeed() (int64, error) {
	if seed != 0 {
		return seed, nil
	}
	return chance.NewSeed()
}

func Execute() error {
	root := &cobra.Command{
		Use:   "toybox",
		Short: "A drawer of small console toys and trackers",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".toybox")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			w, err := app.NewWire(home)
			if err != nil {
				return err
			}
			wire = w
			appCtx = w.App
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx != nil {
				return appCtx.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.toybox)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase for the tax vault")
	root.PersistentFlags().Int64Var(&seed, "seed", 0, "RNG seed for reproducible runs (0 = random)")

	root.AddCommand(
		coinCmd(), diceCmd(), randCmd(), passwordCmd(), nameCmd(), lootCmd(), shuffleCmd(),
		piCmd(),
		budgetCmd(), taxCmd(), inventoryCmd(),
		backtestCmd(), covidCmd(), rentalCmd(),
		fryCmd(), platesCmd(), shipCmd(), donutCmd(),
		planCmd(), choresCmd(), foodsCmd(), busCmd(), gradeCmd(), bmiCmd(), wordsCmd(),
		calcCmd(), seatsCmd(),
	)
	return root.Execute()
}
