package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"toybox/internal/backtest"
	"toybox/internal/forecast"
)

func backtestCmd() *cobra.Command {
	cfg := backtest.DefaultConfig()
	showTrades := false

	cmd := &cobra.Command{
		Use:   "backtest <prices.csv>",
		Short: "Run a moving-average crossover backtest on a price series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			prices, err := backtest.ReadPrices(f)
			if err != nil {
				return err
			}
			res, err := backtest.Run(prices, cfg)
			if err != nil {
				return err
			}

			fmt.Printf("%d bars, %d/%d crossover, %d trades\n",
				len(prices), cfg.Fast, cfg.Slow, len(res.Trades))
			if showTrades {
				for _, t := range res.Trades {
					fmt.Printf("  bar %4d  %-4s %.4f shares @ %.2f\n",
						t.Index, t.Side, t.Shares, t.Price)
				}
			}
			fmt.Printf("final equity %.2f (%+.2f%%), max drawdown %.2f%%\n",
				res.FinalEquity, res.Return*100, res.MaxDrawdown*100)
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.Fast, "fast", cfg.Fast, "fast SMA window")
	cmd.Flags().IntVar(&cfg.Slow, "slow", cfg.Slow, "slow SMA window")
	cmd.Flags().Float64Var(&cfg.Capital, "capital", cfg.Capital, "starting cash")
	cmd.Flags().Float64Var(&cfg.Risk, "risk", cfg.Risk, "fraction of capital risked per unit volatility")
	cmd.Flags().BoolVar(&showTrades, "trades", false, "print each fill")
	return cmd
}

func covidCmd() *cobra.Command {
	horizon := 14

	cmd := &cobra.Command{
		Use:   "covid <count>...",
		Short: "Fit exponential growth to daily case counts and project forward",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			counts := make([]float64, len(args))
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("bad count %q: %w", a, err)
				}
				counts[i] = v
			}

			fc, err := forecast.Project(counts, horizon)
			if err != nil {
				return err
			}

			fmt.Printf("daily growth %.2f%% (R² %.3f)\n", fc.Fit.Rate*100, fc.Fit.R2)
			if fc.Fit.Rate > 0 {
				fmt.Printf("doubling every %.1f days\n", fc.Fit.DoublingDays)
			}
			for i, v := range fc.Projected {
				fmt.Printf("  day +%-2d  %8.0f\n", i+1, v)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&horizon, "days", horizon, "days to project")
	return cmd
}

func rentalCmd() *cobra.Command {
	var p forecast.Property

	cmd := &cobra.Command{
		Use:   "rental",
		Short: "Size up a rental property: cap rate, yield, cash-on-cash",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := forecast.AnalyzeRental(p)
			if err != nil {
				return err
			}
			fmt.Printf("effective rent %10.2f/yr (after %.0f%% vacancy)\n", a.EffectiveRent, p.Vacancy*100)
			fmt.Printf("NOI            %10.2f/yr\n", a.NOI)
			fmt.Printf("cap rate       %9.2f%%\n", a.CapRate*100)
			fmt.Printf("gross yield    %9.2f%%\n", a.GrossYield*100)
			fmt.Printf("cash-on-cash   %9.2f%%\n", a.CashOnCash*100)
			return nil
		},
	}

	cmd.Flags().Float64Var(&p.Price, "price", 0, "purchase price")
	cmd.Flags().Float64Var(&p.DownPayment, "down", 0, "cash invested (0 = all cash)")
	cmd.Flags().Float64Var(&p.AnnualRent, "rent", 0, "annual rent")
	cmd.Flags().Float64Var(&p.Expenses, "expenses", 0, "annual operating expenses")
	cmd.Flags().Float64Var(&p.Vacancy, "vacancy", 0.05, "expected vacancy fraction")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("rent")
	return cmd
}
