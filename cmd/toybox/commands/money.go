package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"toybox/internal/domain"
)

// parseMoney converts "12.50" (or "12") to cents.
func parseMoney(s string) (domain.Money, error) {
	whole, frac, _ := strings.Cut(s, ".")
	cents, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad amount %q", s)
	}
	cents *= 100
	if frac != "" {
		if len(frac) > 2 {
			return 0, fmt.Errorf("bad amount %q: more than two decimal places", s)
		}
		for len(frac) < 2 {
			frac += "0"
		}
		var f int64
		for _, r := range frac {
			if r < '0' || r > '9' {
				return 0, fmt.Errorf("bad amount %q", s)
			}
			f = f*10 + int64(r-'0')
		}
		// The fraction carries the sign of the whole part, so "-12.50"
		// is -1250 cents, not -1150.
		if strings.HasPrefix(whole, "-") {
			f = -f
		}
		cents += f
	}
	return domain.Money(cents), nil
}

func money(m domain.Money) string {
	return fmt.Sprintf("%s%.2f", appCtx.Cfg.Currency, m.Dollars())
}

// parseMonth accepts "2026-08"; empty means the current month.
func parseMonth(s string) (int, time.Month, error) {
	if s == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("bad month %q (want YYYY-MM)", s)
	}
	return t.Year(), t.Month(), nil
}

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Track expenses against monthly budgets",
	}

	note := ""
	add := &cobra.Command{
		Use:   "add <category> <amount>",
		Short: "Record an expense",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseMoney(args[1])
			if err != nil {
				return err
			}
			e, err := appCtx.Ledger.AddExpense(args[0], amount, note)
			if err != nil {
				return err
			}
			appCtx.Log.Debug("expense added", zap.String("id", e.ID), zap.String("category", args[0]))
			fmt.Printf("recorded %s under %s\n", money(e.Amount), e.Category)
			return nil
		},
	}
	add.Flags().StringVar(&note, "note", "", "what the money went to")

	set := &cobra.Command{
		Use:   "set <category> <ceiling>",
		Short: "Set a monthly ceiling for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ceiling, err := parseMoney(args[1])
			if err != nil {
				return err
			}
			if err := appCtx.Ledger.SetBudget(args[0], ceiling); err != nil {
				return err
			}
			fmt.Printf("budget for %s set to %s/month\n", args[0], money(ceiling))
			return nil
		},
	}

	listMonth := ""
	list := &cobra.Command{
		Use:   "list",
		Short: "List the month's expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			y, m, err := parseMonth(listMonth)
			if err != nil {
				return err
			}
			expenses, err := appCtx.Ledger.Expenses(y, m)
			if err != nil {
				return err
			}
			if len(expenses) == 0 {
				fmt.Printf("no expenses in %s %d\n", m, y)
				return nil
			}
			for _, e := range expenses {
				fmt.Printf("%s  %-12s %10s  %s\n",
					e.At.Format("01-02"), e.Category, money(e.Amount), e.Note)
			}
			return nil
		},
	}
	list.Flags().StringVar(&listMonth, "month", "", "month as YYYY-MM (default: current)")

	month := ""
	summary := &cobra.Command{
		Use:   "summary",
		Short: "Show the month's spending, budgets, and burn rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			y, m, err := parseMonth(month)
			if err != nil {
				return err
			}
			ov, err := appCtx.Ledger.Summary(y, m)
			if err != nil {
				return err
			}

			fmt.Printf("%s %d: total %s\n", m, y, money(ov.Total))
			for _, c := range ov.ByCategory {
				fmt.Printf("  %-12s %10s\n", c.Name, money(c.Amount))
			}
			if len(ov.Budgets) > 0 {
				fmt.Println("budgets:")
				for _, b := range ov.Budgets {
					state := "left"
					rem := b.Remaining
					if rem < 0 {
						state = "OVER"
						rem = -rem
					}
					fmt.Printf("  %-12s %10s of %s (%s %s)\n",
						b.Category, money(b.Spent), money(b.Ceiling), money(rem), state)
				}
			}
			fmt.Printf("burn rate %s%.2f/day, projected %s%.2f",
				appCtx.Cfg.Currency, ov.DailyBurnRate, appCtx.Cfg.Currency, ov.ProjectedMonthly)
			if ov.DaysRemaining > 0 {
				fmt.Printf(" (%d days left)", ov.DaysRemaining)
			}
			fmt.Println()
			return nil
		},
	}
	summary.Flags().StringVar(&month, "month", "", "month as YYYY-MM (default: current)")

	out := ""
	export := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as a CSV spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return appCtx.Ledger.ExportCSV(w)
		},
	}
	export.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")

	importCmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a CSV spreadsheet into the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			n, err := appCtx.Ledger.ImportCSV(f)
			if err != nil {
				return err
			}
			fmt.Printf("imported %d rows\n", n)
			return nil
		},
	}

	cmd.AddCommand(add, set, list, summary, export, importCmd)
	return cmd
}

func taxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Keep tax records in an encrypted vault",
	}

	ref := ""
	add := &cobra.Command{
		Use:   "add <year> <kind> <amount>",
		Short: `Add a record (kind: "income", "deduction", or "payment")`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bad year %q: %w", args[0], err)
			}
			amount, err := parseMoney(args[2])
			if err != nil {
				return err
			}
			r, err := appCtx.Taxes.Add(passphrase, year, args[1], amount, ref)
			if err != nil {
				return err
			}
			fmt.Printf("stored %s %s for %d\n", r.Kind, money(r.Amount), r.Year)
			return nil
		},
	}
	add.Flags().StringVar(&ref, "ref", "", "reference, e.g. a form or receipt number")

	year := 0
	list := &cobra.Command{
		Use:   "list",
		Short: "List vault records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			records, err := appCtx.Taxes.List(passphrase, year)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("no records")
				return nil
			}
			for _, r := range records {
				fmt.Printf("%d  %-9s %12s  %s\n", r.Year, r.Kind, money(r.Amount), r.Reference)
			}
			return nil
		},
	}
	list.Flags().IntVar(&year, "year", 0, "filter by year (0 = all)")

	cmd.AddCommand(add, list)
	return cmd
}

func inventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv"},
		Short:   "Play shopkeeper: buy and sell stock",
	}

	buy := &cobra.Command{
		Use:   "buy <item> <qty> <unit-price>",
		Short: "Buy stock",
		Args:  cobra.ExactArgs(3),
		RunE:  func(cmd *cobra.Command, args []string) error { return trade(args, true) },
	}
	sell := &cobra.Command{
		Use:   "sell <item> <qty> <unit-price>",
		Short: "Sell stock",
		Args:  cobra.ExactArgs(3),
		RunE:  func(cmd *cobra.Command, args []string) error { return trade(args, false) },
	}
	list := &cobra.Command{
		Use:   "list",
		Short: "Show holdings and realized profit",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := appCtx.Inventory.Items()
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("empty shelves")
				return nil
			}
			var realized domain.Money
			for _, it := range items {
				fmt.Printf("%-14s %4d @ %s  (realized %s)\n",
					it.Name, it.Quantity, money(it.UnitCost), money(it.Realized))
				realized += it.Realized
			}
			fmt.Printf("total realized profit: %s\n", money(realized))
			return nil
		},
	}

	cmd.AddCommand(buy, sell, list)
	return cmd
}

func trade(args []string, buy bool) error {
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad quantity %q: %w", args[1], err)
	}
	price, err := parseMoney(args[2])
	if err != nil {
		return err
	}
	var it domain.InventoryItem
	if buy {
		it, err = appCtx.Inventory.Buy(args[0], qty, price)
	} else {
		it, err = appCtx.Inventory.Sell(args[0], qty, price)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d held @ %s, realized %s\n", it.Name, it.Quantity, money(it.UnitCost), money(it.Realized))
	return nil
}
