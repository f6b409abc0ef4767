package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"toybox/internal/tui"
)

func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc",
		Short: "Open the keypad calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := tea.NewProgram(tui.NewCalculator()).Run()
			return err
		},
	}
}

func seatsCmd() *cobra.Command {
	rows, seats := 8, 12

	cmd := &cobra.Command{
		Use:   "seats",
		Short: "Pick theater seats on an interactive chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := tui.NewSeating(rows, seats, wire.Seats)
			if err != nil {
				return err
			}
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(tui.Seating); ok {
				fmt.Printf("%d seats reserved\n", m.Reserved())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", rows, "rows in the house")
	cmd.Flags().IntVar(&seats, "seats", seats, "seats per row")
	return cmd
}
