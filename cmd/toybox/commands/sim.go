package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"toybox/internal/sim"
)

func fryCmd() *cobra.Command {
	flipAfter := 0
	target := ""

	cmd := &cobra.Command{
		Use:   "fry <seconds>...",
		Short: "Fry an egg, one burst of heat at a time",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pan sim.Pan
			for _, a := range args {
				s, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("bad duration %q: %w", a, err)
				}
				if flipAfter > 0 && !pan.Flipped() && pan.Seconds()+s >= flipAfter {
					pan.Flip()
					fmt.Println("flip!")
				}
				d, err := pan.Step(s)
				if err != nil {
					return err
				}
				fmt.Printf("%3ds in the pan: %s\n", pan.Seconds(), d)
			}

			if target != "" {
				want, err := sim.ParseDoneness(target)
				if err != nil {
					return err
				}
				if got := pan.Doneness(); got == want {
					fmt.Printf("nailed it: %s\n", got)
				} else {
					fmt.Printf("aimed for %s, got %s\n", want, got)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&flipAfter, "flip-after", 0, "flip the egg once this many seconds have passed (0 = never)")
	cmd.Flags().StringVar(&target, "target", "", `doneness to aim for: "runny", "over-easy", or "well-done"`)
	return cmd
}

func platesCmd() *cobra.Command {
	var watchlist []string
	accuracy := 0.9

	cmd := &cobra.Command{
		Use:   "plates [count]",
		Short: "Point a licence-plate camera at simulated traffic",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 20
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("bad count %q: %w", args[0], err)
				}
				n = v
			}

			s, err := rollSeed()
			if err != nil {
				return err
			}
			det := sim.NewDetector(watchlist, accuracy)
			report, err := det.Scan(n, s)
			if err != nil {
				return err
			}

			for _, d := range report.Detections {
				flag := ""
				if d.Read != d.Plate {
					flag = fmt.Sprintf(" (read as %s)", d.Read)
				}
				fmt.Printf("car %3d: %s on watchlist%s\n", d.Index, d.Plate, flag)
			}
			fmt.Printf("%d plates passed, %d watched, hit rate %.0f%%\n",
				report.Passed, report.Watched, report.HitRate*100)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&watchlist, "watch", "w", nil, "plates to watch for (repeatable)")
	cmd.Flags().Float64Var(&accuracy, "accuracy", accuracy, "camera read accuracy in (0, 1]")
	return cmd
}

func shipCmd() *cobra.Command {
	ticks := 50

	cmd := &cobra.Command{
		Use:   "ship",
		Short: "Run a small cargo fleet between ports",
		RunE: func(cmd *cobra.Command, args []string) error {
			fleet, err := sim.NewFleet(
				[]sim.Port{
					{Name: "Sydney", Stock: 120},
					{Name: "Auckland", Stock: 80},
					{Name: "Suva", Stock: 40},
				},
				[]sim.Ship{
					{Name: "Pelican", From: "Sydney", To: "Auckland", Capacity: 20, Transit: 3},
					{Name: "Wanderer", From: "Auckland", To: "Suva", Capacity: 10, Transit: 5},
					{Name: "Dory", From: "Suva", To: "Sydney", Capacity: 5, Transit: 4},
				},
			)
			if err != nil {
				return err
			}

			fleet.Run(ticks)

			fmt.Printf("after %d ticks:\n", fleet.Ticks())
			for _, p := range fleet.Ports() {
				fmt.Printf("  %-10s stock %4d, delivered %4d\n", p.Name, p.Stock, p.Delivered)
			}
			fmt.Printf("%d units delivered in total\n", fleet.TotalDelivered())
			return nil
		},
	}

	cmd.Flags().IntVar(&ticks, "ticks", ticks, "simulation length")
	return cmd
}

func donutCmd() *cobra.Command {
	width, height := 60, 24
	frames := 0

	cmd := &cobra.Command{
		Use:   "donut",
		Short: "Render a spinning ASCII torus",
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames <= 0 {
				frame, err := sim.DonutFrame(width, height, 1.0, 0.5)
				if err != nil {
					return err
				}
				fmt.Print(frame)
				return nil
			}

			a, b := 0.0, 0.0
			for i := 0; i < frames; i++ {
				frame, err := sim.DonutFrame(width, height, a, b)
				if err != nil {
					return err
				}
				fmt.Print("\033[H\033[2J", frame)
				a += 0.07
				b += 0.03
				time.Sleep(33 * time.Millisecond)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", width, "frame width in characters")
	cmd.Flags().IntVar(&height, "height", height, "frame height in characters")
	cmd.Flags().IntVar(&frames, "spin", 0, "animate this many frames (0 = one still frame)")
	return cmd
}
