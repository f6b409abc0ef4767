package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"toybox/internal/health"
	"toybox/internal/school"
	"toybox/internal/words"
)

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Keep a day planner",
	}

	add := &cobra.Command{
		Use:   "add <date> <time> <title>...",
		Short: "Add an entry, e.g. plan add 2026-09-01 09:30 dentist",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := appCtx.Planner.Add(args[0], args[1], strings.Join(args[2:], " "))
			if err != nil {
				return err
			}
			fmt.Printf("planned %q at %s %s (id %s)\n", e.Title, e.Date, e.At, e.ID[:8])
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list [date]",
		Short: "Show a day's entries (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().Format("2006-01-02")
			if len(args) == 1 {
				date = args[0]
			}
			entries, err := appCtx.Planner.Day(date)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Printf("nothing planned for %s\n", date)
				return nil
			}
			for _, e := range entries {
				mark := " "
				if e.Done {
					mark = "x"
				}
				fmt.Printf("[%s] %s  %-30s %s\n", mark, e.At, e.Title, e.ID[:8])
			}
			return nil
		},
	}

	done := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark an entry complete (id prefix is enough)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := appCtx.Planner.Complete(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("done: %s\n", e.Title)
			return nil
		},
	}

	cmd.AddCommand(add, list, done)
	return cmd
}

func choresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chores",
		Short: "Track recurring cleaning chores",
	}

	every := 7
	add := &cobra.Command{
		Use:   "add <name>...",
		Short: "Add a chore",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			if err := appCtx.Chores.Add(name, every); err != nil {
				return err
			}
			fmt.Printf("added %q, every %d days\n", name, every)
			return nil
		},
	}
	add.Flags().IntVar(&every, "every", every, "cadence in days")

	done := &cobra.Command{
		Use:   "done <name>...",
		Short: "Record a chore as done today",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			if err := appCtx.Chores.MarkDone(name); err != nil {
				return err
			}
			fmt.Printf("nice, %q done\n", name)
			return nil
		},
	}

	due := &cobra.Command{
		Use:   "due",
		Short: "Show what needs doing",
		RunE: func(cmd *cobra.Command, args []string) error {
			chores, err := appCtx.Chores.Due()
			if err != nil {
				return err
			}
			if len(chores) == 0 {
				fmt.Println("nothing due")
				return nil
			}
			for _, c := range chores {
				if c.OverdueDays > 0 {
					fmt.Printf("%-20s %d days overdue\n", c.Name, c.OverdueDays)
				} else {
					fmt.Printf("%-20s due today\n", c.Name)
				}
			}
			return nil
		},
	}

	cmd.AddCommand(add, done, due)
	return cmd
}

func foodsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "foods",
		Short: "Vote on foods and see the household ranking",
	}

	like := &cobra.Command{
		Use:   "like <food>...",
		Short: "Vote a food up",
		Args:  cobra.MinimumNArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return vote(args, true) },
	}
	dislike := &cobra.Command{
		Use:   "dislike <food>...",
		Short: "Vote a food down",
		Args:  cobra.MinimumNArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return vote(args, false) },
	}
	ranking := &cobra.Command{
		Use:   "ranking",
		Short: "Show foods by net score",
		RunE: func(cmd *cobra.Command, args []string) error {
			votes, err := appCtx.Foods.Ranking()
			if err != nil {
				return err
			}
			if len(votes) == 0 {
				fmt.Println("no votes yet")
				return nil
			}
			for _, v := range votes {
				fmt.Printf("%-20s %+d  (%d up, %d down)\n", v.Food, v.Likes-v.Dislikes, v.Likes, v.Dislikes)
			}
			return nil
		},
	}

	cmd.AddCommand(like, dislike, ranking)
	return cmd
}

func vote(args []string, like bool) error {
	v, err := appCtx.Foods.Vote(strings.Join(args, " "), like)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d up, %d down\n", v.Food, v.Likes, v.Dislikes)
	return nil
}

func busCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bus",
		Short: "Keep school-bus route records",
	}

	driver, busName := "", ""
	addRoute := &cobra.Command{
		Use:   "add-route <route>",
		Short: "Register a route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Buses.AddRoute(args[0], busName, driver); err != nil {
				return err
			}
			fmt.Printf("route %s registered\n", args[0])
			return nil
		},
	}
	addRoute.Flags().StringVar(&busName, "bus", "", "bus identifier")
	addRoute.Flags().StringVar(&driver, "driver", "", "driver name")

	addRider := &cobra.Command{
		Use:   "add-rider <route> <name>...",
		Short: "Put a rider on a route",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args[1:], " ")
			if err := appCtx.Buses.AddRider(args[0], name); err != nil {
				return err
			}
			fmt.Printf("%s rides route %s\n", name, args[0])
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show all routes and rosters",
		RunE: func(cmd *cobra.Command, args []string) error {
			routes, err := appCtx.Buses.Routes()
			if err != nil {
				return err
			}
			if len(routes) == 0 {
				fmt.Println("no routes yet")
				return nil
			}
			for _, r := range routes {
				fmt.Printf("route %s (bus %s, driver %s): %d riders\n", r.Route, r.Bus, r.Driver, len(r.Riders))
				for _, name := range r.Riders {
					fmt.Printf("  %s\n", name)
				}
			}
			return nil
		},
	}

	cmd.AddCommand(addRoute, addRider, list)
	return cmd
}

func gradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grade <score>...",
		Short: "Grade scores against the configured pass mark",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scores := make([]float64, len(args))
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("bad score %q: %w", a, err)
				}
				scores[i] = v
			}

			report, err := school.GradeClass(scores, appCtx.Cfg.Grading.PassMark)
			if err != nil {
				return err
			}
			for _, g := range report.Grades {
				verdict := "pass"
				if !g.Passed {
					verdict = "fail"
				}
				fmt.Printf("%6.1f  %s  %s\n", g.Score, g.Letter, verdict)
			}
			if len(report.Grades) > 1 {
				fmt.Printf("average %.1f, %d passed, %d failed\n", report.Average, report.Passed, report.Failed)
			}
			return nil
		},
	}
}

func bmiCmd() *cobra.Command {
	age := 30
	female := false

	cmd := &cobra.Command{
		Use:   "bmi <height-cm> <weight-kg>",
		Short: "Compute BMI and daily calorie baseline",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			height, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("bad height %q: %w", args[0], err)
			}
			weight, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("bad weight %q: %w", args[1], err)
			}

			sex := health.Male
			if female {
				sex = health.Female
			}
			r, err := health.Assess(height, weight, age, sex)
			if err != nil {
				return err
			}
			fmt.Printf("BMI %.1f (%s), BMR %.0f kcal/day\n", r.BMI, r.Category, r.BMR)
			return nil
		},
	}

	cmd.Flags().IntVar(&age, "age", age, "age in years")
	cmd.Flags().BoolVar(&female, "female", false, "use the female BMR formula")
	return cmd
}

func wordsCmd() *cobra.Command {
	order := string(words.Alphabetical)
	unique := false

	cmd := &cobra.Command{
		Use:   "words [word]...",
		Short: "Sort words by name, length, or frequency (reads stdin when no args)",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args
			if len(in) == 0 {
				raw, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				in = words.Fields(string(raw))
			}

			sorted, err := words.Sort(in, words.Options{Order: words.Order(order), Unique: unique})
			if err != nil {
				return err
			}
			for _, w := range sorted {
				fmt.Println(w)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&order, "order", order, `"alpha", "length", or "freq"`)
	cmd.Flags().BoolVar(&unique, "unique", false, "drop duplicate words")
	return cmd
}
