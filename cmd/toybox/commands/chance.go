package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"toybox/internal/chance"
)

func coinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coin [n]",
		Short: "Flip one or more coins",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 1
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("bad flip count %q: %w", args[0], err)
				}
				n = v
			}
			s, err := rollSeed()
			if err != nil {
				return err
			}
			res, err := chance.FlipCoins(n, s)
			if err != nil {
				return err
			}
			for _, f := range res.Flips {
				fmt.Println(f)
			}
			if n > 1 {
				fmt.Printf("%d heads, %d tails\n", res.Heads, res.Tails)
			}
			return nil
		},
	}
}

func diceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dice <spec>...",
		Short: "Roll dice like 2d6 or d20",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specs := make([]chance.DiceSpec, 0, len(args))
			for _, a := range args {
				spec, err := chance.ParseSpec(a)
				if err != nil {
					return err
				}
				specs = append(specs, spec)
			}
			s, err := rollSeed()
			if err != nil {
				return err
			}
			res, err := chance.RollDice(specs, s)
			if err != nil {
				return err
			}
			for _, r := range res.Rolls {
				fmt.Printf("d%-3d %v = %d\n", r.Sides, r.Results, r.Total)
			}
			fmt.Printf("total: %d\n", res.Total)
			return nil
		},
	}
}

func randCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rand <lo> <hi>",
		Short: "Pick a random integer in [lo, hi]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bad lower bound %q: %w", args[0], err)
			}
			hi, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("bad upper bound %q: %w", args[1], err)
			}
			s, err := rollSeed()
			if err != nil {
				return err
			}
			v, err := chance.RandomInt(lo, hi, s)
			if err != nil {
				return err
			}
			fmt.Println(v)
			return nil
		},
	}
}

func passwordCmd() *cobra.Command {
	opts := chance.DefaultPasswordOptions()
	noSymbols := false
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate a random password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if noSymbols {
				opts.Symbols = false
			}
			pw, err := chance.GeneratePassword(opts)
			if err != nil {
				return err
			}
			fmt.Println(pw)
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.Length, "length", "n", opts.Length, "password length")
	cmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "letters and digits only")
	return cmd
}

func nameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name [n]",
		Short: "Generate random full names",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 1
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("bad name count %q: %w", args[0], err)
				}
				n = v
			}
			s, err := rollSeed()
			if err != nil {
				return err
			}
			names, err := chance.RandomNames(n, s)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func lootCmd() *cobra.Command {
	drops := 1
	cmd := &cobra.Command{
		Use:   "loot",
		Short: "Roll the loot table",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rollSeed()
			if err != nil {
				return err
			}
			items, err := chance.DefaultLootTable().Roll(drops, s)
			if err != nil {
				return err
			}
			for _, d := range items {
				fmt.Printf("%-14s (%s)\n", d.Name, d.Rarity)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&drops, "drops", "n", 1, "number of drops")
	return cmd
}

func shuffleCmd() *cobra.Command {
	file := ""
	cmd := &cobra.Command{
		Use:   "shuffle [song]...",
		Short: "Shuffle a playlist",
		Long:  "Shuffle songs given as arguments, from --file (one per line), or piped on stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			songs := args
			if file != "" {
				b, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				songs = splitLines(string(b))
			} else if len(songs) == 0 {
				if fi, err := os.Stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
					songs = defaultPlaylist
				} else {
					sc := bufio.NewScanner(os.Stdin)
					for sc.Scan() {
						if line := strings.TrimSpace(sc.Text()); line != "" {
							songs = append(songs, line)
						}
					}
					if err := sc.Err(); err != nil {
						return err
					}
				}
			}
			s, err := rollSeed()
			if err != nil {
				return err
			}
			out, err := chance.ShufflePlaylist(songs, s)
			if err != nil {
				return err
			}
			for i, song := range out {
				fmt.Printf("%2d. %s\n", i+1, song)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "playlist file, one song per line")
	return cmd
}

// defaultPlaylist keeps the command usable with nothing piped in.
var defaultPlaylist = []string{
	"Bohemian Rhapsody", "Hotel California", "Stairway to Heaven",
	"Smells Like Teen Spirit", "Billie Jean", "Wonderwall",
	"Sweet Child O' Mine", "Hey Jude", "Take On Me", "Africa",
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
