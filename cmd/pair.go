package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/jsphweid/chordnova/distance"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var strategyName string

func init() {
	vecCmd.Flags().StringVar(&strategyName, "strategy", "inversion", "pairs, inversion or pitch-class")
	rootCmd.AddCommand(pairCmd)
	rootCmd.AddCommand(vecCmd)
}

var pairCmd = &cobra.Command{
	Use:   "pair <chord> <chord>",
	Short: "Aligns two chords note for note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd.OutOrStdout(), args, distance.StrategyPairs)
	},
}

var vecCmd = &cobra.Command{
	Use:   "vec <chord> <chord>",
	Short: "Finds the voicing of the second chord closest to the first",
	Long: `Finds the voicing of the second chord closest to the first. The
inversion strategy tries every inversion one octave down and in place; the
pitch-class strategy snaps each note to the nearest free pitch class.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := distance.ParseStrategy(strategyName)
		if err != nil {
			return err
		}
		return runSearch(cmd.OutOrStdout(), args, s)
	},
}

func search(args []string, s distance.Strategy) (distance.Pair, distance.Diff, error) {
	from, to, err := parseChordArgs(args)
	if err != nil {
		return distance.Pair{}, distance.Diff{}, err
	}
	start := time.Now()
	pair, d, err := distance.SearchDiff(from, to, s)
	if err != nil {
		return distance.Pair{}, distance.Diff{}, err
	}
	log.Debug("search finished",
		zap.Stringer("strategy", s),
		zap.String("from", from.Key()),
		zap.String("to", to.Key()),
		zap.Duration("took", time.Since(start)),
	)
	return pair, d, nil
}

func runSearch(w io.Writer, args []string, s distance.Strategy) error {
	pair, d, err := search(args, s)
	if err != nil {
		return err
	}
	printPair(w, pair, d)
	return nil
}

func printPair(w io.Writer, pair distance.Pair, d distance.Diff) {
	fmt.Fprintln(w, pair.From)
	fmt.Fprintln(w, pair.To)
	fmt.Fprintln(w, d)
}
