package cmd

import (
	"fmt"
	"time"

	"github.com/jsphweid/chordnova/chord"
	"github.com/jsphweid/chordnova/distance"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(diffCmd)
}

var diffCmd = &cobra.Command{
	Use:   "diff <chord> <chord>",
	Short: "Prints the movement between two chords",
	Long: `Prints the movement between two chords, e.g.

  chordnova diff "C4 E4 G4" "C4 E4 G4 B-4"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to, err := parseChordArgs(args)
		if err != nil {
			return err
		}
		start := time.Now()
		d, err := distance.Compare(from, to)
		if err != nil {
			return err
		}
		log.Debug("compared chords",
			zap.String("from", from.Key()),
			zap.String("to", to.Key()),
			zap.Duration("took", time.Since(start)),
		)
		fmt.Fprintln(cmd.OutOrStdout(), d)
		return nil
	},
}

func parseChordArgs(args []string) (chord.Chord, chord.Chord, error) {
	from, err := chord.Parse(args[0], dedup)
	if err != nil {
		return chord.Chord{}, chord.Chord{}, err
	}
	to, err := chord.Parse(args[1], dedup)
	if err != nil {
		return chord.Chord{}, chord.Chord{}, err
	}
	return from, to, nil
}
