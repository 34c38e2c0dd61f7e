package cmd

import (
	"fmt"

	"github.com/jsphweid/chordnova/chord"
	"github.com/jsphweid/chordnova/distance"
	"github.com/jsphweid/chordnova/midi"
	"github.com/spf13/cobra"
)

var against string

func init() {
	importCmd.Flags().StringVar(&against, "against", "", "also print each chord's distance to this chord")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file.mid>",
	Short: "Lists the chords sounding in a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}

		var ref chord.Chord
		if against != "" {
			ref, err = chord.Parse(against, dedup)
			if err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		for i, c := range chords {
			if against == "" {
				fmt.Fprintf(out, "%v: %v\n", i, c)
				continue
			}
			d, err := distance.Compare(ref, c)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%v: %v %v\n", i, c, d)
		}
		return nil
	},
}
