package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/chordnova/chord"
	"github.com/jsphweid/chordnova/config"
	"github.com/jsphweid/chordnova/constants"
	"github.com/jsphweid/chordnova/distance"
	"github.com/jsphweid/chordnova/midi"
	"github.com/jsphweid/chordnova/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// OutputMode selects what export produces.
type OutputMode string

const (
	OutputBoth     OutputMode = "both"
	OutputMidiOnly OutputMode = "midi"
	OutputTextOnly OutputMode = "text"
)

func (m OutputMode) writesMidi() bool {
	return m == OutputBoth || m == OutputMidiOnly
}

func (m OutputMode) writesText() bool {
	return m == OutputBoth || m == OutputTextOnly
}

var (
	exportStrategy string
	exportMode     string
	exportPath     string
)

func init() {
	exportCmd.Flags().StringVar(&exportStrategy, "strategy", "inversion", "pairs, inversion or pitch-class")
	exportCmd.Flags().StringVar(&exportMode, "mode", string(OutputBoth), "text, midi or both")
	exportCmd.Flags().StringVarP(&exportPath, "output", "o", "", "midi file to write (default: <uuid>.mid in the output dir)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <chord> <chord>",
	Short: "Writes the paired chords as a two-chord MIDI progression",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := OutputMode(exportMode)
		if !mode.writesMidi() && !mode.writesText() {
			return fmt.Errorf("unknown output mode %q", exportMode)
		}
		s, err := distance.ParseStrategy(exportStrategy)
		if err != nil {
			return err
		}
		cfg, err := config.Load(constants.GetConfigPath())
		if err != nil {
			return err
		}
		if err := applyLogging(cfg); err != nil {
			return err
		}

		pair, d, err := search(args, s)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if mode.writesText() {
			printPair(out, pair, d)
		}
		if !mode.writesMidi() {
			return nil
		}

		data, err := midi.Encode([]chord.Chord{pair.From, pair.To}, exportOptions(cfg))
		if err != nil {
			return err
		}
		path, err := writeMidi(cfg, data)
		if err != nil {
			return err
		}
		log.Info("exported pairing", zap.String("path", path), zap.Stringer("strategy", s))
		fmt.Fprintln(out, path)
		return nil
	},
}

func exportOptions(cfg config.Config) midi.ExportOptions {
	opts := midi.DefaultExportOptions()
	opts.TempoBPM = cfg.Export.TempoBPM
	opts.Velocity = uint8(cfg.Export.Velocity)
	opts.BeatsPerChord = uint32(cfg.Export.BeatsPerChord)
	return opts
}

func writeMidi(cfg config.Config, data []byte) (string, error) {
	if exportPath == "" {
		return util.WriteOutputFile(cfg.Export.Dir, constants.MidiExtension, data)
	}
	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return "", fmt.Errorf("could not write %v: %w", exportPath, err)
	}
	return exportPath, nil
}
