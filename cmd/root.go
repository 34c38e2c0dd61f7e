package cmd

import (
	"github.com/jsphweid/chordnova/config"
	"github.com/jsphweid/chordnova/constants"
	"github.com/jsphweid/chordnova/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logLevel string
	dedup    bool
	log      = zap.NewNop()

	newLogger = logger.NewLogger
)

var rootCmd = &cobra.Command{
	Use:   "chordnova",
	Short: "Chord distance and voice pairing",
	Long: `Compares chords of possibly different sizes, finds the note pairing
that moves the fewest semitones, and exports the result as MIDI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(constants.GetEnv(), logLevel)
		if err != nil {
			return err
		}
		log = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&dedup, "dedup", false, "drop repeated pitches when building chords")
}

// applyLogging rebuilds the logger at the configured level. The --log-level
// flag wins over the config file.
func applyLogging(cfg config.Config) error {
	if logLevel != "" || cfg.Logging.Level == "" {
		return nil
	}
	l, err := newLogger(constants.GetEnv(), cfg.Logging.Level)
	if err != nil {
		return err
	}
	_ = log.Sync()
	log = l
	return nil
}

func execute() error {
	err := rootCmd.Execute()
	_ = log.Sync()
	return err
}

func Execute() {
	cobra.CheckErr(execute())
}
