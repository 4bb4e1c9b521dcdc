package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/config"
	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/observability"
	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/server"
	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/ui"
)

var (
	cfgFile  string
	verbose  bool
	noColor  bool
	jsonLogs bool

	// Populated by PersistentPreRunE for every subcommand.
	cfg    *config.Config
	logger *observability.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sensor-extractor",
	Short: "Sensor Query Extractor - pull sensor orders out of chat exports",
	Long: `Sensor Query Extractor reads a WhatsApp chat export, keeps the messages sent
by Box Silvassa, drops chatter and parses each remaining line into a product
name, sensor type, quantity and date. Results can be reviewed as a table and
exported to Excel, CSV or JSON, or served over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded

		level := cfg.Observability.LogLevel
		if verbose {
			level = "debug"
		}
		format := cfg.Observability.LogFormat
		if jsonLogs {
			format = "json"
		}
		logger = observability.NewLogger(observability.LogConfig{
			Level:       level,
			Format:      format,
			Output:      cmd.ErrOrStderr(),
			ServiceName: server.ServiceName,
		})

		ui.InitUI(noColor)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "write logs as JSON")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
