package cli

import (
	"fmt"
	"os"

	"github.com/rustyeddy/tradecalc/config"
	"github.com/rustyeddy/tradecalc/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootConfig holds the persistent flags shared by every subcommand.
type RootConfig struct {
	EnvFile     string
	LogLevel    string
	LogFormat   string
	JournalType string
	DBPath      string
	CSVPath     string

	log *logrus.Logger
}

func NewRootCmd() *cobra.Command {
	rc := &RootConfig{log: logrus.New()}

	cmd := &cobra.Command{
		Use:           "tradecalc",
		Short:         "tradecalc — position sizing and profit calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&rc.EnvFile, "env-file", ".env", "Optional .env file with TRADECALC_* settings")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "info", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().StringVar(&rc.LogFormat, "log-format", "text", "Log format: text|json")
	cmd.PersistentFlags().StringVar(&rc.JournalType, "journal", "", "Record calculations: csv|sqlite (empty disables)")
	cmd.PersistentFlags().StringVar(&rc.DBPath, "db", "./tradecalc.sqlite", "SQLite journal database")
	cmd.PersistentFlags().StringVar(&rc.CSVPath, "csv", "./tradecalc.csv", "CSV journal file")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		env, err := config.LoadEnv(rc.EnvFile)
		if err != nil {
			return err
		}
		rc.applyEnv(cmd, env)

		switch rc.JournalType {
		case "", "csv", "sqlite":
		default:
			return fmt.Errorf("--journal must be csv or sqlite, got %q", rc.JournalType)
		}

		rc.log = logging.Setup(rc.LogLevel, rc.LogFormat, cmd.ErrOrStderr())
		return nil
	}

	// Subcommands
	cmd.AddCommand(
		newPositionCmd(rc),
		newProfitCmd(rc),
		newPlanCmd(rc),
		newConfigCmd(rc),
		newJournalCmd(rc),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "tradecalc (dev)")
		},
	})

	return cmd
}

// applyEnv fills flags the user did not set from the environment.
func (rc *RootConfig) applyEnv(cmd *cobra.Command, env *config.Env) {
	flags := cmd.Flags()
	if !flags.Changed("log-level") {
		rc.LogLevel = env.LogLevel
	}
	if !flags.Changed("log-format") {
		rc.LogFormat = env.LogFormat
	}
	if !flags.Changed("journal") {
		rc.JournalType = env.JournalType
	}
	if !flags.Changed("db") {
		rc.DBPath = env.JournalDB
	}
	if !flags.Changed("csv") {
		rc.CSVPath = env.JournalCSV
	}
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
