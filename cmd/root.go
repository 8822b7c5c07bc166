// Package cmd holds the CLI surface of mintsh.
package cmd

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/mintsh/mintsh/core"
	"github.com/mintsh/mintsh/core/config"
	"github.com/mintsh/mintsh/core/session"
)

var (
	cfgPath string
	noColor bool
	logFile string
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		// No config file is fine; run with defaults.
		return config.Default(), nil
	}
	return cfg, err
}

func newLogger() (*zap.Logger, error) {
	if logFile == "" {
		return zap.NewNop(), nil
	}
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{logFile}
	logCfg.ErrorOutputPaths = []string{logFile}
	return logCfg.Build()
}

func shouldColor(cfg *config.Config) bool {
	if noColor {
		return false
	}
	switch cfg.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// rootCmd runs the interactive shell when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "mintsh",
	Short: "A Mint-flavored interactive shell",
	Long: `An interactive line-oriented command shell with aliases, bookmarks,
a calculator and follow mode. Unknown commands are forwarded to the host
shell.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		sess := session.New()
		sess.Host = core.NewHostShell()
		sess.Log = logger
		sess.Color = shouldColor(cfg)
		sess.FollowInterval = cfg.FollowInterval()

		shell, err := core.NewShell(cfg, sess)
		if err != nil {
			return err
		}
		defer shell.Close()

		shell.Run(context.Background())
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable the Mint palette")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write diagnostic logs to this file")
}
