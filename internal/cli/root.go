package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thruflo/armstrong/internal/armstrong"
	"github.com/thruflo/armstrong/internal/config"
	"github.com/thruflo/armstrong/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "armstrong",
	Short: "Print the Armstrong numbers between two integers",
	Long: `Armstrong prompts for two integers and prints every Armstrong number
in the inclusive range between them, smallest first.

An Armstrong number equals the sum of its decimal digits, each raised to
the power of the number of digits (153 = 1^3 + 5^3 + 3^3).

Examples:
  armstrong                      # interactive
  echo "100 999" | armstrong
  armstrong range 100 999        # no prompts
  armstrong check 153 154`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("armstrong version {{.Version}}\n")
	registerGlobalFlags(rootCmd.PersistentFlags())
}

func registerGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVar(&configPath, "config", "",
		"Config file (default .armstrong/config.yaml in the working directory)")
	fs.StringVar(&logLevel, "log-level", "",
		"Diagnostic level on stderr: debug, info, warn or error (overrides config)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadRuntimeConfig resolves the config file, environment and flags, and
// points the default logger at the command's stderr.
func loadRuntimeConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = config.DefaultPath(cwd)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	logging.SetOutput(log.New(cmd.ErrOrStderr(), "", log.LstdFlags))
	logging.SetLevel(level)
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			logging.Warn("config file not found, using defaults", "path", configPath)
		}
	}
	logging.Debug("config loaded", "path", path, "level", level, "max_span", cfg.Scan.MaxSpan)

	return cfg, nil
}

func newPrinter(cmd *cobra.Command, cfg *config.Config) *armstrong.Printer {
	return armstrong.NewPrinter(cmd.OutOrStdout(), cfg.Scan.MaxSpan)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntimeConfig(cmd)
	if err != nil {
		return err
	}

	if err := newPrinter(cmd, cfg).Run(cmd.InOrStdin()); err != nil {
		logging.Debug("interactive scan failed", "error", err)
		return err
	}
	logging.Debug("interactive scan finished")
	return nil
}
