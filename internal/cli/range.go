package cli

import (
	"github.com/spf13/cobra"
	"github.com/thruflo/armstrong/internal/armstrong"
	"github.com/thruflo/armstrong/internal/logging"
)

var rangeCmd = &cobra.Command{
	Use:   "range <first> <second>",
	Short: "Print Armstrong numbers between two integers without prompting",
	Long: `Prints the same header and matches as the interactive mode, taking the
bounds as arguments. Bounds may be given in either order.

Use -- before negative bounds so they are not read as flags:
  armstrong range -- -10 500`,
	Args: cobra.ExactArgs(2),
	RunE: runRange,
}

func init() {
	rootCmd.AddCommand(rangeCmd)
}

func runRange(cmd *cobra.Command, args []string) error {
	first, err := armstrong.ParseInt("first number", args[0])
	if err != nil {
		return err
	}
	second, err := armstrong.ParseInt("second number", args[1])
	if err != nil {
		return err
	}

	cfg, err := loadRuntimeConfig(cmd)
	if err != nil {
		return err
	}

	log := logging.With("command", "range")
	log.Debug("scanning", "first", first, "second", second)

	matches, err := newPrinter(cmd, cfg).Print(first, second)
	if err != nil {
		return err
	}
	log.Info("scan finished", "matches", matches)
	return nil
}
