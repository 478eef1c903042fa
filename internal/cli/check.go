package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thruflo/armstrong/internal/armstrong"
)

var checkExplain bool

var checkCmd = &cobra.Command{
	Use:   "check <n>...",
	Short: "Report whether each number is an Armstrong number",
	Long: `Checks each argument and prints one line per number.

With --explain, also prints the digit count and the digit power sum.
Zero counts as an Armstrong number; negative numbers never do.

Examples:
  armstrong check 153 154
  armstrong check --explain 9474
  armstrong check -- -153`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkExplain, "explain", false,
		"Show digit count and power sum")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	values := make([]int, 0, len(args))
	for i, arg := range args {
		n, err := armstrong.ParseInt(fmt.Sprintf("argument %d", i+1), arg)
		if err != nil {
			return err
		}
		values = append(values, n)
	}

	if _, err := loadRuntimeConfig(cmd); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, n := range values {
		if _, err := fmt.Fprintln(out, describe(n, checkExplain)); err != nil {
			return err
		}
	}
	return nil
}

func describe(n int, explain bool) string {
	verdict := "not armstrong"
	if armstrong.IsArmstrong(n) {
		verdict = "armstrong"
	}
	if !explain {
		return fmt.Sprintf("%d: %s", n, verdict)
	}

	sum := "overflow"
	if s, ok := armstrong.PowerSum(n); ok {
		sum = strconv.Itoa(s)
	}
	return fmt.Sprintf("%d: %s (digits=%d sum=%s)", n, verdict, armstrong.DigitCount(n), sum)
}
