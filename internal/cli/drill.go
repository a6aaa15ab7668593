package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/drill"
)

// DrillResult is the output of the drill command.
type DrillResult struct {
	drill.Report
	Checked int `json:"checked"`
	Failed  int `json:"failed"`
}

func (r DrillResult) String() string {
	return strings.TrimSuffix(r.Text(), "\n")
}

// NewDrillCommand creates the drill command.
func NewDrillCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "drill <file>",
		Short: "Run a drill file (.yaml or .cue)",
		Long: `Classify every step of a drill file and check the expected mnemonics.

Exit codes:
  0 - every expectation holds
  1 - at least one expectation failed
  2 - the drill file could not be loaded`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			d, err := drill.Load(args[0])
			if err != nil {
				code := ErrCodeInvalidInput
				if errors.Is(err, fs.ErrNotExist) {
					code = ErrCodeNotFound
				}
				return formatter.Fail(code, "load drill", err)
			}
			formatter.VerboseLog("loaded drill %q with %d steps", d.Name, len(d.Steps))

			report := drill.Run(d)
			result := DrillResult{Report: report, Checked: report.Checked(), Failed: report.Failed()}
			if result.Failed == 0 {
				return formatter.Success(result)
			}

			msg := fmt.Sprintf("%d of %d expectations failed", result.Failed, result.Checked)
			if formatter.Format == "json" {
				if err := formatter.Error(ErrCodeDrillFailed, msg, result); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(formatter.Writer, result)
				if err := formatter.Error(ErrCodeDrillFailed, msg, nil); err != nil {
					return err
				}
			}
			return NewExitError(ExitFailure, msg)
		},
	}
}
