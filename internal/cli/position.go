package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/position"
)

// PositionResult is the output of the position command.
type PositionResult struct {
	A    int           `json:"a"`
	B    int           `json:"b"`
	Rule position.Rule `json:"rule"`
}

func (r PositionResult) String() string {
	op := "×"
	if r.Rule.Operation == position.Divide {
		op = "÷"
	}
	return fmt.Sprintf("%d %s %d: %d digits\n  %s", r.A, op, r.B, r.Rule.TargetDigits, r.Rule.Description)
}

// NewPositionCommand creates the position command.
func NewPositionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "position <mul|div> <a> <b>",
		Short: "Digit count of a product or quotient (定位)",
		Example: `  zhusuan position mul 25 34
  zhusuan position div 100 4`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			op, err := position.ParseOperation(args[0])
			if err != nil {
				return formatter.Fail(ErrCodeInvalidInput, "invalid operation", err)
			}
			a, err := parseInt("a", args[1])
			if err != nil {
				return formatter.Fail(ErrCodeInvalidInput, "invalid argument", err)
			}
			b, err := parseInt("b", args[2])
			if err != nil {
				return formatter.Fail(ErrCodeInvalidInput, "invalid argument", err)
			}

			rule, err := position.Position(op, a, b)
			if err != nil {
				return formatter.Fail(ErrCodeInvalidInput, "cannot position", err)
			}
			return formatter.Success(PositionResult{A: a, B: b, Rule: rule})
		},
	}
}
