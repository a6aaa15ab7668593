package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/abacus"
)

// ColumnResult is the output of the column command.
type ColumnResult struct {
	Upper int `json:"upper"`
	Lower int `json:"lower"`
	Value int `json:"value"`
}

func (r ColumnResult) String() string {
	return fmt.Sprintf("upper=%d lower=%d value=%d", r.Upper, r.Lower, r.Value)
}

// NewColumnCommand creates the column command.
func NewColumnCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "column <upper> <lower>",
		Short: "Value of one rod from its active bead counts",
		Long: `Compute the value of one rod. upper is the number of active heaven
beads (0-2, each worth 5) and lower the number of active earth beads (0-5).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			upper, err := parseInt("upper", args[0])
			if err != nil {
				return formatter.Fail(ErrCodeInvalidInput, "invalid argument", err)
			}
			lower, err := parseInt("lower", args[1])
			if err != nil {
				return formatter.Fail(ErrCodeInvalidInput, "invalid argument", err)
			}

			value, err := abacus.ColumnValue(upper, lower)
			if err != nil {
				return formatter.Fail(ErrCodeInvalidInput, "invalid column", err)
			}
			return formatter.Success(ColumnResult{Upper: upper, Lower: lower, Value: value})
		},
	}
}

// BoardResult is the output of the board command.
type BoardResult struct {
	Digits    []int  `json:"digits"`
	Value     int64  `json:"value"`
	Formatted string `json:"formatted"`
}

func (r BoardResult) String() string {
	parts := make([]string, len(r.Digits))
	for i, d := range r.Digits {
		parts[i] = fmt.Sprint(d)
	}
	return fmt.Sprintf("[%s] = %s", strings.Join(parts, " "), r.Formatted)
}

// NewBoardCommand creates the board command.
func NewBoardCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "board <digit>...",
		Short: "Value of a whole board, leftmost rod most significant",
		Long: `Compose rod digits into the number the board shows. Digits may be given
as separate arguments or as one run ("1203"). The board width is limited by
ZHUSUAN_RODS.`,
		Example: `  zhusuan board 1 2 0 3
  zhusuan board 1203`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			digits, err := parseDigits(args)
			if err != nil {
				return formatter.Fail(ErrCodeInvalidInput, "invalid argument", err)
			}
			if rods := rootOpts.Config.Rods; rods > 0 && len(digits) > rods {
				err := abacus.NewInputError("digits", "board has %d rods, got %d digits", rods, len(digits))
				return formatter.Fail(ErrCodeInvalidInput, "invalid board", err)
			}

			value, err := abacus.BoardValue(digits)
			if err != nil {
				return formatter.Fail(ErrCodeInvalidInput, "invalid board", err)
			}

			p := message.NewPrinter(language.English)
			return formatter.Success(BoardResult{
				Digits:    digits,
				Value:     value,
				Formatted: p.Sprintf("%d", value),
			})
		},
	}
}
