package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/abacus"
	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/formula"
)

// FormulasResult is the output of the formulas command.
type FormulasResult struct {
	Sections       []formula.Section `json:"sections,omitempty"`
	Multiplication *[9][9]string     `json:"multiplication,omitempty"`

	text string
}

func (r FormulasResult) String() string {
	return strings.TrimSuffix(r.text, "\n")
}

// FormulasOptions holds flags for the formulas command.
type FormulasOptions struct {
	*RootOptions
	Section string
}

// NewFormulasCommand creates the formulas command.
func NewFormulasCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FormulasOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "formulas",
		Short: "Print the mnemonic reference tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(opts.RootOptions, cmd)

			groups := []formula.Group{formula.GroupAdd, formula.GroupSubtract, formula.GroupMultiply}
			if opts.Section != "" {
				g, ok := formula.ParseGroup(opts.Section)
				if !ok {
					err := abacus.NewInputError("section", "must be add, sub or mul, got %q", opts.Section)
					return formatter.Fail(ErrCodeInvalidInput, "invalid section", err)
				}
				groups = []formula.Group{g}
			}

			var b strings.Builder
			if err := formula.WriteReference(&b, groups...); err != nil {
				return formatter.Fail(ErrCodeGeneric, "render reference", err)
			}

			result := FormulasResult{text: b.String()}
			for _, s := range formula.Reference() {
				for _, g := range groups {
					if s.Group == g {
						result.Sections = append(result.Sections, s)
					}
				}
			}
			for _, g := range groups {
				if g == formula.GroupMultiply {
					table := formula.MultiplicationTable()
					result.Multiplication = &table
				}
			}
			return formatter.Success(result)
		},
	}

	cmd.Flags().StringVar(&opts.Section, "section", "", "only print one group (add|sub|mul)")

	return cmd
}
