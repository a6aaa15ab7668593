package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/formula"
)

// ClassifyResult is the output of the classify command.
type ClassifyResult struct {
	Previous int              `json:"previous"`
	Current  int              `json:"current"`
	Formula  *formula.Formula `json:"formula"`
	// Answer and Correct are set only when --answer is given.
	Answer  string `json:"answer,omitempty"`
	Correct *bool  `json:"correct,omitempty"`
}

func (r ClassifyResult) String() string {
	if r.Formula == nil {
		return fmt.Sprintf("%d -> %d: no change", r.Previous, r.Current)
	}
	s := fmt.Sprintf("%d -> %d: %s\n  %s [%s]", r.Previous, r.Current, r.Formula, r.Formula.Description, r.Formula.Rule)
	if r.Correct != nil {
		verdict := "correct"
		if !*r.Correct {
			verdict = "incorrect"
		}
		s += fmt.Sprintf("\n  answer %q: %s", r.Answer, verdict)
	}
	return s
}

// ClassifyOptions holds flags for the classify command.
type ClassifyOptions struct {
	*RootOptions
	Answer string
}

// NewClassifyCommand creates the classify command.
func NewClassifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ClassifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "classify <previous> <current>",
		Short: "Name the mnemonic (口诀) for a change of one rod",
		Long: `Classify the change of one rod from previous to current and print the
traditional mnemonic. previous may exceed 9 when a carry is pending.
With --answer the given mnemonic is checked against the classification,
ignoring spaces and full-width characters.`,
		Example: `  zhusuan classify 3 6
  zhusuan classify 7 3 --answer 四去四`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Answer, "answer", "", "mnemonic to check against the classification")

	return cmd
}

func runClassify(cmd *cobra.Command, opts *ClassifyOptions, args []string) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	previous, err := parseInt("previous", args[0])
	if err != nil {
		return formatter.Fail(ErrCodeInvalidInput, "invalid argument", err)
	}
	current, err := parseInt("current", args[1])
	if err != nil {
		return formatter.Fail(ErrCodeInvalidInput, "invalid argument", err)
	}

	f := formula.Classify(previous, current)
	slog.Debug("classified", "previous", previous, "current", current, "formula", f)

	result := ClassifyResult{Previous: previous, Current: current, Formula: f}
	if opts.Answer != "" {
		correct := f != nil && formula.MatchesKoujue(opts.Answer, f.Koujue)
		result.Answer = opts.Answer
		result.Correct = &correct
	}
	return formatter.Success(result)
}
