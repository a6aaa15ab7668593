package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/abacus"
	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/formula"
	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/store"
)

// PracticeResult is the output of the practice command.
type PracticeResult struct {
	Seq         int64           `json:"seq"`
	ChallengeID string          `json:"challenge_id,omitempty"`
	Move        abacus.Move     `json:"move"`
	Formula     formula.Formula `json:"formula"`
}

func (r PracticeResult) String() string {
	return fmt.Sprintf("#%d rod %d: %d -> %d  %s", r.Seq, r.Move.Rod, r.Move.Previous, r.Move.Current, r.Formula)
}

// PracticeOptions holds flags for the practice command.
type PracticeOptions struct {
	*RootOptions
	DB        string
	Challenge string
	Rod       int
}

// NewPracticeCommand creates the practice command.
func NewPracticeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PracticeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "practice <previous> <current>",
		Short: "Classify a move and record it in the practice log",
		Long: `Classify the change of one rod and append it to the practice log.
With --challenge the move is attached to a recorded challenge, which must exist.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPractice(cmd.Context(), cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", rootOpts.Config.Database, "practice log path")
	cmd.Flags().StringVar(&opts.Challenge, "challenge", "", "challenge id the move belongs to")
	cmd.Flags().IntVar(&opts.Rod, "rod", 0, "rod index, 0 is leftmost")

	return cmd
}

func runPractice(ctx context.Context, cmd *cobra.Command, opts *PracticeOptions, args []string) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	previous, err := parseInt("previous", args[0])
	if err != nil {
		return formatter.Fail(ErrCodeInvalidInput, "invalid argument", err)
	}
	current, err := parseInt("current", args[1])
	if err != nil {
		return formatter.Fail(ErrCodeInvalidInput, "invalid argument", err)
	}
	if rods := opts.Config.Rods; opts.Rod < 0 || (rods > 0 && opts.Rod >= rods) {
		err := abacus.NewInputError("rod", "must be in [0,%d), got %d", rods, opts.Rod)
		return formatter.Fail(ErrCodeInvalidInput, "invalid rod", err)
	}

	f := formula.Classify(previous, current)
	if f == nil {
		err := abacus.NewInputError("current", "rod did not change (%d -> %d)", previous, current)
		return formatter.Fail(ErrCodeInvalidInput, "nothing to record", err)
	}

	var st *store.Store
	if opts.Challenge != "" {
		st, _, err = loadChallenge(ctx, opts.DB, opts.Challenge)
	} else {
		st, err = openStore(opts.DB, false)
	}
	if err != nil {
		return formatter.Fail(storeErrorCode(err), "open practice log", err)
	}
	defer st.Close()

	move := abacus.Move{Rod: opts.Rod, Previous: previous, Current: current}
	seq, err := st.WriteMove(ctx, opts.Challenge, move, *f)
	if err != nil {
		return formatter.Fail(ErrCodeStore, "record move", err)
	}
	slog.Debug("recorded move", "seq", seq, "rule", f.Rule, "challenge", opts.Challenge)

	return formatter.Success(PracticeResult{
		Seq:         seq,
		ChallengeID: opts.Challenge,
		Move:        move,
		Formula:     *f,
	})
}
