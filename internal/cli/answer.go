package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/challenge"
)

// AnswerResult is the output of the answer command.
type AnswerResult struct {
	ChallengeID string             `json:"challenge_id"`
	Question    string             `json:"question"`
	Value       int64              `json:"value"`
	Progress    challenge.Progress `json:"progress"`
	CurrentStep int                `json:"current_step"`
}

func (r AnswerResult) String() string {
	switch {
	case r.Progress.Done && r.Progress.Advanced:
		return fmt.Sprintf("%s = %d: correct, challenge complete", r.Question, r.Value)
	case r.Progress.Done:
		return fmt.Sprintf("%s: already complete", r.Question)
	case r.Progress.Advanced:
		return fmt.Sprintf("%s: step %d done, board should now show %d", r.Question, r.CurrentStep, r.Progress.Expected)
	}
	return fmt.Sprintf("%s: board shows %d, expected %d", r.Question, r.Value, r.Progress.Expected)
}

// AnswerOptions holds flags for the answer command.
type AnswerOptions struct {
	*RootOptions
	DB string
}

// NewAnswerCommand creates the answer command.
func NewAnswerCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnswerOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "answer <challenge-id> <board-value>",
		Short: "Check the board against a recorded challenge",
		Long: `Compare the value shown on the board with the current step of a recorded
challenge. ADD and SUB challenges advance one operand at a time, MUL and DIV
are checked against the final result. Progress is saved in the practice log.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnswer(cmd.Context(), cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", rootOpts.Config.Database, "practice log path")

	return cmd
}

func runAnswer(ctx context.Context, cmd *cobra.Command, opts *AnswerOptions, args []string) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	value, err := parseInt("board-value", args[1])
	if err != nil {
		return formatter.Fail(ErrCodeInvalidInput, "invalid argument", err)
	}

	st, c, err := loadChallenge(ctx, opts.DB, args[0])
	if err != nil {
		return formatter.Fail(storeErrorCode(err), "load challenge", err)
	}
	defer st.Close()

	progress := c.Observe(int64(value))
	if progress.Advanced {
		if err := st.UpdateProgress(ctx, c.ID, c.CurrentStep); err != nil {
			return formatter.Fail(ErrCodeStore, "save progress", err)
		}
	}

	return formatter.Success(AnswerResult{
		ChallengeID: c.ID,
		Question:    c.Question,
		Value:       int64(value),
		Progress:    progress,
		CurrentStep: c.CurrentStep,
	})
}
