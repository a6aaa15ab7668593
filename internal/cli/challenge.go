package cli

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/challenge"
)

// ChallengeResult is the output of the challenge command.
type ChallengeResult struct {
	Challenge *challenge.Challenge `json:"challenge"`
	Seq       int64                `json:"seq,omitempty"`
}

func (r ChallengeResult) String() string {
	c := r.Challenge
	var b strings.Builder
	fmt.Fprintf(&b, "%s  [%s] %s = ?", c.ID, c.Kind, c.Question)
	if c.Positioning != nil {
		fmt.Fprintf(&b, "\n  定位: %s", c.Positioning.Description)
	}
	if r.Seq > 0 {
		fmt.Fprintf(&b, "\n  recorded as #%d", r.Seq)
	}
	return b.String()
}

// ChallengeOptions holds flags for the challenge command.
type ChallengeOptions struct {
	*RootOptions
	Kind   string
	Seed   uint64
	Record bool
	DB     string
}

// NewChallengeCommand creates the challenge command.
func NewChallengeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ChallengeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Generate a practice problem",
		Long: `Generate a random ADD, SUB, MUL or DIV problem. A non-zero --seed makes
the problem reproducible. With --record the challenge is stored in the
practice log so later answers can be checked against it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChallenge(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Kind, "kind", string(challenge.Add), "challenge kind (ADD|SUB|MUL|DIV)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", rootOpts.Config.Seed, "random seed (0 = random)")
	cmd.Flags().BoolVar(&opts.Record, "record", false, "store the challenge in the practice log")
	cmd.Flags().StringVar(&opts.DB, "db", rootOpts.Config.Database, "practice log path")

	return cmd
}

func runChallenge(ctx context.Context, cmd *cobra.Command, opts *ChallengeOptions) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	kind, err := challenge.ParseKind(opts.Kind)
	if err != nil {
		return formatter.Fail(ErrCodeInvalidInput, "invalid kind", err)
	}

	gen := challenge.NewSeeded(opts.Seed, nil)
	if opts.Seed == 0 {
		gen = challenge.NewGenerator(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), nil)
	}

	c, err := gen.Generate(kind)
	if err != nil {
		return formatter.Fail(ErrCodeGeneric, "generate challenge", err)
	}
	slog.Debug("generated challenge", "id", c.ID, "kind", c.Kind, "question", c.Question)

	result := ChallengeResult{Challenge: c}
	if opts.Record {
		st, err := openStore(opts.DB, false)
		if err != nil {
			return formatter.Fail(ErrCodeStore, "open practice log", err)
		}
		defer st.Close()

		seq, err := st.WriteChallenge(ctx, c)
		if err != nil {
			return formatter.Fail(ErrCodeStore, "record challenge", err)
		}
		result.Seq = seq
		formatter.VerboseLog("recorded challenge %s as #%d in %s", c.ID, seq, opts.DB)
	}

	return formatter.Success(result)
}
