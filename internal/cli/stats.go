package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/store"
)

// StatsResult is the output of the stats command.
type StatsResult struct {
	Challenges int               `json:"challenges"`
	Completed  int               `json:"completed"`
	Rules      []store.RuleCount `json:"rules"`
	// Moves is set when --challenge selects one challenge.
	Moves []store.MoveRecord `json:"moves,omitempty"`
}

func (r StatsResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "challenges: %d recorded, %d completed", r.Challenges, r.Completed)
	if len(r.Rules) == 0 {
		b.WriteString("\nno moves recorded")
	}
	for _, rc := range r.Rules {
		fmt.Fprintf(&b, "\n  %-24s %d", rc.Rule, rc.Count)
	}
	for _, m := range r.Moves {
		fmt.Fprintf(&b, "\n  #%d rod %d: %d -> %d  %s (%s)", m.Seq, m.Rod, m.Previous, m.Current, m.Koujue, m.Action)
	}
	return b.String()
}

// StatsOptions holds flags for the stats command.
type StatsOptions struct {
	*RootOptions
	DB        string
	Challenge string
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the practice log",
		Long: `Count recorded moves per rule, most practiced first. With --challenge the
moves of that challenge are listed too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", rootOpts.Config.Database, "practice log path")
	cmd.Flags().StringVar(&opts.Challenge, "challenge", "", "list the moves of one challenge")

	return cmd
}

func runStats(ctx context.Context, cmd *cobra.Command, opts *StatsOptions) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st, err := openStore(opts.DB, true)
	if err != nil {
		return formatter.Fail(storeErrorCode(err), "open practice log", err)
	}
	defer st.Close()

	challenges, err := st.ListChallenges(ctx)
	if err != nil {
		return formatter.Fail(ErrCodeStore, "list challenges", err)
	}
	rules, err := st.RuleCounts(ctx)
	if err != nil {
		return formatter.Fail(ErrCodeStore, "count rules", err)
	}

	result := StatsResult{Challenges: len(challenges), Rules: rules}
	for _, c := range challenges {
		if c.Done() {
			result.Completed++
		}
	}

	if opts.Challenge != "" {
		if _, err := st.GetChallenge(ctx, opts.Challenge); err != nil {
			return formatter.Fail(storeErrorCode(err), "load challenge", err)
		}
		moves, err := st.MovesFor(ctx, opts.Challenge)
		if err != nil {
			return formatter.Fail(ErrCodeStore, "list moves", err)
		}
		result.Moves = moves
	}

	return formatter.Success(result)
}
