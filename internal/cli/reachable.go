package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/abacus"
	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/formula"
)

// ReachableResult is the output of the reachable command.
type ReachableResult struct {
	Moves       int                  `json:"moves"`
	Distinct    int                  `json:"distinct"`
	Transitions []formula.Transition `json:"transitions,omitempty"`
	Fallback    []formula.Transition `json:"fallback"`
}

func (r ReachableResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d single-bead moves, %d distinct transitions, %d fall back to %s",
		r.Moves, r.Distinct, len(r.Fallback), formula.MixedKoujue)
	for _, t := range r.Transitions {
		fmt.Fprintf(&b, "\n  %2d -> %2d  %s", t.Previous, t.Current, t.Formula)
	}
	if len(r.Transitions) == 0 {
		for _, t := range r.Fallback {
			fmt.Fprintf(&b, "\n  %2d -> %2d  %s", t.Previous, t.Current, t.Formula)
		}
	}
	return b.String()
}

// ReachableOptions holds flags for the reachable command.
type ReachableOptions struct {
	*RootOptions
	All bool
}

// NewReachableCommand creates the reachable command.
func NewReachableCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReachableOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "reachable",
		Short: "Classify every transition one bead click can produce",
		Long: `Enumerate every rod state and every bead click, classify the resulting
transitions and report which of them no rule explains. By default only the
fallback transitions are listed; --all lists every distinct transition.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(opts.RootOptions, cmd)

			all := formula.Reachable()
			result := ReachableResult{
				Moves:    len(abacus.Transitions()),
				Distinct: len(all),
				Fallback: formula.FallbackTransitions(),
			}
			if opts.All {
				result.Transitions = all
			}
			return formatter.Success(result)
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "list every distinct transition")

	return cmd
}
