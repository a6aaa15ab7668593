package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReachable_Distinct(t *testing.T) {
	transitions := Reachable()
	require.NotEmpty(t, transitions)

	type pair struct{ prev, cur int }
	seen := map[pair]bool{}
	for _, tr := range transitions {
		p := pair{tr.Previous, tr.Current}
		assert.False(t, seen[p], "duplicate %v", p)
		seen[p] = true
		require.NotNil(t, tr.Formula, "single clicks always change the value")
	}
}

func TestFallbackTransitions_OnlyFromRodsAboveNine(t *testing.T) {
	fallbacks := FallbackTransitions()
	require.NotEmpty(t, fallbacks, "the fallback is reachable from a rod showing ten or more")

	for _, tr := range fallbacks {
		assert.GreaterOrEqual(t, tr.Previous, 10)
		assert.Less(t, tr.Current, tr.Previous)
	}
}

func TestReachable_DigitRangeNeverFallsBack(t *testing.T) {
	for _, tr := range Reachable() {
		if tr.Previous <= 9 {
			assert.NotEqual(t, Mixed, tr.Formula.Rule, "%d -> %d", tr.Previous, tr.Current)
		}
	}
}
