package testutil

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// CountingIDs yields "<prefix>-0001", "<prefix>-0002", ... and never runs out.
type CountingIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewCountingIDs creates an id source. An empty prefix defaults to "test-challenge".
func NewCountingIDs(prefix string) *CountingIDs {
	if prefix == "" {
		prefix = "test-challenge"
	}
	return &CountingIDs{prefix: prefix}
}

// Generate returns the next id.
func (g *CountingIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%04d", g.prefix, g.n)
}

// Rand returns a PCG-backed source fully determined by seed.
func Rand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
