package challenge

// Progress reports the effect of observing a board value.
type Progress struct {
	Advanced bool `json:"advanced"`
	Done     bool `json:"done"`
	// Expected is the value the board should show next.
	Expected int64 `json:"expected"`
}

// stepwise reports whether the challenge is entered step by step.
func (c *Challenge) stepwise() bool {
	return len(c.Steps) > 0
}

// Done reports whether the learner has finished the challenge.
// MUL and DIV count as a single step checked against the target.
func (c *Challenge) Done() bool {
	if c.stepwise() {
		return c.CurrentStep >= len(c.Steps)
	}
	return c.CurrentStep >= 1
}

// Expected returns the running total the board must show to complete the
// current step: the prefix sum of Steps for ADD/SUB, the target otherwise.
func (c *Challenge) Expected() int64 {
	if !c.stepwise() || c.Done() {
		return int64(c.Target)
	}
	var sum int64
	for _, s := range c.Steps[:c.CurrentStep+1] {
		sum += int64(s)
	}
	return sum
}

// Observe compares the board value with the current step and advances when
// it matches. Observing a finished challenge changes nothing.
func (c *Challenge) Observe(boardValue int64) Progress {
	if c.Done() {
		return Progress{Done: true, Expected: c.Expected()}
	}
	if boardValue != c.Expected() {
		return Progress{Expected: c.Expected()}
	}

	c.CurrentStep++
	return Progress{Advanced: true, Done: c.Done(), Expected: c.Expected()}
}
