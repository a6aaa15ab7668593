package drill

import (
	"fmt"
	"strings"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/formula"
)

// Result is the outcome of one step.
type Result struct {
	Step    Step             `json:"step"`
	Formula *formula.Formula `json:"formula,omitempty"`
	Checked bool             `json:"checked"`
	Passed  bool             `json:"passed"`
}

// Report is the outcome of a whole drill.
type Report struct {
	Name    string   `json:"name"`
	Results []Result `json:"results"`
}

// Run classifies every step of d.
func Run(d *Drill) Report {
	r := Report{Name: d.Name, Results: make([]Result, 0, len(d.Steps))}
	for _, s := range d.Steps {
		res := Result{Step: s, Formula: formula.Classify(s.From, s.To), Passed: true}
		if s.Expect != "" {
			res.Checked = true
			res.Passed = res.Formula != nil && formula.MatchesKoujue(s.Expect, res.Formula.Koujue)
		}
		r.Results = append(r.Results, res)
	}
	return r
}

// Failed returns the number of steps whose expectation did not hold.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed {
			n++
		}
	}
	return n
}

// Checked returns the number of steps that carried an expectation.
func (r Report) Checked() int {
	n := 0
	for _, res := range r.Results {
		if res.Checked {
			n++
		}
	}
	return n
}

// Text renders the report one line per step.
func (r Report) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "drill: %s\n", r.Name)
	for i, res := range r.Results {
		fmt.Fprintf(&b, "%3d. %d -> %d  ", i+1, res.Step.From, res.Step.To)
		if res.Formula == nil {
			b.WriteString("(no change)")
		} else {
			b.WriteString(res.Formula.String())
		}
		switch {
		case !res.Checked:
		case res.Passed:
			b.WriteString("  ok")
		default:
			fmt.Fprintf(&b, "  FAIL expected %s", res.Step.Expect)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "summary: %d steps, %d checked, %d failed\n", len(r.Results), r.Checked(), r.Failed())
	return b.String()
}
