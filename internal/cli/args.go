package cli

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/abacus"
)

// parseInt parses a decimal argument. Full-width digits and signs, as typed
// with a CJK input method, are narrowed first.
func parseInt(name, arg string) (int, error) {
	s := strings.TrimSpace(width.Narrow.String(arg))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, abacus.NewInputError(name, "not an integer: %q", arg)
	}
	return n, nil
}

// parseDigits accepts either one argument per column or a single run of
// digits ("1203").
func parseDigits(args []string) ([]int, error) {
	if len(args) == 1 {
		s := strings.TrimSpace(width.Narrow.String(args[0]))
		if len(s) > 1 && !strings.HasPrefix(s, "-") {
			args = strings.Split(s, "")
		}
	}

	digits := make([]int, 0, len(args))
	for _, a := range args {
		d, err := parseInt("digit", a)
		if err != nil {
			return nil, err
		}
		digits = append(digits, d)
	}
	return digits, nil
}
