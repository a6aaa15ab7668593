package formula

import "strconv"

var numerals = [...]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

// Numeral returns the Chinese numeral for 0..9.
// Other values render as decimal digits.
func Numeral(n int) string {
	if n >= 0 && n < len(numerals) {
		return numerals[n]
	}
	return strconv.Itoa(n)
}
