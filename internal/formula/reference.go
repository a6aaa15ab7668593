package formula

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Group is a tab of the mnemonic reference.
type Group string

const (
	GroupAdd      Group = "add"
	GroupSubtract Group = "sub"
	GroupMultiply Group = "mul"
)

// Section is one named family of mnemonics.
type Section struct {
	Group   Group    `json:"group"`
	Rule    Rule     `json:"rule"`
	Title   string   `json:"title"`
	Entries []string `json:"entries"`
}

var groupTitles = map[Group]string{
	GroupAdd:      "一、加法口诀",
	GroupSubtract: "二、减法口诀",
	GroupMultiply: "三、乘法口诀",
}

// GroupTitle returns the heading for g.
func GroupTitle(g Group) string {
	return groupTitles[g]
}

// ParseGroup accepts add, sub or mul.
func ParseGroup(s string) (Group, bool) {
	g := Group(strings.ToLower(strings.TrimSpace(s)))
	_, ok := groupTitles[g]
	return g, ok
}

// Reference returns the addition and subtraction mnemonic families in
// teaching order. Entries are generated from the same builders Classify
// uses, so the table and the classifier cannot drift apart.
func Reference() []Section {
	return []Section{
		{GroupAdd, DirectAdd, "1. 直接加口诀", series(1, 9, func(n int) string {
			return Numeral(n) + "上" + Numeral(n)
		})},
		{GroupAdd, FullFiveAdd, "2. 满五加口诀 (下五去X)", series(1, 4, func(n int) string {
			return Numeral(n) + "下五去" + Numeral(5-n)
		})},
		{GroupAdd, CarryTen, "3. 进十加口诀 (去X进一)", series(1, 9, func(n int) string {
			return Numeral(n) + "去" + Numeral(10-n) + "进一"
		})},
		{GroupAdd, BreakFiveCarryTen, "4. 破五进十加口诀 (X上Y去五进一)", fixedSeries(breakFiveCarryTen)},
		{GroupSubtract, DirectSubtract, "1. 直接减口诀", series(1, 9, func(n int) string {
			return Numeral(n) + "去" + Numeral(n)
		})},
		{GroupSubtract, BreakFiveSubtract, "2. 破五减口诀 (X上Y去五)", series(1, 4, func(n int) string {
			return Numeral(n) + "上" + Numeral(5-n) + "去五"
		})},
		{GroupSubtract, BorrowTen, "3. 退十减口诀 (X退一还Y)", series(1, 9, func(n int) string {
			return Numeral(n) + "退一还" + Numeral(10-n)
		})},
		{GroupSubtract, BorrowTenReturnFive, "4. 退十补五减口诀 (X退一还五去Y)", fixedSeries(borrowTenReturnFive)},
	}
}

func series(from, to int, f func(n int) string) []string {
	out := make([]string, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, f(n))
	}
	return out
}

func fixedSeries(m map[int]fixedMnemonic) []string {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k].koujue)
	}
	return out
}

// MultiplicationTable returns the 大九九 table. Entry [i][j] reads
// "<j+1><i+1><product>", with the product zero-padded to two digits.
func MultiplicationTable() [9][9]string {
	var table [9][9]string
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			table[i][j] = fmt.Sprintf("%s%s%02d", Numeral(j+1), Numeral(i+1), (i+1)*(j+1))
		}
	}
	return table
}

// WriteReference renders the requested groups as plain text. With no groups
// every group is written.
func WriteReference(w io.Writer, groups ...Group) error {
	if len(groups) == 0 {
		groups = []Group{GroupAdd, GroupSubtract, GroupMultiply}
	}

	var b strings.Builder
	sections := Reference()
	for _, g := range groups {
		b.WriteString(GroupTitle(g))
		b.WriteString("\n")

		if g == GroupMultiply {
			writeMultiplication(&b)
			continue
		}
		for _, s := range sections {
			if s.Group != g {
				continue
			}
			b.WriteString(s.Title)
			b.WriteString("\n  ")
			b.WriteString(strings.Join(s.Entries, "，"))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeMultiplication(b *strings.Builder) {
	b.WriteString("大九九乘法口诀 (横向：乘数 | 纵向：被乘数)\n")
	for i, row := range MultiplicationTable() {
		b.WriteString(Numeral(i + 1))
		b.WriteString(" | ")
		b.WriteString(strings.Join(row[:], " "))
		b.WriteString("\n")
	}
	b.WriteString("备注：除法不用口诀。\n")
}
