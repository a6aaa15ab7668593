// Package formula identifies the traditional abacus mnemonic (口诀) that
// explains a single column's value change.
//
// Classification runs an ordered rule table: the addition rules are tried
// for positive deltas and the subtraction rules for negative deltas, and the
// first matching rule wins. Several predicates can hold at once, so the
// order of the tables decides the reported mnemonic. Transitions that no
// rule explains classify as a mixed operation (混合运算); Classify never fails.
//
// The mnemonic strings are product content and are reproduced verbatim.
package formula
