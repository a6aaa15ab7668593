// Package abacus models the columns (rods) of a 2/5 bead abacus.
//
// Each column carries an upper ("heaven") group of two beads worth 5 and a
// lower ("earth") group of five beads worth 1. A column's value is
// 5*upper + lower, and a board composes its columns most-significant first.
//
// Columns change only through bead toggles that follow the adjacent-bead
// click model: clicking a bead moves it together with every bead between it
// and the beam. Each toggle reports a Move that the formula classifier
// consumes.
package abacus
