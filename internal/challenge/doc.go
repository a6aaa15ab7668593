// Package challenge generates practice problems.
//
// Addition and subtraction problems carry the signed increments a learner
// enters one after the other. Multiplication and division problems carry no
// steps; they are checked against the final target and come with the
// positioning rule that tells the learner where the answer's leading digit
// belongs.
//
// Randomness is injected as a *rand.Rand so that a seed reproduces a
// problem exactly.
package challenge
