// Package symmetry implements the placement-time checks that eliminate
// the rotation/reflection orbit of equivalent solutions: a lexicographic
// ordering rule on corner tile ids, a fixed rotation at the top-left
// cell, and an optional diagonal-reflection tie-break.
package symmetry
