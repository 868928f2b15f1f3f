package kenken

import (
	"fmt"
	"strings"
)

// Solution is a completed grid in row-major order: Solution[r*n+c] is the
// value placed at row r, column c. It is returned by SolveOne; nothing in
// the core mutates a Solution once returned.
type Solution []int

// At returns the value at (r, c) for a grid of the given width n.
func (sol Solution) At(r, c, n int) int {
	return sol[r*n+c]
}

// Render draws the solution as a plain n-by-n grid of space-separated
// values, one row per line, for debugging and example output. It is not
// part of any wire format (out of scope per this module's non-goals) —
// purely a developer convenience, in the spirit of the teacher repo's
// example programs printing their own results.
func (sol Solution) Render(n int) string {
	var b strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", sol.At(r, c, n))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String implements fmt.Stringer by rendering against the solution's own
// square root width, recovered from its length by an integer search;
// callers that already know n should prefer Render(n), which skips it.
func (sol Solution) String() string {
	n := 0
	for n*n < len(sol) {
		n++
	}
	return sol.Render(n)
}
