package kenken

import "sort"

// lcvOrder returns domain's values ordered least-constraining-value first
// (spec §4.6): the value that would narrow the fewest unassigned peer
// cells' domains is tried first, on the heuristic that it leaves the
// search the most room. Ties keep ascending numeric order, so disabling
// EnableLCV and enabling it agree whenever no value is more constraining
// than another.
func (s *State) lcvOrder(r, c int, domain Domain) []int {
	values := domain.Values()
	scores := make(map[int]int, len(values))
	for _, v := range values {
		scores[v] = s.constrainingScore(r, c, v)
	}
	sort.SliceStable(values, func(i, j int) bool {
		if scores[values[i]] != scores[values[j]] {
			return scores[values[i]] < scores[values[j]]
		}
		return values[i] < values[j]
	})
	return values
}

// constrainingScore counts how many unassigned peer cells — sharing (r,
// c)'s row or column — still admit v as a candidate, i.e. how many cells
// assigning v at (r, c) would narrow.
func (s *State) constrainingScore(r, c, v int) int {
	score := 0
	for col := 0; col < s.n; col++ {
		if col == c {
			continue
		}
		idx := r*s.n + col
		if s.grid[idx] == 0 && s.structuralDomain(r, col).Contains(v) {
			score++
		}
	}
	for row := 0; row < s.n; row++ {
		if row == r {
			continue
		}
		idx := row*s.n + c
		if s.grid[idx] == 0 && s.structuralDomain(row, c).Contains(v) {
			score++
		}
	}
	return score
}
