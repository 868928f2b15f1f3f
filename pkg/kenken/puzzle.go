package kenken

import (
	"fmt"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
)

// Operator is a cage's arithmetic relation (spec §3).
type Operator int

const (
	OpAdd Operator = iota
	OpMul
	OpSub
	OpDiv
	OpEq
)

// String names the operator for diagnostics and error messages.
func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpSub:
		return "sub"
	case OpDiv:
		return "div"
	case OpEq:
		return "eq"
	default:
		return "unknown"
	}
}

// Cell identifies one square of the grid by (row, column), both 0-indexed.
type Cell struct {
	Row, Col int
}

// index returns the cell's row-major position in [0, n*n).
func (c Cell) index(n int) int { return c.Row*n + c.Col }

// vertexID gives the cell a stable identifier for the contiguity graph.
func (c Cell) vertexID() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Cage is a group of cells sharing an arithmetic constraint (spec §3).
type Cage struct {
	Cells  []Cell
	Op     Operator
	Target int
}

// Puzzle is the read-only input to the core (spec §3). n is the grid size;
// Cages is an ordered sequence of cages that must cover every cell exactly
// once. The core's public operations borrow a Puzzle immutably for the
// duration of a single call.
type Puzzle struct {
	N     int
	Cages []Cage
}

// Validate checks every invariant spec §3 requires: grid-size bounds, cage
// coverage, pairwise-distinct contiguous cells, operator-specific shape
// rules, and target ranges. It is the only pre-search failure mode visible
// to callers besides internal panics on core bugs (spec §4.8).
func (p *Puzzle) Validate() error {
	if p.N < 2 || p.N > MaxN {
		return NewValidationError("n=%d out of supported range [2, %d]", p.N, MaxN)
	}

	owner := make([]int, p.N*p.N)
	for i := range owner {
		owner[i] = -1
	}

	for ci := range p.Cages {
		cage := &p.Cages[ci]
		if err := p.validateCageShape(cage); err != nil {
			return err
		}
		seen := make(map[Cell]bool, len(cage.Cells))
		for _, c := range cage.Cells {
			if c.Row < 0 || c.Row >= p.N || c.Col < 0 || c.Col >= p.N {
				return NewValidationError("cage %d: cell (%d,%d) outside grid", ci, c.Row, c.Col)
			}
			if seen[c] {
				return NewValidationError("cage %d: cell (%d,%d) repeated within cage", ci, c.Row, c.Col)
			}
			seen[c] = true
			idx := c.index(p.N)
			if owner[idx] != -1 {
				return NewValidationError("cell (%d,%d) covered by both cage %d and cage %d", c.Row, c.Col, owner[idx], ci)
			}
			owner[idx] = ci
		}
		if !cageConnected(cage) {
			return NewValidationError("cage %d: cells are not 4-neighbour contiguous", ci)
		}
	}

	for idx, o := range owner {
		if o == -1 {
			return NewValidationError("cell %d is not covered by any cage", idx)
		}
	}

	return nil
}

// validateCageShape enforces spec §3's per-operator cell-count and
// target-range invariants.
func (p *Puzzle) validateCageShape(cage *Cage) error {
	if len(cage.Cells) == 0 {
		return NewValidationError("cage has no cells")
	}
	n := p.N
	switch cage.Op {
	case OpEq:
		if len(cage.Cells) != 1 {
			return NewValidationError("eq cage must have exactly 1 cell, got %d", len(cage.Cells))
		}
		if cage.Target < 1 || cage.Target > n {
			return NewValidationError("eq cage target %d out of range [1, %d]", cage.Target, n)
		}
	case OpSub:
		if len(cage.Cells) != 2 {
			return NewValidationError("sub cage must have exactly 2 cells, got %d", len(cage.Cells))
		}
		if n < 2 {
			return NewValidationError("sub cage requires n >= 2, got %d", n)
		}
		if cage.Target < 1 || cage.Target > n-1 {
			return NewValidationError("sub cage target %d out of range [1, %d]", cage.Target, n-1)
		}
	case OpDiv:
		if len(cage.Cells) != 2 {
			return NewValidationError("div cage must have exactly 2 cells, got %d", len(cage.Cells))
		}
		if cage.Target < 2 || cage.Target > n {
			return NewValidationError("div cage target %d out of range [2, %d]", cage.Target, n)
		}
		if !divPairExists(cage.Target, n) {
			return NewValidationError("div cage target %d admits no divisor pair in [1, %d]", cage.Target, n)
		}
	case OpAdd, OpMul:
		if cage.Target < 1 {
			return NewValidationError("%s cage target %d must be positive", cage.Op, cage.Target)
		}
	default:
		return NewValidationError("unknown cage operator %d", int(cage.Op))
	}
	return nil
}

// divPairExists reports whether some a, b in [1, n] satisfy a = target*b,
// i.e. the Div cage's target has at least one valid divisor pair.
func divPairExists(target, n int) bool {
	for b := 1; b <= n; b++ {
		a := target * b
		if a >= 1 && a <= n {
			return true
		}
	}
	return false
}

// cageConnected reports whether a cage's cells form a single 4-neighbour-
// adjacent connected component, built and checked with lvlath's graph and
// BFS packages rather than a hand-rolled flood fill.
func cageConnected(cage *Cage) bool {
	if len(cage.Cells) <= 1 {
		return true
	}

	g := core.NewGraph()
	cellSet := make(map[Cell]bool, len(cage.Cells))
	for _, c := range cage.Cells {
		cellSet[c] = true
	}
	for _, c := range cage.Cells {
		if err := g.AddVertex(c.vertexID()); err != nil {
			return false
		}
	}
	for _, c := range cage.Cells {
		for _, nb := range []Cell{
			{Row: c.Row - 1, Col: c.Col},
			{Row: c.Row + 1, Col: c.Col},
			{Row: c.Row, Col: c.Col - 1},
			{Row: c.Row, Col: c.Col + 1},
		} {
			if cellSet[nb] && !g.HasEdge(c.vertexID(), nb.vertexID()) {
				if _, err := g.AddEdge(c.vertexID(), nb.vertexID(), 0); err != nil {
					return false
				}
			}
		}
	}

	result, err := bfs.BFS(g, cage.Cells[0].vertexID())
	if err != nil {
		return false
	}
	return len(result.Order) == len(cage.Cells)
}

// buildCellCageIndex precomputes the cell -> containing-cage lookup used by
// Hard-tier cross-cage elimination (spec §9's
// design note: maintaining this mapping beats scanning all cages per
// query). It assumes Validate has already confirmed full, exclusive
// coverage.
func buildCellCageIndex(p *Puzzle) []int {
	index := make([]int, p.N*p.N)
	for ci := range p.Cages {
		for _, c := range p.Cages[ci].Cells {
			index[c.index(p.N)] = ci
		}
	}
	return index
}
