package kenken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsWellFormedPuzzle(t *testing.T) {
	p := threeByThreePuzzle()
	assert.NoError(t, p.Validate())
}

func TestValidateRejectsOutOfRangeN(t *testing.T) {
	p := &Puzzle{N: 1}
	err := p.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestValidateRejectsOverlappingCages(t *testing.T) {
	p := &Puzzle{
		N: 2,
		Cages: []Cage{
			{Cells: []Cell{{0, 0}, {0, 1}}, Op: OpAdd, Target: 3},
			{Cells: []Cell{{0, 1}, {1, 1}}, Op: OpAdd, Target: 3},
		},
	}
	err := p.Validate()
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestValidateRejectsIncompleteCoverage(t *testing.T) {
	p := &Puzzle{
		N: 2,
		Cages: []Cage{
			{Cells: []Cell{{0, 0}}, Op: OpEq, Target: 1},
		},
	}
	err := p.Validate()
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestValidateRejectsDisconnectedCage(t *testing.T) {
	p := &Puzzle{
		N: 2,
		Cages: []Cage{
			{Cells: []Cell{{0, 0}, {1, 1}}, Op: OpAdd, Target: 3}, // diagonal, not 4-adjacent
			{Cells: []Cell{{0, 1}}, Op: OpEq, Target: 1},
			{Cells: []Cell{{1, 0}}, Op: OpEq, Target: 2},
		},
	}
	err := p.Validate()
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestValidateRejectsBadSubShape(t *testing.T) {
	p := &Puzzle{
		N: 3,
		Cages: []Cage{
			{Cells: []Cell{{0, 0}, {0, 1}, {0, 2}}, Op: OpSub, Target: 1},
		},
	}
	err := p.Validate()
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestValidateRejectsImpossibleDivTarget(t *testing.T) {
	p := &Puzzle{
		N: 2,
		Cages: []Cage{
			{Cells: []Cell{{0, 0}, {0, 1}}, Op: OpDiv, Target: 2},
			{Cells: []Cell{{1, 0}, {1, 1}}, Op: OpDiv, Target: 3}, // no pair in [1,2] gives ratio 3
		},
	}
	err := p.Validate()
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDivPairExists(t *testing.T) {
	assert.True(t, divPairExists(2, 4)) // 1*2=2, both <=4
	assert.False(t, divPairExists(10, 4))
}

func TestBuildCellCageIndex(t *testing.T) {
	p := threeByThreePuzzle()
	index := buildCellCageIndex(p)
	assert.Equal(t, index[Cell{0, 0}.index(3)], index[Cell{1, 0}.index(3)], "cage 0 covers both cells")
	assert.NotEqual(t, index[Cell{0, 0}.index(3)], index[Cell{0, 1}.index(3)])
}
