package kenken

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLCVOrderReturnsAllDomainValues(t *testing.T) {
	p := threeByThreePuzzle()
	s := NewState(p, DefaultConfig())

	domain := s.structuralDomain(0, 0)
	ordered := s.lcvOrder(0, 0, domain)
	assert.ElementsMatch(t, domain.Values(), ordered)
}

func TestLCVOrderPrefersLeastConstraining(t *testing.T) {
	p := threeByThreePuzzle()
	s := NewState(p, DefaultConfig())
	s.Place(1, 1, 1) // removes 1 as a peer option in row 1 and column 1

	ordered := s.lcvOrder(0, 0, s.structuralDomain(0, 0))
	assert.Greater(t, len(ordered), 0)
	// the first value in the ordering must have a constraining score no
	// greater than any later value's
	firstScore := s.constrainingScore(0, 0, ordered[0])
	for _, v := range ordered[1:] {
		assert.LessOrEqual(t, firstScore, s.constrainingScore(0, 0, v))
	}
}
