package kenken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullDomain(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"n=2", 2, 2},
		{"n=9 (sudoku-sized)", 9, 9},
		{"n=31 (default word width)", 31, 31},
		{"n=63 (wide word width)", 63, 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := FullDomain(tt.n)
			require.Equal(t, tt.want, d.Count())
			for v := 1; v <= tt.n; v++ {
				assert.True(t, d.Contains(v), "expected value %d present", v)
			}
			assert.False(t, d.Contains(tt.n+1))
			assert.False(t, d.Contains(0))
		})
	}
}

func TestDomainInsertRemoveRoundTrip(t *testing.T) {
	d := FullDomain(9)
	for v := 1; v <= 9; v++ {
		removed := d.Remove(v)
		restored := removed.Insert(v)
		assert.Equal(t, d, restored, "insert(remove(d,v),v) must equal d | bit(v)")
	}
}

func TestDomainSingleton(t *testing.T) {
	d := SingletonDomain(5)
	assert.True(t, d.IsSingleton())
	assert.Equal(t, 5, d.SingletonValue())
	assert.Equal(t, 1, d.Count())

	full := FullDomain(9)
	assert.False(t, full.IsSingleton())
}

func TestDomainMinMax(t *testing.T) {
	d := SingletonDomain(3).Union(SingletonDomain(7)).Union(SingletonDomain(2))
	assert.Equal(t, 2, d.Min())
	assert.Equal(t, 7, d.Max())

	empty := Domain(0)
	assert.Equal(t, 0, empty.Min())
	assert.Equal(t, 0, empty.Max())
}

func TestDomainIterateAscending(t *testing.T) {
	d := SingletonDomain(9).Union(SingletonDomain(1)).Union(SingletonDomain(4))
	var seen []int
	d.Iterate(func(v int) { seen = append(seen, v) })
	assert.Equal(t, []int{1, 4, 9}, seen)
	assert.Equal(t, seen, d.Values())
}

func TestDomainIntersectUnionComplement(t *testing.T) {
	a := FullDomain(5)
	b := SingletonDomain(2).Union(SingletonDomain(4))

	assert.Equal(t, b, a.Intersect(b))
	assert.Equal(t, a, a.Union(b))

	comp := b.Complement(5)
	assert.Equal(t, 3, comp.Count())
	assert.False(t, comp.Contains(2))
	assert.False(t, comp.Contains(4))
}

func TestDomainEmptyIsEmpty(t *testing.T) {
	var d Domain
	assert.True(t, d.IsEmpty())
	assert.False(t, d.IsSingleton())
}

func TestDomainString(t *testing.T) {
	assert.Equal(t, "{}", Domain(0).String())
	assert.Equal(t, "{1}", SingletonDomain(1).String())
	d := SingletonDomain(1).Union(SingletonDomain(3))
	assert.Equal(t, "{1,3}", d.String())
}

func TestSelectPopcountProviderDeterministic(t *testing.T) {
	hw := selectPopcountProvider(false)
	sw := selectPopcountProvider(true)
	assert.Equal(t, "portable", sw.Name())

	d := FullDomain(9)
	assert.Equal(t, d.Count(), d.countWith(hw))
	assert.Equal(t, d.Count(), d.countWith(sw))
}
