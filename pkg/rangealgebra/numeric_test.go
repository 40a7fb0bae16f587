package rangealgebra_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessdomain/fwengine/pkg/rangealgebra"
)

func mustPort(t *testing.T, start, end int) *rangealgebra.NumericRange {
	t.Helper()
	r, err := rangealgebra.NewPortRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewPortRangeInvalid(t *testing.T) {
	_, err := rangealgebra.NewPortRange(10, 5)
	require.Error(t, err)
	var invalid *rangealgebra.InvalidRangeError
	require.ErrorAs(t, err, &invalid)

	_, err = rangealgebra.NewPortRange(0, 65537)
	require.Error(t, err)
}

func TestIntersectCommutative(t *testing.T) {
	a := mustPort(t, 0, 100)
	b := mustPort(t, 50, 200)

	ab, okAB, err := a.Intersect(b)
	require.NoError(t, err)
	require.True(t, okAB)

	ba, okBA, err := b.Intersect(a)
	require.NoError(t, err)
	require.True(t, okBA)

	assert.True(t, ab.Equal(ba))
}

func TestAdjacentRangesDoNotIntersect(t *testing.T) {
	a := mustPort(t, 0, 1)
	b := mustPort(t, 1, 2)
	_, ok, err := a.Intersect(b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDifferenceWithSelfIsEmpty(t *testing.T) {
	a := mustPort(t, 10, 20)
	diff, err := a.Difference(a)
	require.NoError(t, err)
	for _, d := range diff {
		assert.True(t, d.Empty())
	}
}

func TestUnionOnlyWhenOverlapping(t *testing.T) {
	a := mustPort(t, 256, 32768)
	b := mustPort(t, 1, 256)
	_, ok, err := a.Intersect(b)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = a.Union(b)
	require.NoError(t, err)
	assert.False(t, ok, "disjoint numeric union must report ok=false")

	c := mustPort(t, 0, 300)
	union, ok, err := a.Union(c)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, big.NewInt(0).String(), union.(*rangealgebra.NumericRange).Start().String())
	assert.Equal(t, big.NewInt(32768).String(), union.(*rangealgebra.NumericRange).End().String())
}

func TestSymmetricContains(t *testing.T) {
	outer := mustPort(t, 0, 65536)
	inner := mustPort(t, 1000, 2000)

	ok, err := outer.Contains(inner)
	require.NoError(t, err)
	assert.True(t, ok)

	// symmetric: the smaller range also "contains" the larger one.
	ok, err = inner.Contains(outer)
	require.NoError(t, err)
	assert.True(t, ok, "numeric contains is preserved as symmetric")

	sub, err := inner.IsSubsetOf(outer)
	require.NoError(t, err)
	assert.True(t, sub)

	sub, err = outer.IsSubsetOf(inner)
	require.NoError(t, err)
	assert.False(t, sub, "IsSubsetOf is strictly directional")
}

func TestDifferenceFlanks(t *testing.T) {
	a := mustPort(t, 0, 65536)
	b := mustPort(t, 1, 65536)

	diff, err := a.Difference(b)
	require.NoError(t, err)
	require.Len(t, diff, 2)

	nonEmpty := 0
	for _, d := range diff {
		if !d.Empty() {
			nonEmpty++
		}
	}
	assert.Equal(t, 1, nonEmpty, "removing [1,65536) from [0,65536) leaves the single point [0,1)")
}

func TestDifferenceErrorsWhenOtherProperlyContainsSelf(t *testing.T) {
	// other strictly, properly contains r, so the symmetric Contains
	// fires on the "wrong" direction and both flanks would have
	// start > end ([1000,0) and [65536,2000)) if built without
	// validation.
	r := mustPort(t, 1000, 2000)
	other := mustPort(t, 0, 65536)

	_, err := r.Difference(other)
	require.Error(t, err)
}

func TestIncompatibleKinds(t *testing.T) {
	port := mustPort(t, 0, 100)
	ip, err := rangealgebra.ParseIPRange("10.0.0.0/8")
	require.NoError(t, err)

	_, _, err = port.Intersect(ip)
	require.Error(t, err)
	var incompatible *rangealgebra.IncompatibleKindsError
	require.ErrorAs(t, err, &incompatible)
}
