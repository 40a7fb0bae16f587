package rangealgebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessdomain/fwengine/pkg/rangealgebra"
)

func TestNominalContains(t *testing.T) {
	a := rangealgebra.NewProtocolRange("TCP", "UDP", "ICMP")
	b := rangealgebra.NewProtocolRange("TCP", "UDP")

	ok, err := a.Contains(b)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.Contains(a)
	require.NoError(t, err)
	assert.False(t, ok, "nominal contains is directional, unlike numeric")
}

func TestNominalDifferenceEmptiesSinglePointSet(t *testing.T) {
	a := rangealgebra.NewProtocolRange("TCP")
	diff, err := a.Difference(a)
	require.NoError(t, err)
	require.Len(t, diff, 1)
	assert.True(t, diff[0].Empty())
}

func TestNominalOrderInvariantToConstructionOrder(t *testing.T) {
	a := rangealgebra.NewProtocolRange("TCP", "UDP")
	b := rangealgebra.NewProtocolRange("UDP", "TCP")
	assert.True(t, a.Equal(b))
	c, err := a.Compare(b)
	require.NoError(t, err)
	assert.Zero(t, c)
}

func TestNominalCompareShorterSetFirst(t *testing.T) {
	short := rangealgebra.NewProtocolRange("TCP")
	long := rangealgebra.NewProtocolRange("TCP", "UDP")
	c, err := short.Compare(long)
	require.NoError(t, err)
	assert.Negative(t, c)
}

func TestNominalUnionAndIntersect(t *testing.T) {
	a := rangealgebra.NewProtocolRange("TCP", "UDP")
	b := rangealgebra.NewProtocolRange("UDP", "ICMP")

	union, ok, err := a.Union(b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"TCP", "UDP", "ICMP"}, union.(*rangealgebra.NominalRange).Labels())

	intersection, ok, err := a.Intersect(b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"UDP"}, intersection.(*rangealgebra.NominalRange).Labels())
}
