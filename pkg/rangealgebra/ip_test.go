package rangealgebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessdomain/fwengine/pkg/rangealgebra"
)

func TestParseIPRangeCIDR(t *testing.T) {
	r, err := rangealgebra.ParseIPRange("10.0.0.0/8")
	require.NoError(t, err)
	assert.False(t, r.Empty())
	assert.Equal(t, rangealgebra.KindIP, r.Kind())
}

func TestParseIPRangeHostRoute(t *testing.T) {
	r, err := rangealgebra.ParseIPRange("10.0.0.1")
	require.NoError(t, err)
	// a single host route spans exactly one address
	span := r.End()
	span.Sub(span, r.Start())
	assert.Equal(t, "1", span.String())
}

func TestSlash32ContainedInLargerCIDR(t *testing.T) {
	host, err := rangealgebra.ParseIPRange("10.0.0.1/32")
	require.NoError(t, err)
	network, err := rangealgebra.ParseIPRange("10.0.0.0/8")
	require.NoError(t, err)

	intersection, ok, err := network.Intersect(host)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, intersection.Empty())

	diff, err := network.Difference(host)
	require.NoError(t, err)
	nonEmpty := 0
	for _, d := range diff {
		if !d.Empty() {
			nonEmpty++
		}
	}
	assert.Positive(t, nonEmpty)
}

func TestDisjointCIDRsDoNotIntersect(t *testing.T) {
	a, err := rangealgebra.ParseIPRange("127.0.0.0/8")
	require.NoError(t, err)
	b, err := rangealgebra.ParseIPRange("128.0.0.0/8")
	require.NoError(t, err)

	_, ok, err := a.Intersect(b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseIPRangeRejectsGarbage(t *testing.T) {
	_, err := rangealgebra.ParseIPRange("not-an-ip")
	require.Error(t, err)
	var invalid *rangealgebra.InvalidRangeError
	require.ErrorAs(t, err, &invalid)
}

func TestParseIPRangeIPv6(t *testing.T) {
	r, err := rangealgebra.ParseIPRange("2001:db8::/32")
	require.NoError(t, err)
	assert.False(t, r.Empty())
}
