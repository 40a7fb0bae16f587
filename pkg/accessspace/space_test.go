package accessspace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessdomain/fwengine/pkg/accessspace"
	"github.com/accessdomain/fwengine/pkg/rangealgebra"
)

func mustPortSpace(t *testing.T, start, end int) *accessspace.Space {
	t.Helper()
	r, err := rangealgebra.NewPortRange(start, end)
	require.NoError(t, err)
	return accessspace.NewSpace(r)
}

func mustIPPortProtoSpace(t *testing.T, cidr string, portStart, portEnd int, protocols ...string) *accessspace.Space {
	t.Helper()
	ip, err := accessspace.ParseIPRange(cidr)
	require.NoError(t, err)
	port, err := rangealgebra.NewPortRange(portStart, portEnd)
	require.NoError(t, err)
	proto := rangealgebra.NewProtocolRange(protocols...)
	return accessspace.NewSpace(ip, port, proto)
}

func TestSpaceIntersectFullPortRange(t *testing.T) {
	a := mustPortSpace(t, 0, 65536)
	b := mustPortSpace(t, 0, 65536)
	ok, err := a.Intersect(b)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSpaceIntersectDisjointPorts(t *testing.T) {
	a := mustPortSpace(t, 256, 32768)
	b := mustPortSpace(t, 1, 256)
	ok, err := a.Intersect(b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSpaceIntersectIPContainment(t *testing.T) {
	network := mustSpaceIP(t, "10.0.0.0/8")
	host := mustSpaceIP(t, "10.0.0.1/32")
	ok, err := network.Intersect(host)
	require.NoError(t, err)
	assert.True(t, ok)
}

func mustSpaceIP(t *testing.T, cidr string) *accessspace.Space {
	t.Helper()
	ip, err := accessspace.ParseIPRange(cidr)
	require.NoError(t, err)
	return accessspace.NewSpace(ip)
}

func TestSpaceIntersectDisjointIP(t *testing.T) {
	a := mustSpaceIP(t, "127.0.0.0/8")
	b := mustSpaceIP(t, "128.0.0.0/8")
	ok, err := a.Intersect(b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSpaceDifferenceCoverage(t *testing.T) {
	s := mustIPPortProtoSpace(t, "127.0.0.0/8", 0, 65536, "TCP", "UDP", "ICMP")
	t1 := mustIPPortProtoSpace(t, "127.0.0.0/8", 0, 65536, "ICMP")

	parts, err := s.Difference(t1)
	require.NoError(t, err)
	require.NotEmpty(t, parts)
	for _, p := range parts {
		assert.True(t, subsetOfS(t, p, s))
	}
}

func subsetOfS(t *testing.T, p, s *accessspace.Space) bool {
	t.Helper()
	pr, sr := p.Ranges(), s.Ranges()
	require.Len(t, pr, len(sr))
	for i := range pr {
		var ok bool
		var err error
		if num, isNum := pr[i].(*rangealgebra.NumericRange); isNum {
			ok, err = num.IsSubsetOf(sr[i].(*rangealgebra.NumericRange))
		} else {
			ok, err = sr[i].Contains(pr[i])
		}
		require.NoError(t, err)
		if !ok {
			return false
		}
	}
	return true
}

func TestSpaceDifferenceNoOverlapReturnsUnchanged(t *testing.T) {
	s := mustPortSpace(t, 0, 100)
	other := mustPortSpace(t, 200, 300)
	parts, err := s.Difference(other)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.True(t, parts[0].Equal(s))
}

func TestSpaceDifferenceErrorsWhenOtherWider(t *testing.T) {
	// other properly contains s in every dimension, so the underlying
	// NumericRange.Difference hits its invalid-flank branch; the error
	// must propagate rather than yielding a bogus non-empty result.
	s := mustPortSpace(t, 1000, 2000)
	other := mustPortSpace(t, 0, 65536)

	_, err := s.Difference(other)
	require.Error(t, err)
}

func TestSchemaMismatch(t *testing.T) {
	ip := mustSpaceIP(t, "10.0.0.0/8")
	port := mustPortSpace(t, 0, 100)
	_, err := ip.Intersect(port)
	require.Error(t, err)
	var mismatch *accessspace.SchemaMismatchError
	require.ErrorAs(t, err, &mismatch)
}
