package rangealgebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessdomain/fwengine/pkg/rangealgebra"
)

func TestParsePortRangeSingle(t *testing.T) {
	r, err := rangealgebra.ParsePortRange("443")
	require.NoError(t, err)
	assert.Equal(t, "443", r.Start().String())
	assert.Equal(t, "444", r.End().String())
}

func TestParsePortRangeSpan(t *testing.T) {
	r, err := rangealgebra.ParsePortRange("1000-2000")
	require.NoError(t, err)
	assert.Equal(t, "1000", r.Start().String())
	assert.Equal(t, "2001", r.End().String())
}

func TestParsePortRangeRejectsReversed(t *testing.T) {
	_, err := rangealgebra.ParsePortRange("2000-1000")
	require.Error(t, err)
	var invalid *rangealgebra.InvalidRangeError
	require.ErrorAs(t, err, &invalid)
}

func TestParsePortRangeRejectsOutOfBounds(t *testing.T) {
	_, err := rangealgebra.ParsePortRange("70000")
	require.Error(t, err)
}

func TestParsePortRangeRejectsGarbage(t *testing.T) {
	_, err := rangealgebra.ParsePortRange("https")
	require.Error(t, err)
}
