package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	v, err := Parse("17")
	require.NoError(t, err)
	assert.Equal(t, ID(17), v)

	for _, bad := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}
}

func TestIsNil(t *testing.T) {
	assert.True(t, IsNil(0))
	assert.False(t, IsNil(1))
}
