package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashID_RoundTrip(t *testing.T) {
	code := GenHashID("salt", 8, 12345)
	require.NotEmpty(t, code)
	assert.GreaterOrEqual(t, len(code), 8)

	id, err := DecodeHashID("salt", 8, code)
	require.NoError(t, err)
	assert.Equal(t, uint64(12345), id)
}

func TestHashID_WrongSalt(t *testing.T) {
	code := GenHashID("salt", 8, 99)
	_, err := DecodeHashID("other-salt", 8, code)
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 50))

	long := strings.Repeat("a", 60)
	assert.Equal(t, strings.Repeat("a", 50)+"...", Truncate(long, 50))

	exact := strings.Repeat("b", 50)
	assert.Equal(t, exact, Truncate(exact, 50))

	assert.Equal(t, "日本...", Truncate("日本語", 2))
}
