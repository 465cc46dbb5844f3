package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, CompareHashAndPassword(hash, "admin123"))
	assert.False(t, CompareHashAndPassword(hash, "admin124"))
	assert.False(t, CompareHashAndPassword(hash, ""))
}
