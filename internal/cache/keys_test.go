package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	t.Run("WithoutParams", func(t *testing.T) {
		key := GenerateCacheKey("quiz", "set", "abc123")
		assert.Equal(t, "quizai:quiz:set:abc123", key)
	})

	t.Run("WithParams", func(t *testing.T) {
		key := GenerateCacheKey("quiz", "set", "abc123", "10", "20")
		assert.Equal(t, "quizai:quiz:set:abc123:10_20", key)
	})
}

func TestHashContent(t *testing.T) {
	a := HashContent("Data mining extracts patterns.")
	b := HashContent("Data mining extracts patterns.")
	c := HashContent("Different content entirely.")

	assert.Equal(t, a, b, "hash must be stable for identical content")
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64) // hex-encoded sha256
}
