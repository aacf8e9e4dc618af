package infrastructure

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUuidGenerator(t *testing.T) {
	generator := &UuidGenerator{}

	first, err := generator.Generate()
	require.NoError(t, err)
	second, err := generator.Generate()
	require.NoError(t, err)

	_, err = uuid.Parse(first)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestTokenUuidGenerator(t *testing.T) {
	t.Run("same token same id", func(t *testing.T) {
		first, err := (&TokenUuidGenerator{Token: "token-1"}).Generate()
		require.NoError(t, err)
		second, err := (&TokenUuidGenerator{Token: "token-1"}).Generate()
		require.NoError(t, err)
		other, err := (&TokenUuidGenerator{Token: "token-2"}).Generate()
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.NotEqual(t, first, other)
	})

	t.Run("empty token falls back to a random id", func(t *testing.T) {
		first, err := (&TokenUuidGenerator{}).Generate()
		require.NoError(t, err)
		second, err := (&TokenUuidGenerator{}).Generate()
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}
