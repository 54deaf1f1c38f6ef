package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcravo/tabelle"
)

func TestLeagueCatalogue(t *testing.T) {
	t.Parallel()

	keys := make(map[string]bool)
	codes := make(map[string]bool)

	for _, l := range leagues {
		assert.False(t, keys[l.Key], "duplicate key %q", l.Key)
		assert.False(t, codes[l.Code], "duplicate code %q", l.Code)
		keys[l.Key] = true
		codes[l.Code] = true

		assert.NoError(t, l.Target(2024).Validate(), "league %q", l.Key)
		assert.Greater(t, l.StartYear, 1900, "league %q", l.Key)
	}
}

func TestSelectLeagues(t *testing.T) {
	t.Parallel()

	t.Run("empty key selects all", func(t *testing.T) {
		t.Parallel()

		got, err := selectLeagues("")
		require.NoError(t, err)
		assert.Len(t, got, len(leagues))
	})

	t.Run("key selects one league", func(t *testing.T) {
		t.Parallel()

		got, err := selectLeagues("bundesliga")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "L1", got[0].Code)
	})

	t.Run("unknown key is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := selectLeagues("kreisliga")
		require.Error(t, err)
		assert.Equal(t, tabelle.EINVALID, tabelle.ErrorCode(err))
	})
}
