package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("leagues command lists the catalogue", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		m := NewMain()

		err := m.Run(context.Background(), []string{"leagues"}, &stdout, &stderr)
		require.NoError(t, err)

		for _, l := range leagues {
			assert.Contains(t, stdout.String(), l.Key)
		}
	})

	t.Run("scrape rejects an unknown league before any request", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		m := NewMain()

		err := m.Run(context.Background(), []string{"scrape", "kreisliga"}, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "kreisliga")
	})

	t.Run("scrape rejects an invalid delay range", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		m := NewMain()

		err := m.Run(context.Background(), []string{"scrape", "bundesliga", "--delay-min=10s", "--delay-max=1s"}, &stdout, &stderr)
		require.Error(t, err)
	})

	t.Run("unknown command fails to parse", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		m := NewMain()

		err := m.Run(context.Background(), []string{"harvest"}, &stdout, &stderr)
		require.Error(t, err)
	})
}
