package db

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMigrateDirection(t *testing.T) {
	for _, s := range []string{"up", "down", "status"} {
		d, err := ParseMigrateDirection(s)
		require.NoError(t, err)
		assert.Equal(t, MigrateDirection(s), d)
	}

	_, err := ParseMigrateDirection("sideways")
	require.Error(t, err)
}

func TestEmbeddedMigrationsCreateEmployees(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	data, err := fs.ReadFile(migrations, files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "-- +goose Up")
	assert.Contains(t, string(data), "CREATE TABLE IF NOT EXISTS employees")
}
