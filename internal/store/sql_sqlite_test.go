package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file:/tmp/signup.db?_busy_timeout=5000", sqliteDSN("/tmp/signup.db"))
}

func TestEnsureDBFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "signup.db")

	require.NoError(t, ensureDBFile(path))
	_, err := os.Stat(path)
	require.NoError(t, err)

	// existing files are left alone
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, ensureDBFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}
