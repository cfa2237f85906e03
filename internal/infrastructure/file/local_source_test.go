package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	infrafile "github.com/mohammadpnp/contact-import/internal/infrastructure/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceReadFileResolvesRelativePaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "exports"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "exports", "people.csv"), []byte("First Name\nJane\n"), 0o600))

	name, data, err := infrafile.NewLocalSource(dir, 0).ReadFile(context.Background(), "exports/people.csv")
	require.NoError(t, err)
	assert.Equal(t, "people.csv", name)
	assert.Equal(t, "First Name\nJane\n", string(data))
}

func TestLocalSourceReadFileEnforcesLimit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "big.csv")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o600))

	_, _, err := infrafile.NewLocalSource("", 4).ReadFile(context.Background(), path)
	assert.ErrorIs(t, err, infrafile.ErrFileTooLarge)

	_, data, err := infrafile.NewLocalSource("", 10).ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, data, 10)
}

func TestLocalSourceMissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := infrafile.NewLocalSource(t.TempDir(), 0).ReadFile(context.Background(), "nope.csv")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalSourceCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := infrafile.NewLocalSource(t.TempDir(), 0).Open(ctx, "people.csv")
	assert.ErrorIs(t, err, context.Canceled)
}
