package progress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wipefile_enterprise/internal/wipe"
)

func TestConsoleSinkNonTTYOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	out, err := os.Create(path)
	require.NoError(t, err)

	sink := NewConsoleSink(out)
	sink.Initialize(2)
	sink.Report(wipe.ProgressEvent{Completed: 1, Total: 2, CurrentTarget: "/tmp/a.txt"})
	sink.Report(wipe.ProgressEvent{Completed: 2, Total: 2, CurrentTarget: "/tmp/b.txt"})
	sink.Complete()
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Обычный файл - не терминал, каждое событие на своей строке
	assert.Contains(t, string(data), "[1/2] /tmp/a.txt")
	assert.Contains(t, string(data), "[2/2] /tmp/b.txt")
	assert.NotContains(t, string(data), "\r")
}

func TestConsoleSinkIgnoresZeroTotal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	out, err := os.Create(path)
	require.NoError(t, err)

	sink := NewConsoleSink(out)
	sink.Initialize(0)
	sink.Report(wipe.ProgressEvent{Completed: 0, Total: 0})
	sink.Complete()
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, string(data))
}
