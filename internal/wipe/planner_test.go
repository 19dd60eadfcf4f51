package wipe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTree(t *testing.T) (root, sub string) {
	t.Helper()
	root = filepath.Join(t.TempDir(), "root")
	sub = filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "b.txt"), []byte("b"), 0644))
	return root, sub
}

func TestExpandOrdersDirectoriesDeepestFirst(t *testing.T) {
	root, sub := makeTree(t)
	planner := NewTraversalPlanner(nil)
	plan := &WipePlan{}
	outcome := NewWipeOutcome()

	err := planner.Expand(root, false, plan, outcome)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(sub, "b.txt"),
	}, plan.Files)
	// Потомки перед родителями, корень последним
	assert.Equal(t, []string{sub, root}, plan.Directories)
	assert.True(t, outcome.Succeeded())
}

func TestExpandEnumerationErrorFailFast(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("под root права не ограничивают чтение директории")
	}

	root, sub := makeTree(t)
	require.NoError(t, os.Chmod(sub, 0000))
	t.Cleanup(func() { os.Chmod(sub, 0755) })

	planner := NewTraversalPlanner(nil)
	plan := &WipePlan{}
	outcome := NewWipeOutcome()

	err := planner.Expand(root, false, plan, outcome)

	require.Error(t, err)
	require.Len(t, outcome.Failed, 1)
	assert.Equal(t, sub, outcome.Failed[0].Path)
	// Недоступное поддерево не попадает в список на удаление
	assert.NotContains(t, plan.Directories, sub)
}

func TestExpandEnumerationErrorForceContinues(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("под root права не ограничивают чтение директории")
	}

	root, sub := makeTree(t)
	require.NoError(t, os.Chmod(sub, 0000))
	t.Cleanup(func() { os.Chmod(sub, 0755) })

	planner := NewTraversalPlanner(nil)
	plan := &WipePlan{}
	outcome := NewWipeOutcome()

	err := planner.Expand(root, true, plan, outcome)

	require.NoError(t, err)
	assert.Contains(t, plan.Files, filepath.Join(root, "a.txt"))
	assert.Len(t, outcome.Failed, 1)
	// Сам корень остаётся в плане: соседние записи обработаны
	assert.Contains(t, plan.Directories, root)
	assert.NotContains(t, plan.Directories, sub)
}
