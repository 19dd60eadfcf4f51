package wipe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSink записывает все вызовы для проверки контракта прогресса
type captureSink struct {
	initCalls []int
	events    []ProgressEvent
	completes int
}

func (c *captureSink) Initialize(totalFiles int) {
	c.initCalls = append(c.initCalls, totalFiles)
}

func (c *captureSink) Report(ev ProgressEvent) {
	c.events = append(c.events, ev)
}

func (c *captureSink) Complete() {
	c.completes++
}

func newTestOrchestrator() *Orchestrator {
	return NewOrchestrator(&countingSource{}, 0, nil)
}

func TestRunSingleFile(t *testing.T) {
	or := newTestOrchestrator()
	path := writeTempFile(t, "a.txt", []byte("0123456789"))
	sink := &captureSink{}

	outcome := or.Run(NewWipeRequest([]string{path}, 2, false, false), sink)

	abs, _ := filepath.Abs(path)
	assert.Equal(t, []string{abs}, outcome.Deleted)
	assert.Empty(t, outcome.Failed)
	assert.True(t, outcome.Succeeded())

	// Ровно одно событие: completed=1, total=1
	require.Equal(t, []int{1}, sink.initCalls)
	require.Len(t, sink.events, 1)
	assert.Equal(t, ProgressEvent{Completed: 1, Total: 1, CurrentTarget: abs}, sink.events[0])
	assert.Equal(t, 1, sink.completes)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunMissingTargetNoIO(t *testing.T) {
	or := newTestOrchestrator()
	missing := filepath.Join(t.TempDir(), "missing.txt")
	sink := &captureSink{}

	outcome := or.Run(NewWipeRequest([]string{missing}, 0, false, false), sink)

	assert.Empty(t, outcome.Deleted)
	require.Len(t, outcome.Failed, 1)
	assert.Equal(t, missing, outcome.Failed[0].Path)
	assert.Equal(t, "Target does not exist.", outcome.Failed[0].Reason)

	// Файловая фаза не запускалась
	assert.Empty(t, sink.events)
	assert.Equal(t, 1, sink.completes)
}

func TestRunFailFastOrdering(t *testing.T) {
	or := newTestOrchestrator()
	missing := filepath.Join(t.TempDir(), "missing.txt")
	valid := writeTempFile(t, "valid.txt", []byte("data"))

	outcome := or.Run(NewWipeRequest([]string{missing, valid}, 1, false, false), nil)

	// Плохая цель не запускает разрушение остальных
	assert.Empty(t, outcome.Deleted)
	_, statErr := os.Stat(valid)
	assert.NoError(t, statErr, "валидная цель не должна быть обработана")
}

func TestRunForceProcessesRemaining(t *testing.T) {
	or := newTestOrchestrator()
	missing := filepath.Join(t.TempDir(), "missing.txt")
	valid := writeTempFile(t, "valid.txt", []byte("data"))

	outcome := or.Run(NewWipeRequest([]string{missing, valid}, 1, false, true), nil)

	abs, _ := filepath.Abs(valid)
	assert.Contains(t, outcome.Deleted, abs)
	require.Len(t, outcome.Failed, 1)
	assert.Equal(t, missing, outcome.Failed[0].Path)

	_, statErr := os.Stat(valid)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunRecursiveDirectory(t *testing.T) {
	or := newTestOrchestrator()
	root := filepath.Join(t.TempDir(), "root")
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("aaa"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "b.txt"), []byte("bbb"), 0644))
	sink := &captureSink{}

	outcome := or.Run(NewWipeRequest([]string{root}, 1, true, false), sink)

	assert.True(t, outcome.Succeeded())
	_, statErr := os.Stat(root)
	assert.True(t, os.IsNotExist(statErr), "дерево должно быть удалено целиком")

	// Прогресс по двум файлам с фиксированным total
	require.Equal(t, []int{2}, sink.initCalls)
	require.Len(t, sink.events, 2)
	assert.Equal(t, 1, sink.events[0].Completed)
	assert.Equal(t, 2, sink.events[1].Completed)
	assert.Equal(t, 2, sink.events[0].Total)
	assert.Equal(t, 2, sink.events[1].Total)
}

func TestRunDirectoryWithoutRecursive(t *testing.T) {
	or := newTestOrchestrator()
	dir := filepath.Join(t.TempDir(), "dir")
	require.NoError(t, os.Mkdir(dir, 0755))
	inner := filepath.Join(dir, "inner.txt")
	require.NoError(t, os.WriteFile(inner, []byte("content"), 0644))

	outcome := or.Run(NewWipeRequest([]string{dir}, 1, false, false), nil)

	require.Len(t, outcome.Failed, 1)
	assert.Equal(t, ReasonRecursiveRequired, outcome.Failed[0].Reason)
	assert.Empty(t, outcome.Deleted)

	// Директория и содержимое остались на месте
	_, statErr := os.Stat(inner)
	assert.NoError(t, statErr)
}

func TestRunZeroLengthFile(t *testing.T) {
	or := newTestOrchestrator()
	path := writeTempFile(t, "empty.txt", nil)

	outcome := or.Run(NewWipeRequest([]string{path}, 3, false, false), nil)

	assert.True(t, outcome.Succeeded())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunAlreadyDeletedTwice(t *testing.T) {
	or := newTestOrchestrator()
	path := writeTempFile(t, "once.txt", []byte("data"))

	first := or.Run(NewWipeRequest([]string{path}, 1, false, false), nil)
	require.True(t, first.Succeeded())

	// Повторное затирание уже удалённого пути: TargetMissing без паники
	second := or.Run(NewWipeRequest([]string{path}, 1, false, false), nil)
	require.Len(t, second.Failed, 1)
	assert.Equal(t, ReasonTargetMissing, second.Failed[0].Reason)
}

func TestRunDryRunTouchesNothing(t *testing.T) {
	or := newTestOrchestrator()
	path := writeTempFile(t, "keep.txt", []byte("important"))

	req := NewWipeRequest([]string{path}, 1, false, false)
	req.DryRun = true
	outcome := or.Run(req, nil)

	assert.True(t, outcome.Succeeded())
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("important"), content)
}

func TestRunProgressEmittedOnFailureToo(t *testing.T) {
	or := newTestOrchestrator()
	valid := writeTempFile(t, "ok.txt", []byte("data"))
	sink := &captureSink{}

	// Висячая ссылка проходит планирование, но падает на перезаписи
	doomed := filepath.Join(t.TempDir(), "doomed.lnk")
	require.NoError(t, os.Symlink(filepath.Join(t.TempDir(), "gone"), doomed))
	absDoomed, _ := filepath.Abs(doomed)

	req := NewWipeRequest([]string{doomed, valid}, 1, false, true)

	outcome := or.Run(req, sink)

	require.Len(t, sink.events, 2)
	assert.Equal(t, 1, sink.events[0].Completed)
	assert.Equal(t, absDoomed, sink.events[0].CurrentTarget)
	require.Len(t, outcome.Failed, 1)
	assert.Equal(t, 1, sink.completes)
}

func TestRunNilSink(t *testing.T) {
	or := newTestOrchestrator()
	path := writeTempFile(t, "a.txt", []byte("data"))

	assert.NotPanics(t, func() {
		or.Run(NewWipeRequest([]string{path}, 1, false, false), nil)
	})
}

func TestBuildPlanDoesNotTouchFiles(t *testing.T) {
	or := newTestOrchestrator()
	path := writeTempFile(t, "a.txt", []byte("data"))

	plan, outcome, aborted := or.BuildPlan(NewWipeRequest([]string{path}, 1, false, false))

	assert.False(t, aborted)
	assert.Len(t, plan.Files, 1)
	assert.True(t, outcome.Succeeded())
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}
