package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wipefile_enterprise/internal/config"
	"wipefile_enterprise/internal/wipe"
)

func sampleOutcome() *wipe.WipeOutcome {
	outcome := wipe.NewWipeOutcome()
	outcome.RecordDeleted("/tmp/a.txt")
	outcome.RecordDeleted("/tmp/b.txt")
	outcome.RecordFailure("/tmp/c.txt", "Target does not exist.")
	return outcome
}

func TestGenerateReportSummary(t *testing.T) {
	req := wipe.NewWipeRequest([]string{"/tmp/a.txt", "/tmp/b.txt", "/tmp/c.txt"}, 3, false, true)
	start := time.Now()
	end := start.Add(2 * time.Second)

	report := GenerateReport(req, sampleOutcome(), "1.0.0", start, end, 1)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 3, report.Summary.TotalItems)
	assert.Equal(t, 2, report.Summary.Deleted)
	assert.Equal(t, 1, report.Summary.Failed)
	assert.InDelta(t, 66.6, report.Summary.SuccessRate, 0.1)
	assert.Equal(t, 1, report.ExitCode)
	assert.Len(t, report.Operations, 3)
}

func TestSaveReportWritesJSON(t *testing.T) {
	cfg := config.Default()
	cfg.Reporting.Enabled = true
	cfg.Reporting.LocalPath = filepath.Join(t.TempDir(), "reports")

	req := wipe.NewWipeRequest([]string{"/tmp/a.txt"}, 1, false, false)
	report := GenerateReport(req, sampleOutcome(), "1.0.0", time.Now(), time.Now(), 0)

	require.NoError(t, SaveReport(report, cfg))

	entries, err := os.ReadDir(cfg.Reporting.LocalPath)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(cfg.Reporting.LocalPath, entries[0].Name()))
	require.NoError(t, err)

	var loaded Report
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, report.RunID, loaded.RunID)
	assert.Equal(t, report.Summary, loaded.Summary)
}
