package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"wipefile_enterprise/internal/config"
	"wipefile_enterprise/internal/wipe"
)

// Report представляет JSON отчёт о запуске
type Report struct {
	RunID      string            `json:"run_id"`
	Version    string            `json:"version"`
	Timestamp  time.Time         `json:"timestamp"`
	Targets    []string          `json:"targets"`
	Passes     int               `json:"passes"`
	Recursive  bool              `json:"recursive"`
	Force      bool              `json:"force"`
	DryRun     bool              `json:"dry_run"`
	Operations []OperationReport `json:"operations"`
	Summary    SummaryReport     `json:"summary"`
	ExitCode   int               `json:"exit_code"`
	Duration   string            `json:"duration"`
}

// OperationReport представляет отчёт об одном затёртом или отклонённом пути
type OperationReport struct {
	Path   string `json:"path"`
	Status string `json:"status"` // DELETED, FAILED
	Error  string `json:"error,omitempty"`
}

// SummaryReport представляет сводную информацию
type SummaryReport struct {
	TotalItems  int     `json:"total_items"`
	Deleted     int     `json:"deleted"`
	Failed      int     `json:"failed"`
	SuccessRate float64 `json:"success_rate"`
}

// GenerateReport генерирует JSON отчёт о запуске затирания
func GenerateReport(req wipe.WipeRequest, outcome *wipe.WipeOutcome, version string, startTime, endTime time.Time, exitCode int) *Report {
	operations := make([]OperationReport, 0, len(outcome.Deleted)+len(outcome.Failed))
	for _, path := range outcome.Deleted {
		operations = append(operations, OperationReport{Path: path, Status: "DELETED"})
	}
	for _, failure := range outcome.Failed {
		operations = append(operations, OperationReport{Path: failure.Path, Status: "FAILED", Error: failure.Reason})
	}

	total := len(operations)
	summary := SummaryReport{
		TotalItems: total,
		Deleted:    len(outcome.Deleted),
		Failed:     len(outcome.Failed),
	}
	if total > 0 {
		summary.SuccessRate = float64(summary.Deleted) / float64(total) * 100
	}

	return &Report{
		RunID:      uuid.NewString(),
		Version:    version,
		Timestamp:  startTime,
		Targets:    req.Targets,
		Passes:     req.Passes,
		Recursive:  req.Recursive,
		Force:      req.Force,
		DryRun:     req.DryRun,
		Operations: operations,
		Summary:    summary,
		ExitCode:   exitCode,
		Duration:   endTime.Sub(startTime).String(),
	}
}

// SaveReport сохраняет отчёт в директорию из конфигурации
func SaveReport(report *Report, cfg *config.Config) error {
	if err := os.MkdirAll(cfg.Reporting.LocalPath, 0755); err != nil {
		return fmt.Errorf("ошибка создания директории для отчётов: %w", err)
	}

	filename := fmt.Sprintf("wipefile_report_%s.json", report.Timestamp.Format("20060102_150405"))
	path := filepath.Join(cfg.Reporting.LocalPath, filename)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации отчёта: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("ошибка записи отчёта: %w", err)
	}

	return nil
}
