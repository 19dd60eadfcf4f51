package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wipefile_enterprise/internal/config"
)

// Enterprise логгер с аудитом операций затирания
type EnterpriseLogger struct {
	level   string
	file    *os.File
	verbose bool
}

func NewEnterpriseLogger(cfg *config.Config, verbose bool) (*EnterpriseLogger, error) {
	l := &EnterpriseLogger{
		level:   cfg.Logging.Level,
		verbose: verbose,
	}

	// Автоматическое создание директории для логов
	if cfg.Logging.File != "" {
		logDir := filepath.Dir(cfg.Logging.File)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			// Если не можем создать директорию, используем stdout
			fmt.Printf("[WARN] Не удалось создать директорию логов %s: %v\n", logDir, err)
			fmt.Printf("[WARN] Логи будут выводиться в stdout\n")
			return l, nil
		}

		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			// Если не можем открыть файл логов, используем stdout
			fmt.Printf("[WARN] Не удалось открыть файл логов %s: %v\n", cfg.Logging.File, err)
			fmt.Printf("[WARN] Логи будут выводиться в stdout\n")
			return l, nil
		}
		l.file = f
	}

	return l, nil
}

// Log пишет запись уровня level с парами ключ-значение в fields
func (l *EnterpriseLogger) Log(level, message string, fields ...interface{}) {
	if !l.shouldLog(level) {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	entry := fmt.Sprintf("[%s] [%s] %s", timestamp, level, message)

	if len(fields) > 0 {
		entry += " " + formatFields(fields)
	}

	if l.file != nil {
		l.file.WriteString(entry + "\n")
		l.file.Sync()
	}

	if l.verbose || level == "ERROR" || level == "FATAL" {
		fmt.Println(entry)
	}
}

// formatFields превращает чередующиеся ключи и значения в строку key=value
func formatFields(fields []interface{}) string {
	var parts []string
	for i := 0; i+1 < len(fields); i += 2 {
		parts = append(parts, fmt.Sprintf("%v=%v", fields[i], fields[i+1]))
	}
	if len(fields)%2 != 0 {
		parts = append(parts, fmt.Sprintf("%v", fields[len(fields)-1]))
	}
	return strings.Join(parts, " ")
}

func (l *EnterpriseLogger) shouldLog(level string) bool {
	levels := map[string]int{"DEBUG": 0, "INFO": 1, "WARN": 2, "ERROR": 3, "FATAL": 4}
	current := levels[l.level]
	target := levels[level]
	return target >= current
}

func (l *EnterpriseLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
