package security

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"wipefile_enterprise/internal/config"
)

// ShouldSkipTarget проверяет, попадает ли цель под защищённый путь.
// Защищённые системные пути не затираются, пока это явно не разрешено
// конфигурацией.
func ShouldSkipTarget(cfg *config.Config, target string) bool {
	if cfg == nil || cfg.Security.AllowProtected {
		return false
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		abs = filepath.Clean(target)
	}

	for _, protected := range cfg.Security.ProtectedPaths {
		if isUnderPath(abs, filepath.Clean(protected)) {
			return true
		}
	}

	return false
}

// FilterTargets отделяет защищённые цели от разрешённых
func FilterTargets(cfg *config.Config, targets []string) (allowed, skipped []string) {
	for _, target := range targets {
		if ShouldSkipTarget(cfg, target) {
			skipped = append(skipped, target)
			continue
		}
		allowed = append(allowed, target)
	}
	return allowed, skipped
}

// ValidatePasses проверяет число проходов из аргументов командной строки
func ValidatePasses(passes int) error {
	if passes < 1 || passes > 35 {
		return fmt.Errorf("число проходов должно быть от 1 до 35, получено %d", passes)
	}
	return nil
}

// isUnderPath сообщает, лежит ли path внутри root (или совпадает с ним).
// На Windows сравнение без учёта регистра.
func isUnderPath(path, root string) bool {
	if runtime.GOOS == "windows" {
		path = strings.ToLower(path)
		root = strings.ToLower(root)
	}

	if path == root {
		return true
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
