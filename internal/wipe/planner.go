package wipe

import (
	"os"
	"path/filepath"

	"wipefile_enterprise/internal/logging"
)

// TraversalPlanner рекурсивно разворачивает директорию в плоский список
// файлов и список директорий на удаление. Директория попадает в список
// только после всех своих потомков, поэтому дети всегда удаляются раньше
// родителей. Символические ссылки трактуются как обычные файловые записи
// и никогда не раскрываются.
type TraversalPlanner struct {
	logger *logging.EnterpriseLogger
}

// NewTraversalPlanner создаёт планировщик обхода
func NewTraversalPlanner(logger *logging.EnterpriseLogger) *TraversalPlanner {
	return &TraversalPlanner{logger: logger}
}

// Expand обходит root в глубину. Ошибка перечисления записывается как
// отказ для этой директории; в нефорсированном режиме она возвращается
// наверх и прерывает планирование, в форсированном - поддерево
// пропускается и обход продолжается с соседей.
func (tp *TraversalPlanner) Expand(root string, force bool, plan *WipePlan, outcome *WipeOutcome) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		outcome.RecordFailure(root, err.Error())
		if tp.logger != nil {
			tp.logger.Log("WARN", "Ошибка перечисления директории", "dir", root, "error", err.Error())
		}
		if !force {
			return err
		}
		return nil
	}

	for _, entry := range entries {
		child := filepath.Join(root, entry.Name())
		if entry.IsDir() {
			if err := tp.Expand(child, force, plan, outcome); err != nil {
				return err
			}
			continue
		}
		plan.Files = append(plan.Files, child)
	}

	// Сама директория удаляется последней, после всех потомков
	plan.Directories = append(plan.Directories, root)
	return nil
}
