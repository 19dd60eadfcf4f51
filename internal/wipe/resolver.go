package wipe

import (
	"os"
	"path/filepath"

	"wipefile_enterprise/internal/logging"
)

// TargetResolver классифицирует запрошенные цели: файл, директория или
// отсутствующий путь. Директория без рекурсивного режима отклоняется,
// файлы целей не модифицируются.
type TargetResolver struct {
	planner *TraversalPlanner
	logger  *logging.EnterpriseLogger
}

// NewTargetResolver создаёт resolver с планировщиком обхода
func NewTargetResolver(logger *logging.EnterpriseLogger) *TargetResolver {
	return &TargetResolver{
		planner: NewTraversalPlanner(logger),
		logger:  logger,
	}
}

// Resolve разбирает одну цель и дополняет план. Отказы записываются в
// outcome; ненулевая ошибка возвращается только в нефорсированном режиме
// и означает немедленное прекращение планирования.
func (tr *TargetResolver) Resolve(target string, recursive, force bool, plan *WipePlan, outcome *WipeOutcome) error {
	info, err := os.Lstat(target)
	if err != nil {
		if os.IsNotExist(err) {
			outcome.RecordFailure(target, ReasonTargetMissing)
			if !force {
				return ErrTargetMissing
			}
			return nil
		}

		// Ошибка доступа при проверке цели
		outcome.RecordFailure(target, err.Error())
		if !force {
			return err
		}
		return nil
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		abs = target
	}

	if info.IsDir() {
		if !recursive {
			outcome.RecordFailure(target, ReasonRecursiveRequired)
			if tr.logger != nil {
				tr.logger.Log("WARN", "Директория указана без рекурсивного режима", "target", target)
			}
			if !force {
				return ErrRecursiveRequired
			}
			return nil
		}
		return tr.planner.Expand(abs, force, plan, outcome)
	}

	plan.Files = append(plan.Files, abs)
	return nil
}
