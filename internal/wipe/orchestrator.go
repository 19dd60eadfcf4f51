package wipe

import (
	"errors"

	"wipefile_enterprise/internal/logging"
)

// Orchestrator управляет полным циклом затирания одного запроса:
// Planning -> Processing(Files) -> Processing(Directories) -> Done.
// Весь цикл строго последовательный, файлы никогда не затираются
// параллельно. В нефорсированном режиме первый отказ на любой фазе
// останавливает дальнейшие разрушающие действия; уже затёртые данные
// не откатываются. В форсированном режиме отказ записывается и
// обработка продолжается.
type Orchestrator struct {
	random       RandomSource
	maxSpeedMBps float64
	resolver     *TargetResolver
	disposal     *DisposalSequencer
	logger       *logging.EnterpriseLogger
}

// NewOrchestrator создаёт оркестратор. random == nil означает crypto/rand,
// maxSpeedMBps <= 0 - запись без ограничения скорости.
func NewOrchestrator(random RandomSource, maxSpeedMBps float64, logger *logging.EnterpriseLogger) *Orchestrator {
	if random == nil {
		random = NewCryptoSource()
	}
	return &Orchestrator{
		random:       random,
		maxSpeedMBps: maxSpeedMBps,
		resolver:     NewTargetResolver(logger),
		disposal:     NewDisposalSequencer(logger),
		logger:       logger,
	}
}

// BuildPlan разрешает цели запроса в план, ничего не затирая.
// Второй результат - накопленные отказы планирования, третий - признак
// прерывания планирования в нефорсированном режиме.
func (or *Orchestrator) BuildPlan(req WipeRequest) (*WipePlan, *WipeOutcome, bool) {
	plan := &WipePlan{}
	outcome := NewWipeOutcome()
	failed := false

	for _, target := range req.Targets {
		if err := or.resolver.Resolve(target, req.Recursive, req.Force, plan, outcome); err != nil {
			failed = true
			break
		}
	}

	return plan, outcome, failed
}

// Run выполняет запрос и возвращает итоговый отчёт. Сбои любого рода
// преобразуются в записи отчёта, Run никогда не паникует. sink == nil
// допустим: прогресс просто не сообщается.
func (or *Orchestrator) Run(req WipeRequest, sink ProgressSink) *WipeOutcome {
	if sink == nil {
		sink = nopSink{}
	}

	passes := req.Passes
	if passes <= 0 {
		passes = DefaultPasses
	}
	engine := NewOverwriteEngine(passes, or.maxSpeedMBps, or.random, or.logger)

	or.log("INFO", "Начало затирания", "targets", len(req.Targets), "passes", passes,
		"recursive", req.Recursive, "force", req.Force, "dry_run", req.DryRun)

	// Phase: Planning
	plan := &WipePlan{}
	outcome := NewWipeOutcome()
	planningFailed := false

	for _, target := range req.Targets {
		if err := or.resolver.Resolve(target, req.Recursive, req.Force, plan, outcome); err != nil {
			planningFailed = true
			break
		}
	}

	sink.Initialize(len(plan.Files))

	if planningFailed {
		// Плохая цель не должна запускать разрушение остальных:
		// ни один файл ещё не тронут, завершаемся с частичным отчётом
		or.log("WARN", "Планирование прервано, файлы не тронуты", "failures", len(outcome.Failed))
		sink.Complete()
		return outcome
	}

	// Phase: Processing(Files)
	total := len(plan.Files)
	aborted := false

	for i, file := range plan.Files {
		err := or.processFile(engine, file, req.DryRun)
		if err != nil {
			outcome.RecordFailure(file, failureReason(err))
			or.log("ERROR", "Файл не затёрт", "file", file, "error", err.Error())
		} else {
			outcome.RecordDeleted(file)
		}

		// Событие прогресса отправляется независимо от результата
		sink.Report(ProgressEvent{Completed: i + 1, Total: total, CurrentTarget: file})

		if err != nil && !req.Force {
			aborted = true
			break
		}
	}

	// Phase: Processing(Directories)
	if !aborted {
		for _, dir := range plan.Directories {
			err := or.removeDirectory(dir, req.DryRun)
			if err != nil {
				outcome.RecordFailure(dir, err.Error())
				or.log("ERROR", "Директория не удалена", "dir", dir, "error", err.Error())
				if !req.Force {
					break
				}
				continue
			}
			outcome.RecordDeleted(dir)
		}
	}

	// Phase: Done
	or.log("INFO", "Затирание завершено", "deleted", len(outcome.Deleted), "failed", len(outcome.Failed))
	sink.Complete()
	return outcome
}

// processFile затирает и утилизирует один файл
func (or *Orchestrator) processFile(engine *OverwriteEngine, path string, dryRun bool) error {
	if dryRun {
		or.log("INFO", "DRY RUN: файл не затирается", "file", path)
		return nil
	}

	if err := engine.Overwrite(path); err != nil {
		return err
	}
	return or.disposal.DisposeFile(path)
}

// removeDirectory удаляет одну опустевшую директорию
func (or *Orchestrator) removeDirectory(path string, dryRun bool) error {
	if dryRun {
		or.log("INFO", "DRY RUN: директория не удаляется", "dir", path)
		return nil
	}
	return or.disposal.DisposeDirectory(path)
}

// failureReason переводит ошибку в причину отказа для отчёта
func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrTargetMissing):
		return ReasonTargetMissing
	case errors.Is(err, ErrRecursiveRequired):
		return ReasonRecursiveRequired
	default:
		return err.Error()
	}
}

func (or *Orchestrator) log(level, message string, fields ...interface{}) {
	if or.logger != nil {
		or.logger.Log(level, message, fields...)
	}
}
