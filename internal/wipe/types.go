package wipe

import (
	"errors"
	"strings"
)

const (
	// DefaultPasses количество проходов затирания по умолчанию
	DefaultPasses = 3
	// MaxPasses верхняя граница проходов (35 = метод Гутмана)
	MaxPasses = 35
)

// Типизированные ошибки затирания
var (
	ErrTargetMissing     = errors.New("target does not exist")
	ErrRecursiveRequired = errors.New("directory specified without recursive mode")
	ErrNameCollision     = errors.New("rename target already exists")
)

// Причины отказов, попадающие в итоговый отчёт
const (
	ReasonTargetMissing     = "Target does not exist."
	ReasonRecursiveRequired = "Directory specified without recursive mode."
)

// WipeRequest описывает один запуск затирания. Не изменяется после создания.
type WipeRequest struct {
	Targets   []string
	Passes    int
	Recursive bool
	Force     bool
	DryRun    bool
}

// NewWipeRequest создаёт запрос с нормализованным числом проходов
func NewWipeRequest(targets []string, passes int, recursive, force bool) WipeRequest {
	if passes <= 0 {
		passes = DefaultPasses
	}
	return WipeRequest{
		Targets:   targets,
		Passes:    passes,
		Recursive: recursive,
		Force:     force,
	}
}

// WipePlan - разрешённый план затирания: файлы в порядке обнаружения,
// директории в порядке "сначала самые глубокие" (потомки перед родителями,
// запрошенный корень последним). Строится один раз и только читается.
type WipePlan struct {
	Files       []string
	Directories []string
}

// Failure - пара (путь, причина) в итоговом отчёте
type Failure struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// WipeOutcome накапливает результаты одного запуска. Путь попадает максимум
// в один из двух списков и максимум один раз в список отказов.
type WipeOutcome struct {
	Deleted []string
	Failed  []Failure
}

// NewWipeOutcome создаёт пустой аккумулятор результатов
func NewWipeOutcome() *WipeOutcome {
	return &WipeOutcome{
		Deleted: make([]string, 0),
		Failed:  make([]Failure, 0),
	}
}

// RecordDeleted отмечает успешно удалённый путь
func (o *WipeOutcome) RecordDeleted(path string) {
	o.Deleted = append(o.Deleted, path)
}

// RecordFailure отмечает отказ. Повторные отказы по тому же пути
// (без учёта регистра) игнорируются, как и отказ по уже удалённому пути.
func (o *WipeOutcome) RecordFailure(path, reason string) {
	for _, f := range o.Failed {
		if strings.EqualFold(f.Path, path) {
			return
		}
	}
	for _, d := range o.Deleted {
		if strings.EqualFold(d, path) {
			return
		}
	}
	o.Failed = append(o.Failed, Failure{Path: path, Reason: reason})
}

// Succeeded истинно тогда и только тогда, когда список отказов пуст
func (o *WipeOutcome) Succeeded() bool {
	return len(o.Failed) == 0
}

// ProgressEvent - одно событие прогресса, по одному на обработанный файл.
// Completed монотонно растёт от 0 до Total.
type ProgressEvent struct {
	Completed     int    `json:"completed"`
	Total         int    `json:"total"`
	CurrentTarget string `json:"currentTarget"`
}

// ProgressSink потребляет события прогресса. Initialize вызывается один раз
// до первого Report, Report - ровно один раз на файл (успех или отказ),
// Complete - ровно один раз в самом конце независимо от результата.
type ProgressSink interface {
	Initialize(totalFiles int)
	Report(ev ProgressEvent)
	Complete()
}

// nopSink используется оркестратором, когда потребитель прогресса не задан
type nopSink struct{}

func (nopSink) Initialize(int) {}

func (nopSink) Report(ProgressEvent) {}

func (nopSink) Complete() {}
