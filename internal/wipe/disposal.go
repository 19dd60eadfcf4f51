package wipe

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"wipefile_enterprise/internal/logging"
)

const (
	// renameExtension фиксированное расширение обезличенного имени
	renameExtension = ".wiped"
	// renameAttempts число попыток подобрать свободное случайное имя
	renameAttempts = 3
)

// DisposalSequencer утилизирует перезаписанные файлы: переименование в
// случайное имя без смысловой нагрузки, затем удаление. Переименование
// рвёт связь между исходным именем файла и его метаданными до финального
// unlink. Опустевшие директории удаляются нерекурсивно.
type DisposalSequencer struct {
	logger *logging.EnterpriseLogger
}

// NewDisposalSequencer создаёт sequencer утилизации
func NewDisposalSequencer(logger *logging.EnterpriseLogger) *DisposalSequencer {
	return &DisposalSequencer{logger: logger}
}

// DisposeFile переименовывает затёртый файл в свежее случайное имя в той же
// директории и удаляет его. Существующий посторонний файл никогда не
// перезаписывается: при коллизии имя генерируется заново, после
// renameAttempts неудач операция завершается ошибкой.
func (ds *DisposalSequencer) DisposeFile(path string) error {
	dir := filepath.Dir(path)

	var renamed string
	for attempt := 0; attempt < renameAttempts; attempt++ {
		candidate := filepath.Join(dir, uuid.NewString()+renameExtension)

		if _, err := os.Lstat(candidate); err == nil {
			// Коллизия имени, пробуем новое
			if ds.logger != nil {
				ds.logger.Log("WARN", "Коллизия случайного имени", "candidate", candidate)
			}
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("ошибка проверки имени %s: %w", candidate, err)
		}

		if err := os.Rename(path, candidate); err != nil {
			return fmt.Errorf("ошибка переименования: %w", err)
		}
		renamed = candidate
		break
	}

	if renamed == "" {
		return fmt.Errorf("%w: %s", ErrNameCollision, path)
	}

	if err := os.Remove(renamed); err != nil {
		return fmt.Errorf("ошибка удаления: %w", err)
	}

	return nil
}

// DisposeDirectory удаляет опустевшую директорию. Удаление нерекурсивное
// и обязано завершиться ошибкой, если директория ещё содержит записи:
// это гарантия того, что директория с данными не исчезнет без затирания
// содержимого.
func (ds *DisposalSequencer) DisposeDirectory(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("ошибка удаления директории: %w", err)
	}
	return nil
}
