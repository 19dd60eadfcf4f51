package wipe

import (
	"fmt"
	"os"

	"wipefile_enterprise/internal/logging"
	"wipefile_enterprise/internal/system"
)

const (
	// DefaultBufferSize размер буфера перезаписи по умолчанию (64 KiB)
	DefaultBufferSize = 64 * 1024
	// MinBufferSize минимальный размер буфера перезаписи (4 KiB)
	MinBufferSize = 4 * 1024
)

// OverwriteEngine выполняет многопроходную перезапись содержимого одного
// файла случайными данными. Каждый проход покрывает всю длину файла и
// завершается синхронным сбросом на диск; после последнего прохода файл
// усекается до нулевой длины.
type OverwriteEngine struct {
	passes       int
	maxSpeedMBps float64
	random       RandomSource
	logger       *logging.EnterpriseLogger
}

// NewOverwriteEngine создает движок перезаписи. При random == nil
// используется crypto/rand
func NewOverwriteEngine(passes int, maxSpeedMBps float64, random RandomSource, logger *logging.EnterpriseLogger) *OverwriteEngine {
	if passes <= 0 {
		passes = DefaultPasses
	}
	if random == nil {
		random = NewCryptoSource()
	}
	return &OverwriteEngine{
		passes:       passes,
		maxSpeedMBps: maxSpeedMBps,
		random:       random,
		logger:       logger,
	}
}

// Passes возвращает настроенное число проходов
func (oe *OverwriteEngine) Passes() int {
	return oe.passes
}

// Overwrite затирает содержимое файла path. Файл нулевой длины проходов
// не требует и сразу считается готовым к утилизации. Любая ошибка
// открытия/записи/синхронизации прерывает затирание этого файла целиком.
func (oe *OverwriteEngine) Overwrite(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, ErrTargetMissing)
		}
		return fmt.Errorf("ошибка доступа к файлу %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s является директорией", path)
	}

	// Атрибут только-чтение не должен блокировать безопасное удаление
	if err := system.ClearReadOnly(path); err != nil {
		return fmt.Errorf("файл %s: %w", path, err)
	}

	length := info.Size()
	if length == 0 {
		return nil
	}

	bufSize := bufferSizeFor(length)
	buf := GetBuffer(int(bufSize))
	defer PutBuffer(buf)

	for pass := 1; pass <= oe.passes; pass++ {
		if oe.logger != nil {
			oe.logger.Log("DEBUG", "Проход затирания", "file", path, "pass", pass, "total", oe.passes)
		}
		if err := oe.writePass(path, length, buf); err != nil {
			return fmt.Errorf("проход %d из %d: %w", pass, oe.passes, err)
		}
	}

	return oe.truncate(path)
}

// bufferSizeFor вычисляет размер буфера для файла длиной length:
// 64 KiB по умолчанию, не меньше 4 KiB и никогда больше длины файла
func bufferSizeFor(length int64) int64 {
	size := int64(DefaultBufferSize)
	if size < MinBufferSize {
		size = MinBufferSize
	}
	if length < size {
		size = length
	}
	return size
}

// writePass выполняет один полный проход перезаписи. Дескриптор файла
// принадлежит проходу и закрывается до начала следующего.
func (oe *OverwriteEngine) writePass(path string, length int64, buf []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("ошибка открытия файла: %w", err)
	}

	writer := NewThrottledWriter(file, oe.maxSpeedMBps)
	defer func() {
		if closeErr := writer.Close(); closeErr != nil && oe.logger != nil {
			oe.logger.Log("WARN", "Ошибка закрытия файла", "file", path, "error", closeErr.Error())
		}
	}()

	remaining := length
	for remaining > 0 {
		toWrite := int64(len(buf))
		if remaining < toWrite {
			toWrite = remaining
		}

		chunk := buf[:toWrite]
		if err := oe.random.Fill(chunk); err != nil {
			return err
		}

		off := 0
		for off < int(toWrite) {
			n, err := writer.Write(chunk[off:])
			if n > 0 {
				off += n
				remaining -= int64(n)
			}
			if err != nil {
				return fmt.Errorf("ошибка записи: %w", err)
			}
			if n == 0 {
				return fmt.Errorf("запись вернула 0 байт без ошибки")
			}
		}
	}

	if err := writer.Sync(); err != nil {
		return fmt.Errorf("ошибка синхронизации: %w", err)
	}

	return nil
}

// truncate усекает файл до нулевой длины и сбрасывает усечение на диск
func (oe *OverwriteEngine) truncate(path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("ошибка открытия файла для усечения: %w", err)
	}

	if err := file.Truncate(0); err != nil {
		file.Close()
		return fmt.Errorf("ошибка усечения файла: %w", err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("ошибка синхронизации усечения: %w", err)
	}

	return file.Close()
}
