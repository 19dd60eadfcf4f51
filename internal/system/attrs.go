//go:build !windows

package system

import (
	"fmt"
	"os"
)

// ClearReadOnly снимает запрет записи с файла, чтобы атрибут "только чтение"
// не блокировал безопасное удаление
func ClearReadOnly(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	mode := info.Mode()
	if mode&0200 != 0 {
		return nil
	}

	if err := os.Chmod(path, mode.Perm()|0200); err != nil {
		return fmt.Errorf("не удалось снять атрибут только-чтение: %w", err)
	}

	return nil
}
