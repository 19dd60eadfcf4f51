//go:build windows

package system

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// ClearReadOnly снимает атрибут FILE_ATTRIBUTE_READONLY, чтобы он
// не блокировал безопасное удаление
func ClearReadOnly(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("некорректный путь %s: %w", path, err)
	}

	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return fmt.Errorf("не удалось прочитать атрибуты %s: %w", path, err)
	}

	if attrs&windows.FILE_ATTRIBUTE_READONLY == 0 {
		return nil
	}

	if err := windows.SetFileAttributes(p, attrs&^windows.FILE_ATTRIBUTE_READONLY); err != nil {
		return fmt.Errorf("не удалось снять атрибут только-чтение: %w", err)
	}

	return nil
}
