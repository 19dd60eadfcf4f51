package system

import (
	"os"
	"path/filepath"
	"runtime"
)

// GetSystemDrive возвращает системный диск (C:, D:, и т.д.) на Windows
func GetSystemDrive() string {
	windir := os.Getenv("WINDIR")
	if windir == "" {
		return "C:" // Fallback
	}

	// Извлекаем букву диска
	if len(windir) >= 2 {
		return windir[:2]
	}

	return "C:" // Fallback
}

// DefaultProtectedPaths возвращает список путей, затирание которых
// по умолчанию запрещено
func DefaultProtectedPaths() []string {
	if runtime.GOOS == "windows" {
		systemDrive := GetSystemDrive()
		return []string{
			filepath.Join(systemDrive, "Windows"),
			filepath.Join(systemDrive, "Program Files"),
			filepath.Join(systemDrive, "Program Files (x86)"),
			filepath.Join(systemDrive, "Users"),
		}
	}

	return []string{
		"/bin",
		"/boot",
		"/etc",
		"/home",
		"/lib",
		"/sbin",
		"/usr",
		"/var",
	}
}
