package config

import (
	"fmt"
)

// ApplyProfile применяет профиль затирания к конфигурации
func ApplyProfile(cfg *Config, profile string) error {
	switch profile {
	case "quick":
		cfg.Wipe.Passes = 1
		cfg.Wipe.MaxSpeedMBps = 0 // unlimited
	case "standard":
		cfg.Wipe.Passes = 3
		cfg.Wipe.MaxSpeedMBps = 0 // unlimited
	case "dod":
		// DOD 5220.22-M: три полных прохода
		cfg.Wipe.Passes = 3
		cfg.Wipe.MaxSpeedMBps = 100
	case "paranoid":
		cfg.Wipe.Passes = 7
		cfg.Wipe.MaxSpeedMBps = 50
	case "gutmann":
		cfg.Wipe.Passes = 35
		cfg.Wipe.MaxSpeedMBps = 50
	default:
		return fmt.Errorf("неизвестный профиль: %s", profile)
	}
	return nil
}
