package config

import (
	"fmt"
)

// ApplyProfile применяет именованный профиль к конфигурации
func ApplyProfile(cfg *Config, profile string) error {
	switch profile {
	case "quick":
		cfg.Shred.Passes = 1
		cfg.Shred.Secure = false
		cfg.Shred.Verify = false
		cfg.Shred.MaxSpeedMBps = 0
	case "standard":
		cfg.Shred.Passes = 3
		cfg.Shred.Secure = false
		cfg.Shred.Verify = true
	case "paranoid":
		cfg.Shred.Passes = 7
		cfg.Shred.Secure = true
		cfg.Shred.Verify = true
		cfg.Shred.MaxSpeedMBps = 0
	default:
		return fmt.Errorf("unknown profile: %s", profile)
	}
	return nil
}
