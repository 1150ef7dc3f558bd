package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// AppDir returns ~/.selectv2.
func AppDir() string {
	return filepath.Join(home(), ".selectv2")
}

// ConfigFile returns ~/.selectv2/config.yaml.
func ConfigFile() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// ItemsFile returns ~/.selectv2/items.yaml, the demo's default item list.
func ItemsFile() string {
	return filepath.Join(AppDir(), "items.yaml")
}

// LogFile returns ~/.selectv2/debug.log.
func LogFile() string {
	return filepath.Join(AppDir(), "debug.log")
}
