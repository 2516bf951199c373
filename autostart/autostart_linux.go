//go:build linux

// Package autostart makes the app start when the user logs in. Linux writes
// an XDG autostart desktop entry, Windows a Run registry value, macOS a
// launchd agent.
package autostart

import (
	"fmt"
	"os"
	"path/filepath"
)

const desktopName = "hatch-autostart.desktop"

func entryPath() string {
	config := os.Getenv("XDG_CONFIG_HOME")
	if config == "" {
		config = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(config, "autostart", desktopName)
}

func Enabled() bool {
	_, err := os.Stat(entryPath())
	return err == nil
}

func Enable() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	entry := fmt.Sprintf(`[Desktop Entry]
Version=1.0
Type=Application
Name=Hatch
Comment=Launch a terminal in any project directory
Exec=%s -hidden
Terminal=false
Categories=Development;Utility;
X-GNOME-Autostart-enabled=true
X-KDE-autostart-after=panel
`, exe)

	path := entryPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create autostart dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(entry), 0755); err != nil {
		return fmt.Errorf("write desktop entry: %w", err)
	}
	return nil
}

func Disable() error {
	if err := os.Remove(entryPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove desktop entry: %w", err)
	}
	return nil
}
