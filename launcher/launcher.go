// Package launcher opens a terminal window in a chosen directory and runs
// a command there. Each OS has its own backend behind the Launcher interface.
package launcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	ErrNoTerminal       = errors.New("no supported terminal found")
	ErrInvalidCommand   = errors.New("invalid command")
	ErrInvalidDirectory = errors.New("invalid directory")
)

// Launcher spawns a terminal in a working directory.
type Launcher interface {
	// Launch opens a new terminal window at dir and runs command in it.
	Launch(dir, command string) error
	// Available reports whether a usable terminal exists on this system.
	Available() bool
	// Terminal names the detected terminal, for diagnostics.
	Terminal() string
}

// New returns the launcher for the current OS. Detection of installed
// terminals happens once, here.
func New() Launcher {
	return newPlatformLauncher()
}

// Only the launch command with optional flags is accepted. Anything with
// shell metacharacters is rejected outright.
var commandPattern = regexp.MustCompile(`^(?i)[a-z][a-z0-9_-]*(?:\s+--?[a-z0-9-]+)*$`)

func validateCommand(command string) (string, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidCommand)
	}
	if !commandPattern.MatchString(command) {
		return "", fmt.Errorf("%w: %q (only a command name with flags is allowed)", ErrInvalidCommand, command)
	}
	return command, nil
}

func validateDirectory(dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidDirectory)
	}
	if strings.HasPrefix(dir, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidDirectory, err)
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDirectory, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %q does not exist", ErrInvalidDirectory, dir)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %q is not a directory", ErrInvalidDirectory, dir)
	}
	return abs, nil
}
