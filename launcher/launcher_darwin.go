//go:build darwin

package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"hatch/log"
)

// darwinLauncher drives Terminal.app through osascript.
type darwinLauncher struct {
	osascript string
}

func newPlatformLauncher() Launcher {
	l := &darwinLauncher{}
	if path, err := exec.LookPath("osascript"); err == nil {
		l.osascript = path
	}
	return l
}

func (l *darwinLauncher) Available() bool {
	if l.osascript == "" {
		return false
	}
	_, err := os.Stat("/System/Applications/Utilities/Terminal.app")
	if err != nil {
		_, err = os.Stat("/Applications/Utilities/Terminal.app")
	}
	return err == nil
}

func (l *darwinLauncher) Terminal() string {
	return "Terminal.app"
}

func (l *darwinLauncher) Launch(dir, command string) error {
	if l.osascript == "" {
		return fmt.Errorf("%w: osascript not found", ErrNoTerminal)
	}
	dir, err := validateDirectory(dir)
	if err != nil {
		return err
	}
	command, err = validateCommand(command)
	if err != nil {
		return err
	}

	script := buildAppleScript(dir, command)
	cmd := exec.Command(l.osascript, "-e", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to launch Terminal.app: %w: %s", err, strings.TrimSpace(string(out)))
	}
	log.Infof("launched %s in %s", command, dir)
	return nil
}

func buildAppleScript(dir, command string) string {
	// The shell line inside "do script" single-quotes the directory, so
	// embedded quotes have to be closed, escaped and reopened.
	escapedDir := strings.ReplaceAll(dir, `'`, `'\''`)
	escapedDir = strings.ReplaceAll(escapedDir, `"`, `\"`)
	return fmt.Sprintf(`tell application "Terminal"
	activate
	do script "cd '%s' && %s"
end tell`, escapedDir, command)
}
