//go:build windows

package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"hatch/log"
)

// windowsLauncher runs the command through PowerShell, inside Windows
// Terminal when one is installed.
type windowsLauncher struct {
	powershell string
	wt         string
	preferWT   bool
}

func newPlatformLauncher() Launcher {
	l := &windowsLauncher{preferWT: true}

	if path, err := exec.LookPath("powershell.exe"); err == nil {
		l.powershell = path
	} else if path, err := exec.LookPath("pwsh.exe"); err == nil {
		l.powershell = path
	}

	l.wt = findWindowsTerminal()
	return l
}

// The wt.exe under WindowsApps on PATH is a zero-byte app-execution alias
// that CreateProcess cannot start, so look for the real binary first.
func findWindowsTerminal() string {
	matches, err := filepath.Glob(`C:\Program Files\WindowsApps\Microsoft.WindowsTerminal_*\wt.exe`)
	if err == nil && len(matches) > 0 {
		return matches[len(matches)-1]
	}
	if path, err := exec.LookPath("wt.exe"); err == nil {
		return path
	}
	return ""
}

func (l *windowsLauncher) Available() bool {
	return l.powershell != ""
}

func (l *windowsLauncher) Terminal() string {
	if l.wt != "" && l.preferWT {
		return "Windows Terminal"
	}
	if l.powershell != "" {
		return filepath.Base(l.powershell)
	}
	return ""
}

func (l *windowsLauncher) Launch(dir, command string) error {
	if !l.Available() {
		return fmt.Errorf("%w: PowerShell is not installed", ErrNoTerminal)
	}
	dir, err := validateDirectory(dir)
	if err != nil {
		return err
	}
	command, err = validateCommand(command)
	if err != nil {
		return err
	}

	psCommand, err := buildPowerShellCommand(dir, command)
	if err != nil {
		return err
	}

	var cmd *exec.Cmd
	if l.wt != "" && l.preferWT {
		cmd = exec.Command(l.wt, l.powershell, "-NoExit", "-Command", psCommand)
	} else {
		cmd = exec.Command(l.powershell, "-NoExit", "-Command", psCommand)
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch terminal: %w", err)
	}
	log.Infof("launched %s in %s", command, dir)
	return nil
}

// buildPowerShellCommand composes the -Command argument. The directory is
// re-checked for characters that could break out of the quoted literal.
func buildPowerShellCommand(dir, command string) (string, error) {
	if strings.ContainsAny(dir, "\n\r\x00;&|$`\"'") {
		return "", fmt.Errorf("%w: path contains shell metacharacters", ErrInvalidDirectory)
	}
	escaped := strings.ReplaceAll(dir, "`", "``")
	return fmt.Sprintf("Set-Location -LiteralPath '%s'; %s", escaped, command), nil
}
