//go:build linux

package launcher

import (
	"fmt"
	"os/exec"
	"strings"

	"hatch/log"
)

// Preference order. x-terminal-emulator is the Debian alternatives entry,
// xterm is the lowest common denominator.
var terminals = []string{
	"gnome-terminal",
	"konsole",
	"xfce4-terminal",
	"mate-terminal",
	"lxterminal",
	"x-terminal-emulator",
	"xterm",
}

type linuxLauncher struct {
	terminal string
	path     string
}

func newPlatformLauncher() Launcher {
	l := &linuxLauncher{}
	for _, term := range terminals {
		if path, err := exec.LookPath(term); err == nil {
			l.terminal = term
			l.path = path
			break
		}
	}
	return l
}

func (l *linuxLauncher) Available() bool {
	return l.terminal != ""
}

func (l *linuxLauncher) Terminal() string {
	return l.terminal
}

func (l *linuxLauncher) Launch(dir, command string) error {
	if !l.Available() {
		return fmt.Errorf("%w: install one of %s", ErrNoTerminal, strings.Join(terminals, ", "))
	}
	dir, err := validateDirectory(dir)
	if err != nil {
		return err
	}
	command, err = validateCommand(command)
	if err != nil {
		return err
	}

	args := terminalArgs(l.terminal, dir, command)
	cmd := exec.Command(l.path, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", l.terminal, err)
	}
	// The terminal daemonizes itself; reap the intermediate process so it
	// does not linger as a zombie.
	go cmd.Wait()
	log.Infof("launched %s in %s via %s", command, dir, l.terminal)
	return nil
}

// terminalArgs builds the argument list for each emulator. They disagree on
// how a startup command is passed, so each family gets its own shape. The
// command line keeps the shell open after the command exits.
func terminalArgs(terminal, dir, command string) []string {
	shellLine := fmt.Sprintf("cd %s && %s; exec $SHELL", shellQuote(dir), command)
	switch terminal {
	case "gnome-terminal", "mate-terminal":
		return []string{"--working-directory=" + dir, "--", "sh", "-c", shellLine}
	case "konsole":
		return []string{"--workdir", dir, "-e", "sh", "-c", shellLine}
	case "xfce4-terminal":
		return []string{"--working-directory=" + dir, "-x", "sh", "-c", shellLine}
	case "lxterminal":
		return []string{"--working-directory=" + dir, "-e", "sh -c " + shellQuote(shellLine)}
	default: // x-terminal-emulator, xterm
		return []string{"-e", "sh", "-c", shellLine}
	}
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
