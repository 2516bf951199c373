//go:build linux

package launcher

import (
	"strings"
	"testing"
)

func TestTerminalArgsShapes(t *testing.T) {
	dir := "/home/user/proj"
	cmd := "claude --continue"

	tests := []struct {
		terminal string
		want     []string
	}{
		{"gnome-terminal", []string{"--working-directory=/home/user/proj", "--", "sh", "-c"}},
		{"konsole", []string{"--workdir", "/home/user/proj", "-e", "sh", "-c"}},
		{"xfce4-terminal", []string{"--working-directory=/home/user/proj", "-x", "sh", "-c"}},
		{"xterm", []string{"-e", "sh", "-c"}},
	}
	for _, tt := range tests {
		got := terminalArgs(tt.terminal, dir, cmd)
		if len(got) != len(tt.want)+1 {
			t.Errorf("%s: args = %v", tt.terminal, got)
			continue
		}
		for i, w := range tt.want {
			if got[i] != w {
				t.Errorf("%s: args[%d] = %q, want %q", tt.terminal, i, got[i], w)
			}
		}
		line := got[len(got)-1]
		if !strings.Contains(line, "claude --continue") {
			t.Errorf("%s: shell line %q missing command", tt.terminal, line)
		}
		if !strings.Contains(line, "exec $SHELL") {
			t.Errorf("%s: shell line %q does not keep the shell open", tt.terminal, line)
		}
	}
}

func TestShellQuote(t *testing.T) {
	if got := shellQuote("/plain/path"); got != "'/plain/path'" {
		t.Errorf("got %q", got)
	}
	got := shellQuote("/it's here")
	if got != `'/it'\''s here'` {
		t.Errorf("got %q", got)
	}
}

func TestLaunchRejectsBadInput(t *testing.T) {
	l := &linuxLauncher{terminal: "xterm", path: "/usr/bin/xterm"}
	if err := l.Launch("", "claude"); err == nil {
		t.Error("expected error for empty directory")
	}
	if err := l.Launch(t.TempDir(), "claude; rm -rf /"); err == nil {
		t.Error("expected error for shell metacharacters")
	}
}
