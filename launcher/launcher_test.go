package launcher

import (
	"errors"
	"testing"
)

func TestValidateCommand(t *testing.T) {
	valid := []string{
		"claude",
		"claude --continue",
		"claude --continue --plan",
		"  claude  ",
		"claude -c",
		"htop",
	}
	for _, cmd := range valid {
		if _, err := validateCommand(cmd); err != nil {
			t.Errorf("validateCommand(%q) = %v, want nil", cmd, err)
		}
	}

	invalid := []string{
		"",
		"   ",
		"claude; rm -rf /",
		"claude && evil",
		"claude | tee out",
		"claude $(whoami)",
		"claude `id`",
		"claude > /tmp/x",
		"../claude",
	}
	for _, cmd := range invalid {
		if _, err := validateCommand(cmd); !errors.Is(err, ErrInvalidCommand) {
			t.Errorf("validateCommand(%q) = %v, want ErrInvalidCommand", cmd, err)
		}
	}
}

func TestValidateCommandTrims(t *testing.T) {
	got, err := validateCommand("  claude --continue  ")
	if err != nil {
		t.Fatal(err)
	}
	if got != "claude --continue" {
		t.Errorf("got %q", got)
	}
}

func TestValidateDirectory(t *testing.T) {
	tmp := t.TempDir()
	got, err := validateDirectory(tmp)
	if err != nil {
		t.Fatal(err)
	}
	if got != tmp {
		t.Errorf("got %q, want %q", got, tmp)
	}
}

func TestValidateDirectoryErrors(t *testing.T) {
	if _, err := validateDirectory(""); !errors.Is(err, ErrInvalidDirectory) {
		t.Errorf("empty dir: %v", err)
	}
	if _, err := validateDirectory("/does/not/exist/anywhere"); !errors.Is(err, ErrInvalidDirectory) {
		t.Errorf("missing dir: %v", err)
	}
}
