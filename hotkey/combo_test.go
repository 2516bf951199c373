package hotkey

import (
	"errors"
	"reflect"
	"testing"
)

func mustParse(t *testing.T, spec string) Combination {
	t.Helper()
	c, err := Parse(spec)
	if err != nil {
		t.Fatalf("Parse(%q): %v", spec, err)
	}
	return c
}

func TestParseVariantsEqual(t *testing.T) {
	base := mustParse(t, "ctrl+alt+c")
	for _, spec := range []string{
		"CTRL+ALT+C",
		" ctrl + alt + c ",
		"Control+Alt+c",
	} {
		got := mustParse(t, spec)
		if !reflect.DeepEqual(got, base) {
			t.Errorf("Parse(%q) = %v, want %v", spec, got, base)
		}
	}
	if base.String() != "ctrl+alt+c" {
		t.Errorf("String() = %q, want ctrl+alt+c", base.String())
	}
}

func TestParseRightSuffixMatchesEitherSide(t *testing.T) {
	// ctrl_r normalizes to the same side-insensitive token as ctrl.
	plain := mustParse(t, "ctrl+c")
	right := mustParse(t, "ctrl_r+c")
	if !reflect.DeepEqual(plain, right) {
		t.Errorf("ctrl_r+c parsed to %v, want same as ctrl+c (%v)", right, plain)
	}
}

func TestParseNamedKeys(t *testing.T) {
	if got := mustParse(t, "ctrl+F5").String(); got != "ctrl+f5" {
		t.Errorf("got %q, want ctrl+f5", got)
	}
	esc := mustParse(t, "alt+escape")
	if !reflect.DeepEqual(esc, mustParse(t, "alt+esc")) {
		t.Error("escape and esc should parse identically")
	}
	if _, err := Parse("shift+space"); err != nil {
		t.Errorf("shift+space: %v", err)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, spec := range []string{"", "   ", "justtext", "ctrl+", "fn+ctrl+c"} {
		_, err := Parse(spec)
		if err == nil {
			t.Errorf("Parse(%q) succeeded, want error", spec)
			continue
		}
		var specErr *SpecError
		if !errors.As(err, &specErr) {
			t.Errorf("Parse(%q) error type %T, want *SpecError", spec, err)
		}
	}
}

func TestParseCollectsAllUnknownParts(t *testing.T) {
	_, err := Parse("fn+bogus+c")
	var specErr *SpecError
	if !errors.As(err, &specErr) {
		t.Fatalf("error type %T, want *SpecError", err)
	}
	want := []string{"fn", "bogus"}
	if !reflect.DeepEqual(specErr.Unknown, want) {
		t.Errorf("Unknown = %v, want %v", specErr.Unknown, want)
	}
}

func TestModifiersAndKey(t *testing.T) {
	c := mustParse(t, "ctrl+alt+c")
	if got := c.Modifiers(); !reflect.DeepEqual(got, []string{"ctrl", "alt"}) {
		t.Errorf("Modifiers() = %v", got)
	}
	key, ok := c.Key()
	if !ok || key != "c" {
		t.Errorf("Key() = %q, %v", key, ok)
	}

	// Duplicate modifier spellings collapse.
	dup := mustParse(t, "ctrl+ctrl_r+c")
	if got := dup.Modifiers(); !reflect.DeepEqual(got, []string{"ctrl"}) {
		t.Errorf("Modifiers() = %v, want [ctrl]", got)
	}

	onlyMods := mustParse(t, "ctrl+shift")
	if _, ok := onlyMods.Key(); ok {
		t.Error("Key() on modifier-only combination should report false")
	}
}
