package hotkey

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SpecError reports an invalid hotkey specification. All unrecognized parts
// are collected so the user sees every problem at once.
type SpecError struct {
	Spec    string
	Unknown []string
}

func (e *SpecError) Error() string {
	if len(e.Unknown) > 0 {
		quoted := make([]string, len(e.Unknown))
		for i, p := range e.Unknown {
			quoted[i] = fmt.Sprintf("%q", p)
		}
		return fmt.Sprintf("invalid hotkey %q: unknown key(s) %s (format: modifier+key, e.g. ctrl+alt+c)", e.Spec, strings.Join(quoted, ", "))
	}
	return fmt.Sprintf("invalid hotkey %q: empty combination (format: modifier+key, e.g. ctrl+alt+c)", e.Spec)
}

// Combination is the set of tokens that must all be held simultaneously.
// Each required element is a token set; a pressed key satisfies an element
// when their normalized token sets intersect.
type Combination struct {
	required []TokenSet
}

// Parse builds a Combination from a spec string such as "ctrl+alt+c".
// Parsing is case-insensitive and tolerant of whitespace around the
// +-separated parts.
func Parse(spec string) (Combination, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return Combination{}, &SpecError{Spec: spec}
	}

	var required []TokenSet
	var unknown []string
	for _, part := range strings.Split(strings.ToLower(trimmed), "+") {
		part = strings.TrimSpace(part)
		if tok, ok := modifierAliases[part]; ok {
			required = append(required, TokenSet{tok})
			continue
		}
		if utf8.RuneCountInString(part) == 1 {
			r, _ := utf8.DecodeRuneInString(part)
			required = append(required, charTokens(r))
			continue
		}
		if canonical, ok := namedKeys[part]; ok {
			required = append(required, TokenSet{namedToken(canonical)})
			continue
		}
		unknown = append(unknown, part)
	}

	if len(unknown) > 0 {
		return Combination{}, &SpecError{Spec: spec, Unknown: unknown}
	}
	if len(required) == 0 {
		return Combination{}, &SpecError{Spec: spec}
	}
	return Combination{required: required}, nil
}

// satisfied reports whether every required element has at least one pressed
// key whose token set intersects it. The zero Combination is never satisfied.
func (c Combination) satisfied(pressed map[uint32]TokenSet) bool {
	if len(c.required) == 0 {
		return false
	}
	for _, req := range c.required {
		hit := false
		for _, ts := range pressed {
			if ts.intersects(req) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// Modifiers returns the canonical modifier names in spec order, deduplicated.
func (c Combination) Modifiers() []string {
	var mods []string
	seen := map[string]bool{}
	for _, req := range c.required {
		if len(req) == 1 && strings.HasPrefix(string(req[0]), "mod:") {
			name := strings.TrimPrefix(string(req[0]), "mod:")
			if !seen[name] {
				seen[name] = true
				mods = append(mods, name)
			}
		}
	}
	return mods
}

// Key returns the first non-modifier element as a character or key name.
func (c Combination) Key() (string, bool) {
	for _, req := range c.required {
		for _, t := range req {
			s := string(t)
			if name, ok := strings.CutPrefix(s, "char:"); ok {
				return name, true
			}
			if name, ok := strings.CutPrefix(s, "key:"); ok {
				return name, true
			}
		}
	}
	return "", false
}

// String renders the canonical lowercase form, e.g. "ctrl+alt+c".
func (c Combination) String() string {
	parts := make([]string, 0, len(c.required))
	for _, req := range c.required {
		s := string(req[0])
		parts = append(parts, s[strings.Index(s, ":")+1:])
	}
	return strings.Join(parts, "+")
}
