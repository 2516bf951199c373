package hotkey

import (
	"strconv"
	"unicode"
)

// Token is the canonical identifier for a physical key or modifier after
// normalization. Modifier tokens are side-insensitive: left and right Ctrl
// both normalize to tokCtrl.
type Token string

const (
	tokCtrl  Token = "mod:ctrl"
	tokAlt   Token = "mod:alt"
	tokShift Token = "mod:shift"
	tokSuper Token = "mod:super"
)

// TokenSet is the set of canonical tokens one raw key (or one required
// combination element) answers to. Sets are tiny, so linear scans beat maps.
type TokenSet []Token

func (s TokenSet) contains(t Token) bool {
	for _, v := range s {
		if v == t {
			return true
		}
	}
	return false
}

func (s TokenSet) intersects(o TokenSet) bool {
	for _, v := range s {
		if o.contains(v) {
			return true
		}
	}
	return false
}

// modifierAliases maps every accepted modifier spelling, including the
// explicit right-side suffixes, to its side-insensitive token. ctrl_r+c is
// therefore indistinguishable from ctrl+c at match time, matching the
// behavior users already rely on.
var modifierAliases = map[string]Token{
	"ctrl":      tokCtrl,
	"control":   tokCtrl,
	"ctrl_r":    tokCtrl,
	"control_r": tokCtrl,
	"alt":       tokAlt,
	"alt_r":     tokAlt,
	"shift":     tokShift,
	"shift_r":   tokShift,
	"cmd":       tokSuper,
	"win":       tokSuper,
	"meta":      tokSuper,
	"command":   tokSuper,
	"super":     tokSuper,
	"cmd_r":     tokSuper,
	"win_r":     tokSuper,
	"meta_r":    tokSuper,
}

// namedKeys maps accepted special-key names to their canonical form.
var namedKeys = map[string]string{
	"space":     "space",
	"enter":     "enter",
	"return":    "enter",
	"tab":       "tab",
	"esc":       "esc",
	"escape":    "esc",
	"backspace": "backspace",
	"delete":    "delete",
	"insert":    "insert",
	"home":      "home",
	"end":       "end",
	"page_up":   "page_up",
	"page_down": "page_down",
	"up":        "up",
	"down":      "down",
	"left":      "left",
	"right":     "right",
}

func init() {
	for i := 1; i <= 24; i++ {
		n := "f" + strconv.Itoa(i)
		namedKeys[n] = n
	}
}

func namedToken(canonical string) Token {
	return Token("key:" + canonical)
}

// charTokens builds the token set for a printable key. Alphabetic keys carry
// both a character token and a virtual-key-code token so that sources
// reporting either representation still match.
func charTokens(r rune) TokenSet {
	r = unicode.ToLower(r)
	ts := TokenSet{Token("char:" + string(r))}
	if r >= 'a' && r <= 'z' {
		ts = append(ts, Token("vk:"+strconv.Itoa(int(r-'a')+'A')))
	}
	return ts
}

// normalize maps one raw event to its canonical token set. Unknown keys
// normalize to nil and can never satisfy a combination.
func normalize(ev KeyEvent) TokenSet {
	var ts TokenSet
	if t, ok := rawcodeTokens(ev.Code); ok {
		ts = append(ts, t...)
	}
	if ev.Char != 0 && unicode.IsGraphic(ev.Char) && ev.Char != ' ' {
		for _, t := range charTokens(ev.Char) {
			if !ts.contains(t) {
				ts = append(ts, t)
			}
		}
	}
	return ts
}

// pressKey identifies one physical key across its press and release events.
// Releases commonly arrive without a character, so the rawcode wins when
// present.
func pressKey(ev KeyEvent) uint32 {
	if ev.Code != 0 {
		return uint32(ev.Code)
	}
	return 1<<24 | uint32(unicode.ToLower(ev.Char))
}
