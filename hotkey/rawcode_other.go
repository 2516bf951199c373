//go:build !windows && !darwin

package hotkey

import "strconv"

// X11 keysyms (keysymdef.h).
const (
	rcShiftL uint16 = 0xFFE1
	rcShiftR uint16 = 0xFFE2
	rcCtrlL  uint16 = 0xFFE3
	rcCtrlR  uint16 = 0xFFE4
	rcAltL   uint16 = 0xFFE9
	rcAltR   uint16 = 0xFFEA
	rcSuperL uint16 = 0xFFEB
	rcSuperR uint16 = 0xFFEC
	rcKeyC   uint16 = 'c'
)

var rawcodeTable = map[uint16]TokenSet{
	rcShiftL: {tokShift},
	rcShiftR: {tokShift},
	rcCtrlL:  {tokCtrl},
	rcCtrlR:  {tokCtrl},
	rcAltL:   {tokAlt},
	rcAltR:   {tokAlt},
	rcSuperL: {tokSuper},
	rcSuperR: {tokSuper},

	0x0020: {namedToken("space")},
	0xFF0D: {namedToken("enter")},
	0xFF09: {namedToken("tab")},
	0xFF1B: {namedToken("esc")},
	0xFF08: {namedToken("backspace")},
	0xFFFF: {namedToken("delete")},
	0xFF63: {namedToken("insert")},
	0xFF50: {namedToken("home")},
	0xFF57: {namedToken("end")},
	0xFF55: {namedToken("page_up")},
	0xFF56: {namedToken("page_down")},
	0xFF51: {namedToken("left")},
	0xFF52: {namedToken("up")},
	0xFF53: {namedToken("right")},
	0xFF54: {namedToken("down")},
}

func init() {
	for i := 0; i < 24; i++ {
		rawcodeTable[uint16(0xFFBE+i)] = TokenSet{namedToken("f" + strconv.Itoa(i+1))}
	}
	// Latin-1 keysyms are the character itself, in either case.
	for c := uint16('a'); c <= 'z'; c++ {
		rawcodeTable[c] = charTokens(rune(c))
	}
	for c := uint16('A'); c <= 'Z'; c++ {
		rawcodeTable[c] = charTokens(rune(c))
	}
	for c := uint16('0'); c <= '9'; c++ {
		rawcodeTable[c] = charTokens(rune(c))
	}
}

func rawcodeTokens(code uint16) (TokenSet, bool) {
	ts, ok := rawcodeTable[code]
	return ts, ok
}
