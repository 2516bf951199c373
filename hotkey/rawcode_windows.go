//go:build windows

package hotkey

import "strconv"

// Windows virtual-key codes. Left/right modifier variants collapse onto the
// same side-insensitive token.
const (
	rcShiftL uint16 = 0xA0
	rcShiftR uint16 = 0xA1
	rcCtrlL  uint16 = 0xA2
	rcCtrlR  uint16 = 0xA3
	rcAltL   uint16 = 0xA4
	rcAltR   uint16 = 0xA5
	rcSuperL uint16 = 0x5B
	rcSuperR uint16 = 0x5C
	rcKeyC   uint16 = 'C'
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

	0x20: {namedToken("space")},
	0x0D: {namedToken("enter")},
	0x09: {namedToken("tab")},
	0x1B: {namedToken("esc")},
	0x08: {namedToken("backspace")},
	0x2E: {namedToken("delete")},
	0x2D: {namedToken("insert")},
	0x24: {namedToken("home")},
	0x23: {namedToken("end")},
	0x21: {namedToken("page_up")},
	0x22: {namedToken("page_down")},
	0x25: {namedToken("left")},
	0x26: {namedToken("up")},
	0x27: {namedToken("right")},
	0x28: {namedToken("down")},
}

func init() {
	for i := 0; i < 24; i++ {
		rawcodeTable[uint16(0x70+i)] = TokenSet{namedToken("f" + strconv.Itoa(i+1))}
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
