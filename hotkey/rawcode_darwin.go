//go:build darwin

package hotkey

// Carbon virtual keycodes (Events.h). Unlike the other platforms these are
// layout positions, not characters, so letters need an explicit table.
const (
	rcSuperR uint16 = 54
	rcSuperL uint16 = 55
	rcShiftL uint16 = 56
	rcAltL   uint16 = 58
	rcCtrlL  uint16 = 59
	rcShiftR uint16 = 60
	rcAltR   uint16 = 61
	rcCtrlR  uint16 = 62
	rcKeyC   uint16 = 8
)

var rawcodeTable = map[uint16]TokenSet{
	rcSuperR: {tokSuper},
	rcSuperL: {tokSuper},
	rcShiftL: {tokShift},
	rcShiftR: {tokShift},
	rcAltL:   {tokAlt},
	rcAltR:   {tokAlt},
	rcCtrlL:  {tokCtrl},
	rcCtrlR:  {tokCtrl},

	49:  {namedToken("space")},
	36:  {namedToken("enter")},
	48:  {namedToken("tab")},
	53:  {namedToken("esc")},
	51:  {namedToken("backspace")},
	117: {namedToken("delete")},
	115: {namedToken("home")},
	119: {namedToken("end")},
	116: {namedToken("page_up")},
	121: {namedToken("page_down")},
	123: {namedToken("left")},
	124: {namedToken("right")},
	125: {namedToken("down")},
	126: {namedToken("up")},

	122: {namedToken("f1")},
	120: {namedToken("f2")},
	99:  {namedToken("f3")},
	118: {namedToken("f4")},
	96:  {namedToken("f5")},
	97:  {namedToken("f6")},
	98:  {namedToken("f7")},
	100: {namedToken("f8")},
	101: {namedToken("f9")},
	109: {namedToken("f10")},
	103: {namedToken("f11")},
	111: {namedToken("f12")},
}

func init() {
	letters := map[uint16]rune{
		0: 'a', 1: 's', 2: 'd', 3: 'f', 4: 'h', 5: 'g', 6: 'z', 7: 'x',
		8: 'c', 9: 'v', 11: 'b', 12: 'q', 13: 'w', 14: 'e', 15: 'r',
		16: 'y', 17: 't', 31: 'o', 32: 'u', 34: 'i', 35: 'p', 37: 'l',
		38: 'j', 40: 'k', 45: 'n', 46: 'm',
	}
	for code, r := range letters {
		rawcodeTable[code] = charTokens(r)
	}
	digits := map[uint16]rune{
		18: '1', 19: '2', 20: '3', 21: '4', 23: '5',
		22: '6', 26: '7', 28: '8', 25: '9', 29: '0',
	}
	for code, r := range digits {
		rawcodeTable[code] = charTokens(r)
	}
}

func rawcodeTokens(code uint16) (TokenSet, bool) {
	ts, ok := rawcodeTable[code]
	return ts, ok
}
