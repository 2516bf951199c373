//go:build windows

package hotkey

import (
	"fmt"

	xhotkey "golang.design/x/hotkey"
)

func nativeModifiers(names []string) ([]xhotkey.Modifier, error) {
	var mods []xhotkey.Modifier
	for _, name := range names {
		switch name {
		case "ctrl":
			mods = append(mods, xhotkey.ModCtrl)
		case "alt":
			mods = append(mods, xhotkey.ModAlt)
		case "shift":
			mods = append(mods, xhotkey.ModShift)
		case "super":
			mods = append(mods, xhotkey.ModWin)
		default:
			return nil, fmt.Errorf("hotkey: unknown modifier %q", name)
		}
	}
	return mods, nil
}
