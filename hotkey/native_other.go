//go:build !windows && !darwin

package hotkey

import (
	"fmt"

	xhotkey "golang.design/x/hotkey"
)

// X11 modifier masks: Alt is conventionally Mod1, Super is Mod4.
func nativeModifiers(names []string) ([]xhotkey.Modifier, error) {
	var mods []xhotkey.Modifier
	for _, name := range names {
		switch name {
		case "ctrl":
			mods = append(mods, xhotkey.ModCtrl)
		case "alt":
			mods = append(mods, xhotkey.Mod1)
		case "shift":
			mods = append(mods, xhotkey.ModShift)
		case "super":
			mods = append(mods, xhotkey.Mod4)
		default:
			return nil, fmt.Errorf("hotkey: unknown modifier %q", name)
		}
	}
	return mods, nil
}
