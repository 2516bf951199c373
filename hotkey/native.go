package hotkey

import (
	"fmt"

	xhotkey "golang.design/x/hotkey"
)

// Native registers a combination with the operating system's own hotkey
// facility. It is the fallback when the raw keyboard hook cannot start: the
// OS does the matching, so the engine's side-insensitivity and latch
// semantics are whatever the platform provides.
type Native struct {
	hk      *xhotkey.Hotkey
	keydown chan struct{}
	stop    chan struct{}
}

// nativeKeys maps canonical key names to the cross-platform key constants.
var nativeKeys = map[string]xhotkey.Key{
	"a": xhotkey.KeyA, "b": xhotkey.KeyB, "c": xhotkey.KeyC,
	"d": xhotkey.KeyD, "e": xhotkey.KeyE, "f": xhotkey.KeyF,
	"g": xhotkey.KeyG, "h": xhotkey.KeyH, "i": xhotkey.KeyI,
	"j": xhotkey.KeyJ, "k": xhotkey.KeyK, "l": xhotkey.KeyL,
	"m": xhotkey.KeyM, "n": xhotkey.KeyN, "o": xhotkey.KeyO,
	"p": xhotkey.KeyP, "q": xhotkey.KeyQ, "r": xhotkey.KeyR,
	"s": xhotkey.KeyS, "t": xhotkey.KeyT, "u": xhotkey.KeyU,
	"v": xhotkey.KeyV, "w": xhotkey.KeyW, "x": xhotkey.KeyX,
	"y": xhotkey.KeyY, "z": xhotkey.KeyZ,
	"0": xhotkey.Key0, "1": xhotkey.Key1, "2": xhotkey.Key2,
	"3": xhotkey.Key3, "4": xhotkey.Key4, "5": xhotkey.Key5,
	"6": xhotkey.Key6, "7": xhotkey.Key7, "8": xhotkey.Key8,
	"9": xhotkey.Key9,
	"space":  xhotkey.KeySpace,
	"enter":  xhotkey.KeyReturn,
	"esc":    xhotkey.KeyEscape,
	"tab":    xhotkey.KeyTab,
	"delete": xhotkey.KeyDelete,
	"up":     xhotkey.KeyUp,
	"down":   xhotkey.KeyDown,
	"left":   xhotkey.KeyLeft,
	"right":  xhotkey.KeyRight,
	"f1":     xhotkey.KeyF1, "f2": xhotkey.KeyF2, "f3": xhotkey.KeyF3,
	"f4": xhotkey.KeyF4, "f5": xhotkey.KeyF5, "f6": xhotkey.KeyF6,
	"f7": xhotkey.KeyF7, "f8": xhotkey.KeyF8, "f9": xhotkey.KeyF9,
	"f10": xhotkey.KeyF10, "f11": xhotkey.KeyF11, "f12": xhotkey.KeyF12,
}

// NewNative translates a parsed combination into a native registration.
func NewNative(c Combination) (*Native, error) {
	mods, err := nativeModifiers(c.Modifiers())
	if err != nil {
		return nil, err
	}
	name, ok := c.Key()
	if !ok {
		return nil, fmt.Errorf("hotkey: combination %s has no non-modifier key", c)
	}
	key, ok := nativeKeys[name]
	if !ok {
		return nil, fmt.Errorf("hotkey: key %q not supported by the native backend", name)
	}
	return &Native{
		hk:      xhotkey.New(mods, key),
		keydown: make(chan struct{}, 1),
	}, nil
}

func (n *Native) Register() error {
	if err := n.hk.Register(); err != nil {
		return err
	}
	n.stop = make(chan struct{})
	go func(stop chan struct{}) {
		for {
			select {
			case <-stop:
				return
			case <-n.hk.Keydown():
				select {
				case n.keydown <- struct{}{}:
				default:
				}
			}
		}
	}(n.stop)
	return nil
}

func (n *Native) Keydown() <-chan struct{} {
	return n.keydown
}

func (n *Native) Unregister() {
	if n.stop != nil {
		close(n.stop)
		n.stop = nil
	}
	n.hk.Unregister()
}
