// Package hotkey turns a textual key combination such as "ctrl+alt+c" into a
// live matcher over a stream of raw keyboard press/release events, firing a
// callback once per satisfied press.
package hotkey

// KeyEvent is one raw press or release reported by an input source.
// Code is the platform rawcode (VK code on Windows, X11 keysym on Linux,
// Carbon keycode on macOS); Char is the printable character when the source
// knows it. Either may be zero.
type KeyEvent struct {
	Code uint16
	Char rune
	Down bool
}

// Source delivers global keyboard events. The engine starts and stops the
// subscription but does not own the underlying hook.
type Source interface {
	Start() error
	Events() <-chan KeyEvent
	Stop()
}
