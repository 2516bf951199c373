package hotkey

import "errors"

// FakeSource drives the engine from tests.
type FakeSource struct {
	events   chan KeyEvent
	startErr error
}

func NewFake() *FakeSource {
	return &FakeSource{events: make(chan KeyEvent, 64)}
}

// NewFailingFake returns a source whose Start always fails.
func NewFailingFake() *FakeSource {
	return &FakeSource{
		events:   make(chan KeyEvent, 1),
		startErr: errors.New("hotkey: fake source refused to start"),
	}
}

func (f *FakeSource) Start() error            { return f.startErr }
func (f *FakeSource) Events() <-chan KeyEvent { return f.events }
func (f *FakeSource) Stop()                   {}

func (f *FakeSource) Press(code uint16, ch rune) {
	f.events <- KeyEvent{Code: code, Char: ch, Down: true}
}

func (f *FakeSource) Release(code uint16, ch rune) {
	f.events <- KeyEvent{Code: code, Char: ch, Down: false}
}
