package hotkey

import (
	"errors"
	"sync"

	hook "github.com/robotn/gohook"
)

// HookSource feeds raw keyboard events from the process-global gohook
// listener. Only one HookSource may be running at a time, a restriction
// inherited from the underlying hook.
type HookSource struct {
	mu      sync.Mutex
	events  chan KeyEvent
	stop    chan struct{}
	running bool
}

func NewHookSource() *HookSource {
	return &HookSource{events: make(chan KeyEvent, 64)}
}

func (s *HookSource) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return errors.New("hotkey: keyboard hook already running")
	}
	raw := hook.Start()
	if raw == nil {
		return errors.New("hotkey: could not start keyboard hook")
	}
	s.stop = make(chan struct{})
	s.running = true
	go s.pump(raw, s.stop)
	return nil
}

func (s *HookSource) pump(raw chan hook.Event, stop chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case ev, ok := <-raw:
			if !ok {
				return
			}
			var ke KeyEvent
			switch ev.Kind {
			case hook.KeyDown, hook.KeyHold:
				ke = KeyEvent{Code: ev.Rawcode, Char: ev.Keychar, Down: true}
			case hook.KeyUp:
				ke = KeyEvent{Code: ev.Rawcode, Char: ev.Keychar, Down: false}
			default:
				continue
			}
			// Drop rather than stall the hook when the engine lags.
			select {
			case s.events <- ke:
			default:
			}
		}
	}
}

func (s *HookSource) Events() <-chan KeyEvent {
	return s.events
}

func (s *HookSource) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	close(s.stop)
	hook.End()
	s.running = false
}
