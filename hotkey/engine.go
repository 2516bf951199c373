package hotkey

import (
	"errors"
	"sync"

	"hatch/log"
)

var (
	// ErrAlreadyRegistered is returned by Register while a registration is
	// active.
	ErrAlreadyRegistered = errors.New("hotkey: already registered")
	// ErrNoCallback is returned by Register when no callback is supplied.
	ErrNoCallback = errors.New("hotkey: callback is nil")
)

// triggerQueueDepth bounds the FIFO of pending callback invocations. A
// trigger arriving while the queue is full is dropped with a warning rather
// than stalling the hook thread.
const triggerQueueDepth = 16

// Engine matches a parsed combination against the live key press state fed
// by a Source. The callback fires once per satisfied press, from a single
// background worker, never on the event-delivery path.
type Engine struct {
	mu       sync.Mutex
	spec     string
	combo    Combination
	source   Source
	callback func()
	pressed  map[uint32]TokenSet
	latched  bool
	active   bool
	fire     chan struct{}
	stop     chan struct{}
}

// NewEngine parses spec and prepares an engine over src. No subscription is
// started until Register.
func NewEngine(spec string, src Source) (*Engine, error) {
	combo, err := Parse(spec)
	if err != nil {
		return nil, err
	}
	return &Engine{
		spec:    spec,
		combo:   combo,
		source:  src,
		pressed: make(map[uint32]TokenSet),
	}, nil
}

// Register starts the event subscription and the dispatch worker. A failure
// to start the underlying source is returned as-is.
func (e *Engine) Register(callback func()) error {
	if callback == nil {
		return ErrNoCallback
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active {
		return ErrAlreadyRegistered
	}
	if err := e.source.Start(); err != nil {
		return err
	}
	e.callback = callback
	e.pressed = make(map[uint32]TokenSet)
	e.latched = false
	e.fire = make(chan struct{}, triggerQueueDepth)
	e.stop = make(chan struct{})
	e.active = true
	go e.worker(e.fire, e.stop)
	go e.pump(e.source.Events(), e.stop)
	return nil
}

// Unregister stops the subscription and discards the worker. In-flight
// callback invocations finish on their own; queued ones are abandoned.
// Calling while not registered is a no-op.
func (e *Engine) Unregister() {
	e.mu.Lock()
	if !e.active {
		e.mu.Unlock()
		return
	}
	e.active = false
	close(e.stop)
	e.stop = nil
	e.fire = nil
	e.callback = nil
	e.pressed = make(map[uint32]TokenSet)
	e.latched = false
	src := e.source
	e.mu.Unlock()

	src.Stop()
}

// SetHotkey swaps the combination. If the engine is registered it is torn
// down and re-registered with the preserved callback. On an invalid spec the
// engine is left exactly as it was and the parse error is returned.
func (e *Engine) SetHotkey(spec string) error {
	combo, err := Parse(spec)
	if err != nil {
		return err
	}

	e.mu.Lock()
	wasActive := e.active
	callback := e.callback
	e.mu.Unlock()

	if wasActive {
		e.Unregister()
	}

	e.mu.Lock()
	e.spec = spec
	e.combo = combo
	e.mu.Unlock()

	if wasActive {
		return e.Register(callback)
	}
	return nil
}

// Active reports whether a registration is live.
func (e *Engine) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// Spec returns the current hotkey string as given.
func (e *Engine) Spec() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.spec
}

// Combination returns the parsed combination, for callers that need to hand
// it to another backend.
func (e *Engine) Combination() Combination {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.combo
}

func (e *Engine) pump(events <-chan KeyEvent, stop chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Down {
				e.press(ev)
			} else {
				e.release(ev)
			}
		}
	}
}

func (e *Engine) press(ev KeyEvent) {
	tokens := normalize(ev)
	if len(tokens) == 0 {
		return
	}

	e.mu.Lock()
	if !e.active {
		e.mu.Unlock()
		return
	}
	e.pressed[pressKey(ev)] = tokens
	trigger := !e.latched && e.combo.satisfied(e.pressed)
	if trigger {
		e.latched = true
	}
	fire := e.fire
	e.mu.Unlock()

	if trigger {
		select {
		case fire <- struct{}{}:
		default:
			log.Warn("hotkey trigger queue full, dropping")
		}
	}
}

func (e *Engine) release(ev KeyEvent) {
	e.mu.Lock()
	delete(e.pressed, pressKey(ev))
	if !e.combo.satisfied(e.pressed) {
		e.latched = false
	}
	e.mu.Unlock()
}

func (e *Engine) worker(fire <-chan struct{}, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-fire:
			e.invoke()
		}
	}
}

// invoke runs the callback outside the engine lock. Panics are contained
// here; a misbehaving callback must never take the listener down.
func (e *Engine) invoke() {
	e.mu.Lock()
	callback := e.callback
	e.mu.Unlock()
	if callback == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("hotkey callback panic: %v", r)
		}
	}()
	callback()
}
