package hotkey

import (
	"errors"
	"testing"
	"time"
)

func newTestEngine(t *testing.T, spec string) (*Engine, *FakeSource, chan struct{}) {
	t.Helper()
	fk := NewFake()
	e, err := NewEngine(spec, fk)
	if err != nil {
		t.Fatal(err)
	}
	fired := make(chan struct{}, 16)
	if err := e.Register(func() { fired <- struct{}{} }); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(e.Unregister)
	return e, fk, fired
}

func waitFire(t *testing.T, fired <-chan struct{}) {
	t.Helper()
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for hotkey to fire")
	}
}

func expectQuiet(t *testing.T, fired <-chan struct{}) {
	t.Helper()
	select {
	case <-fired:
		t.Fatal("unexpected hotkey fire")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSideInsensitiveModifiers(t *testing.T) {
	_, fk, fired := newTestEngine(t, "ctrl+alt+c")

	// Right Ctrl satisfies "ctrl".
	fk.Press(rcCtrlR, 0)
	fk.Press(rcAltL, 0)
	fk.Press(0, 'c')
	waitFire(t, fired)

	// Releasing any member un-satisfies the combination and clears the
	// latch, so re-pressing fires again.
	fk.Release(rcAltL, 0)
	expectQuiet(t, fired)
	fk.Press(rcAltL, 0)
	waitFire(t, fired)
}

func TestSingleFirePerPress(t *testing.T) {
	_, fk, fired := newTestEngine(t, "ctrl+alt+c")

	fk.Press(rcCtrlL, 0)
	fk.Press(rcAltL, 0)
	// The hook repeats key-down events while a key is held.
	fk.Press(0, 'c')
	fk.Press(0, 'c')
	fk.Press(0, 'c')
	waitFire(t, fired)
	expectQuiet(t, fired)

	fk.Release(0, 'c')
	fk.Press(0, 'c')
	waitFire(t, fired)
	expectQuiet(t, fired)
}

func TestPressReleaseScenario(t *testing.T) {
	_, fk, fired := newTestEngine(t, "ctrl+alt+c")

	fk.Press(rcCtrlL, 0)
	fk.Press(rcAltL, 0)
	fk.Press(rcKeyC, 'c')
	waitFire(t, fired)

	fk.Release(rcKeyC, 0)
	fk.Press(rcKeyC, 'c')
	waitFire(t, fired)
	expectQuiet(t, fired)
}

func TestRegisterErrors(t *testing.T) {
	e, err := NewEngine("ctrl+alt+c", NewFake())
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Register(nil); !errors.Is(err, ErrNoCallback) {
		t.Errorf("Register(nil) = %v, want ErrNoCallback", err)
	}
	if err := e.Register(func() {}); err != nil {
		t.Fatal(err)
	}
	defer e.Unregister()
	if err := e.Register(func() {}); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("second Register = %v, want ErrAlreadyRegistered", err)
	}
}

func TestRegisterSourceFailure(t *testing.T) {
	e, err := NewEngine("ctrl+alt+c", NewFailingFake())
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Register(func() {}); err == nil {
		t.Fatal("expected source start error")
	}
	if e.Active() {
		t.Error("engine active after failed registration")
	}
}

func TestUnregisterIdempotent(t *testing.T) {
	e, _, _ := newTestEngine(t, "ctrl+alt+c")
	e.Unregister()
	e.Unregister()
	if e.Active() {
		t.Error("engine still active after unregister")
	}
}

func TestSetHotkeyInvalidKeepsOld(t *testing.T) {
	e, fk, fired := newTestEngine(t, "ctrl+alt+c")

	if err := e.SetHotkey("fn+ctrl+c"); err == nil {
		t.Fatal("expected error for invalid spec")
	}
	if !e.Active() {
		t.Error("engine deactivated by failed SetHotkey")
	}
	if e.Spec() != "ctrl+alt+c" {
		t.Errorf("Spec() = %q, want ctrl+alt+c", e.Spec())
	}

	fk.Press(rcCtrlL, 0)
	fk.Press(rcAltL, 0)
	fk.Press(0, 'c')
	waitFire(t, fired)
}

func TestSetHotkeySwapsWhileActive(t *testing.T) {
	e, fk, fired := newTestEngine(t, "ctrl+alt+c")

	if err := e.SetHotkey("ctrl+shift+s"); err != nil {
		t.Fatal(err)
	}
	if !e.Active() {
		t.Fatal("engine should stay active across SetHotkey")
	}

	// Old combination no longer fires.
	fk.Press(rcCtrlL, 0)
	fk.Press(rcAltL, 0)
	fk.Press(0, 'c')
	expectQuiet(t, fired)

	fk.Press(rcShiftL, 0)
	fk.Press(0, 's')
	waitFire(t, fired)
}

func TestSetHotkeyWhileInactive(t *testing.T) {
	e, err := NewEngine("ctrl+alt+c", NewFake())
	if err != nil {
		t.Fatal(err)
	}
	if err := e.SetHotkey("ctrl+shift+s"); err != nil {
		t.Fatal(err)
	}
	if e.Active() {
		t.Error("SetHotkey on an inactive engine must not register")
	}
	if e.Spec() != "ctrl+shift+s" {
		t.Errorf("Spec() = %q", e.Spec())
	}
}

func TestCallbackPanicIsContained(t *testing.T) {
	fk := NewFake()
	e, err := NewEngine("ctrl+alt+c", fk)
	if err != nil {
		t.Fatal(err)
	}
	fired := make(chan struct{}, 16)
	first := true
	if err := e.Register(func() {
		fired <- struct{}{}
		if first {
			first = false
			panic("callback blew up")
		}
	}); err != nil {
		t.Fatal(err)
	}
	defer e.Unregister()

	fk.Press(rcCtrlL, 0)
	fk.Press(rcAltL, 0)
	fk.Press(0, 'c')
	waitFire(t, fired)

	fk.Release(0, 'c')
	fk.Press(0, 'c')
	waitFire(t, fired)
}

func TestSecondTriggerQueuesBehindRunningCallback(t *testing.T) {
	fk := NewFake()
	e, err := NewEngine("ctrl+alt+c", fk)
	if err != nil {
		t.Fatal(err)
	}
	started := make(chan struct{}, 16)
	release := make(chan struct{})
	if err := e.Register(func() {
		started <- struct{}{}
		<-release
	}); err != nil {
		t.Fatal(err)
	}
	defer e.Unregister()

	fk.Press(rcCtrlL, 0)
	fk.Press(rcAltL, 0)
	fk.Press(0, 'c')
	waitFire(t, started)

	// Second full press while the first invocation is still running.
	fk.Release(0, 'c')
	fk.Press(0, 'c')
	expectQuiet(t, started)

	close(release)
	waitFire(t, started)
}
