package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hatch/autostart"
	"hatch/hotkey"
	"hatch/launcher"
)

// Run executes interactive diagnostic checks and returns an exit code
// (0=all pass, 1=any fail).
func Run(hotkeySpec string) int {
	resetTerminal()
	setupInterruptHandler()

	fmt.Println("hatch doctor - interactive system diagnostics")
	fmt.Println("=============================================")

	allPass := true

	if !checkConfigDir() {
		allPass = false
	}
	if !checkTerminal() {
		allPass = false
	}
	if !checkHotkey(hotkeySpec) {
		allPass = false
	}
	checkAutostart()

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
	} else {
		fmt.Println("Some checks failed. See details above.")
	}

	if allPass {
		return 0
	}
	return 1
}

func checkConfigDir() bool {
	fmt.Println()
	fmt.Println("[1/3] Config directory")

	base, err := os.UserConfigDir()
	if err != nil {
		fmt.Printf("  FAIL: no user config directory: %v\n", err)
		return false
	}
	dir := filepath.Join(base, "hatch")
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("  FAIL: cannot create %s: %v\n", dir, err)
		return false
	}
	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		fmt.Printf("  FAIL: %s is not writable: %v\n", dir, err)
		return false
	}
	os.Remove(probe)
	fmt.Printf("  PASS: %s is writable\n", dir)
	return true
}

func checkTerminal() bool {
	fmt.Println()
	fmt.Println("[2/3] Terminal emulator")

	l := launcher.New()
	if !l.Available() {
		fmt.Println("  FAIL: no supported terminal emulator found")
		return false
	}
	fmt.Printf("  PASS: using %s\n", l.Terminal())
	return true
}

func checkHotkey(spec string) bool {
	fmt.Println()
	fmt.Println("[3/3] Hotkey detection")
	fmt.Printf("Press %s...\n", spec)

	engine, err := hotkey.NewEngine(spec, hotkey.NewHookSource())
	if err != nil {
		fmt.Printf("  FAIL: invalid hotkey %q: %v\n", spec, err)
		return false
	}
	detected := make(chan struct{}, 1)
	if err := engine.Register(func() {
		select {
		case detected <- struct{}{}:
		default:
		}
	}); err != nil {
		fmt.Printf("  FAIL: could not start keyboard hook: %v\n", err)
		return false
	}
	defer engine.Unregister()

	select {
	case <-detected:
		fmt.Println("  PASS: hotkey detected")
		// The hook may leave the terminal in raw mode
		resetTerminal()
		return true
	case <-time.After(10 * time.Second):
		fmt.Println("  FAIL: timeout waiting for hotkey")
		return false
	}
}

func checkAutostart() {
	fmt.Println()
	if autostart.Enabled() {
		fmt.Println("Start at login: enabled")
	} else {
		fmt.Println("Start at login: disabled")
	}
}
