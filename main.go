package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	"hatch/autostart"
	"hatch/clipboard"
	"hatch/config"
	"hatch/doctor"
	"hatch/gui"
	"hatch/history"
	"hatch/hotkey"
	"hatch/launcher"
	"hatch/log"
	"hatch/shutdown"
	"hatch/singleinstance"
)

var version = "dev"

var (
	launchMu sync.Mutex
	launches int
)

var (
	guiApp       *gui.App
	instanceLock *singleinstance.Lock
	engine       *hotkey.Engine
	nativeHK     *hotkey.Native
)

var shutdownOnce sync.Once

func gracefulShutdown() {
	shutdownOnce.Do(func() {
		launchMu.Lock()
		n := launches
		launchMu.Unlock()
		if n > 0 {
			log.SessionEnd(n)
		}
		if engine != nil {
			engine.Unregister()
		}
		if nativeHK != nil {
			nativeHK.Unregister()
		}
		log.Close()
		instanceLock.Release()
		if guiApp != nil {
			guiApp.Quit()
		}
		os.Exit(0)
	})
}

func main() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	doctorFlag := flag.Bool("doctor", false, "Run system diagnostics and exit")
	hiddenFlag := flag.Bool("hidden", false, "Start in the tray without opening the launcher window")
	hotkeyFlag := flag.String("hotkey", "", "Override the configured hotkey (e.g. ctrl+alt+c)")
	configFlag := flag.String("config", "", "Settings file path (default: OS-specific location)")
	logPathFlag := flag.String("logpath", "", "Log directory path (default: OS-specific location, use ./ for current dir)")
	crashFlag := flag.Bool("crash", false, "Trigger synthetic panic for testing crash logging")
	flag.Parse()

	// Resolve log directory early
	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)

	if err := log.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
	}

	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
		debug.SetCrashOutput(crashFile, debug.CrashOptions{})
	}

	if *crashFlag {
		panic("TEST CRASH: synthetic panic to verify crash logging")
	}

	if *versionFlag {
		fmt.Printf("hatch %s\n", version)
		os.Exit(0)
	}

	cfgPath, err := config.ResolvePath(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve config path: %v\n", err)
		os.Exit(1)
	}
	cfgService := config.NewService(cfgPath)
	if err := cfgService.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := cfgService.Get()

	hotkeySpec := cfg.Hotkey
	if *hotkeyFlag != "" {
		hotkeySpec = *hotkeyFlag
	}

	if *doctorFlag {
		os.Exit(doctor.Run(hotkeySpec))
	}

	instanceLock, err = singleinstance.TryLock("hatch")
	if errors.Is(err, singleinstance.ErrAlreadyRunning) {
		fmt.Fprintln(os.Stderr, "hatch is already running")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: instance lock unavailable: %v\n", err)
	}

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}

	term := launcher.New()
	if !term.Available() {
		log.Warn("no terminal emulator detected, launches will fail")
	}
	log.SessionStart(hotkeySpec, term.Terminal())

	store := history.FromEntries(cfg.DirectoryHistory)

	persistHistory := func() {
		if err := cfgService.Update(func(c *config.Config) {
			c.DirectoryHistory = store.List(0)
		}); err != nil {
			log.Errorf("failed to save history: %v", err)
		}
	}

	hooks := gui.Hooks{
		Launch: func(dir, command string) error {
			if err := term.Launch(dir, command); err != nil {
				log.Errorf("launch failed: %v", err)
				return err
			}
			launchMu.Lock()
			launches++
			launchMu.Unlock()
			log.LaunchRecord(dir, command)
			snapshot := store.RecordUse(dir)
			if err := cfgService.Update(func(c *config.Config) {
				c.LastDirectory = dir
				c.LastCommand = command
				c.DirectoryHistory = snapshot
			}); err != nil {
				log.Errorf("failed to save config: %v", err)
			}
			return nil
		},
		History: func() []history.Entry {
			return store.List(0)
		},
		RemoveHistory: func(path string) {
			if store.Remove(path) {
				persistHistory()
			}
		},
		ClearHistory: func() {
			store.Clear()
			persistHistory()
		},
		CopyLast: func() {
			entries := store.List(1)
			if len(entries) == 0 {
				return
			}
			if err := clipboard.Copy(entries[0].Path); err != nil {
				log.Errorf("clipboard copy failed: %v", err)
			}
		},
		LoginEnabled: autostart.Enabled,
		ToggleLogin: func(enable bool) error {
			var err error
			if enable {
				err = autostart.Enable()
			} else {
				err = autostart.Disable()
			}
			if err != nil {
				return err
			}
			return cfgService.Update(func(c *config.Config) {
				c.StartAtLogin = enable
			})
		},
		Defaults: func() (string, string) {
			c := cfgService.Get()
			return c.LastDirectory, c.LastCommand
		},
	}

	guiApp = gui.NewApp(hooks, func() {
		registerHotkey(hotkeySpec)
		if !*hiddenFlag {
			guiApp.ShowLauncher()
		}
	})

	sigChan := make(chan os.Signal, 1)
	shutdown.Notify(sigChan)
	go func() {
		<-sigChan
		gracefulShutdown()
	}()

	if err := gui.Run(guiApp); err != nil {
		log.Errorf("gui error: %v", err)
	}
	gracefulShutdown()
}

// registerHotkey starts the keyboard hook engine, falling back to the
// OS-native hotkey API when the hook cannot start (common on Wayland).
// With neither available the app still runs, tray-only.
func registerHotkey(spec string) {
	var err error
	engine, err = hotkey.NewEngine(spec, hotkey.NewHookSource())
	if err != nil && spec != config.DefaultHotkey {
		log.Errorf("invalid hotkey %q: %v, falling back to %s", spec, err, config.DefaultHotkey)
		spec = config.DefaultHotkey
		engine, err = hotkey.NewEngine(spec, hotkey.NewHookSource())
	}
	if err != nil {
		log.Errorf("invalid hotkey %q: %v", spec, err)
		return
	}
	if err = engine.Register(func() { guiApp.ShowLauncher() }); err == nil {
		log.Infof("hotkey %s registered via keyboard hook", engine.Spec())
		return
	}
	log.Warnf("keyboard hook unavailable (%v), trying native hotkey", err)
	engine = nil

	nativeHK, err = hotkey.NewNative(mustCombination(spec))
	if err != nil {
		log.Errorf("native hotkey setup failed: %v", err)
		log.Warn("running without a global hotkey, use the tray menu")
		nativeHK = nil
		return
	}
	if err := nativeHK.Register(); err != nil {
		log.Errorf("native hotkey register failed: %v", err)
		log.Warn("running without a global hotkey, use the tray menu")
		nativeHK = nil
		return
	}
	go func() {
		for range nativeHK.Keydown() {
			guiApp.ShowLauncher()
		}
	}()
	log.Infof("hotkey %s registered via native API", spec)
}

func mustCombination(spec string) hotkey.Combination {
	c, err := hotkey.Parse(spec)
	if err != nil {
		// Spec was already validated by NewEngine.
		panic(err)
	}
	return c
}
