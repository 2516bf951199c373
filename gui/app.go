// Package gui owns the fyne application: the launcher window and the
// system tray menu.
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"hatch/history"
	"hatch/log"
)

// Commands offered in the command picker. The entry stays editable, these
// are just starting points.
var commandTemplates = []string{
	"claude",
	"claude --continue",
	"claude --resume",
}

// Hooks connects the window to the rest of the app. All of them are called
// on the fyne goroutine.
type Hooks struct {
	// Launch spawns the terminal. A non-nil error keeps the window open.
	Launch func(dir, command string) error
	// History returns the current MRU list, newest first.
	History func() []history.Entry
	// RemoveHistory drops one entry from the list, ClearHistory all of them.
	RemoveHistory func(path string)
	ClearHistory  func()
	// CopyLast copies the most recent directory to the clipboard.
	CopyLast func()
	// LoginEnabled and ToggleLogin back the "Start at Login" menu item.
	LoginEnabled func() bool
	ToggleLogin  func(enable bool) error
	// Defaults seeds the form when the window opens.
	Defaults func() (dir, command string)
}

type App struct {
	fyneApp fyne.App
	window  fyne.Window
	hooks   Hooks

	dirEntry *widget.Entry
	cmdEntry *widget.SelectEntry
	histList *widget.List
	errLabel *widget.Label
	histSnap []history.Entry
	onReady  func()
	centered bool
}

func NewApp(hooks Hooks, onReady func()) *App {
	return &App{hooks: hooks, onReady: onReady}
}

// Run builds the window and tray and enters the fyne main loop. It blocks
// until Quit.
func Run(a *App) error {
	a.fyneApp = app.NewWithID("io.hatch.app")
	a.fyneApp.Settings().SetTheme(&darkTheme{})

	a.setupTray()
	a.buildWindow()

	go a.onReady()

	// The window stays hidden until the hotkey or tray asks for it.
	a.fyneApp.Run()
	return nil
}

func (a *App) setupTray() {
	desk, ok := a.fyneApp.(desktop.App)
	if !ok {
		log.Warn("desktop driver unavailable, no system tray")
		return
	}

	loginItem := fyne.NewMenuItem("Start at Login", nil)
	loginItem.Checked = a.hooks.LoginEnabled()
	loginItem.Action = func() {
		if err := a.hooks.ToggleLogin(!loginItem.Checked); err != nil {
			log.Errorf("toggle start at login: %v", err)
			return
		}
		loginItem.Checked = !loginItem.Checked
	}

	menu := fyne.NewMenu("hatch",
		fyne.NewMenuItem("Open Launcher", func() {
			a.ShowLauncher()
		}),
		fyne.NewMenuItem("Copy Last Directory", func() {
			a.hooks.CopyLast()
		}),
		fyne.NewMenuItemSeparator(),
		loginItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.fyneApp.Quit()
		}),
	)
	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(fyne.NewStaticResource("tray.png", trayIcon()))
}

func (a *App) buildWindow() {
	a.window = a.fyneApp.NewWindow("Hatch")

	a.dirEntry = widget.NewEntry()
	a.dirEntry.SetPlaceHolder("Project directory")
	a.dirEntry.OnSubmitted = func(string) { a.launch() }

	browse := widget.NewButton("Browse", func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			a.dirEntry.SetText(uri.Path())
		}, a.window)
	})

	a.cmdEntry = widget.NewSelectEntry(commandTemplates)
	a.cmdEntry.SetPlaceHolder("Command")
	a.cmdEntry.OnSubmitted = func(string) { a.launch() }

	a.errLabel = widget.NewLabel("")
	a.errLabel.Importance = widget.DangerImportance
	a.errLabel.Hide()

	a.histList = widget.NewList(
		func() int { return len(a.histSnap) },
		func() fyne.CanvasObject {
			remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
			return container.NewBorder(nil, nil, nil, remove, widget.NewLabel("history entry"))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(a.histSnap) {
				return
			}
			row := obj.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(a.histSnap[id].Path)
			row.Objects[1].(*widget.Button).OnTapped = func() {
				a.hooks.RemoveHistory(a.histSnap[id].Path)
				a.histSnap = a.hooks.History()
				a.histList.Refresh()
			}
		},
	)
	a.histList.OnSelected = func(id widget.ListItemID) {
		if id < len(a.histSnap) {
			a.dirEntry.SetText(a.histSnap[id].Path)
		}
		a.histList.UnselectAll()
	}

	launchBtn := widget.NewButton("Launch", a.launch)
	launchBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabel("Directory"),
		container.NewBorder(nil, nil, nil, browse, a.dirEntry),
		widget.NewLabel("Command"),
		a.cmdEntry,
		a.errLabel,
		layout.NewSpacer(),
		launchBtn,
	)
	clearBtn := widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		a.hooks.ClearHistory()
		a.histSnap = nil
		a.histList.Refresh()
	})
	histHeader := container.NewBorder(nil, nil, widget.NewLabel("Recent"), clearBtn)

	content := container.NewBorder(nil, nil, nil, nil,
		container.NewHSplit(form, container.NewBorder(
			histHeader, nil, nil, nil, a.histList)))

	a.window.SetContent(content)
	a.window.Resize(fyne.NewSize(640, 360))
	a.window.SetCloseIntercept(func() {
		a.window.Hide()
	})
	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			a.window.Hide()
		}
	})
}

// ShowLauncher refreshes the form and brings the window up. Safe to call
// from any goroutine.
func (a *App) ShowLauncher() {
	fyne.Do(func() {
		if a.window == nil {
			return
		}
		a.refresh()
		if !a.centered {
			a.window.CenterOnScreen()
			a.centered = true
		}
		a.window.Show()
		a.window.RequestFocus()
		a.window.Canvas().Focus(a.dirEntry)
	})
}

// Hide drops the window without quitting. Safe to call from any goroutine.
func (a *App) Hide() {
	fyne.Do(func() {
		if a.window != nil {
			a.window.Hide()
		}
	})
}

func (a *App) Quit() {
	if a.fyneApp != nil {
		a.fyneApp.Quit()
	}
}

func (a *App) refresh() {
	dir, command := a.hooks.Defaults()
	if a.dirEntry.Text == "" {
		a.dirEntry.SetText(dir)
	}
	if a.cmdEntry.Text == "" {
		a.cmdEntry.SetText(command)
	}
	a.errLabel.Hide()
	a.histSnap = a.hooks.History()
	a.histList.Refresh()
}

func (a *App) launch() {
	dir := a.dirEntry.Text
	command := a.cmdEntry.Text
	if err := a.hooks.Launch(dir, command); err != nil {
		a.errLabel.SetText(err.Error())
		a.errLabel.Show()
		return
	}
	a.errLabel.Hide()
	a.window.Hide()
}
