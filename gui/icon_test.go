package gui

import (
	"bytes"
	"image/png"
	"testing"
)

func TestTrayIconIsValidPNG(t *testing.T) {
	data := trayIcon()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("tray icon does not decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 44 || b.Dy() != 44 {
		t.Errorf("icon size = %dx%d, want 44x44", b.Dx(), b.Dy())
	}
}

func TestTrayIconCached(t *testing.T) {
	a := trayIcon()
	b := trayIcon()
	if &a[0] != &b[0] {
		t.Error("trayIcon re-rendered instead of returning the cached bytes")
	}
}
