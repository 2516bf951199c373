package gui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"sync"
)

var trayIconOnce = sync.OnceValue(func() []byte {
	accent := color.RGBA{R: 255, G: 149, B: 0, A: 255}
	return renderIcon(44, &accent, 44.0/6.5)
})

// trayIcon renders the tray glyph once: a dark disc with an accent dot,
// drawn at 2x for HiDPI trays.
func trayIcon() []byte {
	return trayIconOnce()
}

func renderIcon(size int, dot *color.RGBA, dotR float64) []byte {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cx, cy := float64(size)/2, float64(size)/2
	r := float64(size)/2 - 1
	for y := range size {
		for x := range size {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			if dot != nil && d <= dotR {
				img.Set(x, y, dot)
			} else if d <= r {
				img.Set(x, y, color.Black)
			}
		}
	}
	return encodePNG(img)
}

func encodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic("encodePNG: " + err.Error())
	}
	return buf.Bytes()
}
