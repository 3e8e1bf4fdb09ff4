package lcdui

import (
	"image"
	"math"
)

func rect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// round is round-half-away-from-zero.
func round(v float32) int {
	return int(math.Round(float64(v)))
}

func percent(v float32, of int) int {
	return round(v * float32(of) / 100)
}
