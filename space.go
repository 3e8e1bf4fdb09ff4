package lcdui

import (
	"image"
)

// Space is padding inside a widget, in pixels.
type Space struct {
	Top, Right, Bottom, Left int
}

func (s Space) Dx() int {
	return s.Left + s.Right
}

func (s Space) Dy() int {
	return s.Top + s.Bottom
}

// Inset shrinks r by the padding.
func (s Space) Inset(r image.Rectangle) image.Rectangle {
	return image.Rect(r.Min.X+s.Left, r.Min.Y+s.Top, r.Max.X-s.Right, r.Max.Y-s.Bottom)
}

func SpaceXY(x, y int) Space {
	return Space{y, x, y, x}
}

// NSpace is padding of n on all sides.
func NSpace(n int) Space {
	return Space{n, n, n, n}
}
