// Package fb is a software framebuffer implementing lcdui.Painter.
package fb

import (
	"image"
	"image/color"
	imagedraw "image/draw"
	"image/png"
	"io"

	"9fans.net/go/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mjl-/lcdui"
)

// Framebuffer draws into an RGBA image.
type Framebuffer struct {
	img   *image.RGBA
	clip  image.Rectangle
	flush func(img *image.RGBA) error

	Fills int // Number of Fill calls, for statistics.
}

var _ lcdui.Painter = &Framebuffer{}
var _ lcdui.Flusher = &Framebuffer{}

func New(width, height int) *Framebuffer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Framebuffer{img: img, clip: img.Rect}
}

func (f *Framebuffer) Image() *image.RGBA {
	return f.img
}

// SetFlush sets the function Flush passes the image to, such as a display
// driver.
func (f *Framebuffer) SetFlush(fn func(img *image.RGBA) error) {
	f.flush = fn
}

func (f *Framebuffer) Flush() error {
	if f.flush == nil {
		return nil
	}
	return f.flush(f.img)
}

// RGBA converts a draw color, 0xRRGGBBAA.
func RGBA(c draw.Color) color.RGBA {
	return color.RGBA{uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)}
}

func (f *Framebuffer) SetClip(r image.Rectangle) {
	f.clip = r.Intersect(f.img.Rect)
}

func (f *Framebuffer) Fill(r image.Rectangle, c draw.Color) {
	r = r.Intersect(f.clip)
	if r.Empty() {
		return
	}
	f.Fills++
	imagedraw.Draw(f.img, r, image.NewUniform(RGBA(c)), image.Point{}, imagedraw.Over)
}

// Border draws the outline of r, width pixels wide, inside r.
func (f *Framebuffer) Border(r image.Rectangle, width int, c draw.Color) {
	if width <= 0 {
		return
	}
	f.Fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), c)
	f.Fill(image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), c)
	f.Fill(image.Rect(r.Min.X, r.Min.Y+width, r.Min.X+width, r.Max.Y-width), c)
	f.Fill(image.Rect(r.Max.X-width, r.Min.Y+width, r.Max.X, r.Max.Y-width), c)
}

// Text draws s with its top left at r.Min, cut off at r. Fonts without a
// font.Face are drawn with the 7x13 font.
func (f *Framebuffer) Text(r image.Rectangle, fnt lcdui.Font, c draw.Color, s string) {
	dst := r.Intersect(f.clip)
	if dst.Empty() || s == "" {
		return
	}
	face := font.Face(basicfont.Face7x13)
	if ff, ok := fnt.(interface{ Face() font.Face }); ok {
		face = ff.Face()
	}
	d := font.Drawer{
		Dst:  f.img.SubImage(dst).(*image.RGBA),
		Src:  image.NewUniform(RGBA(c)),
		Face: face,
		Dot:  fixed.P(r.Min.X, r.Min.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// WritePNG writes the framebuffer as PNG.
func (f *Framebuffer) WritePNG(w io.Writer) error {
	return png.Encode(w, f.img)
}
