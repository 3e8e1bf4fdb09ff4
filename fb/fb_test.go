package fb

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/mjl-/lcdui"
)

func TestFillClip(t *testing.T) {
	f := New(20, 10)
	f.SetClip(image.Rect(5, 0, 10, 10))
	f.Fill(image.Rect(0, 0, 20, 10), 0xff0000ff)

	red := color.RGBA{0xff, 0, 0, 0xff}
	for x := 0; x < 20; x++ {
		got := f.Image().RGBAAt(x, 5)
		inside := x >= 5 && x < 10
		if inside && got != red {
			t.Fatalf("pixel %d inside clip is %v, want red", x, got)
		}
		if !inside && got == red {
			t.Fatalf("pixel %d outside clip is red", x)
		}
	}

	f.SetClip(image.Rect(30, 30, 40, 40))
	n := f.Fills
	f.Fill(image.Rect(0, 0, 20, 10), 0x00ff00ff)
	if f.Fills != n {
		t.Fatalf("fill outside the framebuffer was not skipped")
	}
}

func TestBorder(t *testing.T) {
	f := New(10, 10)
	f.Border(image.Rect(0, 0, 10, 10), 1, 0x0000ffff)
	blue := color.RGBA{0, 0, 0xff, 0xff}
	if f.Image().RGBAAt(0, 0) != blue || f.Image().RGBAAt(9, 9) != blue || f.Image().RGBAAt(0, 5) != blue {
		t.Fatalf("border pixels not set")
	}
	if f.Image().RGBAAt(5, 5) == blue {
		t.Fatalf("inside of border was filled")
	}
}

func TestTextAndPNG(t *testing.T) {
	f := New(60, 20)
	f.Fill(f.Image().Rect, 0xffffffff)
	f.Text(image.Rect(0, 0, 60, 20), lcdui.DefaultFont, 0x000000ff, "Hi")

	dark := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 60; x++ {
			if f.Image().RGBAAt(x, y).R < 0x80 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Fatalf("no text pixels drawn")
	}

	var buf bytes.Buffer
	if err := f.WritePNG(&buf); err != nil {
		t.Fatalf("write png: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if img.Bounds() != f.Image().Rect {
		t.Fatalf("png bounds %v, want %v", img.Bounds(), f.Image().Rect)
	}
}

func TestFlush(t *testing.T) {
	f := New(1, 1)
	if err := f.Flush(); err != nil {
		t.Fatalf("flush without function: %v", err)
	}
	var got *image.RGBA
	f.SetFlush(func(img *image.RGBA) error {
		got = img
		return nil
	})
	if err := f.Flush(); err != nil || got != f.Image() {
		t.Fatalf("flush did not pass image")
	}
}
