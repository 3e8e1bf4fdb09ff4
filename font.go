package lcdui

import (
	"9fans.net/go/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Font measures text. Painters may need more, see FaceFont.
type Font interface {
	Height() int
	StringWidth(s string) int
}

// FaceFont is a Font backed by a font.Face.
type FaceFont struct {
	face font.Face
}

func NewFaceFont(face font.Face) *FaceFont {
	return &FaceFont{face}
}

func (f *FaceFont) Face() font.Face {
	return f.face
}

func (f *FaceFont) Height() int {
	return f.face.Metrics().Height.Ceil()
}

// Ascent is the distance from the top to the baseline.
func (f *FaceFont) Ascent() int {
	return f.face.Metrics().Ascent.Ceil()
}

func (f *FaceFont) StringWidth(s string) int {
	return font.MeasureString(f.face, s).Ceil()
}

// DefaultFont is the 7x13 fixed font new trees start with.
var DefaultFont = NewFaceFont(basicfont.Face7x13)

// DrawFont adapts a font loaded through a draw.Display.
type DrawFont struct {
	F *draw.Font
}

func (f DrawFont) Height() int {
	return f.F.Height
}

func (f DrawFont) StringWidth(s string) int {
	return f.F.StringWidth(s)
}
