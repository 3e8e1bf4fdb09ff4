package lcdui

import (
	"unicode/utf8"

	"9fans.net/go/draw"
)

// Color returns color index of h, the type default unless overridden.
func (t *Tree) Color(h Handle, index int) draw.Color {
	w := t.get(h)
	l := w.colors
	if l == nil {
		l = w.typ.Colors
	}
	if index < 0 || index >= len(l) {
		return 0
	}
	return l[index]
}

// SetColor overrides color index for h. The widget gets its own copy of the
// type colors on first use. It fails if the type has no such color or the
// copy does not fit in memory.
func (t *Tree) SetColor(h Handle, index int, c draw.Color) bool {
	w := t.get(h)
	if index < 0 || index >= len(w.typ.Colors) {
		return false
	}
	if w.colors == nil {
		if err := t.charge(4 * len(w.typ.Colors)); err != nil {
			return false
		}
		w.colors = append([]draw.Color(nil), w.typ.Colors...)
	}
	if w.colors[index] != c {
		w.colors[index] = c
		t.Invalidate(h)
	}
	return true
}

func (t *Tree) freeColors(w *Widget) {
	if w.colors != nil {
		t.uncharge(4 * len(w.colors))
		w.colors = nil
	}
}

func (t *Tree) Font(h Handle) Font {
	return t.get(h).font
}

func (t *Tree) SetFont(h Handle, f Font) {
	w := t.get(h)
	if w.font == f {
		return
	}
	w.font = f
	t.Invalidate(h)
}

// SetDefaultFont sets the font for widgets created from now on.
func (t *Tree) SetDefaultFont(f Font) {
	t.font = f
}

// SetTranslator sets the translator applied to static texts.
func (t *Tree) SetTranslator(tr Translator) {
	t.translator = tr
}

// Set3D toggles the 3D style.
func (t *Tree) Set3D(h Handle, on bool) {
	if t.get(h).setFlags(Flag3D, on) {
		t.Invalidate(h)
	}
}

func (t *Tree) Transparency(h Handle) uint8 {
	return t.get(h).transparency
}

// SetTransparency sets the opacity of h, 0xff is opaque. Only used with
// Config.Transparency.
func (t *Tree) SetTransparency(h Handle, v uint8) {
	w := t.get(h)
	if w.transparency == v {
		return
	}
	w.transparency = v
	t.Invalidate(h)
}

// AllocTextMemory gives h an owned text buffer of size bytes, replacing any
// previous one. On failure h is unchanged.
func (t *Tree) AllocTextMemory(h Handle, size int) bool {
	w := t.get(h)
	if size <= 0 {
		return false
	}
	if err := t.charge(size); err != nil {
		return false
	}
	t.freeText(w)
	w.textBuf = make([]byte, 0, size)
	w.text = ""
	w.textCur = 0
	w.flags |= FlagDynamicText
	t.Invalidate(h)
	return true
}

// FreeTextMemory releases the owned text buffer of h.
func (t *Tree) FreeTextMemory(h Handle) bool {
	w := t.get(h)
	if !w.has(FlagDynamicText) {
		return false
	}
	t.freeText(w)
	t.Invalidate(h)
	return true
}

func (t *Tree) freeText(w *Widget) {
	if !w.has(FlagDynamicText) {
		return
	}
	t.uncharge(cap(w.textBuf))
	w.textBuf = nil
	w.textCur = 0
	w.flags &^= FlagDynamicText
}

// TextCapacity is the number of bytes the owned buffer holds, one is kept
// free. Zero without an owned buffer.
func (t *Tree) TextCapacity(h Handle) int {
	return cap(t.get(h).textBuf)
}

// SetText sets the text of h. With an owned buffer the text is copied and
// truncated to fit, otherwise it is stored as is. The cursor moves to the
// end. Setting the current text again does nothing.
func (t *Tree) SetText(h Handle, s string) bool {
	w := t.get(h)
	if w.has(FlagDynamicText) {
		s = truncate(s, cap(w.textBuf)-1)
		if string(w.textBuf) == s {
			return false
		}
		w.textBuf = append(w.textBuf[:0], s...)
	} else {
		if w.text == s {
			return false
		}
		w.text = s
	}
	w.textCur = len(s)
	t.command(h, CmdTextChanged)
	t.Invalidate(h)
	return true
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// Text returns the text of h. Static texts are translated.
func (t *Tree) Text(h Handle) string {
	w := t.get(h)
	if w.has(FlagDynamicText) {
		return string(w.textBuf)
	}
	if t.translator != nil && w.text != "" {
		return t.translator.Translate(w.text)
	}
	return w.text
}

// TextCursor is the byte offset of the cursor in an owned text.
func (t *Tree) TextCursor(h Handle) int {
	return t.get(h).textCur
}

// SetTextCursor moves the cursor, clamped to the text.
func (t *Tree) SetTextCursor(h Handle, pos int) {
	w := t.get(h)
	pos = max(0, min(pos, len(w.textBuf)))
	for pos > 0 && pos < len(w.textBuf) && !utf8.RuneStart(w.textBuf[pos]) {
		pos--
	}
	if pos != w.textCur {
		w.textCur = pos
		t.Invalidate(h)
	}
}

// ProcessTextKey edits an owned text: printable runes and newline are
// inserted at the cursor, backspace and delete remove the rune before it,
// left and right move the cursor. It reports whether the key was used.
func (t *Tree) ProcessTextKey(h Handle, k KeyData) bool {
	w := t.get(h)
	if !w.has(FlagDynamicText) {
		return false
	}
	switch k.Key {
	case draw.KeyBackspace, draw.KeyDelete:
		if w.textCur == 0 {
			return true
		}
		_, n := utf8.DecodeLastRune(w.textBuf[:w.textCur])
		w.textBuf = append(w.textBuf[:w.textCur-n], w.textBuf[w.textCur:]...)
		w.textCur -= n
	case draw.KeyLeft:
		if w.textCur > 0 {
			_, n := utf8.DecodeLastRune(w.textBuf[:w.textCur])
			t.SetTextCursor(h, w.textCur-n)
		}
		return true
	case draw.KeyRight:
		if w.textCur < len(w.textBuf) {
			_, n := utf8.DecodeRune(w.textBuf[w.textCur:])
			t.SetTextCursor(h, w.textCur+n)
		}
		return true
	default:
		if !printable(k.Key) {
			return false
		}
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], k.Key)
		if len(w.textBuf)+n > cap(w.textBuf)-1 {
			return true
		}
		w.textBuf = w.textBuf[:len(w.textBuf)+n]
		copy(w.textBuf[w.textCur+n:], w.textBuf[w.textCur:])
		copy(w.textBuf[w.textCur:], buf[:n])
		w.textCur += n
	}
	t.command(h, CmdTextChanged)
	t.Invalidate(h)
	return true
}

func printable(r rune) bool {
	if r == '\n' {
		return true
	}
	return r >= ' ' && r != draw.KeyDelete && (r < draw.KeyFn || r >= draw.KeyFn+0x100) && utf8.ValidRune(r)
}
