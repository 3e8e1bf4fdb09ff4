package lcdui

import (
	"strings"
	"testing"

	"9fans.net/go/draw"
)

type upper struct{}

func (upper) Translate(s string) string {
	return strings.ToUpper(s)
}

func TestStaticText(t *testing.T) {
	tr := newTestTree(t)
	var changed int
	cb := func(t *Tree, h Handle, e *Event, r *Result) bool {
		if e.Cmd == CmdTextChanged {
			changed++
		}
		return false
	}
	a, _ := tr.Create(plainType, 0, 0, 0, 10, 10, tr.Desktop(), cb, 0)
	settle(tr)

	if !tr.SetText(a, "hello") || changed != 1 || !tr.Dirty(a) {
		t.Fatalf("set text")
	}
	settle(tr)
	if tr.SetText(a, "hello") || changed != 1 || tr.NeedsRedraw() {
		t.Fatalf("setting the same text had effect")
	}
	tr.SetTranslator(upper{})
	if got := tr.Text(a); got != "HELLO" {
		t.Fatalf("translated text %q", got)
	}
}

func TestOwnedText(t *testing.T) {
	tr := newTestTree(t)
	a := mustCreate(t, tr, plainType, 0, 0, 10, 10, tr.Desktop())
	used := tr.MemoryUsed()

	if !tr.AllocTextMemory(a, 6) {
		t.Fatalf("alloc text memory")
	}
	if tr.MemoryUsed() != used+6 || tr.TextCapacity(a) != 6 {
		t.Fatalf("memory %d cap %d", tr.MemoryUsed()-used, tr.TextCapacity(a))
	}
	tr.SetTranslator(upper{})
	tr.SetText(a, "abcdefgh")
	if got := tr.Text(a); got != "abcde" {
		t.Fatalf("truncated text %q, want abcde", got)
	}
	tr.SetText(a, "aé€")
	if got := tr.Text(a); got != "aé" {
		t.Fatalf("truncated multibyte text %q", got)
	}
	if tr.TextCursor(a) != 3 {
		t.Fatalf("cursor %d, want end", tr.TextCursor(a))
	}

	if !tr.FreeTextMemory(a) || tr.MemoryUsed() != used || tr.Text(a) != "" {
		t.Fatalf("free text memory")
	}
	if tr.FreeTextMemory(a) {
		t.Fatalf("freed twice")
	}
}

func TestTextMemoryBudget(t *testing.T) {
	base := newTestTree(t).MemoryUsed()
	tr := newTestTree(t, func(c *Config) { c.Memory = base + MinWidgetSize + 10 })
	a := mustCreate(t, tr, plainType, 0, 0, 10, 10, tr.Desktop())

	if !tr.AllocTextMemory(a, 10) {
		t.Fatalf("alloc within budget failed")
	}
	tr.SetText(a, "keep")
	if tr.AllocTextMemory(a, 11) {
		t.Fatalf("alloc over budget succeeded")
	}
	if tr.Text(a) != "keep" || tr.TextCapacity(a) != 10 {
		t.Fatalf("failed alloc changed widget: %q %d", tr.Text(a), tr.TextCapacity(a))
	}
	if tr.SetColor(a, 0, 0xff0000ff) {
		t.Fatalf("color copy over budget succeeded")
	}
	if tr.Color(a, 0) != plainType.Colors[0] {
		t.Fatalf("failed color change applied")
	}
}

func TestTextKeys(t *testing.T) {
	tr := newTestTree(t)
	a := mustCreate(t, tr, plainType, 0, 0, 10, 10, tr.Desktop())
	if tr.ProcessTextKey(a, KeyData{Key: 'x'}) {
		t.Fatalf("static text took a key")
	}
	tr.AllocTextMemory(a, 8)

	keys := func(l ...rune) {
		for _, k := range l {
			tr.ProcessTextKey(a, KeyData{Key: k})
		}
	}
	keys('a', 'c', draw.KeyLeft, 'b')
	if got := tr.Text(a); got != "abc" || tr.TextCursor(a) != 2 {
		t.Fatalf("text %q cursor %d", got, tr.TextCursor(a))
	}
	keys(draw.KeyRight, 'é', draw.KeyBackspace)
	if got := tr.Text(a); got != "abc" {
		t.Fatalf("text %q after backspace", got)
	}
	keys('1', '2', '3', '4', '5')
	if got := tr.Text(a); got != "abc1234" {
		t.Fatalf("text %q, want full buffer less one byte", got)
	}
	if tr.ProcessTextKey(a, KeyData{Key: draw.KeyFn + 5}) {
		t.Fatalf("function key used as text")
	}
	tr.SetTextCursor(a, 100)
	if tr.TextCursor(a) != 7 {
		t.Fatalf("cursor not clamped: %d", tr.TextCursor(a))
	}
}

func TestColors(t *testing.T) {
	tr := newTestTree(t)
	a := mustCreate(t, tr, plainType, 0, 0, 10, 10, tr.Desktop())
	b := mustCreate(t, tr, plainType, 0, 0, 10, 10, tr.Desktop())
	used := tr.MemoryUsed()

	if tr.SetColor(a, 5, 0) {
		t.Fatalf("set of unknown color index")
	}
	if !tr.SetColor(a, 1, 0xabcdefff) {
		t.Fatalf("set color")
	}
	if tr.Color(a, 1) != 0xabcdefff || tr.Color(b, 1) != plainType.Colors[1] || tr.Color(a, 0) != plainType.Colors[0] {
		t.Fatalf("colors not per widget")
	}
	if tr.MemoryUsed() != used+8 {
		t.Fatalf("color copy charged %d", tr.MemoryUsed()-used)
	}
	if plainType.Colors[1] == 0xabcdefff {
		t.Fatalf("type colors modified")
	}
}
