package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindKey, "key"},
		{KindPointer, "pointer"},
		{KindQuit, "quit"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), TextInput("x")},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyPress(KeyEnter, ModNone)},
		{"shift enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModShift), KeyPress(KeyEnter, ModShift)},
		{"ctrl s submits", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), KeyPress(KeyEnter, ModShift)},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), KeyPress(KeyBackspace, ModNone)},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyPress(KeyLeft, ModNone)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyPress(KeyEscape, ModNone)},
		{"f1", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), KeyPress(KeyF1, ModNone)},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), TextInput("    ")},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Quit()},
		{"ctrl rune s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModCtrl), KeyPress(KeyEnter, ModShift)},
	}

	var tr Translator
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tr.Translate(tt.ev)
			if !ok {
				t.Fatal("Translate() ok = false, want true")
			}
			if got != tt.want {
				t.Errorf("Translate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTranslatePointerPressEdge(t *testing.T) {
	var tr Translator

	ev, ok := tr.Translate(tcell.NewEventMouse(4, 7, tcell.Button1, tcell.ModNone))
	if !ok || ev != PointerPress(4, 7) {
		t.Fatalf("Translate(press) = %+v, %v, want pointer at (4,7)", ev, ok)
	}

	// Drag with the button still down is not a new press.
	if _, ok := tr.Translate(tcell.NewEventMouse(5, 7, tcell.Button1, tcell.ModNone)); ok {
		t.Error("Translate(drag) ok = true, want false")
	}

	tr.Translate(tcell.NewEventMouse(5, 7, tcell.ButtonNone, tcell.ModNone))
	if _, ok := tr.Translate(tcell.NewEventMouse(6, 8, tcell.Button1, tcell.ModNone)); !ok {
		t.Error("Translate(second press) ok = false, want true")
	}
}

func TestIsSubmit(t *testing.T) {
	if !KeyPress(KeyEnter, ModShift).IsSubmit() {
		t.Error("Shift+Enter should submit")
	}
	if KeyPress(KeyEnter, ModNone).IsSubmit() {
		t.Error("Enter should not submit")
	}
}

func TestMovementOf(t *testing.T) {
	tests := []struct {
		ev   Event
		dir  Direction
		isOK bool
	}{
		{KeyPress(KeyUp, ModNone), DirUp, true},
		{TextInput("a"), DirLeft, true},
		{TextInput("D"), DirRight, true},
		{TextInput("s"), DirDown, true},
		{TextInput("x"), 0, false},
		{PointerPress(1, 1), 0, false},
	}

	for _, tt := range tests {
		dir, ok := MovementOf(tt.ev)
		if ok != tt.isOK || dir != tt.dir {
			t.Errorf("MovementOf(%+v) = %v, %v, want %v, %v", tt.ev, dir, ok, tt.dir, tt.isOK)
		}
	}
}

func TestHeldWindow(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHeld(DefaultHoldWindow)

	h.Press(DirRight, start)
	if dx, dy := h.Vector(start.Add(100 * time.Millisecond)); dx != 1 || dy != 0 {
		t.Errorf("Vector() = (%v, %v), want (1, 0)", dx, dy)
	}
	if h.IsHeld(DirRight, start.Add(DefaultHoldWindow)) {
		t.Error("IsHeld() after the hold window = true, want false")
	}

	// Auto-repeat shortens the window so release is noticed quickly.
	h.Press(DirRight, start.Add(30*time.Millisecond))
	if h.IsHeld(DirRight, start.Add(200*time.Millisecond)) {
		t.Error("IsHeld() after repeat window = true, want false")
	}
}

func TestHeldOppositeCancels(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHeld(DefaultHoldWindow)

	h.Press(DirLeft, now)
	h.Press(DirRight, now)
	if dx, _ := h.Vector(now); dx != 1 {
		t.Errorf("Vector() dx = %v, want 1", dx)
	}

	h.Reset()
	if dx, dy := h.Vector(now); dx != 0 || dy != 0 {
		t.Errorf("Vector() after Reset = (%v, %v), want (0, 0)", dx, dy)
	}
}

func TestHeldDiagonalIsNormalized(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHeld(DefaultHoldWindow)
	h.Press(DirUp, now)
	h.Press(DirRight, now)

	dx, dy := h.Vector(now)
	if got := dx*dx + dy*dy; got < 0.999 || got > 1.001 {
		t.Errorf("|Vector()|^2 = %v, want 1", got)
	}
}
