package editor

import (
	"reflect"
	"testing"

	"github.com/samdwyer/codekingdoms/internal/input"
)

func typeText(b *Buffer, s string) {
	for _, r := range s {
		b.HandleKey(input.TextInput(string(r)))
	}
}

func press(b *Buffer, k input.Key) Action {
	return b.HandleKey(input.KeyPress(k, input.ModNone))
}

func assertCursor(t *testing.T, b *Buffer, line, col int) {
	t.Helper()
	gotLine, gotCol := b.Cursor()
	if gotLine != line || gotCol != col {
		t.Errorf("Cursor() = (%d, %d), want (%d, %d)", gotLine, gotCol, line, col)
	}
}

func assertLines(t *testing.T, b *Buffer, want ...string) {
	t.Helper()
	if got := b.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
}

func TestInsertWithoutNewlines(t *testing.T) {
	inputs := []string{"", "s", "score=0", "ifage>=18:print('adult')", "héllo wörld"}

	for _, s := range inputs {
		b := New()
		typeText(b, s)

		assertLines(t, b, s)
		assertCursor(t, b, 0, len([]rune(s)))
	}
}

func TestInsertMultiCharacterText(t *testing.T) {
	b := New()
	typeText(b, "ab")
	press(b, input.KeyLeft)

	if got := b.HandleKey(input.TextInput("xyz")); got != ActionEdit {
		t.Errorf("HandleKey(text) = %v, want ActionEdit", got)
	}
	assertLines(t, b, "axyzb")
	assertCursor(t, b, 0, 4)
}

func TestInsertDropsControlCharacters(t *testing.T) {
	b := New()
	if got := b.HandleKey(input.TextInput("\x07")); got != ActionNone {
		t.Errorf("HandleKey(bell) = %v, want ActionNone", got)
	}
	assertLines(t, b, "")
}

func TestEnterSplitsLine(t *testing.T) {
	b := New()
	typeText(b, "score=0")
	for i := 0; i < 2; i++ {
		press(b, input.KeyLeft)
	}
	press(b, input.KeyEnter)

	assertLines(t, b, "score", "=0")
	assertCursor(t, b, 1, 0)
}

func TestSubmitDoesNotMutate(t *testing.T) {
	b := New()
	typeText(b, "score = 0")

	if got := b.HandleKey(input.KeyPress(input.KeyEnter, input.ModShift)); got != ActionSubmit {
		t.Fatalf("HandleKey(Shift+Enter) = %v, want ActionSubmit", got)
	}
	assertLines(t, b, "score = 0")
	assertCursor(t, b, 0, 9)
}

func TestBackspace(t *testing.T) {
	b := New()
	typeText(b, "ab")
	press(b, input.KeyEnter)
	typeText(b, "cd")

	press(b, input.KeyBackspace)
	assertLines(t, b, "ab", "c")
	assertCursor(t, b, 1, 1)

	press(b, input.KeyLeft)
	press(b, input.KeyBackspace)
	assertLines(t, b, "abc")
	assertCursor(t, b, 0, 2)
}

func TestBoundaryNoOps(t *testing.T) {
	b := New()
	typeText(b, "x")
	press(b, input.KeyLeft)

	press(b, input.KeyBackspace)
	assertLines(t, b, "x")
	assertCursor(t, b, 0, 0)

	press(b, input.KeyLeft)
	assertCursor(t, b, 0, 0)

	press(b, input.KeyUp)
	assertCursor(t, b, 0, 0)

	press(b, input.KeyDown)
	assertCursor(t, b, 0, 0)

	press(b, input.KeyRight)
	press(b, input.KeyRight)
	assertCursor(t, b, 0, 1)
}

func TestHorizontalWrap(t *testing.T) {
	b := New()
	typeText(b, "ab")
	press(b, input.KeyEnter)
	typeText(b, "c")

	press(b, input.KeyLeft)
	press(b, input.KeyLeft)
	assertCursor(t, b, 0, 2)

	press(b, input.KeyRight)
	assertCursor(t, b, 1, 0)
}

func TestVerticalClampsColumn(t *testing.T) {
	b := New()
	typeText(b, "long line")
	press(b, input.KeyEnter)
	typeText(b, "ab")
	press(b, input.KeyEnter)
	typeText(b, "another long one")

	press(b, input.KeyUp)
	assertCursor(t, b, 1, 2)

	press(b, input.KeyUp)
	assertCursor(t, b, 0, 2)

	press(b, input.KeyDown)
	press(b, input.KeyDown)
	assertCursor(t, b, 2, 2)
}

func TestIgnoredEvents(t *testing.T) {
	b := New()
	if got := b.HandleKey(input.PointerPress(1, 1)); got != ActionNone {
		t.Errorf("HandleKey(pointer) = %v, want ActionNone", got)
	}
	if got := press(b, input.KeyF1); got != ActionNone {
		t.Errorf("HandleKey(F1) = %v, want ActionNone", got)
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		typed  string
		answer string
		want   bool
	}{
		{"score = 0", "score=0", true},
		{"score=1", "score=0", false},
		{"score\t+= 10", "score+=10", true},
		{"", "score=0", false},
	}

	for _, tt := range tests {
		b := New()
		typeText(b, tt.typed)
		if got := b.Matches(tt.answer); got != tt.want {
			t.Errorf("Matches(%q) with %q = %v, want %v", tt.answer, tt.typed, got, tt.want)
		}
	}
}

func TestMatchesAcrossLines(t *testing.T) {
	b := New()
	typeText(b, "if age >= 18:")
	press(b, input.KeyEnter)
	typeText(b, "    print('adult')")

	if !b.Matches("ifage>=18:print('adult')") {
		t.Errorf("Matches() = false for %q", b.String())
	}
}

func TestBeforeCursor(t *testing.T) {
	b := New()
	typeText(b, "héllo")
	press(b, input.KeyLeft)
	press(b, input.KeyLeft)

	if got := b.BeforeCursor(); got != "hél" {
		t.Errorf("BeforeCursor() = %q, want %q", got, "hél")
	}
	if got := b.LineCount(); got != 1 {
		t.Errorf("LineCount() = %d, want 1", got)
	}
}
