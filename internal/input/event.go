// Package input defines the discrete input events routed through the game
// and the translation from terminal events into them.
package input

// Kind identifies what produced an event.
type Kind int

const (
	// KindKey is a key press.
	KindKey Kind = iota
	// KindPointer is a primary pointer press.
	KindPointer
	// KindQuit asks the game to exit.
	KindQuit
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindPointer:
		return "pointer"
	case KindQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Key identifies a key of interest. Printable input arrives as KeyText with
// the characters in Event.Text.
type Key int

const (
	KeyOther Key = iota
	KeyText
	KeyEnter
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
	KeyF1
)

// Modifier is a bit set of held modifier keys.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt

	ModNone Modifier = 0
)

// Event is one discrete input event.
type Event struct {
	Kind Kind
	Key  Key
	Text string
	Mods Modifier
	X, Y int
}

// KeyPress builds a key event.
func KeyPress(k Key, mods Modifier) Event {
	return Event{Kind: KindKey, Key: k, Mods: mods}
}

// TextInput builds a printable-text key event.
func TextInput(text string) Event {
	return Event{Kind: KindKey, Key: KeyText, Text: text}
}

// PointerPress builds a pointer event at cell (x, y).
func PointerPress(x, y int) Event {
	return Event{Kind: KindPointer, X: x, Y: y}
}

// Quit builds a quit event.
func Quit() Event {
	return Event{Kind: KindQuit}
}

// IsSubmit reports whether the event is Shift+Enter.
func (e Event) IsSubmit() bool {
	return e.Kind == KindKey && e.Key == KeyEnter && e.Mods&ModShift != 0
}
