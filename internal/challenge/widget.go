// Package challenge provides the code editor widget shown during a boss
// encounter.
package challenge

import (
	"time"

	"github.com/samdwyer/codekingdoms/internal/editor"
	"github.com/samdwyer/codekingdoms/internal/input"
	"github.com/samdwyer/codekingdoms/internal/quest"
)

const (
	// ErrorFlashDuration is how long the border stays red after a wrong answer.
	ErrorFlashDuration = 500 * time.Millisecond
	// CursorBlinkInterval is the cursor blink half-period.
	CursorBlinkInterval = 500 * time.Millisecond
)

// Verdict is the outcome of one event.
type Verdict int

const (
	// VerdictNone means no answer was submitted.
	VerdictNone Verdict = iota
	// VerdictCorrect means the submitted code matched the answer.
	VerdictCorrect
	// VerdictWrong means the submitted code did not match.
	VerdictWrong
)

// String returns a human-readable verdict name.
func (v Verdict) String() string {
	switch v {
	case VerdictNone:
		return "none"
	case VerdictCorrect:
		return "correct"
	case VerdictWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// Widget couples a challenge with an editor buffer. The error flash and
// cursor blink are visual only.
type Widget struct {
	challenge quest.Challenge
	buffer    *editor.Buffer

	showError bool
	errorAt   time.Time

	cursorVisible bool
	blinkAt       time.Time
}

// New creates a widget with an empty buffer.
func New(c quest.Challenge, now time.Time) *Widget {
	return &Widget{
		challenge:     c,
		buffer:        editor.New(),
		cursorVisible: true,
		blinkAt:       now,
	}
}

// HandleEvent routes a key event to the editor and judges submissions.
func (w *Widget) HandleEvent(ev input.Event, now time.Time) Verdict {
	switch w.buffer.HandleKey(ev) {
	case editor.ActionSubmit:
		if w.buffer.Matches(w.challenge.CorrectAnswer) {
			return VerdictCorrect
		}
		w.showError = true
		w.errorAt = now
		return VerdictWrong
	case editor.ActionEdit:
		// Keep the cursor solid while typing.
		w.cursorVisible = true
		w.blinkAt = now
	}
	return VerdictNone
}

// Update advances the cosmetic timers.
func (w *Widget) Update(now time.Time) {
	if w.showError && now.Sub(w.errorAt) >= ErrorFlashDuration {
		w.showError = false
	}
	if now.Sub(w.blinkAt) >= CursorBlinkInterval {
		w.cursorVisible = !w.cursorVisible
		w.blinkAt = now
	}
}

// Challenge returns the challenge being attempted.
func (w *Widget) Challenge() quest.Challenge {
	return w.challenge
}

// Buffer exposes the editor contents for rendering.
func (w *Widget) Buffer() *editor.Buffer {
	return w.buffer
}

// ShowError reports whether the error flash is active.
func (w *Widget) ShowError() bool {
	return w.showError
}

// CursorVisible reports the blink phase of the cursor.
func (w *Widget) CursorVisible() bool {
	return w.cursorVisible
}
