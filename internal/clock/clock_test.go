package clock

import (
	"testing"
	"time"
)

func TestMockAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMock(start)

	m.Advance(250 * time.Millisecond)
	if got := m.Now().Sub(start); got != 250*time.Millisecond {
		t.Errorf("Now() after Advance = +%v, want +250ms", got)
	}

	m.Set(start)
	if !m.Now().Equal(start) {
		t.Errorf("Now() after Set = %v, want %v", m.Now(), start)
	}
}
