package quest

// Sequencer tracks progress through a curriculum during one visit to a
// kingdom. The index never decreases.
type Sequencer struct {
	curriculum Curriculum
	index      int
}

// NewSequencer starts at the first challenge of the curriculum.
func NewSequencer(c Curriculum) *Sequencer {
	return &Sequencer{curriculum: c}
}

// Current returns the active challenge, or false once every challenge is done.
func (s *Sequencer) Current() (Challenge, bool) {
	return s.curriculum.At(s.index)
}

// Advance moves to the next challenge.
func (s *Sequencer) Advance() {
	if s.AllComplete() {
		return
	}
	s.index++
}

// AllComplete reports whether every challenge has been cleared.
func (s *Sequencer) AllComplete() bool {
	return s.index >= s.curriculum.Len()
}

// Index returns the number of challenges cleared so far.
func (s *Sequencer) Index() int {
	return s.index
}

// Len returns the size of the underlying curriculum.
func (s *Sequencer) Len() int {
	return s.curriculum.Len()
}
