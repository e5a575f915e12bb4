package game

// KingdomProgress records which kingdoms have been cleared.
type KingdomProgress map[string]bool

// NewKingdomProgress starts every named kingdom as not cleared.
func NewKingdomProgress(names []string) KingdomProgress {
	p := make(KingdomProgress, len(names))
	for _, n := range names {
		p[n] = false
	}
	return p
}

// Complete marks a kingdom as cleared.
func (p KingdomProgress) Complete(name string) {
	p[name] = true
}

// IsComplete reports whether a kingdom has been cleared.
func (p KingdomProgress) IsComplete(name string) bool {
	return p[name]
}

// AllComplete reports whether every tracked kingdom has been cleared.
func (p KingdomProgress) AllComplete() bool {
	for _, done := range p {
		if !done {
			return false
		}
	}
	return len(p) > 0
}

// Cleared returns how many kingdoms have been cleared.
func (p KingdomProgress) Cleared() int {
	n := 0
	for _, done := range p {
		if done {
			n++
		}
	}
	return n
}
