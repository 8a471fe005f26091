package dashboard

// ScrollState is a clamped scroll offset for the per-core CPU list. Offset
// is always within [0, Max]; scrolling past either bound is a no-op at the
// bound, never an error.
type ScrollState struct {
	Offset int
	Max    int
}

// Scroll moves the offset by delta, clamping at the bounds.
func (s *ScrollState) Scroll(delta int) {
	s.Offset += delta
	s.clamp()
}

// ToTop jumps to the first row.
func (s *ScrollState) ToTop() {
	s.Offset = 0
}

// ToBottom jumps to the last scroll position.
func (s *ScrollState) ToBottom() {
	s.Offset = s.Max
}

// SetMax updates the maximum offset, re-clamping the current offset. The
// maximum changes when the terminal is resized or the core count differs
// from the previous snapshot.
func (s *ScrollState) SetMax(max int) {
	if max < 0 {
		max = 0
	}
	s.Max = max
	s.clamp()
}

func (s *ScrollState) clamp() {
	if s.Offset < 0 {
		s.Offset = 0
	}
	if s.Offset > s.Max {
		s.Offset = s.Max
	}
}
