package lineedit

// Completions collects the candidate strings produced by a
// CompletionCallback for one completion round.
type Completions struct {
	candidates []string
}

// Add appends a candidate to the set offered to the user.
func (c *Completions) Add(candidate string) {
	c.candidates = append(c.candidates, candidate)
}

// Len returns the number of candidates added so far.
func (c *Completions) Len() int {
	return len(c.candidates)
}

// CompletionCallback produces candidates for the current line content. It
// is invoked on every completion trigger and must not retain line.
type CompletionCallback func(line string, lc *Completions)

// SetCompletionCallback registers fn to be called when the user presses
// Tab. A nil callback disables completion.
func (s *Session) SetCompletionCallback(fn CompletionCallback) {
	s.completionCallback = fn
}

// refreshCompletion repaints the line showing the currently proposed
// candidate in place of the buffer, or the live buffer when the cycle has
// wrapped past the last candidate.
func (s *Session) refreshCompletion(lc *Completions, flags refreshFlags) Status {
	if s.completionIdx < lc.Len() {
		candidate := lc.candidates[s.completionIdx]
		return s.refreshWithFlags(display{text: []byte(candidate), pos: len(candidate)}, flags)
	}
	return s.refreshWithFlags(s.liveDisplay(), flags)
}

// completeLine handles a keystroke during a completion round (or the Tab
// that starts one). The returned byte is zero if the keystroke was fully
// consumed; otherwise the caller must process it as freshly read input.
//
// Tab cycles forward through the candidates, wrapping to "no selection"
// (the original buffer) with a beep after the last one. Escape discards
// the preview. Any other key commits the shown candidate into the buffer
// with the cursor at its end, then ends the round.
func (s *Session) completeLine(key byte) byte {
	var lc Completions
	if s.buf.length() > 0 {
		s.completionCallback(s.buf.String(), &lc)
	}

	c := key
	if lc.Len() == 0 {
		s.beep()
		s.inCompletion = false
		return c
	}

	switch c {
	case keyTab:
		if !s.inCompletion {
			s.inCompletion = true
			s.completionIdx = 0
		} else {
			s.completionIdx = (s.completionIdx + 1) % (lc.Len() + 1)
			if s.completionIdx == lc.Len() {
				s.beep()
			}
		}
		c = 0
	case keyEscape:
		// Re-show the original buffer
		if s.completionIdx < lc.Len() {
			s.refreshLine()
		}
		s.inCompletion = false
		c = 0
	default:
		if s.completionIdx < lc.Len() {
			candidate := lc.candidates[s.completionIdx]
			s.buf.set(candidate)
			s.pos = s.buf.length()
		}
		s.inCompletion = false
	}

	if s.inCompletion {
		s.refreshCompletion(&lc, refreshAll)
	} else {
		s.refreshLine()
	}
	return c
}
