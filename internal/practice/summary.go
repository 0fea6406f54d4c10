package practice

// Summary holds the data shown when a session ends.
type Summary struct {
	Mode       Mode
	Kind       SelectionKind
	PoolSize   int
	Practiced  int
	PeakStreak int
	Progress   float64
}

// Summary snapshots the session for the end screen. Call before End, which
// resets the fields it reads.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var progress float64
	if len(s.pool) > 0 {
		progress = float64(len(s.practiced)) / float64(len(s.pool))
	}

	return Summary{
		Mode:       s.mode,
		Kind:       s.kind,
		PoolSize:   len(s.pool),
		Practiced:  len(s.practiced),
		PeakStreak: s.peakStreak,
		Progress:   progress,
	}
}
