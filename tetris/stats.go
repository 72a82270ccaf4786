package tetris

import "github.com/kamstrup/intmap"

// Stats counts what happened since the last Reset.
type Stats struct {
	Steps  int64
	Spawns int64
	Locks  int64
	Lines  int64

	// clears maps rows-removed-by-one-lock to how often that happened
	clears *intmap.Map[int, int64]
}

func newStats() Stats {
	return Stats{clears: intmap.New[int, int64](4)}
}

func (s *Stats) recordLock(lines int) {
	s.Locks++
	s.Lines += int64(lines)
	if lines == 0 {
		return
	}
	n, _ := s.clears.Get(lines)
	s.clears.Put(lines, n+1)
}

// Clears returns how many locks removed exactly n rows at once.
func (s Stats) Clears(n int) int64 {
	if s.clears == nil {
		return 0
	}
	count, _ := s.clears.Get(n)
	return count
}

// ClearSizes returns the number of distinct multi-row clear sizes seen.
func (s Stats) ClearSizes() int {
	if s.clears == nil {
		return 0
	}
	return s.clears.Len()
}

// Merge adds other's counters into s.
func (s *Stats) Merge(other Stats) {
	if s.clears == nil {
		s.clears = intmap.New[int, int64](4)
	}
	s.Steps += other.Steps
	s.Spawns += other.Spawns
	s.Locks += other.Locks
	s.Lines += other.Lines
	for n := 1; n <= MaxClearSize; n++ {
		if c := other.Clears(n); c > 0 {
			prev, _ := s.clears.Get(n)
			s.clears.Put(n, prev+c)
		}
	}
}

// MaxClearSize is the tallest shape in the catalog: no lock can complete more
// rows than that.
const MaxClearSize = 4

func (s Stats) clone() Stats {
	out := s
	out.clears = intmap.New[int, int64](4)
	for n := 1; n <= MaxClearSize; n++ {
		if c := s.Clears(n); c > 0 {
			out.clears.Put(n, c)
		}
	}
	return out
}
