package scale

import "fmt"

// Scale is an immutable microtonal scale: a name, an ordered list of
// frequency ratios within one period, and the ratio of the period itself
// (2.0 for octave-repeating scales). Construct with New or NewWithPeriod;
// the ratio slice is copied in and never handed back mutably.
type Scale struct {
	name   string
	ratios []float64
	period float64
}

// New builds an octave-repeating scale from ascending frequency ratios.
// The first ratio is conventionally 1.0 (the root).
func New(name string, ratios []float64) Scale {
	return NewWithPeriod(name, ratios, 2.0)
}

// NewWithPeriod builds a scale whose repetition interval is not the octave
// (e.g. the Bohlen-Pierce tritave).
func NewWithPeriod(name string, ratios []float64, period float64) Scale {
	r := make([]float64, len(ratios))
	copy(r, ratios)
	return Scale{name: name, ratios: r, period: period}
}

func (s Scale) Name() string { return s.name }

// NotesPerOctave is the number of scale degrees within one period.
func (s Scale) NotesPerOctave() int { return len(s.ratios) }

// Ratio returns the frequency ratio of a degree within [0, NotesPerOctave).
// Degrees outside the range wrap, with the period folded in by Frequency.
func (s Scale) Ratio(degree int) float64 {
	n := len(s.ratios)
	if n == 0 {
		return 1.0
	}
	d := degree % n
	if d < 0 {
		d += n
	}
	return s.ratios[d]
}

// Frequency returns the pitch of a scale degree relative to a root
// frequency. Degree n is one period above degree 0.
func (s Scale) Frequency(root float64, degree int) float64 {
	n := len(s.ratios)
	if n == 0 {
		return root
	}
	oct := degree / n
	d := degree % n
	if d < 0 {
		d += n
		oct--
	}
	f := root * s.ratios[d]
	for i := 0; i < oct; i++ {
		f *= s.period
	}
	for i := 0; i > oct; i-- {
		f /= s.period
	}
	return f
}

// Equal reports whether two scales are the same scale. Scales are values,
// so name, degree count and every ratio must match.
func (s Scale) Equal(o Scale) bool {
	if s.name != o.name || s.period != o.period || len(s.ratios) != len(o.ratios) {
		return false
	}
	for i := range s.ratios {
		if s.ratios[i] != o.ratios[i] {
			return false
		}
	}
	return true
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteLabel renders a key label for a MIDI note. Twelve-degree scales get
// conventional note names (C4 = MIDI 60); other scales are labeled by
// degree and period number since letter names don't apply.
func (s Scale) NoteLabel(note uint8) string {
	if len(s.ratios) == 12 || len(s.ratios) == 0 {
		return fmt.Sprintf("%s%d", noteNames[note%12], int(note)/12-1)
	}
	n := len(s.ratios)
	return fmt.Sprintf("%d°%d", int(note)%n+1, int(note)/n)
}
