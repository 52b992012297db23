package layout

import "synther-core/scale"

// IsomorphicLayout arranges keys on a grid where every interval has the
// same shape everywhere: moving one column right adds HorizontalInterval
// semitones, one row up adds VerticalInterval. Zero values take the
// Wicki-Hayden-style defaults of a whole tone across and a fourth up.
type IsomorphicLayout struct {
	HorizontalInterval int
	VerticalInterval   int
}

func (IsomorphicLayout) Name() string { return "isomorphic" }

func (l IsomorphicLayout) intervals() (h, v int) {
	h, v = l.HorizontalInterval, l.VerticalInterval
	if h == 0 {
		h = 2
	}
	if v == 0 {
		v = 5
	}
	return h, v
}

// GenerateKeys fills visibleWhiteKeys columns by 2*octaves rows, bottom row
// lowest. Cells whose note lands outside the MIDI range, or whose note
// already appeared in the grid, are omitted so every note in the key set
// stays unique.
func (l IsomorphicLayout) GenerateKeys(octaves int, sc scale.Scale, size Size, startNote uint8, visibleWhiteKeys int) []KeyModel {
	h, v := l.intervals()
	cols := visibleWhiteKeys
	rows := octaves * 2
	cellW := size.Width / float64(cols)
	cellH := size.Height / float64(rows)

	keys := make([]KeyModel, 0, rows*cols)
	seen := make(map[int]bool, rows*cols)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			note := int(startNote) + col*h + row*v
			if note < 0 || note > 127 || seen[note] {
				continue
			}
			seen[note] = true
			keys = append(keys, KeyModel{
				Note:  uint8(note),
				Black: isBlackNote(note),
				Bounds: Rect{
					X:      float64(col) * cellW,
					Y:      size.Height - float64(row+1)*cellH,
					Width:  cellW,
					Height: cellH,
				},
				Label: sc.NoteLabel(uint8(note)),
			})
		}
	}

	return keys
}
