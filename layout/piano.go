package layout

import "synther-core/scale"

// PianoLayout generates the conventional 12-note piano pattern: 7 white and
// 5 black keys per octave. The scale only affects labels; the physical key
// pattern is always 12-tone.
type PianoLayout struct{}

func (PianoLayout) Name() string { return "piano" }

// Semitone offsets of the white keys within one octave.
var whiteOffsets = [7]int{0, 2, 4, 5, 7, 9, 11}

// Black keys, each anchored to the white key it follows. The shift is the
// horizontal offset from that white key's left edge, in white-key widths:
// F# sits slightly further left than the other accidentals on a real piano.
var blackKeys = [5]struct {
	offset   int     // semitone offset within the octave
	whiteIdx int     // index into whiteOffsets of the anchor white key
	shift    float64 // rightward offset factor from the anchor's left edge
}{
	{1, 0, 0.65},  // C#
	{3, 1, 0.65},  // D#
	{6, 3, 0.60},  // F#
	{8, 4, 0.65},  // G#
	{10, 5, 0.65}, // A#
}

const (
	blackWidthRatio  = 0.6
	blackHeightRatio = 0.6
)

// GenerateKeys places white keys first, left to right, then black keys
// relative to the already-placed white bounds. Black keys therefore come
// later in the slice and take hit-test priority.
func (PianoLayout) GenerateKeys(octaves int, sc scale.Scale, size Size, startNote uint8, visibleWhiteKeys int) []KeyModel {
	whiteW := size.Width / float64(visibleWhiteKeys)
	whiteH := size.Height

	keys := make([]KeyModel, 0, octaves*12)
	whiteBounds := make([]Rect, octaves*7)

	for oct := 0; oct < octaves; oct++ {
		for i, off := range whiteOffsets {
			note := int(startNote) + oct*12 + off
			if note > 127 {
				continue
			}
			idx := oct*7 + i
			b := Rect{X: float64(idx) * whiteW, Y: 0, Width: whiteW, Height: whiteH}
			whiteBounds[idx] = b
			keys = append(keys, KeyModel{
				Note:   uint8(note),
				Bounds: b,
				Label:  sc.NoteLabel(uint8(note)),
			})
		}
	}

	for oct := 0; oct < octaves; oct++ {
		for _, bk := range blackKeys {
			note := int(startNote) + oct*12 + bk.offset
			if note > 127 {
				continue
			}
			anchor := whiteBounds[oct*7+bk.whiteIdx]
			keys = append(keys, KeyModel{
				Note:  uint8(note),
				Black: true,
				Bounds: Rect{
					X:      anchor.X + bk.shift*whiteW,
					Y:      0,
					Width:  whiteW * blackWidthRatio,
					Height: whiteH * blackHeightRatio,
				},
				Label: sc.NoteLabel(uint8(note)),
			})
		}
	}

	return keys
}
