package layout

import (
	"math"

	"synther-core/scale"
)

// HexagonalLayout places keys in concentric rings around the center of the
// drawing area. The center cell plays the start note; ring r holds six
// cells at 60 degree steps playing startNote + 6r + i.
type HexagonalLayout struct{}

func (HexagonalLayout) Name() string { return "hexagonal" }

// GenerateKeys emits the center cell then each ring outward, cells within a
// ring clockwise from the top. Notes beyond the MIDI range are omitted.
func (HexagonalLayout) GenerateKeys(octaves int, sc scale.Scale, size Size, startNote uint8, visibleWhiteKeys int) []KeyModel {
	rings := octaves * 2
	span := math.Min(size.Width, size.Height)
	// Ring r sits at radius r*step; the outermost cell must stay on-canvas.
	step := span / (2*float64(rings) + 2)
	center := Point{X: size.Width / 2, Y: size.Height / 2}

	keys := make([]KeyModel, 0, 1+6*rings)

	cell := func(note int, at Point) {
		if note < 0 || note > 127 {
			return
		}
		keys = append(keys, KeyModel{
			Note:  uint8(note),
			Black: isBlackNote(note),
			Bounds: Rect{
				X:      at.X - step/2,
				Y:      at.Y - step/2,
				Width:  step,
				Height: step,
			},
			Label: sc.NoteLabel(uint8(note)),
		})
	}

	cell(int(startNote), center)

	for r := 1; r <= rings; r++ {
		for i := 0; i < 6; i++ {
			angle := math.Pi/3*float64(i) - math.Pi/2
			at := Point{
				X: center.X + float64(r)*step*math.Cos(angle),
				Y: center.Y + float64(r)*step*math.Sin(angle),
			}
			cell(int(startNote)+6*r+i, at)
		}
	}

	return keys
}
