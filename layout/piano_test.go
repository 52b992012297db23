package layout

import (
	"reflect"
	"testing"

	"synther-core/scale"
)

var testSize = Size{Width: 700, Height: 200}

func TestPianoOneOctaveNotes(t *testing.T) {
	keys := PianoLayout{}.GenerateKeys(1, scale.TwelveTET(), testSize, 60, 7)

	whites := map[uint8]bool{}
	blacks := map[uint8]bool{}
	for _, k := range keys {
		if k.Black {
			blacks[k.Note] = true
		} else {
			whites[k.Note] = true
		}
	}

	wantWhites := []uint8{60, 62, 64, 65, 67, 69, 71}
	wantBlacks := []uint8{61, 63, 66, 68, 70}
	if len(whites) != len(wantWhites) {
		t.Fatalf("got %d white keys, want %d", len(whites), len(wantWhites))
	}
	for _, n := range wantWhites {
		if !whites[n] {
			t.Errorf("missing white key %d", n)
		}
	}
	if len(blacks) != len(wantBlacks) {
		t.Fatalf("got %d black keys, want %d", len(blacks), len(wantBlacks))
	}
	for _, n := range wantBlacks {
		if !blacks[n] {
			t.Errorf("missing black key %d", n)
		}
	}
}

func TestPianoDeterministic(t *testing.T) {
	p := PianoLayout{}
	a := p.GenerateKeys(3, scale.TwelveTET(), testSize, 48, 21)
	b := p.GenerateKeys(3, scale.TwelveTET(), testSize, 48, 21)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs produced different key sets")
	}
}

func TestPianoGeometry(t *testing.T) {
	keys := PianoLayout{}.GenerateKeys(1, scale.TwelveTET(), testSize, 60, 7)

	whiteW := testSize.Width / 7
	wi := 0
	for _, k := range keys {
		if k.Black {
			if k.Bounds.Width != whiteW*0.6 {
				t.Errorf("black key %d width = %v, want %v", k.Note, k.Bounds.Width, whiteW*0.6)
			}
			if k.Bounds.Height != testSize.Height*0.6 {
				t.Errorf("black key %d height = %v, want %v", k.Note, k.Bounds.Height, testSize.Height*0.6)
			}
			continue
		}
		wantX := float64(wi) * whiteW
		if k.Bounds.X != wantX {
			t.Errorf("white key %d at x=%v, want %v", k.Note, k.Bounds.X, wantX)
		}
		if k.Bounds.Width != whiteW || k.Bounds.Height != testSize.Height {
			t.Errorf("white key %d bounds = %+v", k.Note, k.Bounds)
		}
		wi++
	}

	// Whites come first, so every note stays within the octave span.
	for _, k := range keys {
		if k.Note < 60 || k.Note >= 72 {
			t.Errorf("note %d outside [60,72)", k.Note)
		}
	}
}

func TestPianoBlackKeyWinsOverlap(t *testing.T) {
	keys := PianoLayout{}.GenerateKeys(1, scale.TwelveTET(), testSize, 60, 7)

	var cSharp *KeyModel
	for i := range keys {
		if keys[i].Note == 61 {
			cSharp = &keys[i]
		}
	}
	if cSharp == nil {
		t.Fatal("no C# key generated")
	}

	// The center of C# also lies inside the bounds of a white key.
	p := cSharp.Bounds.Center()
	under := 0
	for _, k := range keys {
		if k.Bounds.Contains(p) {
			under++
		}
	}
	if under < 2 {
		t.Fatalf("expected overlapping keys at %+v, found %d", p, under)
	}

	hit := KeyAt(p, keys)
	if hit == nil || hit.Note != 61 {
		t.Fatalf("KeyAt(%+v) = %+v, want black key 61", p, hit)
	}
}

func TestPianoMultiOctaveCounts(t *testing.T) {
	keys := PianoLayout{}.GenerateKeys(3, scale.TwelveTET(), testSize, 36, 21)
	whites, blacks := 0, 0
	for _, k := range keys {
		if k.Black {
			blacks++
		} else {
			whites++
		}
	}
	if whites != 21 || blacks != 15 {
		t.Errorf("3 octaves: %d whites %d blacks, want 21 and 15", whites, blacks)
	}
}

func TestKeyPosition(t *testing.T) {
	keys := PianoLayout{}.GenerateKeys(1, scale.TwelveTET(), testSize, 60, 7)

	p, ok := KeyPosition(60, keys)
	if !ok {
		t.Fatal("KeyPosition(60) not found")
	}
	whiteW := testSize.Width / 7
	if p.X != whiteW/2 || p.Y != testSize.Height/2 {
		t.Errorf("KeyPosition(60) = %+v, want center of first white key", p)
	}

	if _, ok := KeyPosition(90, keys); ok {
		t.Error("KeyPosition(90) found a key outside the generated set")
	}
}

func TestKeyAtMiss(t *testing.T) {
	keys := PianoLayout{}.GenerateKeys(1, scale.TwelveTET(), testSize, 60, 7)
	if k := KeyAt(Point{X: -5, Y: 10}, keys); k != nil {
		t.Errorf("KeyAt outside the keyboard = %+v, want nil", k)
	}
}
