package scale

import "math"

// Built-in scales, mirroring the scale menu of the synth shell.

func equalTemperament(name string, steps int) Scale {
	ratios := make([]float64, steps)
	for i := range ratios {
		ratios[i] = math.Pow(2, float64(i)/float64(steps))
	}
	return New(name, ratios)
}

func TwelveTET() Scale     { return equalTemperament("12-TET", 12) }
func NineteenTET() Scale   { return equalTemperament("19-TET", 19) }
func TwentyFourTET() Scale { return equalTemperament("24-TET", 24) }
func ThirtyOneTET() Scale  { return equalTemperament("31-TET", 31) }

// JustIntonation is the 5-limit just chromatic scale.
func JustIntonation() Scale {
	return New("Just Intonation", []float64{
		1, 16.0 / 15, 9.0 / 8, 6.0 / 5, 5.0 / 4, 4.0 / 3,
		45.0 / 32, 3.0 / 2, 8.0 / 5, 5.0 / 3, 9.0 / 5, 15.0 / 8,
	})
}

// PentatonicMajor is the just major pentatonic.
func PentatonicMajor() Scale {
	return New("Pentatonic Major", []float64{1, 9.0 / 8, 5.0 / 4, 3.0 / 2, 5.0 / 3})
}

// BohlenPierce is the 13-step equal division of the tritave (3:1).
func BohlenPierce() Scale {
	ratios := make([]float64, 13)
	for i := range ratios {
		ratios[i] = math.Pow(3, float64(i)/13)
	}
	return NewWithPeriod("Bohlen-Pierce", ratios, 3.0)
}

var catalog = []func() Scale{
	TwelveTET,
	NineteenTET,
	TwentyFourTET,
	ThirtyOneTET,
	JustIntonation,
	PentatonicMajor,
	BohlenPierce,
}

// Names lists the built-in scales in menu order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, f := range catalog {
		names[i] = f().Name()
	}
	return names
}

// ByName looks up a built-in scale. Unknown names fall back to 12-TET so a
// stale config entry can never leave the keyboard without a scale.
func ByName(name string) Scale {
	for _, f := range catalog {
		if s := f(); s.Name() == name {
			return s
		}
	}
	return TwelveTET()
}
