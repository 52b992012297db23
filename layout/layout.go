// Package layout generates geometric keyboard layouts and hit-tests touch
// positions against them.
package layout

import "synther-core/scale"

// Layout generates an ordered key set from a configuration. GenerateKeys
// must be pure: identical inputs produce identical keys in identical order,
// so callers can regenerate freely and diff the result.
//
// Generation order doubles as z-order: keys generated later sit visually on
// top of earlier ones (piano black keys over white), and KeyAt honors that
// by scanning in reverse.
type Layout interface {
	Name() string
	GenerateKeys(octaves int, sc scale.Scale, size Size, startNote uint8, visibleWhiteKeys int) []KeyModel
}

// KeyAt returns the key under p, or nil. Later-generated keys win where
// bounds overlap.
func KeyAt(p Point, keys []KeyModel) *KeyModel {
	for i := len(keys) - 1; i >= 0; i-- {
		if keys[i].Bounds.Contains(p) {
			return &keys[i]
		}
	}
	return nil
}

// KeyPosition returns the center of the key holding note, if present.
func KeyPosition(note uint8, keys []KeyModel) (Point, bool) {
	for i := range keys {
		if keys[i].Note == note {
			return keys[i].Bounds.Center(), true
		}
	}
	return Point{}, false
}

// isBlackNote reports whether a MIDI note falls on one of the five
// accidental pitch classes of the 12-tone pattern.
func isBlackNote(note int) bool {
	switch note % 12 {
	case 1, 3, 6, 8, 10:
		return true
	}
	return false
}
