package layout

// KeyModel describes one playable key: its MIDI note, geometry and current
// interaction state. Keys are generated in batch by a Layout, owned by the
// Engine, and replaced wholesale whenever the configuration changes - no
// caller may hold a *KeyModel across a regeneration.
type KeyModel struct {
	Note    uint8
	Black   bool
	Bounds  Rect
	Label   string
	Pressed bool
	Color   *[3]uint8 // optional visual override while pressed
}
