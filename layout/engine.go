package layout

import (
	"fmt"

	"synther-core/scale"
)

// Config is the full layout configuration tuple. Engines regenerate their
// key set whenever any field changes.
type Config struct {
	Layout           Layout
	Scale            scale.Scale
	Octaves          int
	Size             Size
	StartNote        uint8
	VisibleWhiteKeys int
}

func (c Config) validate() error {
	if c.Layout == nil {
		return fmt.Errorf("layout config: no layout strategy")
	}
	if c.Octaves < 1 {
		return fmt.Errorf("layout config: octaves must be at least 1, got %d", c.Octaves)
	}
	if c.VisibleWhiteKeys < 1 {
		return fmt.Errorf("layout config: visible white keys must be at least 1, got %d", c.VisibleWhiteKeys)
	}
	return nil
}

func (c Config) equal(o Config) bool {
	return c.Layout == o.Layout &&
		c.Scale.Equal(o.Scale) &&
		c.Octaves == o.Octaves &&
		c.Size == o.Size &&
		c.StartNote == o.StartNote &&
		c.VisibleWhiteKeys == o.VisibleWhiteKeys
}

// Engine owns the current layout configuration and the generated key set.
// All KeyModel instances belong to the engine: a reconfiguration discards
// and rebuilds the whole set, invalidating prior *KeyModel pointers.
//
// Reconfiguring does not release active touches. A caller holding an MPE
// handler must call its ClearAllTouches before UpdateDimensions, or notes
// started on the old key set can stick.
type Engine struct {
	cfg  Config
	keys []KeyModel
}

// NewEngine validates the configuration and generates the initial key set.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg}
	e.regenerate()
	return e, nil
}

func (e *Engine) regenerate() {
	c := e.cfg
	e.keys = c.Layout.GenerateKeys(c.Octaves, c.Scale, c.Size, c.StartNote, c.VisibleWhiteKeys)
}

// UpdateDimensions applies a new configuration, regenerating the key set
// only if at least one field actually changed. It reports whether a
// regeneration happened, so resize callbacks that fire with unchanged
// values cost nothing.
func (e *Engine) UpdateDimensions(cfg Config) (bool, error) {
	if err := cfg.validate(); err != nil {
		return false, err
	}
	if e.cfg.equal(cfg) {
		return false, nil
	}
	e.cfg = cfg
	e.regenerate()
	return true, nil
}

// Config returns the current configuration tuple.
func (e *Engine) Config() Config { return e.cfg }

// Keys exposes the generated key set for rendering. The slice is valid
// only until the next regeneration.
func (e *Engine) Keys() []KeyModel { return e.keys }

// KeyAt returns the key under p, with later-generated (visually topmost)
// keys winning overlaps, or nil.
func (e *Engine) KeyAt(p Point) *KeyModel { return KeyAt(p, e.keys) }

// KeyPosition returns the center of the key holding note, if present.
func (e *Engine) KeyPosition(note uint8) (Point, bool) { return KeyPosition(note, e.keys) }

// SetKeyPressed updates a key's pressed state and optional color override.
// Unknown notes are a no-op: the touch handler may legitimately release a
// note whose key vanished in a regeneration.
func (e *Engine) SetKeyPressed(note uint8, pressed bool, color *[3]uint8) {
	for i := range e.keys {
		if e.keys[i].Note == note {
			e.keys[i].Pressed = pressed
			if pressed {
				e.keys[i].Color = color
			} else {
				e.keys[i].Color = nil
			}
			return
		}
	}
}

// ClearKeyPresses releases every key's pressed state and color override.
func (e *Engine) ClearKeyPresses() {
	for i := range e.keys {
		e.keys[i].Pressed = false
		e.keys[i].Color = nil
	}
}
