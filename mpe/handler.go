// Package mpe converts touch lifecycle and continuous position/pressure
// into per-note MIDI Polyphonic Expression events.
package mpe

import (
	"math"
	"sort"
	"time"

	"synther-core/debug"
	"synther-core/layout"
	"synther-core/midi"
)

// Touch is one active finger on the keyboard. The note is fixed at touch
// start for the life of the touch; sliding onto a neighboring key only
// moves the bounds the expression values are computed against.
type Touch struct {
	ID        int
	Channel   uint8
	Note      uint8
	Start     layout.Point
	Pos       layout.Point
	Pressure  float64 // [0,1]
	XBend     float64 // [-1,1], 0 at the key's horizontal center
	YTimbre   float64 // [0,1], 0 at the key's top edge
	StartedAt time.Time

	bounds layout.Rect // bounds of the key currently under the finger
}

// Keyboard is the slice of the layout engine the handler needs: hit
// testing for moves and pressed-state feedback. The handler never retains
// a *KeyModel across calls, so layout regenerations can't leave it with a
// stale pointer.
type Keyboard interface {
	KeyAt(p layout.Point) *layout.KeyModel
	SetKeyPressed(note uint8, pressed bool, color *[3]uint8)
}

// Handler owns the active-touch table and the MPE channel pool for one
// keyboard. It is synchronous and unlocked: all touch events for a
// keyboard must arrive from one input context, and a second keyboard gets
// its own handler, not shared state.
//
// Stray input is tolerated by design. Multi-touch delivery is unordered,
// so a move or end for an unknown touch id is dropped silently, and a
// duplicate start is a no-op; interrupting a live performance over one
// stray event is never worth it.
type Handler struct {
	keys    Keyboard
	emit    func(midi.Event)
	touches map[int]*Touch
	pool    *channelPool
}

// NewHandler creates a handler for one keyboard. emit receives every
// outbound event synchronously; nil means events are discarded.
func NewHandler(keys Keyboard, emit func(midi.Event)) *Handler {
	if emit == nil {
		emit = func(midi.Event) {}
	}
	return &Handler{
		keys:    keys,
		emit:    emit,
		touches: make(map[int]*Touch),
		pool:    newChannelPool(),
	}
}

// TouchStart begins a touch on a key: allocates a channel, records the
// touch and emits NoteOn with a velocity derived from the initial
// pressure. A duplicate id or nil key is a no-op.
func (h *Handler) TouchStart(id int, pos layout.Point, key *layout.KeyModel, pressure float64) {
	if key == nil {
		return
	}
	if _, ok := h.touches[id]; ok {
		return
	}

	ch := h.pool.allocate()
	pressure = clamp01(pressure)
	h.touches[id] = &Touch{
		ID:        id,
		Channel:   ch,
		Note:      key.Note,
		Start:     pos,
		Pos:       pos,
		Pressure:  pressure,
		StartedAt: time.Now(),
		bounds:    key.Bounds,
	}
	h.keys.SetKeyPressed(key.Note, true, nil)

	vel := velocity(pressure)
	h.emit(midi.Event{Type: midi.NoteOn, Channel: ch, Note: key.Note, Velocity: vel})
	debug.Log("mpe", "touch %d start: note %d ch %d vel %d", id, key.Note, ch, vel)
}

// TouchMove updates position and pressure and emits PitchBend, Timbre and
// Pressure, in that order. Expression is computed against the key
// currently under the finger; when the finger is between keys the last
// resolved bounds stay in effect. Unknown ids are dropped.
func (h *Handler) TouchMove(id int, pos layout.Point, pressure float64) {
	t, ok := h.touches[id]
	if !ok {
		return
	}

	t.Pos = pos
	t.Pressure = clamp01(pressure)
	if k := h.keys.KeyAt(pos); k != nil {
		t.bounds = k.Bounds
	}
	t.XBend, t.YTimbre = expression(pos, t.bounds)

	h.emit(midi.Event{Type: midi.PitchBend, Channel: t.Channel, Note: t.Note, Value: t.XBend})
	h.emit(midi.Event{Type: midi.Timbre, Channel: t.Channel, Note: t.Note, Value: t.YTimbre})
	h.emit(midi.Event{Type: midi.Pressure, Channel: t.Channel, Note: t.Note, Value: t.Pressure})
	debug.LogEvery(64, "mpe", "touch %d move: bend %.2f timbre %.2f", id, t.XBend, t.YTimbre)
}

// TouchEnd removes the touch, releases its channel and emits NoteOff.
// Unknown ids are dropped, so a doubled end never releases twice.
func (h *Handler) TouchEnd(id int) {
	t, ok := h.touches[id]
	if !ok {
		return
	}
	delete(h.touches, id)
	h.pool.release(t.Channel)
	h.keys.SetKeyPressed(t.Note, false, nil)
	h.emit(midi.Event{Type: midi.NoteOff, Channel: t.Channel, Note: t.Note})
	debug.Log("mpe", "touch %d end: note %d ch %d", id, t.Note, t.Channel)
}

// TouchCancel ends the touch exactly like a lift. There is no separate
// recovery path, so no gesture termination can leave a stuck note.
func (h *Handler) TouchCancel(id int) {
	h.TouchEnd(id)
}

// ClearAllTouches force-ends every active touch. Call before a layout
// regeneration or on full reset; afterwards no channel remains allocated.
func (h *Handler) ClearAllTouches() {
	for id := range h.touches {
		h.TouchEnd(id)
	}
}

// ActiveTouches returns the number of currently active touches.
func (h *Handler) ActiveTouches() int { return len(h.touches) }

// Touches returns a snapshot of the active touches, ordered by id.
func (h *Handler) Touches() []Touch {
	out := make([]Touch, 0, len(h.touches))
	for _, t := range h.touches {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// expression derives xBend and yTimbre from a position within key bounds.
// Degenerate bounds yield neutral values instead of dividing by zero.
func expression(p layout.Point, b layout.Rect) (xBend, yTimbre float64) {
	if b.Width <= 0 || b.Height <= 0 {
		return 0, 0
	}
	xBend = clamp((p.X-b.X)/b.Width-0.5, -0.5, 0.5) * 2
	yTimbre = clamp((p.Y-b.Y)/b.Height, 0, 1)
	return xBend, yTimbre
}

// velocity maps pressure onto MIDI velocity, keeping the floor at 1: a
// zero-velocity NoteOn means NoteOff on the wire.
func velocity(pressure float64) uint8 {
	v := int(math.Round(pressure * 127))
	if v < 1 {
		v = 1
	}
	if v > 127 {
		v = 127
	}
	return uint8(v)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 { return clamp(v, 0, 1) }
