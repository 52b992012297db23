// Package midi defines the outbound event boundary of the expression
// engine and its connection to real MIDI output ports.
package midi

import (
	"fmt"
	"math"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// EventType enumerates the events the touch engine emits.
type EventType uint8

const (
	NoteOn EventType = iota
	NoteOff
	PitchBend
	Timbre
	Pressure
)

func (t EventType) String() string {
	switch t {
	case NoteOn:
		return "NoteOn"
	case NoteOff:
		return "NoteOff"
	case PitchBend:
		return "PitchBend"
	case Timbre:
		return "Timbre"
	case Pressure:
		return "Pressure"
	}
	return "Unknown"
}

// Timbre rides CC74 per the MPE convention.
const TimbreCC uint8 = 74

// Event is one outbound expression event. Channel is 1-based (1-16), the
// MPE convention: channel 1 is the zone master, 2-16 carry notes. Value
// holds the continuous payload: [-1,1] for PitchBend, [0,1] for Timbre
// and Pressure.
type Event struct {
	Type     EventType
	Channel  uint8
	Note     uint8
	Velocity uint8
	Value    float64
}

func (e Event) String() string {
	switch e.Type {
	case NoteOn:
		return fmt.Sprintf("NoteOn ch=%d note=%d vel=%d", e.Channel, e.Note, e.Velocity)
	case NoteOff:
		return fmt.Sprintf("NoteOff ch=%d note=%d", e.Channel, e.Note)
	default:
		return fmt.Sprintf("%s ch=%d value=%.3f", e.Type, e.Channel, e.Value)
	}
}

// Message converts the event to a wire-ready gomidi message. Channels move
// to gomidi's 0-based numbering; PitchBend scales to the signed 14-bit
// range, Timbre to CC74 and Pressure to channel aftertouch.
func (e Event) Message() gomidi.Message {
	if e.Channel < 1 || e.Channel > 16 {
		return nil
	}
	ch := e.Channel - 1
	switch e.Type {
	case NoteOn:
		return gomidi.NoteOn(ch, e.Note, e.Velocity)
	case NoteOff:
		return gomidi.NoteOff(ch, e.Note)
	case PitchBend:
		return gomidi.Pitchbend(ch, bend14(e.Value))
	case Timbre:
		return gomidi.ControlChange(ch, TimbreCC, scale7(e.Value))
	case Pressure:
		return gomidi.AfterTouch(ch, scale7(e.Value))
	}
	return nil
}

// bend14 maps [-1,1] onto the signed 14-bit pitch bend range. +1 lands on
// 8191 rather than 8192 because the positive half of the range is one step
// short.
func bend14(v float64) int16 {
	if v < -1 {
		v = -1
	} else if v > 1 {
		v = 1
	}
	b := int(math.Round(v * 8192))
	if b > 8191 {
		b = 8191
	}
	return int16(b)
}

// scale7 maps [0,1] onto a 7-bit controller value.
func scale7(v float64) uint8 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return uint8(math.Round(v * 127))
}
