package mpe

import "testing"

func TestPoolRotation(t *testing.T) {
	p := newChannelPool()
	for want := FirstNoteChannel; want <= LastNoteChannel; want++ {
		if got := p.allocate(); got != want {
			t.Fatalf("allocation %d = channel %d, want %d", want-FirstNoteChannel, got, want)
		}
	}
}

func TestPoolWrapsAndSkipsBound(t *testing.T) {
	p := newChannelPool()
	for i := 0; i < NoteChannels; i++ {
		p.allocate()
	}
	p.release(5)
	p.release(9)

	// The cursor sits at 16; the next free channel going forward is 5.
	if got := p.allocate(); got != 5 {
		t.Errorf("allocate after wrap = %d, want 5", got)
	}
	if got := p.allocate(); got != 9 {
		t.Errorf("next allocate = %d, want 9", got)
	}
}

func TestPoolExhaustionFallsBack(t *testing.T) {
	p := newChannelPool()
	for i := 0; i < NoteChannels; i++ {
		p.allocate()
	}
	if got := p.allocate(); got != FirstNoteChannel {
		t.Errorf("exhausted pool allocated %d, want fallback %d", got, FirstNoteChannel)
	}
	// The fallback is a collision, not a new booking.
	if got := p.allocated(); got != NoteChannels {
		t.Errorf("allocated = %d, want %d", got, NoteChannels)
	}
}

func TestPoolReleaseIgnoresOutOfZone(t *testing.T) {
	p := newChannelPool()
	p.release(MasterChannel) // never allocated, never tracked
	p.release(0)
	if got := p.allocate(); got != FirstNoteChannel {
		t.Errorf("first allocate = %d, want %d", got, FirstNoteChannel)
	}
}
