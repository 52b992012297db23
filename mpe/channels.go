package mpe

import "synther-core/debug"

// MPE lower zone layout: channel 1 is the zone master and never carries a
// note; channels 2-16 are handed out one per touch.
const (
	MasterChannel    uint8 = 1
	FirstNoteChannel uint8 = 2
	LastNoteChannel  uint8 = 16
	NoteChannels           = int(LastNoteChannel-FirstNoteChannel) + 1
)

// channelPool hands out note channels with a rotating cursor, so a freshly
// released channel rests before being reused and its note-off tail isn't
// cut by the next note.
type channelPool struct {
	cursor uint8
	inUse  [LastNoteChannel + 1]bool
}

// newChannelPool starts the cursor so the first allocation lands on the
// first note channel.
func newChannelPool() *channelPool {
	return &channelPool{cursor: LastNoteChannel}
}

// allocate returns the next free note channel. When every channel is bound
// to an active touch it falls back to the first note channel anyway: a
// doubled channel is less disruptive mid-performance than a dead key.
func (p *channelPool) allocate() uint8 {
	for i := 0; i < NoteChannels; i++ {
		p.cursor++
		if p.cursor > LastNoteChannel {
			p.cursor = FirstNoteChannel
		}
		if !p.inUse[p.cursor] {
			p.inUse[p.cursor] = true
			return p.cursor
		}
	}
	debug.Log("mpe", "channel pool exhausted, reusing channel %d", FirstNoteChannel)
	return FirstNoteChannel
}

func (p *channelPool) release(ch uint8) {
	if ch >= FirstNoteChannel && ch <= LastNoteChannel {
		p.inUse[ch] = false
	}
}

func (p *channelPool) allocated() int {
	n := 0
	for ch := FirstNoteChannel; ch <= LastNoteChannel; ch++ {
		if p.inUse[ch] {
			n++
		}
	}
	return n
}
