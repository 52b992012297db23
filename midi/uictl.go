package midi

// Remote UI control protocol. The application shell reserves MIDI channel
// 16 for panel commands, separate from the per-note MPE channels: CC32
// selects the target panel index, CC109 cycles to the next panel, and
// CC102-108 plus CC110 carry commands (visibility, collapse, position,
// size) forwarded to the shell for the selected panel. Every other CC on
// channel 16 is consumed without effect so it can never reach the synth.
const (
	UIControlChannel uint8 = 16

	ccPanelSelect uint8 = 32
	ccPanelCycle  uint8 = 109
	ccPanelFirst  uint8 = 102
	ccPanelLast   uint8 = 108
	ccPanelExtra  uint8 = 110

	maxPanels = 128
)

// PanelFunc receives forwarded panel commands.
type PanelFunc func(panel int, cc, value uint8)

// UIControl dispatches channel-16 control changes to a panel callback.
type UIControl struct {
	target int
	fn     PanelFunc
}

// NewUIControl creates a dispatcher targeting panel 0.
func NewUIControl(fn PanelFunc) *UIControl {
	return &UIControl{fn: fn}
}

// TargetPanel returns the currently selected panel index.
func (u *UIControl) TargetPanel() int { return u.target }

// HandleCC processes one control change and reports whether it was
// consumed. Control changes on channels 1-15 are never consumed; they
// belong to the normal expression path.
func (u *UIControl) HandleCC(channel, cc, value uint8) bool {
	if channel != UIControlChannel {
		return false
	}
	switch {
	case cc == ccPanelSelect:
		u.target = int(value) % maxPanels
	case cc == ccPanelCycle:
		u.target = (u.target + 1) % maxPanels
	case (cc >= ccPanelFirst && cc <= ccPanelLast) || cc == ccPanelExtra:
		if u.fn != nil {
			u.fn(u.target, cc, value)
		}
	}
	return true
}
