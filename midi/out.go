package midi

import (
	"fmt"
	"strings"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Output is an open connection to one MIDI out port.
type Output struct {
	port drivers.Out
	send func(gomidi.Message) error
}

// OpenOutput opens the first out port whose name contains nameSubstr,
// case-insensitive. An empty substring matches the first available port.
func OpenOutput(nameSubstr string) (*Output, error) {
	outs, ok := listOutPorts()
	if !ok {
		return nil, fmt.Errorf("MIDI port scan timed out")
	}
	for _, port := range outs {
		if nameSubstr == "" || strings.Contains(strings.ToLower(port.String()), strings.ToLower(nameSubstr)) {
			send, err := gomidi.SendTo(port)
			if err != nil {
				return nil, fmt.Errorf("open output %s: %w", port, err)
			}
			return &Output{port: port, send: send}, nil
		}
	}
	return nil, fmt.Errorf("no MIDI out port matching %q", nameSubstr)
}

// Name returns the port name.
func (o *Output) Name() string { return o.port.String() }

// Send converts and writes one event to the port.
func (o *Output) Send(e Event) error {
	msg := e.Message()
	if msg == nil {
		return nil
	}
	if err := o.send(msg); err != nil {
		return fmt.Errorf("send to %s: %w", o.port, err)
	}
	return nil
}

func (o *Output) Close() error { return o.port.Close() }

// ListPorts returns the names of the available in and out ports.
func ListPorts() (ins, outs []string) {
	for _, p := range gomidi.GetInPorts() {
		ins = append(ins, p.String())
	}
	for _, p := range gomidi.GetOutPorts() {
		outs = append(outs, p.String())
	}
	return ins, outs
}

// listOutPorts scans with a timeout: CoreMIDI can hang, and a stuck scan
// must not stall the input path.
func listOutPorts() ([]drivers.Out, bool) {
	ch := make(chan []drivers.Out, 1)
	go func() {
		ch <- gomidi.GetOutPorts()
	}()
	select {
	case outs := <-ch:
		return outs, true
	case <-time.After(3 * time.Second):
		return nil, false
	}
}
