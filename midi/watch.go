package midi

import (
	"context"
	"strings"
	"sync"
	"time"

	"synther-core/debug"
)

// OutputWatcher keeps a connection to the preferred MIDI out port alive
// across hot-plug and hot-unplug. While no port is connected, Send drops
// events silently: the virtual keyboard stays playable and picks the synth
// back up when its port reappears.
type OutputWatcher struct {
	mu        sync.Mutex
	preferred string
	out       *Output
	pollRate  time.Duration
}

// NewOutputWatcher creates a watcher for ports matching preferred (empty
// string = any port). Call Run in a goroutine to start polling.
func NewOutputWatcher(preferred string) *OutputWatcher {
	return &OutputWatcher{
		preferred: preferred,
		pollRate:  time.Second,
	}
}

// Run polls for the preferred port until ctx is cancelled (blocking - run
// in a goroutine).
func (w *OutputWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.pollRate)
	defer ticker.Stop()

	w.scan()

	for {
		select {
		case <-ctx.Done():
			w.disconnect()
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

func (w *OutputWatcher) scan() {
	w.mu.Lock()
	connected := w.out != nil
	name := ""
	if connected {
		name = w.out.Name()
	}
	w.mu.Unlock()

	outs, ok := listOutPorts()
	if !ok {
		return // scan hung, try again next tick
	}

	if connected {
		for _, p := range outs {
			if p.String() == name {
				return
			}
		}
		debug.Log("midi", "output %s disappeared", name)
		w.disconnect()
		return
	}

	for _, p := range outs {
		if w.preferred != "" && !strings.Contains(strings.ToLower(p.String()), strings.ToLower(w.preferred)) {
			continue
		}
		out, err := OpenOutput(w.preferred)
		if err != nil {
			debug.Log("midi", "open %s: %v", p, err)
			return
		}
		debug.Log("midi", "connected to output %s", out.Name())
		w.mu.Lock()
		w.out = out
		w.mu.Unlock()
		return
	}
}

func (w *OutputWatcher) disconnect() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.out != nil {
		w.out.Close()
		w.out = nil
	}
}

// Connected reports the active port name, if any.
func (w *OutputWatcher) Connected() (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.out == nil {
		return "", false
	}
	return w.out.Name(), true
}

// Send writes one event to the connected port, dropping it when no port is
// available. A send failure drops the connection so the next scan retries.
func (w *OutputWatcher) Send(e Event) {
	w.mu.Lock()
	out := w.out
	w.mu.Unlock()
	if out == nil {
		return
	}
	if err := out.Send(e); err != nil {
		debug.Log("midi", "send failed, dropping output: %v", err)
		w.disconnect()
	}
}

// Close tears down any open connection.
func (w *OutputWatcher) Close() { w.disconnect() }
