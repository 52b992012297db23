// mpetest exercises the expression engine from the command line: list
// MIDI ports, print the event stream of a simulated gesture, or send it
// to a real port.
package main

import (
	"fmt"
	"os"
	"time"

	"synther-core/layout"
	"synther-core/midi"
	"synther-core/mpe"
	"synther-core/scale"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "gesture":
		gesture(func(e midi.Event) { fmt.Println(e) })
	case "send":
		send()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("MPE Test Scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list            - List all MIDI ports")
	fmt.Println("  gesture         - Print the events of a simulated glissando")
	fmt.Println("  send [port]     - Send the gesture to a MIDI out port")
}

func listPorts() {
	ins, outs := midi.ListPorts()

	fmt.Println("=== MIDI Input Ports ===")
	for _, name := range ins {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("")
	fmt.Println("=== MIDI Output Ports ===")
	for _, name := range outs {
		fmt.Printf("  %s\n", name)
	}
}

// gesture runs a two-finger phrase across a one-octave piano: a held root
// with vibrato and a slide from E toward F#.
func gesture(emit func(midi.Event)) {
	engine, err := layout.NewEngine(layout.Config{
		Layout:           layout.PianoLayout{},
		Scale:            scale.TwelveTET(),
		Octaves:          1,
		Size:             layout.Size{Width: 700, Height: 200},
		StartNote:        60,
		VisibleWhiteKeys: 7,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	h := mpe.NewHandler(engine, emit)

	root, _ := engine.KeyPosition(60)
	h.TouchStart(1, root, engine.KeyAt(root), 0.8)

	third, _ := engine.KeyPosition(64)
	h.TouchStart(2, third, engine.KeyAt(third), 0.6)

	// Vibrato on the root, slide on the third.
	for i := 1; i <= 8; i++ {
		dx := 12.0
		if i%2 == 0 {
			dx = -12.0
		}
		h.TouchMove(1, layout.Point{X: root.X + dx, Y: root.Y}, 0.8)
		h.TouchMove(2, layout.Point{X: third.X + float64(i)*10, Y: third.Y}, 0.6)
	}

	h.TouchEnd(2)
	h.TouchEnd(1)
}

func send() {
	name := ""
	if len(os.Args) > 2 {
		name = os.Args[2]
	}
	out, err := midi.OpenOutput(name)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()
	fmt.Printf("Sending to %s\n", out.Name())

	gesture(func(e midi.Event) {
		fmt.Println(e)
		if err := out.Send(e); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		time.Sleep(30 * time.Millisecond)
	})
}
