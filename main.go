package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"synther-core/config"
	"synther-core/debug"
	"synther-core/layout"
	"synther-core/midi"
	"synther-core/mpe"
	"synther-core/scale"
	"synther-core/theme"
	"synther-core/tui"
)

func main() {
	if os.Getenv("SYNTHER_DEBUG") != "" {
		if err := debug.Enable(); err != nil {
			fmt.Fprintf(os.Stderr, "debug: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Initial size is a placeholder; the TUI reconfigures on the first
	// WindowSizeMsg.
	engine, err := layout.NewEngine(layout.Config{
		Layout:           layoutFor(cfg.Keyboard.Layout),
		Scale:            scale.ByName(cfg.Keyboard.Scale),
		Octaves:          cfg.Keyboard.Octaves,
		Size:             layout.Size{Width: 80, Height: 22},
		StartNote:        uint8(cfg.Keyboard.StartNote),
		VisibleWhiteKeys: cfg.Keyboard.VisibleWhiteKeys,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "layout: %v\n", err)
		os.Exit(1)
	}

	// Keep a connection to the synth's MIDI port alive across hot-plug.
	out := midi.NewOutputWatcher(cfg.Output.PortName)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go out.Run(ctx)
	defer out.Close()

	handler := mpe.NewHandler(engine, out.Send)

	pal := theme.DefaultPalette()
	if path, ok := cfg.PalettePath(); ok {
		loaded, err := theme.LoadGPL(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "palette: %v (using built-in)\n", err)
		} else {
			pal = loaded
		}
	}
	th := theme.New(pal)

	fmt.Println("synther-core")
	fmt.Println("Connect a synth MIDI port any time - it'll be picked up automatically")
	fmt.Println("")

	m := tui.NewModel(engine, handler, th, cfg, out)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func layoutFor(kind config.LayoutKind) layout.Layout {
	switch kind {
	case config.LayoutIsomorphic:
		return layout.IsomorphicLayout{}
	case config.LayoutHexagonal:
		return layout.HexagonalLayout{}
	default:
		return layout.PianoLayout{}
	}
}
