package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGPL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.gpl")
	data := `GIMP Palette
Name: Test Gradient
Columns: 2
# a comment
  0   0   0	black
255 128  64	ember
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write palette: %v", err)
	}

	p, err := LoadGPL(path)
	if err != nil {
		t.Fatalf("LoadGPL failed: %v", err)
	}
	if p.Name != "Test Gradient" {
		t.Errorf("name = %q, want %q", p.Name, "Test Gradient")
	}
	if len(p.Colors) != 2 {
		t.Fatalf("got %d colors, want 2", len(p.Colors))
	}
	if p.Colors[0] != (RGB{0, 0, 0}) || p.Colors[1] != (RGB{255, 128, 64}) {
		t.Errorf("colors = %v", p.Colors)
	}
}

func TestLoadGPLNoColors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.gpl")
	if err := os.WriteFile(path, []byte("GIMP Palette\nName: Empty\n"), 0644); err != nil {
		t.Fatalf("write palette: %v", err)
	}
	if _, err := LoadGPL(path); err == nil {
		t.Error("expected error for palette with no colors")
	}
}

func TestLoadGPLMissingFile(t *testing.T) {
	if _, err := LoadGPL(filepath.Join(t.TempDir(), "nope.gpl")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLookup(t *testing.T) {
	p := &Palette{Colors: []RGB{{0, 0, 0}, {100, 200, 40}}}

	tests := []struct {
		norm float64
		want RGB
	}{
		{0, RGB{0, 0, 0}},
		{1, RGB{100, 200, 40}},
		{-0.5, RGB{0, 0, 0}},    // clamped low
		{1.5, RGB{100, 200, 40}}, // clamped high
		{0.5, RGB{50, 100, 20}},
	}
	for _, tt := range tests {
		if got := p.Lookup(tt.norm); got != tt.want {
			t.Errorf("Lookup(%v) = %v, want %v", tt.norm, got, tt.want)
		}
	}
}

func TestLookupEndpointsDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if got := p.Lookup(0); got != p.Colors[0] {
		t.Errorf("Lookup(0) = %v, want first stop %v", got, p.Colors[0])
	}
	if got := p.Lookup(1); got != p.Colors[len(p.Colors)-1] {
		t.Errorf("Lookup(1) = %v, want last stop %v", got, p.Colors[len(p.Colors)-1])
	}
}

func TestChannelColor(t *testing.T) {
	th := New(DefaultPalette())

	// Each note channel gets a stable color; the zone ends differ.
	if th.ChannelColor(2) == th.ChannelColor(16) {
		t.Error("channels 2 and 16 should not share a color")
	}
	if th.ChannelColor(5) != th.ChannelColor(5) {
		t.Error("ChannelColor should be deterministic")
	}

	// Below the note zone falls back to the accent role.
	if th.ChannelColor(1) != th.Accent() {
		t.Error("channel 1 should use the accent color")
	}
}

func TestRGBToColor(t *testing.T) {
	if got := RGBToColor([3]uint8{255, 0, 16}); got != "#ff0010" {
		t.Errorf("RGBToColor = %q, want %q", got, "#ff0010")
	}
}
