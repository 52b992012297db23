package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// LayoutKind selects which keyboard geometry is generated.
type LayoutKind string

const (
	LayoutPiano      LayoutKind = "piano"
	LayoutIsomorphic LayoutKind = "isomorphic"
	LayoutHexagonal  LayoutKind = "hexagonal"
)

// KeyboardConfig is the persisted keyboard setup.
type KeyboardConfig struct {
	Layout           LayoutKind `json:"layout"`
	Scale            string     `json:"scale,omitempty"`
	Octaves          int        `json:"octaves"`
	VisibleWhiteKeys int        `json:"visibleWhiteKeys"`
	StartNote        int        `json:"startNote"`
}

// OutputConfig selects the synth MIDI output port.
type OutputConfig struct {
	PortName string `json:"portName,omitempty"`
}

// UIConfig stores UI preferences. Palette is a path to a GIMP .gpl
// palette file; empty means the built-in palette.
type UIConfig struct {
	ShowLabels bool   `json:"showLabels,omitempty"`
	Palette    string `json:"palette,omitempty"`
}

// Config is the main configuration structure.
type Config struct {
	Keyboard KeyboardConfig `json:"keyboard"`
	Output   OutputConfig   `json:"output,omitempty"`
	UI       UIConfig       `json:"ui,omitempty"`
}

// DefaultConfig returns a config with sensible defaults: a two-octave
// piano from C3.
func DefaultConfig() *Config {
	return &Config{
		Keyboard: KeyboardConfig{
			Layout:           LayoutPiano,
			Scale:            "12-TET",
			Octaves:          2,
			VisibleWhiteKeys: 14,
			StartNote:        48,
		},
		UI: UIConfig{
			ShowLabels: true,
		},
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "synther-core"), nil
}

// ConfigPath returns the full path to config.json.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// PalettePath resolves the configured palette file. Relative paths are
// taken under the config directory, next to config.json. The second
// return is false when no palette is configured.
func (c *Config) PalettePath() (string, bool) {
	if c.UI.Palette == "" {
		return "", false
	}
	if filepath.IsAbs(c.UI.Palette) {
		return c.UI.Palette, true
	}
	dir, err := ConfigDir()
	if err != nil {
		return c.UI.Palette, true
	}
	return filepath.Join(dir, c.UI.Palette), true
}

// Load reads the config from disk, or returns defaults if not found.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads a config from an explicit path, defaulting when the file
// does not exist.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.clamp()
	return &cfg, nil
}

// clamp keeps hand-edited values inside the ranges the keyboard accepts.
// StartNote is a MIDI note number; the engine validates the rest.
func (c *Config) clamp() {
	if c.Keyboard.StartNote < 0 {
		c.Keyboard.StartNote = 0
	}
	if c.Keyboard.StartNote > 127 {
		c.Keyboard.StartNote = 127
	}
}

// Save writes the config to disk.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to an explicit path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
