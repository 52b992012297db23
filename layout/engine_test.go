package layout

import (
	"testing"

	"synther-core/scale"
)

func testConfig() Config {
	return Config{
		Layout:           PianoLayout{},
		Scale:            scale.TwelveTET(),
		Octaves:          1,
		Size:             testSize,
		StartNote:        60,
		VisibleWhiteKeys: 7,
	}
}

func TestNewEngineValidates(t *testing.T) {
	cfg := testConfig()
	cfg.Octaves = 0
	if _, err := NewEngine(cfg); err == nil {
		t.Error("octaves=0 accepted")
	}

	cfg = testConfig()
	cfg.VisibleWhiteKeys = 0
	if _, err := NewEngine(cfg); err == nil {
		t.Error("visibleWhiteKeys=0 accepted")
	}

	cfg = testConfig()
	cfg.Layout = nil
	if _, err := NewEngine(cfg); err == nil {
		t.Error("nil layout accepted")
	}
}

func TestUpdateDimensionsRegeneratesOnlyOnChange(t *testing.T) {
	e, err := NewEngine(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	changed, err := e.UpdateDimensions(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("identical config triggered a regeneration")
	}

	cfg := testConfig()
	cfg.Size = Size{Width: 1400, Height: 200}
	changed, err = e.UpdateDimensions(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("resize did not trigger a regeneration")
	}
	whiteW := cfg.Size.Width / 7
	if e.Keys()[0].Bounds.Width != whiteW {
		t.Errorf("keys not regenerated for new size: width %v", e.Keys()[0].Bounds.Width)
	}
}

func TestUpdateDimensionsRejectsBadConfig(t *testing.T) {
	e, err := NewEngine(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	bad := testConfig()
	bad.Octaves = -1
	if _, err := e.UpdateDimensions(bad); err == nil {
		t.Error("invalid config accepted by UpdateDimensions")
	}
	// The stored config must be untouched.
	if e.Config().Octaves != 1 {
		t.Errorf("config mutated by rejected update: octaves %d", e.Config().Octaves)
	}
}

func TestRegenerationClearsPressedState(t *testing.T) {
	e, err := NewEngine(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	e.SetKeyPressed(60, true, &[3]uint8{255, 0, 0})

	cfg := testConfig()
	cfg.Octaves = 2
	cfg.VisibleWhiteKeys = 14
	if _, err := e.UpdateDimensions(cfg); err != nil {
		t.Fatal(err)
	}
	for _, k := range e.Keys() {
		if k.Pressed || k.Color != nil {
			t.Errorf("key %d carried pressed state across regeneration", k.Note)
		}
	}
}

func TestSetKeyPressed(t *testing.T) {
	e, err := NewEngine(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	red := &[3]uint8{255, 0, 0}
	e.SetKeyPressed(64, true, red)
	k := e.KeyAt(Point{X: 250, Y: 150}) // third white key, below black row
	if k == nil || k.Note != 64 {
		t.Fatalf("hit test returned %+v, want note 64", k)
	}
	if !k.Pressed || k.Color != red {
		t.Errorf("key 64 state = pressed %v color %v", k.Pressed, k.Color)
	}

	e.SetKeyPressed(64, false, nil)
	if k := e.KeyAt(Point{X: 250, Y: 150}); k.Pressed || k.Color != nil {
		t.Error("release did not clear state")
	}

	// Unknown note: silently ignored.
	e.SetKeyPressed(90, true, nil)
}

func TestClearKeyPresses(t *testing.T) {
	e, err := NewEngine(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	e.SetKeyPressed(60, true, nil)
	e.SetKeyPressed(61, true, &[3]uint8{0, 255, 0})
	e.ClearKeyPresses()
	for _, k := range e.Keys() {
		if k.Pressed || k.Color != nil {
			t.Errorf("key %d still pressed after ClearKeyPresses", k.Note)
		}
	}
}
