package gpanel

import (
	"errors"
	"evilknob/src/base"
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	data := []byte(`
title: Mixer
knobs:
  - name: gain
    label: Gain
    sprite: knobs/gain.png
  - name: pan
    left: 20
    right: 80
  - label: Unnamed
`)
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if p.Title != "Mixer" || len(p.Knobs) != 3 {
		t.Fatalf("panel = %+v", p)
	}
	if p.StripSize != 96 || p.StripFrames != 101 {
		t.Errorf("strip defaults = %d/%d", p.StripSize, p.StripFrames)
	}
	if p.Knobs[1].Label != "pan" || p.Knobs[1].Left != 20 || p.Knobs[1].Right != 80 {
		t.Errorf("pan = %+v", p.Knobs[1])
	}
	if p.Knobs[2].Name != "knob3" {
		t.Errorf("generated name = %q", p.Knobs[2].Name)
	}

	p.SetSprite(BuiltinSprite, false)
	if p.Knobs[0].Sprite != "knobs/gain.png" || p.Knobs[1].Sprite != BuiltinSprite {
		t.Errorf("SetSprite(false) = %+v", p.Knobs)
	}
	p.SetSprite("other.png", true)
	if p.Knobs[0].Sprite != "other.png" {
		t.Errorf("SetSprite(true) kept %q", p.Knobs[0].Sprite)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"no knobs":     "title: Empty\n",
		"duplicate":    "knobs:\n  - name: a\n  - name: a\n",
		"broken yaml":  "knobs: [",
		"inverted":     "knobs:\n  - name: a\n    left: 60\n    right: 50\n",
		"left too far": "knobs:\n  - name: a\n    left: 100\n",
	}
	for name, data := range tests {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("%s: no error", name)
		}
	}

	_, err := Parse([]byte("knobs:\n  - name: a\n    left: 60\n    right: 50\n"))
	if !errors.Is(err, base.ErrInvalidBounds) {
		t.Errorf("inverted bounds error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	p, err := Load("")
	if err != nil || len(p.Knobs) != len(Default().Knobs) {
		t.Fatalf("Load(\"\") = %+v, %v", p, err)
	}

	file := filepath.Join(t.TempDir(), "panel.yaml")
	if err := os.WriteFile(file, []byte("knobs:\n  - name: solo\n"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err = Load(file)
	if err != nil || p.Knobs[0].Name != "solo" {
		t.Errorf("Load(file) = %+v, %v", p, err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("missing file error = %v", err)
	}
}
