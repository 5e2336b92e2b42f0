package gpanel

import (
	"evilknob/src/base"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BuiltinSprite names the strip rendered at startup, no file needed
const BuiltinSprite = "builtin:knob"

type Knob struct {
	Name   string `yaml:"name"`
	Label  string `yaml:"label"`
	Sprite string `yaml:"sprite"`
	Left   int    `yaml:"left"`
	Right  int    `yaml:"right"`
}

type Panel struct {
	Title string `yaml:"title"`
	// frame edge and frame count of the built-in strip
	StripSize   int    `yaml:"stripSize"`
	StripFrames int    `yaml:"stripFrames"`
	Knobs       []Knob `yaml:"knobs"`
}

func Default() *Panel {
	return &Panel{
		Title:       "EvilKnob",
		StripSize:   96,
		StripFrames: 101,
		Knobs: []Knob{
			{Name: "gain", Label: "Gain"},
			{Name: "tone", Label: "Tone", Left: 10, Right: 90},
			{Name: "mix", Label: "Mix"},
			{Name: "level", Label: "Level", Left: 25},
		},
	}
}

// Load reads a panel description; an empty path gives the default panel
func Load(path string) (*Panel, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Panel, error) {
	p := &Panel{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("error decode panel: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Panel) validate() error {
	def := Default()
	if p.Title == "" {
		p.Title = def.Title
	}
	if p.StripSize <= 0 {
		p.StripSize = def.StripSize
	}
	if p.StripFrames <= 0 {
		p.StripFrames = def.StripFrames
	}
	if len(p.Knobs) == 0 {
		return fmt.Errorf("panel %q has no knobs", p.Title)
	}
	seen := make(map[string]bool, len(p.Knobs))
	for i := range p.Knobs {
		k := &p.Knobs[i]
		if k.Name == "" {
			k.Name = fmt.Sprintf("knob%d", i+1)
		}
		if seen[k.Name] {
			return fmt.Errorf("panel %q: duplicate knob %q", p.Title, k.Name)
		}
		seen[k.Name] = true
		if k.Label == "" {
			k.Label = k.Name
		}
		if _, err := base.NewBounds(k.Left, k.Right); err != nil {
			return fmt.Errorf("knob %q: %w", k.Name, err)
		}
	}
	return nil
}

// SetSprite points every knob without its own sprite at src
func (p *Panel) SetSprite(src string, force bool) {
	for i := range p.Knobs {
		if force || p.Knobs[i].Sprite == "" {
			p.Knobs[i].Sprite = src
		}
	}
}
