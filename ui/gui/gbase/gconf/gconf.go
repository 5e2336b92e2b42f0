package gconf

import (
	"encoding/json"
	"evilknob/src/base"
	"fmt"
	"os"
	"time"
)

const DefaultFile = "evilknob.json"

type Config struct {
	Theme    string `json:"theme"`     // light/dark
	Panel    string `json:"panel"`     // path to panel yaml, empty for the built-in panel
	Sprite   string `json:"sprite"`    // sprite sheet for knobs without their own
	SettleMS int    `json:"settle_ms"` // wait after a sprite sheet loaded
	WindowH  int    `json:"window_h"`  //
	WindowW  int    `json:"window_w"`  //
	Debug    bool   `json:"debug"`     // true/false

	file string
}

func defaultConfig() Config {
	return Config{
		Theme:    "light",
		Panel:    "",
		Sprite:   "",
		SettleMS: int(base.DefaultSettleDelay / time.Millisecond),
		WindowH:  540,
		WindowW:  960,
		Debug:    false,
		file:     DefaultFile,
	}
}

// NewGUIConfig reads file, falling back to defaults when it does not exist
func NewGUIConfig(file string) (*Config, error) {
	if file == "" {
		file = DefaultFile
	}

	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		def := defaultConfig()
		def.file = file
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	dec := json.NewDecoder(conf)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	c.file = file
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleMS) * time.Millisecond
}

func (c *Config) Save() error {
	file := c.file
	if file == "" {
		file = DefaultFile
	}
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, jsonData, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	// negative or absurd settle delays fall back to the default
	if c.SettleMS < 0 || c.SettleMS > 1000 {
		c.SettleMS = def.SettleMS
	}
	if c.WindowH < 240 || c.WindowW < 320 {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}
