package config

import "errors"

// Config holds the settings of one scenegen run.
type Config struct {
	InputPath    string // script file or directory of scripts
	OutputPath   string // document path, single script only
	OutputDir    string // directory for generated document names
	Overwrite    bool
	Width        int
	Height       int
	FPS          int
	Workers      int
	Preset       string
	LegacyIDs    bool
	Watch        bool // rebuild <script>.json in OutputDir on change, always overwriting
	ShowStats    bool
	BuildVersion string
}

// ApplyPreset overrides Width and Height for a known aspect preset.
// It reports whether the preset was recognized; an empty preset is a no-op.
func (c *Config) ApplyPreset() bool {
	switch c.Preset {
	case "":
		return true
	case "16:9":
		c.Width, c.Height = 1280, 720
	case "9:16":
		c.Width, c.Height = 720, 1280
	case "4:5":
		c.Width, c.Height = 1080, 1350
	default:
		return false
	}
	return true
}

// Validate rejects flag combinations that cannot take effect.
func (c *Config) Validate() error {
	if c.Watch && c.OutputPath != "" {
		return errors.New("-output cannot be used with -watch; documents go to -output-dir")
	}
	return nil
}
