package spline

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config configures an Editor. Zero or invalid numeric fields fall back to
// the DefaultConfig values when the editor is created.
type Config struct {
	// Placement of the editor's hit rectangle, in pixels (or cells for the
	// terminal host).
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	Label    bool    `toml:"label"`
	FontSize float64 `toml:"font_size"`

	// Min and Max bound value space.
	Min Vec2 `toml:"min"`
	Max Vec2 `toml:"max"`

	// YDown puts Min.Y on the top edge instead of the bottom one.
	YDown bool `toml:"y_down"`

	// Resolution is the number of curve segments drawn across t in [0, 1].
	Resolution int `toml:"resolution"`

	// HitThreshold is the pick distance as a fraction of the value range's
	// diagonal.
	HitThreshold float64 `toml:"hit_threshold"`

	// Sticky snaps every sample to StickyStep, as if Shift were held.
	Sticky     bool    `toml:"sticky"`
	StickyStep float64 `toml:"sticky_step"`

	// Trigger selects the pointer phases that fire OnChange. In TOML it is
	// written as names joined by '|', e.g. "begin|end" or "all".
	Trigger Trigger `toml:"trigger"`
}

// Trigger is a bitmask of pointer interaction phases.
type Trigger uint8

const (
	TriggerBegin  Trigger = 1 << iota // press
	TriggerChange                     // drag samples and wheel knot edits
	TriggerEnd                        // release

	TriggerAll = TriggerBegin | TriggerChange | TriggerEnd
)

var triggerNames = map[string]Trigger{
	"begin":  TriggerBegin,
	"change": TriggerChange,
	"end":    TriggerEnd,
	"all":    TriggerAll,
}

// UnmarshalText parses '|' or ',' separated phase names.
func (t *Trigger) UnmarshalText(text []byte) error {
	var out Trigger
	for _, name := range strings.FieldsFunc(string(text), func(r rune) bool {
		return r == '|' || r == ',' || r == ' '
	}) {
		v, ok := triggerNames[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("unknown trigger %q", name)
		}
		out |= v
	}
	*t = out
	return nil
}

const (
	defaultWidth        = 200
	defaultHeight       = 200
	defaultFontSize     = 12
	defaultResolution   = 100
	defaultHitThreshold = 0.05
	defaultStickyStep   = 0.1
	defaultTrigger      = TriggerBegin | TriggerChange
)

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Width:        defaultWidth,
		Height:       defaultHeight,
		Label:        true,
		FontSize:     defaultFontSize,
		Min:          Vec2{0, 0},
		Max:          Vec2{1, 1},
		Resolution:   defaultResolution,
		HitThreshold: defaultHitThreshold,
		StickyStep:   defaultStickyStep,
		Trigger:      defaultTrigger,
	}
}

// ParseConfig decodes a TOML document on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("spline: parse config: %w", err)
	}
	return cfg.withDefaults(), nil
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("spline: load config %s: %w", path, err)
	}
	return cfg.withDefaults(), nil
}

// withDefaults replaces unusable values with defaults.
func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.FontSize <= 0 {
		c.FontSize = defaultFontSize
	}
	if c.Resolution <= 0 {
		c.Resolution = defaultResolution
	}
	if c.HitThreshold <= 0 {
		c.HitThreshold = defaultHitThreshold
	}
	if c.StickyStep <= 0 {
		c.StickyStep = defaultStickyStep
	}
	if c.Trigger == 0 {
		c.Trigger = defaultTrigger
	}
	if c.Min == c.Max {
		c.Min, c.Max = Vec2{0, 0}, Vec2{1, 1}
	}
	return c
}
