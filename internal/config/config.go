// Package config loads the optional picker.yaml next to a project's go.mod
// and resolves it into a picker configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/picker/pkg/calendar"
	pickererrors "github.com/go-drift/picker/pkg/errors"
	"github.com/go-drift/picker/pkg/graphics"
	"github.com/go-drift/picker/pkg/haptics"
	"github.com/go-drift/picker/pkg/picker"
	"github.com/go-drift/picker/pkg/theme"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "picker.yaml"

// Config represents the optional picker.yaml configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Picker  PickerConfig  `yaml:"picker"`
	Haptics HapticsConfig `yaml:"haptics"`
	Toss    TossConfig    `yaml:"toss"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// AppConfig names the application hosting the picker. Name titles the
// interactive picker; ID namespaces the haptic effect.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
	ID   string `yaml:"id,omitempty"`
}

// PickerConfig contains date picker settings. Dates are YYYY-MM-DD.
type PickerConfig struct {
	Start     string  `yaml:"start,omitempty"`
	End       string  `yaml:"end,omitempty"`
	Selected  string  `yaml:"selected,omitempty"`
	Lunar     bool    `yaml:"lunar,omitempty"`
	Mode      string  `yaml:"mode,omitempty"`
	ShowCount int     `yaml:"showCount,omitempty"`
	Loop      *bool   `yaml:"loop,omitempty"`
	Locale    string  `yaml:"locale,omitempty"`
	RowHeight float64 `yaml:"rowHeight,omitempty"`
}

// HapticsConfig contains feedback settings.
type HapticsConfig struct {
	Enabled            *bool `yaml:"enabled,omitempty"`
	PlatformVersion    int   `yaml:"platformVersion,omitempty"`
	MinPlatformVersion int   `yaml:"minPlatformVersion,omitempty"`
}

// TossConfig contains fling thresholds in px/s.
type TossConfig struct {
	MinSpeed float64 `yaml:"minSpeed,omitempty"`
	MaxSpeed float64 `yaml:"maxSpeed,omitempty"`
}

// ThemeConfig selects a base palette and overrides row presets.
type ThemeConfig struct {
	Brightness   string       `yaml:"brightness,omitempty"`
	Selected     TextOverride `yaml:"selected,omitempty"`
	Candidate    TextOverride `yaml:"candidate,omitempty"`
	Disappearing TextOverride `yaml:"disappearing,omitempty"`
}

// TextOverride replaces the non-zero fields of a text preset. Color is
// #rrggbb or #aarrggbb; Weight is CSS-style (100..900).
type TextOverride struct {
	Size   float64 `yaml:"size,omitempty"`
	Color  string  `yaml:"color,omitempty"`
	Weight int     `yaml:"weight,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	AppID      string
	// HapticEffect is the effect requested from the haptics factory:
	// AppID followed by haptics.EffectSlide.
	HapticEffect string

	Start, End     calendar.Date
	Selected       calendar.Date
	Lunar          bool
	Mode           picker.Mode
	ShowCount      int
	Loop           bool
	Locale         string
	HapticsEnabled bool
	HapticGate     haptics.Gate
	Toss           picker.TossConfig
	Theme          *theme.ThemeData
}

// LoadOptional reads picker.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, pickererrors.Wrap("config.LoadOptional", pickererrors.KindConfig,
			fmt.Errorf("failed to read %s: %w", FileName, err))
	}
	return Parse(data)
}

// Parse decodes picker.yaml content.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, pickererrors.Wrap("config.Parse", pickererrors.KindConfig,
			fmt.Errorf("failed to parse %s: %w", FileName, err))
	}
	return &cfg, nil
}

// Resolve loads picker.yaml (if present) and resolves defaults. A go.mod in
// dir supplies the default app name and id.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(dir)
}

// Resolve applies defaults to an already loaded configuration.
func (cfg *Config) Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}
	appID := strings.TrimSpace(cfg.App.ID)
	if appID == "" {
		appID = defaultAppID(modulePath, appName)
	}
	if err := validateAppID(appID); err != nil {
		return nil, pickererrors.Wrap("config.Resolve", pickererrors.KindConfig, err)
	}

	mode, err := picker.ParseMode(strings.TrimSpace(cfg.Picker.Mode))
	if err != nil {
		return nil, pickererrors.Wrap("config.Resolve", pickererrors.KindConfig, err)
	}

	r := &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		AppID:      appID,
		Lunar:      cfg.Picker.Lunar,
		Mode:       mode,
		ShowCount:  cfg.Picker.ShowCount,
		Loop:       cfg.Picker.Loop == nil || *cfg.Picker.Loop,
		Locale:     strings.TrimSpace(cfg.Picker.Locale),
		HapticGate: haptics.Gate{
			PlatformVersion: cfg.Haptics.PlatformVersion,
			MinVersion:      cfg.Haptics.MinPlatformVersion,
		},
		HapticsEnabled: cfg.Haptics.Enabled == nil || *cfg.Haptics.Enabled,
		Toss: picker.TossConfig{
			MinSpeed: cfg.Toss.MinSpeed,
			MaxSpeed: cfg.Toss.MaxSpeed,
		},
	}
	r.HapticEffect = appID + "." + haptics.EffectSlide
	if r.Locale == "" {
		r.Locale = "en"
	}
	if r.HapticGate.PlatformVersion == 0 {
		r.HapticGate.PlatformVersion = haptics.DefaultMinPlatformVersion
	}
	if r.ShowCount <= 0 {
		r.ShowCount = picker.DefaultShowCount
	}
	if r.ShowCount%2 == 0 {
		r.ShowCount++
	}

	r.Start, r.End = resolveRange(cfg.Picker.Start, cfg.Picker.End)
	if d, ok := parseDate(cfg.Picker.Selected); ok {
		r.Selected = calendar.Clamp(d, r.Start, r.End)
	}

	th, err := cfg.Theme.resolve(cfg.Picker.RowHeight)
	if err != nil {
		return nil, pickererrors.Wrap("config.Resolve", pickererrors.KindConfig, err)
	}
	r.Theme = th
	return r, nil
}

// PickerConfig turns the resolved values into a date picker configuration.
func (r *Resolved) PickerConfig(factory haptics.Factory) picker.Config {
	return picker.Config{
		Start:          r.Start,
		End:            r.End,
		Selected:       r.Selected,
		Lunar:          r.Lunar,
		Mode:           r.Mode,
		ShowCount:      r.ShowCount,
		CanLoop:        r.Loop,
		Theme:          r.Theme,
		Locale:         r.Locale,
		Haptics:        factory,
		HapticEffect:   r.HapticEffect,
		HapticGate:     r.HapticGate,
		HapticsEnabled: r.HapticsEnabled,
		Toss:           r.Toss,
	}
}

func parseDate(s string) (calendar.Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return calendar.Date{}, false
	}
	d, err := calendar.ParseDate(s)
	if err != nil || calendar.Normalize(d) != d {
		return calendar.Date{}, false
	}
	return d, true
}

// resolveRange parses the configured range. Anything malformed silently
// selects the default range.
func resolveRange(start, end string) (calendar.Date, calendar.Date) {
	s, okStart := parseDate(start)
	e, okEnd := parseDate(end)
	if start == "" {
		s, okStart = picker.DefaultStart, true
	}
	if end == "" {
		e, okEnd = picker.DefaultEnd, true
	}
	if !okStart || !okEnd || s.After(e) || s.Before(calendar.MinDate) || e.After(calendar.MaxDate) {
		return picker.DefaultStart, picker.DefaultEnd
	}
	return s, e
}

func (tc ThemeConfig) resolve(rowHeight float64) (*theme.ThemeData, error) {
	var b theme.Brightness
	switch strings.ToLower(strings.TrimSpace(tc.Brightness)) {
	case "", "light":
		b = theme.BrightnessLight
	case "dark":
		b = theme.BrightnessDark
	default:
		return nil, fmt.Errorf("theme.brightness must be light or dark (got %q)", tc.Brightness)
	}
	th := theme.ForBrightness(b)
	pt := th.PickerThemeOf()
	for _, family := range []*theme.TextPresets{&pt.Date, &pt.Time, &pt.Generic} {
		var err error
		if family.Selected, err = tc.Selected.apply(family.Selected); err != nil {
			return nil, fmt.Errorf("theme.selected: %w", err)
		}
		if family.Candidate, err = tc.Candidate.apply(family.Candidate); err != nil {
			return nil, fmt.Errorf("theme.candidate: %w", err)
		}
		if family.Disappearing, err = tc.Disappearing.apply(family.Disappearing); err != nil {
			return nil, fmt.Errorf("theme.disappearing: %w", err)
		}
	}
	if rowHeight > 0 {
		pt.RowHeight = rowHeight
	}
	th.PickerTheme = &pt
	return th, nil
}

func (o TextOverride) apply(s graphics.TextStyle) (graphics.TextStyle, error) {
	if o.Size > 0 {
		s.FontSize = o.Size
	}
	if o.Weight > 0 {
		s.Weight = graphics.WeightFromCSS(o.Weight)
	}
	if c := strings.TrimSpace(o.Color); c != "" {
		parsed, err := graphics.ParseHex(c)
		if err != nil {
			return s, err
		}
		s.Color = parsed
	}
	return s, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", err
	}
	mp := modfile.ModulePath(data)
	if mp == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return mp, nil
}

// defaultAppName is the last module path element without its major version
// suffix, or the directory name outside a module.
func defaultAppName(modulePath, dir string) string {
	if prefix, _, ok := module.SplitPathVersion(modulePath); ok && prefix != "" {
		return path.Base(prefix)
	}
	if base := filepath.Base(dir); base != "." && base != string(filepath.Separator) {
		return base
	}
	return "picker"
}

// defaultAppID turns github.com/acme/cal into com.github.acme.cal. Module
// paths without a host fall back to com.example.<name>.
func defaultAppID(modulePath, appName string) string {
	host, rest, ok := strings.Cut(modulePath, "/")
	if !ok || !strings.Contains(host, ".") {
		return "com.example." + idSegment(appName)
	}
	labels := strings.Split(host, ".")
	slices.Reverse(labels)
	for _, elem := range strings.Split(rest, "/") {
		if elem != "" {
			labels = append(labels, elem)
		}
	}
	for i, l := range labels {
		labels[i] = idSegment(l)
	}
	return strings.Join(labels, ".")
}

// idSegment keeps lowercase letters, digits and underscores and makes sure
// the segment starts with a letter.
func idSegment(s string) string {
	seg := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return -1
	}, strings.TrimSpace(s))
	if seg == "" {
		return "app"
	}
	if seg[0] < 'a' || seg[0] > 'z' {
		seg = "a" + seg
	}
	return seg
}

// validateAppID accepts dotted ids whose segments idSegment leaves intact.
// The id prefixes the haptic effect, which platforms match verbatim.
func validateAppID(id string) error {
	if !strings.Contains(id, ".") {
		return fmt.Errorf("app.id %q needs at least two dot-separated segments", id)
	}
	for _, seg := range strings.Split(id, ".") {
		if seg == "" || idSegment(seg) != seg {
			return fmt.Errorf("app.id %q: segment %q must be lowercase letters, digits or _ and start with a letter", id, seg)
		}
	}
	return nil
}
