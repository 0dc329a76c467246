// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides the user settings of region trees: row
// sizes, input timing, text padding, font and palette overrides,
// stored as TOML or YAML.
package settings

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
	"rectui.dev/core/base/errors"
	"rectui.dev/core/colors"
	"rectui.dev/core/list"
	"rectui.dev/core/region"
	"rectui.dev/core/styles"
)

// Settings are the user settings. The zero value is not useful; use
// [New] or [Settings.Defaults].
type Settings struct {

	// Version is the version of the settings format the file was
	// written for. Files with an incompatible version are rejected.
	Version string `toml:"version" yaml:"version"`

	// ItemHeight is the row height of lists.
	ItemHeight float32 `toml:"item_height" yaml:"item_height"`

	// WheelRows is the number of list rows scrolled per wheel notch.
	WheelRows int `toml:"wheel_rows" yaml:"wheel_rows"`

	// DoubleClickInterval is the maximum time between the two clicks
	// of a double click.
	DoubleClickInterval Duration `toml:"double_click_interval" yaml:"double_click_interval"`

	// TextPadding is the padding around the text of list items.
	TextPadding styles.Sides `toml:"text_padding" yaml:"text_padding"`

	// Font is the font of text.
	Font Font `toml:"font" yaml:"font"`

	// Palette overrides palette colors by kebab-case color key,
	// e.g. "list-item-hover" = "#c0d0ff". The value "none" removes
	// the color.
	Palette map[string]string `toml:"palette,omitempty" yaml:"palette,omitempty"`
}

// Font is the serialized form of [styles.Font].
type Font struct {
	Family string  `toml:"family" yaml:"family"`
	Size   float32 `toml:"size" yaml:"size"`
	Bold   bool    `toml:"bold,omitempty" yaml:"bold,omitempty"`
	Italic bool    `toml:"italic,omitempty" yaml:"italic,omitempty"`
}

// Style returns the [styles.Font] for the font settings.
func (f Font) Style() styles.Font {
	sf := styles.DefaultFont()
	sf.Family = f.Family
	sf.Size = f.Size
	if f.Bold {
		sf = sf.Bold()
	}
	if f.Italic {
		sf = sf.Italic()
	}
	return sf
}

// Duration is a [time.Duration] stored as text such as "500ms".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Version is the current version of the settings format.
const Version = "1.1.0"

// compatible are the settings format versions that can be read.
var compatible = errors.Must1(semver.NewConstraint("^1.0.0"))

// New returns new settings with the default values.
func New() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// Defaults sets the default values.
func (s *Settings) Defaults() {
	df := styles.DefaultFont()
	*s = Settings{
		Version:             Version,
		ItemHeight:          list.DefaultItemHeight,
		WheelRows:           2,
		DoubleClickInterval: Duration(region.DefaultDoubleClickInterval),
		TextPadding:         styles.Sides{Top: 3, Right: 5, Bottom: 2, Left: 21},
		Font:                Font{Family: df.Family, Size: df.Size},
	}
}

// Formats are the file formats of settings.
type Formats int32

const (
	// TOML is the default format.
	TOML Formats = iota

	// YAML is used for .yaml and .yml files.
	YAML
)

// FormatOf returns the format for the extension of the given file.
func FormatOf(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("settings: unsupported file extension %q", filepath.Ext(filename))
}

// Open reads the settings from the given file, which may start with
// "~" for the home directory. Values missing from the file keep their
// defaults.
func Open(filename string) (*Settings, error) {
	s := New()
	if err := s.Open(filename); err != nil {
		return nil, err
	}
	return s, nil
}

// Open reads the settings from the given file into s.
func (s *Settings) Open(filename string) error {
	fnm, err := homedir.Expand(filename)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	format, err := FormatOf(fnm)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(fnm)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return s.Read(b, format)
}

// Read decodes the settings from b in the given format.
func (s *Settings) Read(b []byte, format Formats) error {
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(b, s)
	default:
		err = toml.Unmarshal(b, s)
	}
	if err != nil {
		return fmt.Errorf("settings: decoding %v: %w", format, err)
	}
	return s.checkVersion()
}

func (s *Settings) checkVersion() error {
	v, err := semver.NewVersion(s.Version)
	if err != nil {
		return fmt.Errorf("settings: version %q: %w", s.Version, err)
	}
	if !compatible.Check(v) {
		return fmt.Errorf("settings: version %s is not supported by format version %s", v, Version)
	}
	return nil
}

// Save writes the settings to the given file.
func (s *Settings) Save(filename string) error {
	fnm, err := homedir.Expand(filename)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	format, err := FormatOf(fnm)
	if err != nil {
		return err
	}
	b, err := s.Encode(format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(fnm, b, 0o644); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}

// Encode encodes the settings in the given format.
func (s *Settings) Encode(format Formats) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case YAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		err = enc.Encode(s)
		err = errors.Join(err, enc.Close())
	default:
		err = toml.NewEncoder(&buf).Encode(s)
	}
	if err != nil {
		return nil, fmt.Errorf("settings: encoding %v: %w", format, err)
	}
	return buf.Bytes(), nil
}

func (f Formats) String() string {
	if f == YAML {
		return "YAML"
	}
	return "TOML"
}

// PaletteColors returns the default palette with the overrides applied.
// Unknown keys and bad colors are reported in the error and skipped.
func (s *Settings) PaletteColors() (colors.Palette, error) {
	p := colors.DefaultPalette()
	var errs []error
	for name, val := range s.Palette {
		var k colors.Key
		if err := k.SetString(name); err != nil {
			errs = append(errs, err)
			continue
		}
		c, ok, err := colors.Parse(val)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("settings: palette %q: %w", name, err))
		case !ok:
			delete(p, k)
		default:
			p[k] = c
		}
	}
	return p, errors.Join(errs...)
}

// Apply makes the palette of the settings the current one. Bad palette
// entries are logged and skipped.
func (s *Settings) Apply() {
	p, err := s.PaletteColors()
	errors.Log(err)
	colors.Current = p
}

// ApplyRoot applies the input timing to the given root.
func (s *Settings) ApplyRoot(rt *region.Root) {
	rt.DoubleClickInterval = time.Duration(s.DoubleClickInterval)
}

// ItemTemplate returns a template region holding the text padding and
// font of list items. Only those fields are set, so applying it leaves
// the colors of each item alone.
func (s *Settings) ItemTemplate() region.Region {
	tpl := region.NewPanel()
	tpl.Style = styles.Style{Padding: s.TextPadding, Font: s.Font.Style()}
	return tpl
}

// ApplyList applies the row settings and the [Settings.ItemTemplate]
// to the given list.
func ApplyList[T any](s *Settings, ls *list.ListRegion[T]) {
	ls.WheelRows = max(s.WheelRows, 1)
	ls.SetItemHeight(s.ItemHeight)
	ls.SetItemTemplate(s.ItemTemplate())
}
