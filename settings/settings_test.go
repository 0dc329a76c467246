// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
	"rectui.dev/core/colors"
	"rectui.dev/core/list"
	"rectui.dev/core/region"
	"rectui.dev/core/styles"
)

const testTOML = `
item_height = 24
double_click_interval = "300ms"

[font]
family = "Segoe UI"
size = 16
bold = true

[palette]
list-item-hover = "#ff0000"
panel-border = "none"
`

const testYAML = `
item_height: 20
wheel_rows: 3
text_padding:
  top: 1
  right: 2
  bottom: 3
  left: 4
palette:
  text: navy
`

func TestDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, float32(18), s.ItemHeight)
	assert.Equal(t, 2, s.WheelRows)
	assert.Equal(t, Duration(500*time.Millisecond), s.DoubleClickInterval)
	assert.Equal(t, styles.DefaultFont(), s.Font.Style())
}

func TestOpenTOML(t *testing.T) {
	fnm := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(fnm, []byte(testTOML), 0o644))
	s, err := Open(fnm)
	require.NoError(t, err)
	assert.Equal(t, float32(24), s.ItemHeight)
	assert.Equal(t, 2, s.WheelRows, "missing values keep their defaults")
	assert.Equal(t, Duration(300*time.Millisecond), s.DoubleClickInterval)
	assert.Equal(t, "Segoe UI", s.Font.Family)
	assert.Equal(t, styles.DefaultFont().Bold().Aspect, s.Font.Style().Aspect)

	p, err := s.PaletteColors()
	require.NoError(t, err)
	assert.Equal(t, colornames.Red, p[colors.ListItemHover])
	_, ok := p[colors.PanelBorder]
	assert.False(t, ok)
}

func TestOpenYAML(t *testing.T) {
	fnm := filepath.Join(t.TempDir(), "settings.yml")
	require.NoError(t, os.WriteFile(fnm, []byte(testYAML), 0o644))
	s, err := Open(fnm)
	require.NoError(t, err)
	assert.Equal(t, float32(20), s.ItemHeight)
	assert.Equal(t, 3, s.WheelRows)
	assert.Equal(t, styles.Sides{Top: 1, Right: 2, Bottom: 3, Left: 4}, s.TextPadding)
	p, err := s.PaletteColors()
	require.NoError(t, err)
	assert.Equal(t, colornames.Navy, p[colors.Text])
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "settings.json"))
	assert.ErrorContains(t, err, "unsupported")
	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("item_height = ["), 0o644))
	_, err = Open(bad)
	assert.ErrorContains(t, err, "decoding TOML")
}

func TestVersion(t *testing.T) {
	s := New()
	assert.Equal(t, Version, s.Version)
	assert.NoError(t, s.Read([]byte(`version = "1.0.3"`), TOML))
	assert.ErrorContains(t, s.Read([]byte(`version = "2.0.0"`), TOML), "not supported")
	assert.Error(t, s.Read([]byte("version: banana"), YAML))
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"s.toml", "s.yaml"} {
		t.Run(name, func(t *testing.T) {
			s := New()
			s.ItemHeight = 30
			s.DoubleClickInterval = Duration(time.Second)
			s.Palette = map[string]string{"button-normal": "#102030"}
			fnm := filepath.Join(t.TempDir(), name)
			require.NoError(t, s.Save(fnm))
			got, err := Open(fnm)
			require.NoError(t, err)
			assert.Equal(t, s, got)
		})
	}
}

func TestPaletteErrors(t *testing.T) {
	s := New()
	s.Palette = map[string]string{"no-such-key": "red", "text": "#12", "background": "black"}
	p, err := s.PaletteColors()
	assert.Error(t, err)
	assert.Equal(t, colornames.Black, p[colors.Background])
	assert.Equal(t, colors.DefaultPalette()[colors.Text], p[colors.Text])
}

func TestApply(t *testing.T) {
	old := colors.Current
	t.Cleanup(func() { colors.Current = old })

	s := New()
	s.Palette = map[string]string{"splitter": "#000000"}
	s.Apply()
	assert.Equal(t, colors.Some(colornames.Black), colors.Resolve(colors.Splitter))

	rt := region.NewRoot(100, 100)
	s.DoubleClickInterval = Duration(time.Second)
	s.ApplyRoot(rt)
	assert.Equal(t, time.Second, rt.DoubleClickInterval)

	s.ItemHeight = 25
	s.WheelRows = 0
	ls := list.NewListRegion[string](list.NewSliceSource("a"), rt)
	ApplyList(s, ls)
	assert.Equal(t, float32(25), ls.ItemHeight)
	assert.Equal(t, 1, ls.WheelRows)

	it := ls.Item(0).AsItem()
	assert.Equal(t, s.TextPadding, it.Style.Padding)
	assert.Equal(t, s.Font.Style(), it.Style.Font)
	assert.Equal(t, colors.ListItemNormal, it.Style.Normal, "colors are not part of the template")

	s.TextPadding = styles.NewSides(1)
	ApplyList(s, ls)
	assert.Equal(t, styles.NewSides(1), it.Style.Padding)
}

func TestWatch(t *testing.T) {
	fnm := filepath.Join(t.TempDir(), "watch.toml")
	require.NoError(t, os.WriteFile(fnm, []byte("item_height = 20\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan *Settings, 16)
	require.NoError(t, Watch(ctx, fnm, func(s *Settings, err error) {
		if err == nil {
			got <- s
		}
	}))
	require.NoError(t, os.WriteFile(fnm, []byte("item_height = 40\n"), 0o644))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case s := <-got:
			if s.ItemHeight == 40 {
				return
			}
		case <-timeout:
			t.Fatal("no reload after the file changed")
		}
	}
}
