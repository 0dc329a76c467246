// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestParse(t *testing.T) {
	c, ok, err := Parse("#f00")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c)

	c, ok, err = Parse("#11223344")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{0x11, 0x22, 0x33, 0x44}, c)

	c, ok, err = Parse("CornflowerBlue")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, colornames.Cornflowerblue, c)

	_, ok, err = Parse("none")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = Parse("not-a-color")
	assert.Error(t, err)
	_, _, err = Parse("#12345")
	assert.Error(t, err)
}

func TestOptionText(t *testing.T) {
	var o Option
	assert.Equal(t, "none", o.String())

	require.NoError(t, o.UnmarshalText([]byte("#102030")))
	got, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0xff}, got)
	b, err := o.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#102030", string(b))

	require.NoError(t, o.UnmarshalText([]byte("none")))
	assert.False(t, o.Valid)
}

func TestKeyText(t *testing.T) {
	var k Key
	require.NoError(t, k.SetString("List-Item-Hover"))
	assert.Equal(t, ListItemHover, k)
	assert.Equal(t, "list-item-hover", k.String())
	assert.Error(t, k.SetString("nope"))
	assert.Len(t, KeyValues(), int(KeyN)-1)
}

func TestPaletteResolve(t *testing.T) {
	p := Palette{Text: colornames.Red}
	assert.Equal(t, Some(colornames.Red), p.Resolve(Text))
	assert.False(t, p.Resolve(Background).Valid)
	assert.False(t, p.Resolve(NoKey).Valid)

	def := DefaultPalette()
	for _, k := range KeyValues() {
		assert.True(t, def.Resolve(k).Valid, k.String())
	}
}

func TestShadeAndBlend(t *testing.T) {
	w := colornames.White
	d := Shade(w, 0.2)
	assert.Less(t, d.R, w.R)
	assert.Equal(t, w.A, d.A)

	assert.Equal(t, w, Blend(w, colornames.Black, 0))
	assert.Equal(t, colornames.Black, Blend(w, colornames.Black, 1))
}
