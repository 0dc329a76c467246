// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rectui.dev/core/draw"
	"rectui.dev/core/math32"
	"rectui.dev/core/region"
)

type entry struct {
	name  string
	isDir bool
}

func entryName(e entry) string { return e.name }

func TestItemContent(t *testing.T) {
	it := NewTextItem[int](nil)
	_, ok := it.Content()
	assert.False(t, ok)

	it.SetContent(0)
	v, ok := it.Content()
	assert.True(t, ok, "zero is valid content")
	assert.Equal(t, 0, v)

	it.ClearContent()
	_, ok = it.Content()
	assert.False(t, ok)
}

func TestTextItemDraw(t *testing.T) {
	it := NewTextItem(func(v int) string { return "#" + string(rune('0'+v)) })
	it.SetRect(math32.NewRect(0, 10, 100, 18))
	rec := &draw.Recorder{}
	it.DrawCommands(rec, false, false)
	assert.Zero(t, rec.Len(), "no content draws nothing")

	it.SetContent(4)
	it.DrawCommands(rec, false, true)
	require.Equal(t, []draw.Kinds{draw.Rectangle, draw.Text}, rec.Kinds())
	txt := rec.Commands[1]
	assert.Equal(t, "#4", txt.Text)
	assert.Equal(t, math32.NewRect(21, 13, 74, 13), txt.Rect)
	assert.Equal(t, float32(13), txt.FontSize)
	assert.Equal(t, it.ID(), txt.Region)

	rec.Reset()
	plain := NewTextItem[int](nil)
	plain.SetRect(math32.RectSize(100, 18))
	plain.SetContent(42)
	plain.DrawCommands(rec, false, false)
	assert.Equal(t, "42", rec.Commands[1].Text)
}

func TestIconTextItem(t *testing.T) {
	it := NewIconTextItem(entryName, func(e entry) draw.Handle {
		if e.isDir {
			return 1
		}
		return 0
	})
	it.SetRect(math32.NewRect(0, 0, 100, 18))
	it.SetContent(entry{"src", true})
	assert.Equal(t, math32.NewRect(4, 3, 13, 13), it.IconRect())

	rec := &draw.Recorder{}
	it.DrawCommands(rec, false, false)
	require.Equal(t, []draw.Kinds{draw.Rectangle, draw.Icon, draw.Text}, rec.Kinds())
	assert.Equal(t, draw.Handle(1), rec.Commands[1].Icon)
	assert.Equal(t, "src", rec.Commands[2].Text)

	rec.Reset()
	it.SetContent(entry{"go.mod", false})
	it.DrawCommands(rec, false, false)
	assert.Equal(t, []draw.Kinds{draw.Rectangle, draw.Text}, rec.Kinds(), "zero icon")

	rec.Reset()
	it.SetImageList(9, func(e entry) int {
		if e.isDir {
			return 3
		}
		return 4
	})
	it.DrawCommands(rec, false, false)
	require.Equal(t, []draw.Kinds{draw.Rectangle, draw.ImageList, draw.Text}, rec.Kinds())
	assert.Equal(t, draw.Handle(9), rec.Commands[1].Icon)
	assert.Equal(t, 4, rec.Commands[1].ImageListIndex)
}

func TestSliceSource(t *testing.T) {
	src := NewSliceSource("a", "b")
	assert.Equal(t, 2, src.Len())
	assert.Equal(t, "b", src.At(1))
	assert.Panics(t, func() { src.At(2) })

	n := 0
	src.OnUpdated(func() { n++ })
	src.Set([]string{"c"})
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"c"}, src.Items())

	_, ok := src.NewItem().(*TextItem[string])
	assert.True(t, ok)

	src.SetNewItem(func() Item[string] { return NewIconTextItem[string](nil, nil) })
	_, ok = src.NewItem().(*IconTextItem[string])
	assert.True(t, ok)
}

func TestListWithIconItems(t *testing.T) {
	src := NewSliceSource(entry{"a", true}, entry{"b", false})
	src.SetNewItem(func() Item[entry] {
		return NewIconTextItem(entryName, func(e entry) draw.Handle { return 5 })
	})
	rt := region.NewRoot(100, 36)
	ls := NewListRegion[entry](src, rt)
	rt.UpdateLayout()

	rec := &draw.Recorder{}
	rt.Draw(rec)
	icons := 0
	for _, c := range rec.Commands {
		if c.Kind == draw.Icon {
			icons++
		}
	}
	assert.Equal(t, 2, icons)
	assert.Equal(t, 3, ls.PoolSize())
}
