// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package list

import (
	"fmt"

	"rectui.dev/core/colors"
	"rectui.dev/core/draw"
	"rectui.dev/core/math32"
	"rectui.dev/core/region"
	"rectui.dev/core/states"
	"rectui.dev/core/styles"
)

// Item is a region that shows one value of a [Source] in a
// [ListRegion]. All item types embed [ItemBase].
type Item[T any] interface {
	region.Region

	// AsItem returns the [ItemBase] of the item.
	AsItem() *ItemBase[T]
}

// IconEmitter is implemented by items that draw an icon.
type IconEmitter interface {
	EmitIcon(p draw.Processor, isActive, isHover bool)
}

// TextEmitter is implemented by items that draw a text label.
type TextEmitter interface {
	EmitText(p draw.Processor, isActive, isHover bool)
}

// ItemBase is the base of all list items. It holds the optional
// content: recycled items past the end of the data have none and draw
// nothing.
type ItemBase[T any] struct {
	region.Base

	content    T
	hasContent bool
}

func (ib *ItemBase[T]) AsItem() *ItemBase[T] {
	return ib
}

func (ib *ItemBase[T]) Init() {
	ib.Style.Normal = colors.ListItemNormal
	ib.Style.Hover = colors.ListItemHover
	ib.Style.Active = colors.ListItemActive
	ib.Style.BorderNormal = colors.NoKey
	ib.Style.BorderHover = colors.NoKey
	ib.Style.BorderActive = colors.ListItemBorder
	ib.Style.Padding = styles.Sides{Top: 3, Right: 5, Bottom: 2, Left: 21}
}

// Content returns the content and whether the item has any.
func (ib *ItemBase[T]) Content() (T, bool) {
	return ib.content, ib.hasContent
}

// SetContent sets the content.
func (ib *ItemBase[T]) SetContent(v T) {
	ib.content = v
	ib.hasContent = true
	ib.Invalidate()
}

// ClearContent removes the content, so that the item draws nothing.
func (ib *ItemBase[T]) ClearContent() {
	if !ib.hasContent {
		return
	}
	var zero T
	ib.content = zero
	ib.hasContent = false
	ib.Invalidate()
}

// IsSelected returns whether the item is the selected one of its list.
func (ib *ItemBase[T]) IsSelected() bool {
	return ib.State.HasFlag(states.Selected)
}

func (ib *ItemBase[T]) setSelected(sel bool) {
	if ib.IsSelected() == sel {
		return
	}
	ib.State.SetFlag(sel, states.Selected)
	ib.Invalidate()
}

// DrawSelf draws the background, then the icon and the text for items
// that implement [IconEmitter] and [TextEmitter]. Selected items are
// drawn like active ones.
func (ib *ItemBase[T]) DrawSelf(p draw.Processor, isActive, isHover bool) {
	if !ib.hasContent {
		return
	}
	isActive = isActive || ib.IsSelected()
	rect := ib.Rect()
	draw.Emit(p, ib.ID(), draw.RectCommands(rect, ib.Style.FillColor(isActive, isHover), ib.Style.BorderColor(isActive, isHover)))
	if ie, ok := ib.This.(IconEmitter); ok {
		ie.EmitIcon(p, isActive, isHover)
	}
	if te, ok := ib.This.(TextEmitter); ok {
		te.EmitText(p, isActive, isHover)
	}
}

// TextItem is an item that shows a text label for its content.
type TextItem[T any] struct {
	ItemBase[T]

	// Label returns the label for a value. If it is nil, the value
	// is formatted with fmt.Sprint.
	Label func(v T) string
}

// NewTextItem returns a new [TextItem] with the given label function.
func NewTextItem[T any](label func(v T) string) *TextItem[T] {
	ti := region.New[TextItem[T]]()
	ti.Label = label
	return ti
}

func (ti *TextItem[T]) label() string {
	v, ok := ti.Content()
	if !ok {
		return ""
	}
	if ti.Label == nil {
		return fmt.Sprint(v)
	}
	return ti.Label(v)
}

func (ti *TextItem[T]) EmitText(p draw.Processor, isActive, isHover bool) {
	draw.Emit(p, ti.ID(), draw.TextCommands(ti.Rect(), ti.Style.Padding, ti.Style.TextColor(isActive), ti.Style.Font, ti.label()))
}

// IconTextItem is a [TextItem] with an icon in its left padding. The
// icon is either an image list entry, if ImageList and ImageIndex are
// set, or a platform icon from Icon.
type IconTextItem[T any] struct {
	TextItem[T]

	// Icon returns the icon for a value; zero draws no icon.
	Icon func(v T) draw.Handle

	// ImageList is the image list the icons are taken from.
	ImageList draw.Handle

	// ImageIndex returns the image list index for a value.
	ImageIndex func(v T) int
}

// NewIconTextItem returns a new [IconTextItem] with the given label
// and icon functions.
func NewIconTextItem[T any](label func(v T) string, icon func(v T) draw.Handle) *IconTextItem[T] {
	it := region.New[IconTextItem[T]]()
	it.Label = label
	it.Icon = icon
	return it
}

// SetImageList makes the item draw icons from the given image list.
func (it *IconTextItem[T]) SetImageList(list draw.Handle, index func(v T) int) *IconTextItem[T] {
	it.ImageList = list
	it.ImageIndex = index
	it.Invalidate()
	return it
}

// IconRect returns the square the icon is drawn in, centered in the
// left padding.
func (it *IconTextItem[T]) IconRect() math32.Rect {
	r := it.Rect()
	pad := it.Style.Padding
	sz := math32.NonNegative(r.H - pad.Vertical())
	x := r.X + math32.NonNegative((pad.Left-sz)/2)
	return math32.NewRect(x, r.Y+pad.Top, sz, sz)
}

func (it *IconTextItem[T]) EmitIcon(p draw.Processor, isActive, isHover bool) {
	v, ok := it.Content()
	if !ok {
		return
	}
	if it.ImageList != 0 && it.ImageIndex != nil {
		draw.Emit(p, it.ID(), draw.ImageListCommands(it.IconRect(), it.ImageList, it.ImageIndex(v)))
		return
	}
	if it.Icon != nil {
		draw.Emit(p, it.ID(), draw.IconCommands(it.IconRect(), it.Icon(v)))
	}
}
