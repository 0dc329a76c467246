// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package list provides a virtualized list region that shows the
// items of a [Source] through a small pool of recycled item regions,
// with scrolling and single selection.
package list

import (
	"log/slog"
	"slices"

	"rectui.dev/core/base/errors"
	"rectui.dev/core/events"
	"rectui.dev/core/math32"
	"rectui.dev/core/region"
)

// DefaultItemHeight is the default height of a row.
const DefaultItemHeight = 18

// ListRegion is a region that shows the items of a [Source] in rows of
// a fixed height. Only the rows that intersect the viewport are laid
// out, by a pool of item regions that are reused as the list scrolls.
// The pool only grows, up to the largest number of rows ever visible.
// The children of a ListRegion are its pool and must not be modified.
type ListRegion[T any] struct {
	region.Base

	// ItemHeight is the height of each row, at least 1.
	// Use [ListRegion.SetItemHeight] to change it.
	ItemHeight float32

	// WheelRows is the number of rows scrolled per wheel notch.
	WheelRows int

	// ItemTemplate, if set, is a region whose style is copied onto
	// each item of the pool with [region.Base.CopyStyleFrom].
	ItemTemplate region.Region

	source   Source[T]
	scrollY  float32
	selected Item[T]

	// selIndex is the source index of the selection, or -1.
	selIndex int

	itemClicked       []func(index int, content T)
	itemDoubleClicked []func(index int, content T)
	selectionChanged  []func()
}

// NewListRegion returns a new [ListRegion] showing the given source,
// added to the given parent, if any.
func NewListRegion[T any](source Source[T], parent ...region.Region) *ListRegion[T] {
	ls := region.New[ListRegion[T]](parent...)
	ls.SetSource(source)
	return ls
}

func (ls *ListRegion[T]) Init() {
	ls.ItemHeight = DefaultItemHeight
	ls.WheelRows = 2
	ls.selIndex = -1
	ls.OnScroll(func(e events.Event) {
		sc, ok := e.(*events.MouseScroll)
		if !ok || sc.Delta == 0 {
			return
		}
		// Delta counts notches, and a negative Delta scrolls down.
		step := float32(ls.WheelRows) * ls.itemHeight()
		ls.SetScrollY(ls.scrollY - sc.Delta*step)
		e.SetHandled()
	})
}

// Source returns the source of the list.
func (ls *ListRegion[T]) Source() Source[T] {
	return ls.source
}

// SetSource sets the source of the list and handles it as changed.
func (ls *ListRegion[T]) SetSource(src Source[T]) *ListRegion[T] {
	ls.source = src
	if src != nil {
		src.OnUpdated(func() {
			if ls.source != src || ls.IsDestroyed() {
				return
			}
			ls.sourceUpdated()
		})
	}
	ls.sourceUpdated()
	return ls
}

// sourceUpdated resets the view after the data changed as a whole:
// the scroll goes back to the top and the selection is cleared.
func (ls *ListRegion[T]) sourceUpdated() {
	ls.scrollY = 0
	ls.setSelection(-1)
	ls.Layout()
}

// Len returns the number of items in the source.
func (ls *ListRegion[T]) Len() int {
	if ls.source == nil {
		return 0
	}
	return ls.source.Len()
}

// SetItemHeight sets the row height, which is at least 1.
func (ls *ListRegion[T]) SetItemHeight(h float32) *ListRegion[T] {
	if !(h >= 1) {
		h = 1
	}
	if h == ls.ItemHeight {
		return ls
	}
	ls.ItemHeight = h
	ls.Layout()
	return ls
}

// itemHeight returns [ListRegion.ItemHeight] clamped to at least 1,
// for use before the next layout has clamped the field itself.
func (ls *ListRegion[T]) itemHeight() float32 {
	if !(ls.ItemHeight >= 1) {
		return 1
	}
	return ls.ItemHeight
}

// SetItemTemplate sets [ListRegion.ItemTemplate] and copies its style
// onto the items already in the pool.
func (ls *ListRegion[T]) SetItemTemplate(tpl region.Region) *ListRegion[T] {
	ls.ItemTemplate = tpl
	if tpl == nil {
		return ls
	}
	for _, k := range ls.Children() {
		k.AsRegion().CopyStyleFrom(tpl)
	}
	return ls
}

// ScrollY returns the scroll offset in pixels from the top of the data.
func (ls *ListRegion[T]) ScrollY() float32 {
	return ls.scrollY
}

// MaxScrollY returns the largest scroll offset, which shows the last
// row at the bottom of the viewport.
func (ls *ListRegion[T]) MaxScrollY() float32 {
	return math32.NonNegative(float32(ls.Len())*ls.itemHeight() - ls.Rect().H)
}

// SetScrollY sets the scroll offset, clamped to [0, MaxScrollY], and
// lays out the rows again.
func (ls *ListRegion[T]) SetScrollY(y float32) *ListRegion[T] {
	y = math32.Clamp(y, 0, ls.MaxScrollY())
	if y == ls.scrollY {
		return ls
	}
	ls.scrollY = y
	ls.Layout()
	return ls
}

// ScrollToIndex scrolls the least amount that makes the row of the
// given index fully visible.
func (ls *ListRegion[T]) ScrollToIndex(i int) *ListRegion[T] {
	ih := ls.itemHeight()
	top := float32(i) * ih
	switch {
	case top < ls.scrollY:
		ls.SetScrollY(top)
	case top+ih > ls.scrollY+ls.Rect().H:
		ls.SetScrollY(top + ih - ls.Rect().H)
	}
	return ls
}

// VisibleCount returns the number of rows laid out for the viewport,
// which is one more than fits so that partial rows leave no gap.
func (ls *ListRegion[T]) VisibleCount() int {
	return int(math32.Ceil(ls.Rect().H/ls.itemHeight())) + 1
}

// FirstIndex returns the source index of the top row.
func (ls *ListRegion[T]) FirstIndex() int {
	return int(math32.Floor(ls.scrollY / ls.itemHeight()))
}

// PoolSize returns the number of item regions the list has made.
func (ls *ListRegion[T]) PoolSize() int {
	return ls.NumChildren()
}

// Item returns the item region of the given pool slot.
func (ls *ListRegion[T]) Item(slot int) Item[T] {
	return ls.Child(slot).(Item[T])
}

// Layout positions the rows for the current scroll offset, growing the
// pool as needed, and binds each row to its source item. Rows past the
// end of the data have no content. Slots beyond the visible count are
// left empty with no height.
func (ls *ListRegion[T]) Layout() {
	if ls.source == nil {
		return
	}
	ls.ItemHeight = ls.itemHeight()
	ls.scrollY = math32.Clamp(ls.scrollY, 0, ls.MaxScrollY())
	rect := ls.Rect()
	ih := ls.ItemHeight
	count := ls.VisibleCount()
	first := ls.FirstIndex()
	n := ls.Len()
	for ls.NumChildren() < count {
		ls.newItem()
	}
	ls.selected = nil
	for i := range ls.NumChildren() {
		ib := ls.Item(i).AsItem()
		idx := first + i
		if i >= count {
			ib.SetRect(math32.NewRect(rect.X, rect.Bottom(), rect.W, 0))
			ib.ClearContent()
			ib.setSelected(false)
			continue
		}
		ib.SetRect(math32.NewRect(rect.X, rect.Y+float32(idx)*ih-ls.scrollY, rect.W, ih))
		if idx < n {
			ib.SetContent(ls.source.At(idx))
		} else {
			ib.ClearContent()
		}
		sel := idx == ls.selIndex
		ib.setSelected(sel)
		if sel {
			ls.selected = ls.Item(i)
		}
	}
	ls.Invalidate()
}

// newItem adds a new item region to the pool, wired to the list's
// click handlers.
func (ls *ListRegion[T]) newItem() {
	it := ls.source.NewItem()
	ib := it.AsRegion()
	if ls.ItemTemplate != nil {
		ib.CopyStyleFrom(ls.ItemTemplate)
	}
	ls.AddChild(it)
	ib.OnClick(func(e events.Event) {
		ls.itemClick(it, e, ls.itemClicked)
	})
	ib.OnDoubleClick(func(e events.Event) {
		ls.itemClick(it, e, ls.itemDoubleClicked)
	})
	slog.Debug("list: pool grew", "list", ls.String(), "size", ls.NumChildren())
}

// itemClick selects the item and notifies the given observers with the
// source index and content the item shows right now.
func (ls *ListRegion[T]) itemClick(it Item[T], e events.Event, observers []func(int, T)) {
	if e.MouseButton() != events.Left {
		return
	}
	v, ok := it.AsItem().Content()
	if !ok {
		return
	}
	index := ls.FirstIndex() + ls.IndexOf(it)
	e.SetHandled()
	ls.setSelection(index)
	for _, fun := range slices.Clone(observers) {
		fun(index, v)
	}
}

// Selected returns the item region showing the selected item, or nil
// if there is no selection or it is scrolled out of view.
func (ls *ListRegion[T]) Selected() Item[T] {
	return ls.selected
}

// SelectedIndex returns the source index of the selection and whether
// there is one.
func (ls *ListRegion[T]) SelectedIndex() (int, bool) {
	return ls.selIndex, ls.selIndex >= 0
}

// Select selects the item of the given source index. An out of range
// index is a programmer error and panics.
func (ls *ListRegion[T]) Select(index int) *ListRegion[T] {
	if index < 0 || index >= ls.Len() {
		errors.Misuse("ListRegion.Select", "index %d out of range with length %d", index, ls.Len())
	}
	ls.setSelection(index)
	return ls
}

// ClearSelection clears the selection.
func (ls *ListRegion[T]) ClearSelection() *ListRegion[T] {
	ls.setSelection(-1)
	return ls
}

// setSelection makes the given source index (or -1 for none) the
// selection. The previous item is unselected before the new one is
// selected, and the selection changed observers are called once if the
// selection changed.
func (ls *ListRegion[T]) setSelection(index int) {
	if index == ls.selIndex {
		return
	}
	if ls.selected != nil {
		ls.selected.AsItem().setSelected(false)
		ls.selected = nil
	}
	ls.selIndex = index
	if slot := index - ls.FirstIndex(); index >= 0 && slot >= 0 && slot < min(ls.VisibleCount(), ls.NumChildren()) {
		ls.selected = ls.Item(slot)
		ls.selected.AsItem().setSelected(true)
	}
	for _, fun := range slices.Clone(ls.selectionChanged) {
		fun()
	}
}

// OnItemClicked adds a function called with the source index and the
// content of an item when it is clicked with the left button.
func (ls *ListRegion[T]) OnItemClicked(fun func(index int, content T)) *ListRegion[T] {
	ls.itemClicked = append(ls.itemClicked, fun)
	return ls
}

// OnItemDoubleClicked adds a function called with the source index and
// the content of an item when it is double clicked with the left button.
func (ls *ListRegion[T]) OnItemDoubleClicked(fun func(index int, content T)) *ListRegion[T] {
	ls.itemDoubleClicked = append(ls.itemDoubleClicked, fun)
	return ls
}

// OnSelectionChanged adds a function called when the selection changes.
func (ls *ListRegion[T]) OnSelectionChanged(fun func()) *ListRegion[T] {
	ls.selectionChanged = append(ls.selectionChanged, fun)
	return ls
}
