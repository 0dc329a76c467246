// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package list

import (
	"slices"

	"rectui.dev/core/base/errors"
)

// Source is the data behind a [ListRegion]. It is read from the UI
// thread only; data loaded in the background must be published on the
// UI thread, which then fires the update notification.
type Source[T any] interface {

	// Len returns the number of items.
	Len() int

	// At returns the item at the given index, in [0, Len).
	At(i int) T

	// OnUpdated registers a function that is called after the data
	// changes as a whole.
	OnUpdated(fun func())

	// NewItem returns a new item region able to show one T. The list
	// calls it only when its pool of items needs to grow.
	NewItem() Item[T]
}

// SliceSource is a [Source] backed by a slice.
type SliceSource[T any] struct {

	// NewItemFunc makes the item regions; it defaults to a
	// [TextItem] that formats the value with fmt.
	NewItemFunc func() Item[T]

	items   []T
	updated []func()
}

// NewSliceSource returns a new [SliceSource] holding the given items.
func NewSliceSource[T any](items ...T) *SliceSource[T] {
	return &SliceSource[T]{items: items}
}

// SetNewItem sets [SliceSource.NewItemFunc].
func (ss *SliceSource[T]) SetNewItem(fun func() Item[T]) *SliceSource[T] {
	ss.NewItemFunc = fun
	return ss
}

func (ss *SliceSource[T]) Len() int {
	return len(ss.items)
}

// At returns the item at the given index. An out of range index is a
// programmer error and panics.
func (ss *SliceSource[T]) At(i int) T {
	if i < 0 || i >= len(ss.items) {
		errors.Misuse("SliceSource.At", "index %d out of range with length %d", i, len(ss.items))
	}
	return ss.items[i]
}

func (ss *SliceSource[T]) OnUpdated(fun func()) {
	ss.updated = append(ss.updated, fun)
}

func (ss *SliceSource[T]) NewItem() Item[T] {
	if ss.NewItemFunc != nil {
		return ss.NewItemFunc()
	}
	return NewTextItem[T](nil)
}

// Items returns the current items. The slice must not be modified.
func (ss *SliceSource[T]) Items() []T {
	return ss.items
}

// Set replaces the items and notifies the update listeners. It must be
// called on the UI thread.
func (ss *SliceSource[T]) Set(items []T) {
	ss.items = items
	for _, fun := range slices.Clone(ss.updated) {
		fun()
	}
}
