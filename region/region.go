// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package region provides the region tree: rectangular nodes that own
// their layout, input handling and draw command output, plus the
// [Root] that routes host input into the tree and drives redraws.
package region

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"rectui.dev/core/draw"
	"rectui.dev/core/events"
	"rectui.dev/core/math32"
	"rectui.dev/core/states"
	"rectui.dev/core/styles"
)

// Region is the interface that all regions satisfy. The core region
// functionality is defined on [Base], and all higher-level region
// types must embed it. This interface only contains the methods that
// higher-level region types may need to override. You can call
// [Region.AsRegion] to get the [Base] of a Region and access the core
// region functionality.
type Region interface {

	// AsRegion returns the [Base] of this Region.
	AsRegion() *Base

	// Init is called once when the region is first initialized,
	// before it is added to a parent. It is the place to set the
	// style and add event listeners.
	Init()

	// Layout recomputes the rectangles of the children from the
	// region's own rectangle and state. It must be idempotent: calling
	// it again without a state change yields the same rectangles.
	// It does not recurse; the tree driver visits children afterwards.
	Layout()

	// DrawSelf emits the draw commands for this region alone.
	DrawSelf(p draw.Processor, isActive, isHover bool)

	// DrawCommands emits the draw commands for this region and its
	// descendants in paint order. The default [Base.DrawCommands] draws
	// the region and then its children in order. It must not mutate
	// the region tree.
	DrawCommands(p draw.Processor, isActive, isHover bool)

	// Destroy recursively destroys the region and its subtree.
	// Region types that hold extra resources can implement it; they
	// must call [Base.Destroy] at the end.
	Destroy()
}

// Continue and Break are the return values of walk functions.
const (
	Continue = true
	Break    = false
)

// lastID is the last region id handed out.
var lastID atomic.Uint64

// Base implements the [Region] interface and provides the core
// functionality of regions. All higher-level region types must embed it.
//
// All regions must be initialized through [Init], [New], a type
// specific constructor, or by being added with [Base.AddChild], so that
// [Base.This] is set and [Region.Init] is called.
type Base struct {

	// Name is an optional name used in String and for finding regions.
	// It defaults to the type name.
	Name string

	// This is the region as its true underlying type, which allows
	// methods defined on Base to call methods overridden by
	// higher-level types.
	This Region

	// Style holds the color keys, padding and font of the region.
	Style styles.Style

	// State holds the interaction state flags (hovered, active, ...).
	// The [Root] maintains Hovered and Active.
	State states.States

	// Listeners are the event listeners of the region; see [Base.On].
	Listeners events.Listeners

	id          uint64
	rect        math32.Rect
	parent      Region
	children    []Region
	dirty       bool
	needsLayout bool
	destroyed   bool
}

// Init initializes the given region if it has not been initialized
// yet: it sets [Base.This], assigns an id, applies the default style
// and calls [Region.Init].
func Init(r Region) {
	b := r.AsRegion()
	if b.This == r {
		return
	}
	b.This = r
	b.id = lastID.Add(1)
	b.Style.Defaults()
	if b.Name == "" {
		t := reflect.TypeOf(r)
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		b.Name = t.Name()
	}
	b.needsLayout = true
	b.dirty = true
	r.Init()
}

// New returns a new initialized region of type T, added as the last
// child of the given parent if one is given.
func New[T any, PT interface {
	*T
	Region
}](parent ...Region) PT {
	r := PT(new(T))
	Init(r)
	if len(parent) > 0 && parent[0] != nil {
		parent[0].AsRegion().AddChild(r)
	}
	return r
}

// AsRegion returns the Base itself.
func (b *Base) AsRegion() *Base {
	return b
}

// Init does nothing by default.
func (b *Base) Init() {}

// Layout does nothing by default: children of a plain region keep the
// rectangles the application gives them.
func (b *Base) Layout() {}

// ID returns the unique id of the region, which is also stamped on
// the draw commands it emits.
func (b *Base) ID() uint64 {
	return b.id
}

func (b *Base) String() string {
	if b == nil {
		return "nil"
	}
	return fmt.Sprintf("%s#%d", b.Name, b.id)
}

// Rect returns the bounds of the region, in root coordinates.
func (b *Base) Rect() math32.Rect {
	return b.rect
}

// SetRect sets the bounds of the region, clamping negative sizes to
// zero. If the bounds change, the region needs layout.
func (b *Base) SetRect(r math32.Rect) {
	r = r.Clamped()
	if r == b.rect {
		return
	}
	b.rect = r
	b.NeedsLayout()
}

// IsHovered returns whether the pointer is over the region.
func (b *Base) IsHovered() bool {
	return b.State.HasFlag(states.Hovered)
}

// IsActive returns whether the region is being pressed.
func (b *Base) IsActive() bool {
	return b.State.HasFlag(states.Active)
}

// IsDisabled returns whether the region ignores input.
func (b *Base) IsDisabled() bool {
	return b.State.HasFlag(states.Disabled)
}

// SetDisabled sets whether the region ignores input.
func (b *Base) SetDisabled(disabled bool) {
	if b.IsDisabled() == disabled {
		return
	}
	b.State.SetFlag(disabled, states.Disabled)
	b.Invalidate()
}

// IsDirty returns whether the region has been invalidated since the
// last redraw.
func (b *Base) IsDirty() bool {
	return b.dirty
}

// IsDestroyed returns whether the region has been destroyed.
func (b *Base) IsDestroyed() bool {
	return b.destroyed
}
