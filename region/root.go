// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"log/slog"
	"slices"
	"time"

	"rectui.dev/core/colors"
	"rectui.dev/core/draw"
	"rectui.dev/core/events"
	"rectui.dev/core/math32"
	"rectui.dev/core/states"
)

// DefaultDoubleClickInterval is the default maximum time between two
// clicks that form a double click.
const DefaultDoubleClickInterval = 500 * time.Millisecond

// Root is the top of a region tree that is bound to a host surface.
// It receives host input in [Root.Dispatch], tracks which regions are
// hovered and pressed, synthesizes enter, leave, click and double click
// events, and emits frames in [Root.Redraw]. All of its methods must be
// called from the single UI thread.
type Root struct {
	Base

	// OnInvalidate is called when the tree goes from clean to dirty,
	// so the host can schedule a redraw. It is not called while a
	// redraw is in progress.
	OnInvalidate func()

	// DoubleClickInterval is the maximum time between two clicks on
	// the same region that form a double click.
	DoubleClickInterval time.Duration

	// hovered is the deepest region under the pointer.
	hovered Region

	// pressed is the region that received the MouseDown, which gets
	// the Click if the MouseUp is inside of it.
	pressed     Region
	pressButton events.Buttons

	lastClick struct {
		region Region
		button events.Buttons
		time   time.Time
	}

	drawing bool
}

// NewRoot returns a new initialized [Root] of the given size.
func NewRoot(w, h float32) *Root {
	rt := &Root{}
	Init(rt)
	rt.SetRect(math32.RectSize(w, h))
	return rt
}

func (rt *Root) Init() {
	rt.DoubleClickInterval = DefaultDoubleClickInterval
	rt.Style.Normal = colors.Background
	rt.Style.Hover = colors.Background
	rt.Style.Active = colors.Background
	rt.Style.BorderNormal = colors.NoKey
	rt.Style.BorderHover = colors.NoKey
	rt.Style.BorderActive = colors.NoKey
}

// Layout gives every child the full size of the root.
func (rt *Root) Layout() {
	for _, k := range rt.children {
		k.AsRegion().SetRect(rt.rect)
	}
}

// Hovered returns the deepest region under the pointer, or nil.
func (rt *Root) Hovered() Region {
	return rt.hovered
}

// Pressed returns the region holding the current press, or nil.
func (rt *Root) Pressed() Region {
	return rt.pressed
}

// Resize sets the size of the root and lays out the tree again.
func (rt *Root) Resize(w, h float32) {
	rt.SetRect(math32.NewRect(rt.rect.X, rt.rect.Y, w, h))
	rt.UpdateLayout()
}

// Redraw lays out and emits the whole tree to the processor if
// anything was invalidated since the last redraw, and returns whether
// it did. Hosts call it once per frame, between their own begin and end
// frame calls.
func (rt *Root) Redraw(p draw.Processor) bool {
	if !rt.dirty {
		return false
	}
	rt.Draw(p)
	return true
}

// Draw lays out and emits the whole tree to the processor
// unconditionally, and marks the tree clean.
func (rt *Root) Draw(p draw.Processor) {
	rt.drawing = true
	defer func() { rt.drawing = false }()
	rt.UpdateLayout()
	rt.This.DrawCommands(p, rt.IsActive(), rt.IsHovered())
	rt.clearDirty()
}

func (rt *Root) requestRedraw() {
	if rt.drawing || rt.OnInvalidate == nil {
		return
	}
	rt.OnInvalidate()
}

// Dispatch routes one host input event into the tree. Pointer events
// go to the deepest region under the pointer and bubble up to its
// ancestors until handled; if no child is under the pointer the root
// handles them. Moves and presses update the hover state, a press makes
// the pressed region active, and a release of the same button inside
// the pressed region sends it a Click (and a DoubleClick for a second
// quick click). A release outside the pressed region sends no Click.
func (rt *Root) Dispatch(e events.Event) {
	if rs, ok := e.(*events.WindowResize); ok {
		rt.Resize(rs.Size.X, rs.Size.Y)
		bubble(rt.This, e)
		return
	}
	rt.UpdateLayout()
	target := rt.HitTest(e.Pos())
	if target == nil {
		target = rt.This
	}
	switch e.Type() {
	case events.MouseMove:
		rt.setHovered(target)
		if rt.pressed != nil {
			bubble(rt.pressed, e)
			return
		}
		bubble(target, e)
	case events.MouseDown:
		rt.setHovered(target)
		bubble(target, e)
		rt.press(target, e)
	case events.MouseUp:
		rt.setHovered(target)
		bubble(target, e)
		rt.release(e)
	case events.Scroll:
		bubble(target, e)
	default:
		bubble(target, e)
	}
}

func (rt *Root) press(target Region, e events.Event) {
	if rt.pressed != nil {
		return
	}
	tb := target.AsRegion()
	if tb.IsDisabled() {
		return
	}
	rt.pressed = target
	rt.pressButton = e.MouseButton()
	tb.State.SetFlag(true, states.Active)
	tb.Invalidate()
}

func (rt *Root) release(e events.Event) {
	p := rt.pressed
	if p == nil || e.MouseButton() != rt.pressButton {
		return
	}
	rt.pressed = nil
	pb := p.AsRegion()
	pb.State.SetFlag(false, states.Active)
	pb.Invalidate()
	if pb.destroyed || !pb.rect.ContainsPoint(e.Pos()) {
		rt.lastClick.region = nil
		return
	}
	bubble(p, events.Derive(events.Click, e))
	lc := &rt.lastClick
	if lc.region == p && lc.button == e.MouseButton() && e.Time().Sub(lc.time) <= rt.DoubleClickInterval {
		lc.region = nil
		bubble(p, events.Derive(events.DoubleClick, e))
		return
	}
	lc.region = p
	lc.button = e.MouseButton()
	lc.time = e.Time()
}

// setHovered makes the given region the hovered one. Every region on
// the path from it to the root is hovered: regions that leave the path
// get a MouseLeave (deepest first) and regions that join it get a
// MouseEnter (outermost first). Enter and leave events do not bubble.
func (rt *Root) setHovered(target Region) {
	if target == rt.hovered {
		return
	}
	oldPath := pathToRoot(rt.hovered)
	newPath := pathToRoot(target)
	for _, r := range oldPath {
		if slices.Contains(newPath, r) {
			continue
		}
		rb := r.AsRegion()
		rb.State.SetFlag(false, states.Hovered)
		rb.Invalidate()
		rb.HandleEvent(events.NewMouse(events.MouseLeave, events.NoButton, rb.rect.Pos()))
	}
	for i := len(newPath) - 1; i >= 0; i-- {
		r := newPath[i]
		if slices.Contains(oldPath, r) {
			continue
		}
		rb := r.AsRegion()
		rb.State.SetFlag(true, states.Hovered)
		rb.Invalidate()
		rb.HandleEvent(events.NewMouse(events.MouseEnter, events.NoButton, rb.rect.Pos()))
	}
	rt.hovered = target
}

// forget drops every reference the root holds into the subtree of r,
// which is about to be removed from the tree.
func (rt *Root) forget(r Region) {
	in := func(k Region) bool {
		return k != nil && k.AsRegion().IsSelfOrAncestor(r)
	}
	if in(rt.hovered) {
		rt.hovered = r.AsRegion().parent
	}
	if in(rt.pressed) {
		rt.pressed = nil
	}
	if in(rt.lastClick.region) {
		rt.lastClick.region = nil
	}
	slog.Debug("region: removed from tree", "region", r.AsRegion().String())
}

// pathToRoot returns the region followed by its ancestors.
func pathToRoot(r Region) []Region {
	if r == nil {
		return nil
	}
	var path []Region
	r.AsRegion().WalkUp(func(k Region) bool {
		path = append(path, k)
		return Continue
	})
	return path
}
