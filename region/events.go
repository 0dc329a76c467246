// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"rectui.dev/core/base/errors"
	"rectui.dev/core/events"
	"rectui.dev/core/math32"
)

// On adds the given event listener for the given event type.
// Listeners added later are called first, and calling stops once
// an event is handled.
func (b *Base) On(typ events.Types, fun func(e events.Event)) *Base {
	b.Listeners.Add(typ, fun)
	return b
}

// OnClick adds an event listener for [events.Click] events.
func (b *Base) OnClick(fun func(e events.Event)) *Base {
	return b.On(events.Click, fun)
}

// OnDoubleClick adds an event listener for [events.DoubleClick] events.
func (b *Base) OnDoubleClick(fun func(e events.Event)) *Base {
	return b.On(events.DoubleClick, fun)
}

// OnScroll adds an event listener for [events.Scroll] events.
func (b *Base) OnScroll(fun func(e events.Event)) *Base {
	return b.On(events.Scroll, fun)
}

// HandleEvent calls the listeners for the given event.
// Disabled regions do not handle events.
func (b *Base) HandleEvent(e events.Event) {
	if b.IsDisabled() {
		return
	}
	b.Listeners.Call(e)
}

// Send sends a new event of the given type to the region, bubbling to
// its ancestors until handled. If an original event is given, the new
// event copies its position, button and time; otherwise it is at the
// center of the region. It is mainly for programmatic activation and
// tests.
func (b *Base) Send(typ events.Types, orig ...events.Event) {
	var e events.Event
	if len(orig) > 0 && orig[0] != nil {
		e = events.Derive(typ, orig[0])
	} else {
		r := b.rect
		e = events.NewMouse(typ, events.Left, math32.Vec2(r.X+r.W/2, r.Y+r.H/2))
	}
	bubble(b.This, e)
}

// HitTest returns the deepest region under the given point, testing
// children in reverse paint order so that the top-most wins. It
// returns the region itself if no child contains the point, and nil
// if the region does not contain it.
func (b *Base) HitTest(pt math32.Vector2) Region {
	if !b.rect.ContainsPoint(pt) {
		return nil
	}
	for i := len(b.children) - 1; i >= 0; i-- {
		if h := b.children[i].AsRegion().HitTest(pt); h != nil {
			return h
		}
	}
	return b.This
}

// Dispatch routes the given host event through the [Root] of the
// region's tree. Dispatching on a region that is not in a tree with
// a Root is a programmer error and panics.
func (b *Base) Dispatch(e events.Event) {
	rt := b.Root()
	if rt == nil {
		errors.Misuse("Dispatch", "%v is not attached to a Root", b)
	}
	rt.Dispatch(e)
}

// bubble sends the event to the target and then to its ancestors,
// until it is handled.
func bubble(target Region, e events.Event) {
	for r := target; r != nil && !e.IsHandled(); r = r.AsRegion().parent {
		r.AsRegion().HandleEvent(e)
	}
}
