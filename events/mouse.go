// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"rectui.dev/core/math32"
)

// Mouse is a basic mouse event for all mouse events except Scroll.
type Mouse struct {
	Base
}

// NewMouse returns a new [Mouse] event of the given type,
// which is one of MouseDown, MouseUp or MouseMove from the host,
// or Click, DoubleClick, MouseEnter or MouseLeave when synthesized.
func NewMouse(typ Types, but Buttons, where math32.Vector2) *Mouse {
	ev := &Mouse{Base: NewBase(typ, where)}
	ev.Button = but
	return ev
}

// NewMouseMove returns a new MouseMove event.
func NewMouseMove(where math32.Vector2) *Mouse {
	return NewMouse(MouseMove, NoButton, where)
}

// NewMouseDown returns a new MouseDown event.
func NewMouseDown(but Buttons, where math32.Vector2) *Mouse {
	return NewMouse(MouseDown, but, where)
}

// NewMouseUp returns a new MouseUp event.
func NewMouseUp(but Buttons, where math32.Vector2) *Mouse {
	return NewMouse(MouseUp, but, where)
}

// Derive returns a new [Mouse] event of the given type with the same
// button, position and time as ev. It is used to synthesize Click,
// DoubleClick, MouseEnter and MouseLeave from host events.
func Derive(typ Types, ev Event) *Mouse {
	nb := *ev.AsBase()
	nb.Typ = typ
	nb.Handled = false
	return &Mouse{Base: nb}
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Time: %v}", ev.Type(), ev.Button, ev.Where, ev.GenTime.Format("04:05.000"))
}

// MouseScroll is for mouse wheel scrolling, recording the delta of
// the scroll in wheel notches. A negative Delta means the wheel was
// turned toward the user (scroll down), following the platform convention.
type MouseScroll struct {
	Base

	// Delta is the number of wheel notches. Hosts with
	// high-resolution wheels may report fractional values.
	Delta float32
}

// NewScroll returns a new Scroll event.
func NewScroll(where math32.Vector2, delta float32) *MouseScroll {
	return &MouseScroll{Base: NewBase(Scroll, where), Delta: delta}
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Time: %v}", ev.Type(), ev.Delta, ev.Where, ev.GenTime.Format("04:05.000"))
}

// WindowResize is sent by the host when the viewport changes size.
type WindowResize struct {
	Base

	// Size is the new viewport size.
	Size math32.Vector2
}

// NewResize returns a new Resize event.
func NewResize(w, h float32) *WindowResize {
	return &WindowResize{Base: NewBase(Resize, math32.Vector2{}), Size: math32.Vec2(w, h)}
}

func (ev *WindowResize) String() string {
	return fmt.Sprintf("%v{Size: %v}", ev.Type(), ev.Size)
}
