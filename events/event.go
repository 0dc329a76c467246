// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"time"

	"rectui.dev/core/math32"
)

// Event is the interface for all input events delivered to regions.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// AsBase returns the [Base] of the event.
	AsBase() *Base

	// Pos returns the position of the event in root coordinates.
	Pos() math32.Vector2

	// MouseButton returns the button, or [NoButton].
	MouseButton() Buttons

	// Time returns the time the event happened at.
	Time() time.Time

	// IsHandled returns whether the event has been handled.
	IsHandled() bool

	// SetHandled marks the event as handled, which stops further
	// listeners and bubbling to parents.
	SetHandled()

	// ClearHandled clears the handled flag, so the event can be
	// sent again.
	ClearHandled()
}

// Base is the base type for events, implementing [Event].
type Base struct {

	// Typ is the type of event.
	Typ Types

	// Where is the position of the event in root coordinates.
	Where math32.Vector2

	// Button is the mouse button being pressed or released, if relevant.
	Button Buttons

	// GenTime records the time when the event was first generated.
	GenTime time.Time

	// Handled is set when a listener handles the event.
	Handled bool
}

// NewBase returns a new [Base] event of the given type at the given
// position, stamped with the current time.
func NewBase(typ Types, where math32.Vector2) Base {
	return Base{Typ: typ, Where: where, GenTime: time.Now()}
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) AsBase() *Base {
	return ev
}

func (ev *Base) Pos() math32.Vector2 {
	return ev.Where
}

func (ev *Base) MouseButton() Buttons {
	return ev.Button
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

// SetTime sets the event time, which hosts use to pass through the
// native timestamp and tests use to control double click timing.
func (ev *Base) SetTime(t time.Time) {
	ev.GenTime = t
}

func (ev *Base) IsHandled() bool {
	return ev.Handled
}

func (ev *Base) SetHandled() {
	ev.Handled = true
}

func (ev *Base) ClearHandled() {
	ev.Handled = false
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Pos: %v, Time: %v}", ev.Typ, ev.Where, ev.GenTime.Format("04:05.000"))
}
