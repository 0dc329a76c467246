// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Types determines the type of input event, and also the
// level at which one can select which events to listen to.
// The type includes both the source and the "action" of the
// event (e.g., MouseDown and MouseUp are separate event types).
// Unless otherwise noted, all events are Unique, meaning they are
// never compressed in a [Queue].
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down. See Button for which.
	// See Click for a synthetic event representing a MouseDown followed by MouseUp
	// on the same region; often that is the most useful.
	MouseDown

	// MouseUp happens when a mouse button is released. See Button for which.
	MouseUp

	// MouseMove is sent when the pointer moves. These can be numerous
	// and are not unique: consecutive moves are compressed in a [Queue].
	MouseMove

	// Click represents a MouseDown followed by MouseUp on the same
	// region, with the same button. A release outside of the region
	// that received the MouseDown does not produce a Click.
	Click

	// DoubleClick represents two Click events on the same region, with
	// the same button, within the double click interval. It is sent
	// after the second Click.
	DoubleClick

	// MouseEnter is when the pointer enters the bounds of a region.
	// It is used for setting the Hovered state.
	MouseEnter

	// MouseLeave is when the pointer leaves the bounds of a region
	// that previously had a MouseEnter event.
	MouseLeave

	// Scroll is for scroll wheel events. These are not unique,
	// and Delta is summed during compression.
	Scroll

	// Resize is sent by the host when the viewport changes size.
	// It is not unique; only the last size matters.
	Resize

	// TypesN is the number of event types.
	TypesN
)

var typeNames = [...]string{
	UnknownType: "UnknownType",
	MouseDown:   "MouseDown",
	MouseUp:     "MouseUp",
	MouseMove:   "MouseMove",
	Click:       "Click",
	DoubleClick: "DoubleClick",
	MouseEnter:  "MouseEnter",
	MouseLeave:  "MouseLeave",
	Scroll:      "Scroll",
	Resize:      "Resize",
}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return fmt.Sprintf("Types(%d)", int32(tp))
	}
	return typeNames[tp]
}

// IsUnique returns whether events of this type must never be
// compressed with a preceding event of the same type.
func (tp Types) IsUnique() bool {
	switch tp {
	case MouseMove, Scroll, Resize:
		return false
	}
	return true
}

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

func (b Buttons) String() string {
	switch b {
	case NoButton:
		return "NoButton"
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Buttons(%d)", int32(b))
}
