// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"rectui.dev/core/colors"
	"rectui.dev/core/draw"
	"rectui.dev/core/events"
	"rectui.dev/core/math32"
	"rectui.dev/core/styles"
)

// Button is a region with an optional icon and a text label that
// reports clicks through [Base.OnClick].
type Button struct {
	Base

	// Text is the label of the button.
	Text string

	// Icon is an optional platform icon drawn at the left.
	Icon draw.Handle
}

// NewButton returns a new [Button] with the given text, added to the
// given parent, if any.
func NewButton(text string, parent ...Region) *Button {
	bt := New[Button](parent...)
	bt.SetText(text)
	return bt
}

func (bt *Button) Init() {
	bt.Style.Normal = colors.ButtonNormal
	bt.Style.Hover = colors.ButtonHover
	bt.Style.Active = colors.ButtonActive
	bt.Style.BorderNormal = colors.ButtonBorder
	bt.Style.BorderHover = colors.ButtonBorder
	bt.Style.BorderActive = colors.ButtonBorder
	bt.Style.Padding = styles.NewSides(3, 6)
	bt.On(events.MouseDown, func(e events.Event) {
		e.SetHandled()
	})
}

// SetText sets the label.
func (bt *Button) SetText(text string) *Button {
	bt.Text = text
	bt.Invalidate()
	return bt
}

// SetIcon sets the icon.
func (bt *Button) SetIcon(icon draw.Handle) *Button {
	bt.Icon = icon
	bt.Invalidate()
	return bt
}

func (bt *Button) DrawSelf(p draw.Processor, isActive, isHover bool) {
	bt.Base.DrawSelf(p, isActive, isHover)
	textRect := bt.rect
	if bt.Icon != 0 {
		sz := bt.rect.H - bt.Style.Padding.Vertical()
		icon := math32.NewRect(bt.rect.X+bt.Style.Padding.Left, bt.rect.Y+bt.Style.Padding.Top, sz, sz)
		draw.Emit(p, bt.id, draw.IconCommands(icon, bt.Icon))
		textRect = math32.NewRect(icon.Right(), bt.rect.Y, bt.rect.Right()-icon.Right(), bt.rect.H)
	}
	draw.Emit(p, bt.id, draw.TextCommands(textRect, bt.Style.Padding, bt.Style.TextColor(isActive), bt.Style.Font, bt.Text))
}
