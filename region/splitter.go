// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"rectui.dev/core/colors"
	"rectui.dev/core/draw"
	"rectui.dev/core/events"
	"rectui.dev/core/math32"
)

// Directions are the directions in which a [Splitter] places its panes.
type Directions int32

const (
	// Horizontal places the first pane left of the second.
	Horizontal Directions = iota

	// Vertical places the first pane above the second.
	Vertical
)

// Splitter is a region that splits its rectangle between its first two
// children, with a bar between them that can be dragged to move the
// split. Children beyond the second get an empty rectangle.
type Splitter struct {
	Base

	// Direction is the direction in which the panes are placed.
	Direction Directions

	// Split is the fraction of the available length given to the first
	// pane, in [0, 1].
	Split float32

	// BarWidth is the thickness of the bar between the panes.
	BarWidth float32

	// MinPane is the minimum length of each pane when dragging.
	MinPane float32

	dragging bool
}

// NewSplitter returns a new [Splitter] in the given direction, added to
// the given parent, if any.
func NewSplitter(dir Directions, parent ...Region) *Splitter {
	sp := New[Splitter](parent...)
	sp.Direction = dir
	return sp
}

func (sp *Splitter) Init() {
	sp.Split = 0.5
	sp.BarWidth = 4
	sp.MinPane = 16
	sp.Style.Normal = colors.Splitter
	sp.Style.Hover = colors.Splitter
	sp.Style.Active = colors.Splitter
	sp.Style.BorderNormal = colors.NoKey
	sp.Style.BorderHover = colors.NoKey
	sp.Style.BorderActive = colors.NoKey

	// presses that reach the splitter itself are on the bar
	sp.On(events.MouseDown, func(e events.Event) {
		if sp.barRect().ContainsPoint(e.Pos()) {
			sp.dragging = true
			e.SetHandled()
		}
	})
	sp.On(events.MouseMove, func(e events.Event) {
		if !sp.dragging || !sp.IsActive() {
			sp.dragging = false
			return
		}
		sp.dragTo(e.Pos())
		e.SetHandled()
	})
	sp.On(events.MouseUp, func(e events.Event) {
		sp.dragging = false
	})
}

// SetSplit sets the split fraction, clamped to [0, 1].
func (sp *Splitter) SetSplit(split float32) *Splitter {
	split = math32.Clamp(split, 0, 1)
	if split == sp.Split {
		return sp
	}
	sp.Split = split
	sp.NeedsLayout()
	return sp
}

// length returns the length available to the panes.
func (sp *Splitter) length() float32 {
	if sp.Direction == Horizontal {
		return math32.NonNegative(sp.rect.W - sp.BarWidth)
	}
	return math32.NonNegative(sp.rect.H - sp.BarWidth)
}

// barRect returns the rectangle of the bar.
func (sp *Splitter) barRect() math32.Rect {
	first := math32.Round(sp.length() * sp.Split)
	if sp.Direction == Horizontal {
		return math32.NewRect(sp.rect.X+first, sp.rect.Y, sp.BarWidth, sp.rect.H)
	}
	return math32.NewRect(sp.rect.X, sp.rect.Y+first, sp.rect.W, sp.BarWidth)
}

func (sp *Splitter) dragTo(pt math32.Vector2) {
	n := sp.length()
	if n <= 0 {
		return
	}
	pos := pt.X - sp.rect.X
	if sp.Direction == Vertical {
		pos = pt.Y - sp.rect.Y
	}
	pos -= sp.BarWidth / 2
	lo, hi := sp.MinPane, n-sp.MinPane
	if lo > hi {
		lo, hi = n/2, n/2
	}
	sp.SetSplit(math32.Clamp(pos, lo, hi) / n)
}

func (sp *Splitter) Layout() {
	bar := sp.barRect()
	for i, k := range sp.children {
		kb := k.AsRegion()
		switch {
		case i == 0 && sp.Direction == Horizontal:
			kb.SetRect(math32.NewRect(sp.rect.X, sp.rect.Y, bar.X-sp.rect.X, sp.rect.H))
		case i == 0:
			kb.SetRect(math32.NewRect(sp.rect.X, sp.rect.Y, sp.rect.W, bar.Y-sp.rect.Y))
		case i == 1 && sp.Direction == Horizontal:
			kb.SetRect(math32.NewRect(bar.Right(), sp.rect.Y, sp.rect.Right()-bar.Right(), sp.rect.H))
		case i == 1:
			kb.SetRect(math32.NewRect(sp.rect.X, bar.Bottom(), sp.rect.W, sp.rect.Bottom()-bar.Bottom()))
		default:
			kb.SetRect(math32.NewRect(sp.rect.X, sp.rect.Y, 0, 0))
		}
	}
}

func (sp *Splitter) DrawSelf(p draw.Processor, isActive, isHover bool) {
	draw.Emit(p, sp.id, draw.RectCommands(sp.barRect(), sp.Style.FillColor(isActive, isHover), sp.Style.BorderColor(isActive, isHover)))
}
