// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Rect is an axis-aligned rectangle in backend-independent units,
// defined by its upper-left corner and its size. W and H are never
// negative on a Rect built through [NewRect] or the setters.
type Rect struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	W float32 `json:"w" yaml:"w"`
	H float32 `json:"h" yaml:"h"`
}

// NewRect returns a new [Rect], clamping negative sizes to zero.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: NonNegative(w), H: NonNegative(h)}
}

// RectSize returns a [Rect] at the origin with the given size.
func RectSize(w, h float32) Rect {
	return NewRect(0, 0, w, h)
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.X, r.Y, r.W, r.H)
}

// Pos returns the upper-left corner.
func (r Rect) Pos() Vector2 {
	return Vec2(r.X, r.Y)
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.W
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Y + r.H
}

// Clamped returns the rectangle with negative sizes clamped to zero.
func (r Rect) Clamped() Rect {
	return NewRect(r.X, r.Y, r.W, r.H)
}

// SetSize sets the size, clamping negative values to zero.
func (r *Rect) SetSize(w, h float32) {
	r.W = NonNegative(w)
	r.H = NonNegative(h)
}

// ContainsPoint returns whether the point lies within the rectangle.
// The left and top edges are inclusive, the right and bottom exclusive,
// so adjacent rectangles never both contain a point.
func (r Rect) ContainsPoint(pt Vector2) bool {
	return pt.X >= r.X && pt.X < r.Right() && pt.Y >= r.Y && pt.Y < r.Bottom()
}

// Inset returns the rectangle shrunk by the given amounts on each side.
// The resulting size is clamped to zero.
func (r Rect) Inset(left, top, right, bottom float32) Rect {
	return NewRect(r.X+left, r.Y+top, r.W-left-right, r.H-top-bottom)
}

// ToImage returns the rectangle as an [image.Rectangle], rounding the
// edges to the nearest integer.
func (r Rect) ToImage() image.Rectangle {
	return image.Rect(int(Round(r.X)), int(Round(r.Y)), int(Round(r.Right())), int(Round(r.Bottom())))
}

// ToFixed returns the rectangle as a [fixed.Rectangle26_6].
func (r Rect) ToFixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: Vec2(r.X, r.Y).ToFixed(),
		Max: Vec2(r.Right(), r.Bottom()).ToFixed(),
	}
}
