// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draw

import (
	"iter"

	"rectui.dev/core/colors"
	"rectui.dev/core/math32"
	"rectui.dev/core/styles"
)

// The factory functions below are pure: each returns a sequence that
// can be ranged over any number of times and always yields the same
// commands for the same arguments. A layer without a color, an empty
// text or a zero handle yields nothing.

// RectCommands returns the commands for a rectangle with the given fill
// and border. It yields nothing if both colors are absent.
func RectCommands(rect math32.Rect, fill, border colors.Option) iter.Seq[Command] {
	return func(yield func(Command) bool) {
		if !fill.Valid && !border.Valid {
			return
		}
		yield(Command{Kind: Rectangle, Rect: rect.Clamped(), Fill: fill, Border: border})
	}
}

// IconCommands returns the commands for drawing the given icon into rect.
func IconCommands(rect math32.Rect, icon Handle) iter.Seq[Command] {
	return func(yield func(Command) bool) {
		if icon == 0 {
			return
		}
		yield(Command{Kind: Icon, Rect: rect.Clamped(), Icon: icon})
	}
}

// ImageListCommands returns the commands for drawing frame index of
// the given image list into rect.
func ImageListCommands(rect math32.Rect, list Handle, index int) iter.Seq[Command] {
	return func(yield func(Command) bool) {
		if list == 0 || index < 0 {
			return
		}
		yield(Command{Kind: ImageList, Rect: rect.Clamped(), Icon: list, ImageListIndex: index})
	}
}

// TextCommands returns the commands for drawing text in rect. The text
// rectangle is rect minus the padding, and the effective font size is
// the font size minus the top and bottom padding, so that the text
// stays inside its padded box.
func TextCommands(rect math32.Rect, padding styles.Sides, color colors.Option, font styles.Font, text string) iter.Seq[Command] {
	return func(yield func(Command) bool) {
		if text == "" || !color.Valid {
			return
		}
		size := font.Size - padding.Vertical()
		if size <= 0 {
			return
		}
		yield(Command{
			Kind:      Text,
			Rect:      padding.Inset(rect),
			Text:      text,
			TextColor: color,
			Font:      font,
			FontSize:  size,
		})
	}
}

// SceneCommands returns the commands for rendering the given scene
// through the camera into rect.
func SceneCommands(rect math32.Rect, scene SceneRef, camera Camera) iter.Seq[Command] {
	return func(yield func(Command) bool) {
		if scene == 0 {
			return
		}
		yield(Command{Kind: Scene, Rect: rect.Clamped(), Scene: scene, Camera: camera})
	}
}

// Emit submits all commands of the sequence to the processor in order,
// stamping them with the given region id.
func Emit(p Processor, region uint64, seq iter.Seq[Command]) {
	for c := range seq {
		c.Region = region
		p.Submit(c)
	}
}
