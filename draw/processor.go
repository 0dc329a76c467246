// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draw

import (
	"slices"
)

// Processor is the sink that a rendering backend implements to consume
// draw commands. Commands arrive in paint order; later commands paint
// over earlier ones where they overlap. A processor may batch, or cache
// brushes and converted bitmaps, but must not reorder commands within a
// frame. Beginning and ending a frame is the backend's business and is
// not part of this interface.
type Processor interface {
	Submit(c Command)
}

// ProcessorFunc adapts a function into a [Processor].
type ProcessorFunc func(c Command)

func (f ProcessorFunc) Submit(c Command) {
	f(c)
}

// Funcs is a [Processor] that dispatches each command to the function
// for its kind. Nil functions skip their kind.
type Funcs struct {
	Rectangle func(c Command)
	Icon      func(c Command)
	ImageList func(c Command)
	Text      func(c Command)
	Scene     func(c Command)
}

func (f *Funcs) Submit(c Command) {
	var fun func(Command)
	switch c.Kind {
	case Rectangle:
		fun = f.Rectangle
	case Icon:
		fun = f.Icon
	case ImageList:
		fun = f.ImageList
	case Text:
		fun = f.Text
	case Scene:
		fun = f.Scene
	}
	if fun != nil {
		fun(c)
	}
}

// Recorder is a [Processor] that records commands, e.g. to hand a
// finished frame to another goroutine, diff it against the previous
// one, or test what a region emits.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) Submit(c Command) {
	r.Commands = append(r.Commands, c)
}

// Reset clears the recorded commands, keeping the slice memory for reuse.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.Commands)
}

// Kinds returns the kind of each recorded command, in order.
func (r *Recorder) Kinds() []Kinds {
	ks := make([]Kinds, len(r.Commands))
	for i, c := range r.Commands {
		ks[i] = c.Kind
	}
	return ks
}

// Replay submits all recorded commands to p in order.
func (r *Recorder) Replay(p Processor) {
	for _, c := range r.Commands {
		p.Submit(c)
	}
}

// Snapshot returns a copy of the recorded commands that is not
// affected by later use of the recorder.
func (r *Recorder) Snapshot() []Command {
	return slices.Clone(r.Commands)
}

// Changed returns whether two frames differ in any command.
func Changed(prev, next []Command) bool {
	return !slices.Equal(prev, next)
}
