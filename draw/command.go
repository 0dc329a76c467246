// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package draw provides the backend-agnostic draw commands that regions
// emit, the factory functions that build them, and the [Processor]
// interface that renderers implement to consume them.
package draw

import (
	"fmt"

	"rectui.dev/core/colors"
	"rectui.dev/core/math32"
	"rectui.dev/core/styles"
)

// Kinds are the kinds of draw [Command].
type Kinds int32

const (
	// Rectangle is a filled and/or bordered rectangle.
	Rectangle Kinds = iota

	// Icon is a platform icon drawn into the rectangle.
	Icon

	// ImageList is one frame of a platform image list.
	ImageList

	// Text is a run of text laid out in the rectangle.
	Text

	// Scene is an embedded 3D scene viewed through a camera.
	Scene

	// KindsN is the number of kinds.
	KindsN
)

var kindNames = [...]string{"rectangle", "icon", "image-list", "text", "scene"}

func (k Kinds) String() string {
	if k < 0 || k >= KindsN {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kindNames[k]
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kinds) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kinds) UnmarshalText(text []byte) error {
	for i, nm := range kindNames {
		if nm == string(text) {
			*k = Kinds(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type draw.Kinds", string(text))
}

// Handle is an opaque platform handle (an icon or an image list).
// The core never resolves it to pixels; that is up to the backend.
type Handle uint64

// SceneRef is an opaque reference to a scene owned by the application.
type SceneRef uint64

// Camera is an orbit camera looking at an embedded scene.
type Camera struct {
	Yaw      float32 `json:"yaw" yaml:"yaw"`
	Pitch    float32 `json:"pitch" yaml:"pitch"`
	Distance float32 `json:"distance" yaml:"distance"`
	FovY     float32 `json:"fovY" yaml:"fovY"`
	ShiftX   float32 `json:"shiftX" yaml:"shiftX"`
	ShiftY   float32 `json:"shiftY" yaml:"shiftY"`
}

// Command is one complete renderable primitive. It carries no behavior
// and is comparable, so frames can be diffed with ==, batched or
// serialized. Which fields are meaningful depends on Kind.
type Command struct {

	// Kind selects which of the remaining fields apply.
	Kind Kinds `json:"kind" yaml:"kind"`

	// Region is the id of the region that emitted the command, which
	// backends can use as a cache key.
	Region uint64 `json:"region,omitempty" yaml:"region,omitempty"`

	// Rect is where to draw, in root coordinates. For text it is
	// already reduced by the padding.
	Rect math32.Rect `json:"rect" yaml:"rect"`

	// Fill is the rectangle fill; absent means no fill layer.
	Fill colors.Option `json:"fill" yaml:"fill"`

	// Border is the rectangle border; absent means no border layer.
	Border colors.Option `json:"border" yaml:"border"`

	// Text is the text content.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// TextColor is the color of the text.
	TextColor colors.Option `json:"textColor" yaml:"textColor"`

	// Font describes the requested face.
	Font styles.Font `json:"font" yaml:"font"`

	// FontSize is the effective size, after the padding adjustment.
	FontSize float32 `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`

	// Icon is the icon or image list handle.
	Icon Handle `json:"icon,omitempty" yaml:"icon,omitempty"`

	// ImageListIndex is the frame within the image list.
	ImageListIndex int `json:"imageListIndex,omitempty" yaml:"imageListIndex,omitempty"`

	// Scene is the scene to render.
	Scene SceneRef `json:"scene,omitempty" yaml:"scene,omitempty"`

	// Camera is the camera to render the scene with.
	Camera Camera `json:"camera" yaml:"camera"`
}

func (c Command) String() string {
	switch c.Kind {
	case Rectangle:
		return fmt.Sprintf("%v %v fill=%v border=%v", c.Kind, c.Rect, c.Fill, c.Border)
	case Icon:
		return fmt.Sprintf("%v %v handle=%#x", c.Kind, c.Rect, uint64(c.Icon))
	case ImageList:
		return fmt.Sprintf("%v %v handle=%#x index=%d", c.Kind, c.Rect, uint64(c.Icon), c.ImageListIndex)
	case Text:
		return fmt.Sprintf("%v %v %q color=%v font=%q size=%g", c.Kind, c.Rect, c.Text, c.TextColor, c.Font.Family, c.FontSize)
	case Scene:
		return fmt.Sprintf("%v %v scene=%d", c.Kind, c.Rect, uint64(c.Scene))
	}
	return c.Kind.String()
}
