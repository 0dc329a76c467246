// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"rectui.dev/core/draw"
	"rectui.dev/core/events"
	"rectui.dev/core/math32"
)

// SceneView is a region that shows an application-owned 3D scene
// through an orbit camera. Dragging with the left button orbits the
// camera and the wheel moves it closer or farther. Loading and
// rendering the scene are the application's and the backend's job.
type SceneView struct {
	Base

	// Scene is the scene to show; zero shows nothing.
	Scene draw.SceneRef

	// Camera is the camera the scene is viewed through.
	Camera draw.Camera

	// OrbitSpeed is the camera rotation in degrees per unit of drag.
	OrbitSpeed float32

	// ZoomFactor is the distance multiplier per wheel notch.
	ZoomFactor float32

	dragging bool
	last     math32.Vector2
}

// NewSceneView returns a new [SceneView] showing the given scene,
// added to the given parent, if any.
func NewSceneView(scene draw.SceneRef, parent ...Region) *SceneView {
	sv := New[SceneView](parent...)
	sv.Scene = scene
	return sv
}

func (sv *SceneView) Init() {
	sv.Camera = draw.Camera{Distance: 5, FovY: 30}
	sv.OrbitSpeed = 0.5
	sv.ZoomFactor = 1.1
	sv.On(events.MouseDown, func(e events.Event) {
		if e.MouseButton() != events.Left {
			return
		}
		sv.dragging = true
		sv.last = e.Pos()
		e.SetHandled()
	})
	sv.On(events.MouseMove, func(e events.Event) {
		if !sv.dragging || !sv.IsActive() {
			sv.dragging = false
			return
		}
		d := e.Pos().Sub(sv.last)
		sv.last = e.Pos()
		sv.Camera.Yaw += d.X * sv.OrbitSpeed
		sv.Camera.Pitch = math32.Clamp(sv.Camera.Pitch+d.Y*sv.OrbitSpeed, -89, 89)
		sv.Invalidate()
		e.SetHandled()
	})
	sv.On(events.MouseUp, func(e events.Event) {
		sv.dragging = false
	})
	sv.OnScroll(func(e events.Event) {
		sc, ok := e.(*events.MouseScroll)
		if !ok || sc.Delta == 0 {
			return
		}
		// one notch down zooms out by ZoomFactor
		sv.Camera.Distance *= math32.Pow(sv.ZoomFactor, -sc.Delta)
		sv.Invalidate()
		e.SetHandled()
	})
}

func (sv *SceneView) DrawSelf(p draw.Processor, isActive, isHover bool) {
	sv.Base.DrawSelf(p, isActive, isHover)
	draw.Emit(p, sv.id, draw.SceneCommands(sv.rect, sv.Scene, sv.Camera))
}
