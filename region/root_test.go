// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rectui.dev/core/draw"
	"rectui.dev/core/events"
	"rectui.dev/core/math32"
)

// record adds listeners to r that append the types of the events it
// handles to the returned slice.
func record(r *Base, types ...events.Types) *[]events.Types {
	got := &[]events.Types{}
	for _, typ := range types {
		r.On(typ, func(e events.Event) {
			*got = append(*got, e.Type())
		})
	}
	return got
}

func click(rt *Root, pos math32.Vector2, at time.Time) {
	down := events.NewMouseDown(events.Left, pos)
	down.SetTime(at)
	rt.Dispatch(down)
	up := events.NewMouseUp(events.Left, pos)
	up.SetTime(at)
	rt.Dispatch(up)
}

func TestHover(t *testing.T) {
	rt, ct, a, b := testTree()
	ga := record(&a.Base, events.MouseEnter, events.MouseLeave)
	gc := record(&ct.Base, events.MouseEnter, events.MouseLeave)

	rt.Dispatch(events.NewMouseMove(math32.Vec2(10, 10)))
	assert.Equal(t, Region(a), rt.Hovered())
	assert.True(t, a.IsHovered())
	assert.True(t, ct.IsHovered())
	assert.True(t, rt.IsHovered())
	assert.Equal(t, []events.Types{events.MouseEnter}, *ga)
	assert.Equal(t, []events.Types{events.MouseEnter}, *gc)

	rt.Dispatch(events.NewMouseMove(math32.Vec2(12, 10)))
	assert.Len(t, *ga, 1, "moving within a region does not re-enter")

	rt.Dispatch(events.NewMouseMove(math32.Vec2(60, 60)))
	assert.False(t, a.IsHovered())
	assert.True(t, b.IsHovered())
	assert.True(t, ct.IsHovered())
	assert.Equal(t, []events.Types{events.MouseEnter, events.MouseLeave}, *ga)
	assert.Len(t, *gc, 1, "the container stays hovered")

	rt.Dispatch(events.NewMouseMove(math32.Vec2(90, 90)))
	assert.False(t, b.IsHovered())
	assert.Equal(t, Region(ct), rt.Hovered())
}

func TestClick(t *testing.T) {
	rt, ct, a, _ := testTree()
	clicks := 0
	a.OnClick(func(e events.Event) {
		clicks++
		assert.Equal(t, events.Left, e.MouseButton())
		e.SetHandled()
	})
	gc := record(&ct.Base, events.Click)

	rt.Dispatch(events.NewMouseDown(events.Left, math32.Vec2(10, 10)))
	assert.True(t, a.IsActive())
	assert.Equal(t, Region(a), rt.Pressed())
	assert.Equal(t, 0, clicks)

	rt.Dispatch(events.NewMouseUp(events.Left, math32.Vec2(12, 12)))
	assert.False(t, a.IsActive())
	assert.Nil(t, rt.Pressed())
	assert.Equal(t, 1, clicks)
	assert.Empty(t, *gc, "handled clicks do not bubble")
}

func TestClickBubbles(t *testing.T) {
	rt, ct, _, _ := testTree()
	gc := record(&ct.Base, events.Click)
	click(rt, math32.Vec2(10, 10), time.Now())
	assert.Equal(t, []events.Types{events.Click}, *gc)
}

func TestClickCanceled(t *testing.T) {
	rt, _, a, _ := testTree()
	ga := record(&a.Base, events.Click)

	rt.Dispatch(events.NewMouseDown(events.Left, math32.Vec2(10, 10)))
	rt.Dispatch(events.NewMouseUp(events.Left, math32.Vec2(90, 90)))
	assert.Empty(t, *ga)
	assert.False(t, a.IsActive())

	// a different button does not release the press
	rt.Dispatch(events.NewMouseDown(events.Left, math32.Vec2(10, 10)))
	rt.Dispatch(events.NewMouseUp(events.Right, math32.Vec2(10, 10)))
	assert.True(t, a.IsActive())
	rt.Dispatch(events.NewMouseUp(events.Left, math32.Vec2(10, 10)))
	assert.Equal(t, []events.Types{events.Click}, *ga)
}

func TestPointerCapture(t *testing.T) {
	rt, _, a, b := testTree()
	ga := record(&a.Base, events.MouseMove)
	gb := record(&b.Base, events.MouseMove)
	rt.Dispatch(events.NewMouseDown(events.Left, math32.Vec2(10, 10)))
	rt.Dispatch(events.NewMouseMove(math32.Vec2(60, 60)))
	assert.Len(t, *ga, 1, "moves go to the pressed region")
	assert.Empty(t, *gb)
	assert.True(t, b.IsHovered())
}

func TestDoubleClick(t *testing.T) {
	rt, _, a, b := testTree()
	ga := record(&a.Base, events.Click, events.DoubleClick)
	t0 := time.Now()

	click(rt, math32.Vec2(10, 10), t0)
	click(rt, math32.Vec2(10, 10), t0.Add(100*time.Millisecond))
	assert.Equal(t, []events.Types{events.Click, events.Click, events.DoubleClick}, *ga)

	// a third quick click starts over
	click(rt, math32.Vec2(10, 10), t0.Add(200*time.Millisecond))
	assert.Len(t, *ga, 4)

	*ga = nil
	click(rt, math32.Vec2(10, 10), t0.Add(2*time.Second))
	click(rt, math32.Vec2(10, 10), t0.Add(4*time.Second))
	assert.Equal(t, []events.Types{events.Click, events.Click}, *ga, "too slow")

	// clicks on different regions do not pair
	*ga = nil
	gb := record(&b.Base, events.DoubleClick)
	click(rt, math32.Vec2(10, 10), t0.Add(6*time.Second))
	click(rt, math32.Vec2(60, 60), t0.Add(6*time.Second+50*time.Millisecond))
	assert.Equal(t, []events.Types{events.Click}, *ga)
	assert.Empty(t, *gb)
}

func TestDisabled(t *testing.T) {
	rt, ct, a, _ := testTree()
	ga := record(&a.Base, events.Click)
	gc := record(&ct.Base, events.Click)
	a.SetDisabled(true)
	click(rt, math32.Vec2(10, 10), time.Now())
	assert.Empty(t, *ga)
	assert.Empty(t, *gc)
	assert.False(t, a.IsActive())
}

func TestDeleteHovered(t *testing.T) {
	rt, ct, a, _ := testTree()
	rt.Dispatch(events.NewMouseDown(events.Left, math32.Vec2(10, 10)))
	require.Equal(t, Region(a), rt.Hovered())
	a.Delete()
	assert.Equal(t, Region(ct), rt.Hovered())
	assert.Nil(t, rt.Pressed())
	assert.NotPanics(t, func() {
		rt.Dispatch(events.NewMouseUp(events.Left, math32.Vec2(10, 10)))
	})
}

func TestDispatchFromRegion(t *testing.T) {
	rt, _, a, b := testTree()
	rt.Draw(&draw.Recorder{})
	b.Dispatch(events.NewMouseMove(math32.Vec2(10, 10)))
	assert.True(t, a.IsHovered())
	assert.True(t, rt.IsDirty(), "hover changes invalidate")
}

func TestResizeEvent(t *testing.T) {
	rt, ct, _, _ := testTree()
	got := record(&rt.Base, events.Resize)
	rt.Dispatch(events.NewResize(300, 200))
	assert.Equal(t, math32.RectSize(300, 200), ct.Rect())
	assert.Equal(t, []events.Types{events.Resize}, *got)
}

func TestSend(t *testing.T) {
	_, ct, a, _ := testTree()
	gc := record(&ct.Base, events.Click)
	a.Send(events.Click)
	assert.Equal(t, []events.Types{events.Click}, *gc)
}
