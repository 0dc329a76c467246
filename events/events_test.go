// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rectui.dev/core/math32"
)

func TestListenersReverseOrderAndHandled(t *testing.T) {
	var ls Listeners
	var calls []string
	ls.Add(Click, func(ev Event) { calls = append(calls, "first") })
	ls.Add(Click, func(ev Event) {
		calls = append(calls, "second")
		ev.SetHandled()
	})
	ls.Call(NewMouse(Click, Left, math32.Vec2(1, 1)))
	assert.Equal(t, []string{"second"}, calls)

	handled := NewMouse(Click, Left, math32.Vec2(1, 1))
	handled.SetHandled()
	ls.Call(handled)
	assert.Len(t, calls, 1)
}

func TestListenersSnapshot(t *testing.T) {
	var ls Listeners
	n := 0
	ls.Add(MouseDown, func(ev Event) {
		n++
		ls.Add(MouseDown, func(ev Event) { n += 10 })
	})
	ls.Call(NewMouseDown(Left, math32.Vec2(0, 0)))
	assert.Equal(t, 1, n)
	assert.Len(t, ls[MouseDown], 2)
}

func TestDerive(t *testing.T) {
	up := NewMouseUp(Right, math32.Vec2(3, 4))
	up.SetHandled()
	cl := Derive(Click, up)
	assert.Equal(t, Click, cl.Type())
	assert.Equal(t, Right, cl.MouseButton())
	assert.Equal(t, up.Pos(), cl.Pos())
	assert.Equal(t, up.Time(), cl.Time())
	assert.False(t, cl.IsHandled())
}

func TestQueueDrainCompresses(t *testing.T) {
	q := &Queue{}
	q.Init()
	q.Send(NewMouseMove(math32.Vec2(1, 1)))
	q.Send(NewMouseMove(math32.Vec2(2, 2)))
	q.Send(NewScroll(math32.Vec2(2, 2), -1))
	q.Send(NewScroll(math32.Vec2(2, 2), -2))
	q.Send(NewMouseDown(Left, math32.Vec2(2, 2)))
	q.Send(NewMouseUp(Left, math32.Vec2(2, 2)))
	assert.Equal(t, uint64(6), q.Len())

	evs := q.Drain()
	require.Len(t, evs, 4)
	assert.Equal(t, MouseMove, evs[0].Type())
	assert.Equal(t, math32.Vec2(2, 2), evs[0].Pos())
	assert.Equal(t, float32(-3), evs[1].(*MouseScroll).Delta)
	assert.Equal(t, MouseDown, evs[2].Type())
	assert.Equal(t, MouseUp, evs[3].Type())
	assert.Nil(t, q.NextEvent())
}

func TestQueueConcurrentSend(t *testing.T) {
	q := &Queue{}
	q.Init()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				q.Send(NewMouseDown(Left, math32.Vec2(float32(i), 0)))
			}
		}()
	}
	wg.Wait()
	assert.Len(t, q.Drain(), 800)
}

func TestTypesString(t *testing.T) {
	assert.Equal(t, "DoubleClick", DoubleClick.String())
	assert.Equal(t, "Types(99)", Types(99).String())
	assert.False(t, Scroll.IsUnique())
	assert.True(t, Click.IsUnique())
}
