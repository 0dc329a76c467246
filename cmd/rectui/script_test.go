// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rectui.dev/core/events"
	"rectui.dev/core/math32"
)

func TestParseScript(t *testing.T) {
	steps, err := parseScript(strings.NewReader(`
# open the first entry
click 10 20
dblclick 10 20 left
wheel 5 5 -1
down 1 2 right
resize 300 200
wait
select "my file"
`))
	require.NoError(t, err)
	require.Len(t, steps, 7)

	assert.Equal(t, 3, steps[0].line)
	types := func(st step) []events.Types {
		var ts []events.Types
		for _, ev := range st.events {
			ts = append(ts, ev.Type())
		}
		return ts
	}
	assert.Equal(t, []events.Types{events.MouseMove, events.MouseDown, events.MouseUp}, types(steps[0]))
	assert.Equal(t, math32.Vec2(10, 20), steps[0].events[1].Pos())

	dbl := steps[1].events
	require.Len(t, dbl, 5)
	assert.Equal(t, 50*time.Millisecond, dbl[3].Time().Sub(dbl[2].Time()))
	assert.GreaterOrEqual(t, dbl[1].Time().Sub(steps[0].events[2].Time()), time.Second)

	sc, ok := steps[2].events[0].(*events.MouseScroll)
	require.True(t, ok)
	assert.Equal(t, float32(-1), sc.Delta)

	assert.Equal(t, events.Right, steps[3].events[0].MouseButton())
	assert.Equal(t, events.Resize, steps[4].events[0].Type())
	assert.Equal(t, "wait", steps[5].op)
	assert.Empty(t, steps[5].events)
	assert.Equal(t, "my file", steps[6].arg)
}

func TestParseScriptErrors(t *testing.T) {
	for _, src := range []string{"jump 1 2", "click 1", "click a b", "down 1 2 thumb", "select", `select "open`} {
		_, err := parseScript(strings.NewReader("move 0 0\n" + src))
		assert.ErrorContains(t, err, "script line 2", src)
	}
}
