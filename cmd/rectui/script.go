// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-shellwords"
	"rectui.dev/core/events"
	"rectui.dev/core/math32"
)

// step is one line of an input script.
type step struct {
	line   int
	op     string
	arg    string
	events []events.Event
}

// scriptStart is the time of the first scripted event. Every step
// advances the clock by scriptTick, so that separate clicks never
// form a double click and the output does not depend on timing.
var scriptStart = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

const scriptTick = time.Second

// parseScript parses an input script. Each line is one of:
//
//	move X Y
//	down X Y [left|middle|right]
//	up X Y [left|middle|right]
//	click X Y [left|middle|right]
//	dblclick X Y
//	wheel X Y DELTA
//	resize W H
//	select NAME
//	wait
//	frame
//
// Empty lines and lines starting with # are skipped. Arguments are
// split like shell words, so names with spaces can be quoted. select
// selects the entry with the name most similar to NAME, wait waits for
// the directory being read, and frame forces a full redraw.
func parseScript(r io.Reader) ([]step, error) {
	var steps []step
	now := scriptStart
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields, err := shellwords.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("script line %d: %w", ln, err)
		}
		now = now.Add(scriptTick)
		st, err := parseStep(fields, now)
		if err != nil {
			return nil, fmt.Errorf("script line %d: %w", ln, err)
		}
		st.line = ln
		steps = append(steps, st)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return steps, nil
}

func parseStep(fields []string, now time.Time) (step, error) {
	st := step{op: fields[0]}
	args := fields[1:]
	nums := func(n int) ([]float32, error) {
		if len(args) < n {
			return nil, fmt.Errorf("%s needs %d numbers, got %d", st.op, n, len(args))
		}
		vals := make([]float32, n)
		for i := range vals {
			v, err := strconv.ParseFloat(args[i], 32)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", st.op, err)
			}
			vals[i] = float32(v)
		}
		return vals, nil
	}
	button := func(i int) (events.Buttons, error) {
		if len(args) <= i {
			return events.Left, nil
		}
		switch args[i] {
		case "left":
			return events.Left, nil
		case "middle":
			return events.Middle, nil
		case "right":
			return events.Right, nil
		}
		return events.NoButton, fmt.Errorf("%s: unknown button %q", st.op, args[i])
	}
	at := func(ev events.Event, t time.Time) events.Event {
		ev.AsBase().SetTime(t)
		return ev
	}

	switch st.op {
	case "wait", "frame":
		return st, nil
	case "select":
		if len(args) != 1 {
			return st, fmt.Errorf("select needs one name, got %d arguments", len(args))
		}
		st.arg = args[0]
	case "resize":
		v, err := nums(2)
		if err != nil {
			return st, err
		}
		st.events = append(st.events, at(events.NewResize(v[0], v[1]), now))
	case "wheel":
		v, err := nums(3)
		if err != nil {
			return st, err
		}
		st.events = append(st.events, at(events.NewScroll(math32.Vec2(v[0], v[1]), v[2]), now))
	case "move", "down", "up", "click", "dblclick":
		v, err := nums(2)
		if err != nil {
			return st, err
		}
		but, err := button(2)
		if err != nil {
			return st, err
		}
		pos := math32.Vec2(v[0], v[1])
		move := at(events.NewMouseMove(pos), now)
		down := func(t time.Time) events.Event { return at(events.NewMouseDown(but, pos), t) }
		up := func(t time.Time) events.Event { return at(events.NewMouseUp(but, pos), t) }
		switch st.op {
		case "move":
			st.events = append(st.events, move)
		case "down":
			st.events = append(st.events, down(now))
		case "up":
			st.events = append(st.events, up(now))
		case "click":
			st.events = append(st.events, move, down(now), up(now))
		case "dblclick":
			later := now.Add(50 * time.Millisecond)
			st.events = append(st.events, move, down(now), up(now), down(later), up(later))
		}
	default:
		return st, fmt.Errorf("unknown command %q", st.op)
	}
	return st, nil
}
