// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"sync/atomic"
)

// Queue is a lock-free FIFO freelist-based event queue.
// It is the hand-off point between a host input thread, which calls
// [Queue.Send], and the UI thread, which drains it with [Queue.Drain]
// or [Queue.NextEvent].
//
// Drain compresses what piled up between two frames. A run of moves
// or resizes collapses to its last event. A run of scrolls collapses
// to one [MouseScroll] whose Delta is the sum of the run, so handlers
// must scale by Delta rather than by its sign. Presses, releases and
// the events derived from them are never merged.
//
// It must be initialized using [Queue.Init] before use.
// It is based on https://github.com/fyne-io/fyne/blob/master/internal/async/queue_canvasobject.go
type Queue struct {
	head atomic.Pointer[queueEvent]
	tail atomic.Pointer[queueEvent]
	len  atomic.Uint64
}

// Init initializes the queue.
func (q *Queue) Init() {
	head := &queueEvent{}
	q.head.Store(head)
	q.tail.Store(head)
}

type queueEvent struct {
	next atomic.Pointer[queueEvent]
	v    Event
}

var queueEventPool = sync.Pool{
	New: func() any { return &queueEvent{} },
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() Event {
	var first, last, firstnext *queueEvent
	for {
		first = q.head.Load()
		last = q.tail.Load()
		firstnext = first.next.Load()
		if first == q.head.Load() {
			if first == last {
				if firstnext == nil {
					return nil
				}

				q.tail.CompareAndSwap(last, firstnext)
			} else {
				v := firstnext.v
				if q.head.CompareAndSwap(first, firstnext) {
					q.len.Add(^uint64(0))
					first.v = nil
					queueEventPool.Put(first)
					return v
				}
			}
		}
	}
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	i := queueEventPool.Get().(*queueEvent)
	i.next.Store(nil)
	i.v = ev

	var last, lastnext *queueEvent
	for {
		last = q.tail.Load()
		lastnext = last.next.Load()
		if q.tail.Load() == last {
			if lastnext == nil {
				if last.next.CompareAndSwap(lastnext, i) {
					q.tail.CompareAndSwap(last, i)
					q.len.Add(1)
					return
				}
			} else {
				q.tail.CompareAndSwap(last, lastnext)
			}
		}
	}
}

// Len returns the length of the queue.
func (q *Queue) Len() uint64 {
	return q.len.Load()
}

// Drain removes all queued events and returns them in order,
// compressing runs of events of the same type as described on [Queue].
func (q *Queue) Drain() []Event {
	var evs []Event
	for ev := q.NextEvent(); ev != nil; ev = q.NextEvent() {
		n := len(evs)
		if n == 0 || ev.Type().IsUnique() || evs[n-1].Type() != ev.Type() {
			evs = append(evs, ev)
			continue
		}
		if sc, ok := ev.(*MouseScroll); ok {
			if prev, ok := evs[n-1].(*MouseScroll); ok {
				sc.Delta += prev.Delta
			}
		}
		evs[n-1] = ev
	}
	return evs
}
