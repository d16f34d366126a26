// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/event/queue.go
// Summary: FIFO of platform-polled and synthetic events, drained once per frame.

package event

// Queue is a single-consumer FIFO. It is not safe for concurrent use; the
// frame loop is its only consumer and producer.
type Queue struct {
	items []Event
	head  int
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends ev. Nil events are a composition bug.
func (q *Queue) Push(ev Event) {
	if ev == nil {
		panic("event: push of nil event")
	}
	q.items = append(q.items, ev)
}

// Pop removes and returns the oldest event.
func (q *Queue) Pop() (Event, bool) {
	if q.head >= len(q.items) {
		return nil, false
	}
	ev := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return ev, true
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return len(q.items) - q.head }

// Empty reports whether no events are pending.
func (q *Queue) Empty() bool { return q.Len() == 0 }

// Drain hands every pending event to fn in order, including events pushed
// while draining. It returns the number of events delivered.
func (q *Queue) Drain(fn func(Event)) int {
	n := 0
	for {
		ev, ok := q.Pop()
		if !ok {
			return n
		}
		fn(ev)
		n++
	}
}
