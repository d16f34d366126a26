// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/context.go
// Summary: Explicit dispatch context injected into nodes and the frame loop.

package core

import (
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/pubsub"
)

// Context carries the registry and event queue shared by one application.
// Its lifetime matches the application's; nodes keep a pointer to it so they
// can purge themselves on destruction.
type Context struct {
	Registry *pubsub.Registry
	Queue    *event.Queue
}

// NewContext returns a context with a fresh registry and queue.
func NewContext() *Context {
	return &Context{
		Registry: pubsub.NewRegistry(),
		Queue:    event.NewQueue(),
	}
}

// Subscribe routes events published by sender to recipient. Subscribing a
// destroyed node panics.
func (c *Context) Subscribe(sender pubsub.Identity, recipient Node) {
	if recipient != nil && recipient.NodeBase().Destroyed() {
		panic("core: subscribe of a destroyed node")
	}
	c.Registry.Subscribe(sender, recipient)
}

// Unsubscribe removes a single routing.
func (c *Context) Unsubscribe(sender, recipient pubsub.Identity) {
	c.Registry.Unsubscribe(sender, recipient)
}

// Publish fans ev out from sender in the active layer.
func (c *Context) Publish(sender pubsub.Identity, ev event.Event) {
	c.Registry.Publish(sender, ev)
}

// Post queues a synthetic event for the next drain.
func (c *Context) Post(ev event.Event) {
	c.Queue.Push(ev)
}
