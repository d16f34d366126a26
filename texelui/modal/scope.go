// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/modal/scope.go
// Summary: Modal interaction scopes built on registry layers.
// Usage: A creator widget opens a scope to show a dialog; everything built
// inside the scope subscribes in a fresh layer, so the rest of the UI goes
// inert until the scope closes.

package modal

import (
	"log"

	"github.com/framegrace/texelpaint/texelui/core"
	"github.com/framegrace/texelpaint/texelui/pubsub"
)

// State is the lifecycle of a Scope.
type State int

const (
	Closed State = iota
	Open
	// TeardownRequested means Close was called during a dispatch and the
	// layer pop is waiting for the outermost publish to return.
	TeardownRequested
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case TeardownRequested:
		return "teardown-requested"
	}
	return "closed"
}

// Scope owns one pushed registry layer and the node shown while it is active.
type Scope struct {
	// OnClosed runs after the layer is popped and the node destroyed.
	OnClosed func()

	ctx   *core.Context
	state State
	depth int
	node  core.Node
}

// New returns a closed scope bound to ctx.
func New(ctx *core.Context) *Scope {
	if ctx == nil {
		panic("modal: nil context")
	}
	return &Scope{ctx: ctx}
}

func (s *Scope) State() State    { return s.state }
func (s *Scope) IsOpen() bool    { return s.state != Closed }
func (s *Scope) Node() core.Node { return s.node }

// Open pushes a layer, builds the modal node inside it and attaches the node
// to host. upstream (normally the root) is routed to creator, and creator to
// the node, so input reaches the dialog through the widget that opened it.
// Either may be nil when no forwarding is wanted.
func (s *Scope) Open(host core.Node, upstream pubsub.Identity, creator core.Node, build func() core.Node) core.Node {
	if s.state != Closed {
		panic("modal: scope already open")
	}
	if host == nil || build == nil {
		panic("modal: Open requires a host and a builder")
	}
	reg := s.ctx.Registry
	reg.PushLayer()
	s.depth = reg.Depth()

	node := build()
	if node == nil {
		reg.PopLayer()
		panic("modal: builder returned nil")
	}
	host.NodeBase().AddChild(node)
	if creator != nil {
		if upstream != nil {
			s.ctx.Subscribe(upstream, creator)
		}
		s.ctx.Subscribe(creator, node)
	}
	s.node = node
	s.state = Open
	log.Printf("Modal: scope opened at layer %d (node %d)", s.depth, node.ID())
	return node
}

// Close requests teardown. Inside a dispatch the layer is popped once the
// outermost publish returns; outside one it happens immediately. Closing a
// scope that is not the topmost one panics. A scope whose teardown is still
// pending keeps its layer and counts as topmost, so closing the scope under
// it in the same dispatch panics too. Repeated calls are no-ops.
func (s *Scope) Close() {
	if s.state != Open {
		return
	}
	if got := s.ctx.Registry.Depth(); got != s.depth {
		panic("modal: close of a scope that is not topmost")
	}
	s.state = TeardownRequested
	s.ctx.Registry.RequestTeardown(s.finish)
}

func (s *Scope) finish() {
	node := s.node
	s.node = nil
	s.state = Closed
	if node != nil && !node.NodeBase().Destroyed() {
		core.Destroy(node)
	}
	log.Printf("Modal: scope at layer %d closed", s.depth)
	if s.OnClosed != nil {
		s.OnClosed()
	}
}
