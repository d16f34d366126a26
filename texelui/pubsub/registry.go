// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/pubsub/registry.go
// Summary: Layered publish/subscribe directory routing events between widgets.
// Usage: One Registry per application, injected through core.Context.
// Notes: Replaces the desktop's flat listener broadcast with per-sender
// fan-out sets stacked in layers so modal dialogs get a private scope.

package pubsub

import (
	"log"

	"github.com/framegrace/texelpaint/texelui/event"
)

// ID is a stable, never reused identity handle.
type ID uint64

// Identity is anything that can act as a sender.
type Identity interface {
	ID() ID
}

// Recipient receives published events.
type Recipient interface {
	Identity
	HandleEvent(ev event.Event)
}

// Stats counts registry activity since creation.
type Stats struct {
	Published int
	Disposed  int
	Pushes    int
	Pops      int
}

// Registry is a stack of subscription layers. Only the top layer is live.
// The registry holds non-owning handles; recipients must Purge themselves
// before they go away. It is not safe for concurrent use.
type Registry struct {
	layers  []*Layer
	handles map[ID]Recipient
	dead    map[ID]struct{}
	nextID  ID

	// forgotten holds every ID passed to Forget. IDs are never reused.
	forgotten map[ID]struct{}

	depth      int
	teardown   bool
	finalizers []func()

	trace bool
	stats Stats
}

// NewRegistry returns a registry with a single, permanent base layer.
func NewRegistry() *Registry {
	return &Registry{
		layers:  []*Layer{newLayer()},
		handles: make(map[ID]Recipient),
		dead:    make(map[ID]struct{}),

		forgotten: make(map[ID]struct{}),
	}
}

// SetTrace toggles per-operation logging.
func (r *Registry) SetTrace(on bool) { r.trace = on }

// NextID allocates a fresh identity.
func (r *Registry) NextID() ID {
	r.nextID++
	return r.nextID
}

// Stats returns activity counters.
func (r *Registry) Stats() Stats { return r.stats }

func (r *Registry) active() *Layer { return r.layers[len(r.layers)-1] }

// Depth returns the number of layers, base included.
func (r *Registry) Depth() int { return len(r.layers) }

// Dispatching reports whether a Publish is in flight.
func (r *Registry) Dispatching() bool { return r.depth > 0 }

// Subscribe adds recipient to sender's fan-out in the active layer.
func (r *Registry) Subscribe(sender Identity, recipient Recipient) {
	sid := mustID(sender, "sender")
	rid := mustID(recipient, "recipient")
	if _, gone := r.forgotten[rid]; gone {
		panic("pubsub: subscribe of a forgotten recipient")
	}
	if _, gone := r.forgotten[sid]; gone {
		panic("pubsub: subscribe to a forgotten sender")
	}
	r.handles[rid] = recipient
	r.active().add(sid, rid)
	if r.trace {
		log.Printf("pubsub: subscribed %d to %d (layer %d)", rid, sid, len(r.layers)-1)
	}
}

// Unsubscribe removes recipient from sender's fan-out in the active layer.
func (r *Registry) Unsubscribe(sender Identity, recipient Identity) {
	sid := mustID(sender, "sender")
	rid := mustID(recipient, "recipient")
	r.active().remove(sid, rid)
	if r.trace {
		log.Printf("pubsub: unsubscribed %d from %d (layer %d)", rid, sid, len(r.layers)-1)
	}
}

// UnsubscribeAllAsSender clears id's fan-out in the active layer.
func (r *Registry) UnsubscribeAllAsSender(id ID) {
	mustNonZero(id)
	r.active().dropSender(id)
}

// UnsubscribeAllAsRecipient removes id from every fan-out in the active layer.
func (r *Registry) UnsubscribeAllAsRecipient(id ID) {
	mustNonZero(id)
	r.active().dropRecipient(id)
}

// Forget invalidates id's handle for good; a later Subscribe naming id
// panics. Entries for id left in lower layers are skipped on dispatch and
// pruned when those layers become active again.
func (r *Registry) Forget(id ID) {
	mustNonZero(id)
	delete(r.handles, id)
	r.forgotten[id] = struct{}{}
	if len(r.layers) > 1 {
		r.dead[id] = struct{}{}
	}
}

// Purge scrubs id from the active layer and forgets its handle.
func (r *Registry) Purge(id ID) {
	r.UnsubscribeAllAsSender(id)
	r.UnsubscribeAllAsRecipient(id)
	r.Forget(id)
}

// Publish delivers ev to every recipient subscribed to sender in the active
// layer at call time, then disposes ev. Handlers may subscribe, unsubscribe,
// push layers or publish again; they see the live registry while this call
// keeps iterating its snapshot. A teardown requested during the outermost
// Publish is applied once it finishes.
func (r *Registry) Publish(sender Identity, ev event.Event) {
	sid := mustID(sender, "sender")
	if ev == nil {
		panic("pubsub: publish of nil event")
	}
	targets := r.active().fanout(sid)
	r.stats.Published++

	r.depth++
	func() {
		defer func() { r.depth-- }()
		for _, rid := range targets {
			rec, ok := r.handles[rid]
			if !ok {
				continue
			}
			rec.HandleEvent(ev)
		}
	}()
	event.Dispose(ev)
	r.stats.Disposed++

	if r.depth == 0 {
		r.flushTeardown()
	}
}

// PushLayer activates a new, empty layer.
func (r *Registry) PushLayer() {
	r.layers = append(r.layers, newLayer())
	r.stats.Pushes++
	if r.trace {
		log.Printf("pubsub: pushed layer %d", len(r.layers)-1)
	}
}

// PopLayer discards the active layer and restores the previous one.
// Popping the base layer is a composition bug.
func (r *Registry) PopLayer() {
	if len(r.layers) <= 1 {
		panic("pubsub: pop of the base layer")
	}
	r.layers[len(r.layers)-1] = nil
	r.layers = r.layers[:len(r.layers)-1]
	r.stats.Pops++

	restored := r.active()
	for id := range r.dead {
		restored.dropSender(id)
		restored.dropRecipient(id)
	}
	if len(r.layers) == 1 {
		clear(r.dead)
	}
	if r.trace {
		log.Printf("pubsub: popped to layer %d", len(r.layers)-1)
	}
}

// RequestTeardown schedules one PopLayer for when the outermost Publish
// returns, followed by finalize in request order. Repeated requests during
// the same dispatch still pop once. Outside a dispatch the pop is immediate.
func (r *Registry) RequestTeardown(finalize ...func()) {
	r.teardown = true
	for _, f := range finalize {
		if f != nil {
			r.finalizers = append(r.finalizers, f)
		}
	}
	if r.depth == 0 {
		r.flushTeardown()
	}
}

// TeardownPending reports whether a pop is scheduled.
func (r *Registry) TeardownPending() bool { return r.teardown }

func (r *Registry) flushTeardown() {
	if !r.teardown {
		return
	}
	r.teardown = false
	r.PopLayer()
	pending := r.finalizers
	r.finalizers = nil
	for _, f := range pending {
		f()
	}
}

// Fanout returns a copy of sender's recipients in the active layer.
func (r *Registry) Fanout(sender ID) []ID {
	return r.active().fanout(sender)
}

// Snapshot copies the active layer's map.
func (r *Registry) Snapshot() map[ID][]ID {
	return r.active().snapshot()
}

// Alive reports whether id has a live handle.
func (r *Registry) Alive(id ID) bool {
	_, ok := r.handles[id]
	return ok
}

func mustID(v Identity, role string) ID {
	if v == nil {
		panic("pubsub: nil " + role)
	}
	id := v.ID()
	if id == 0 {
		panic("pubsub: " + role + " has no identity")
	}
	return id
}

func mustNonZero(id ID) {
	if id == 0 {
		panic("pubsub: zero identity")
	}
}
