package core

import (
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
	"github.com/framegrace/texelpaint/texelui/pubsub"
)

// Node is a window in the composition tree. Every node is an event target
// with a stable identity; whether it draws anything is up to Render.
type Node interface {
	pubsub.Recipient
	Render(r Renderer)
	NodeBase() *BaseNode
}

// Finalizer nodes release extra resources after they are unsubscribed.
type Finalizer interface {
	Finalize()
}

// BaseNode provides identity, geometry and exclusive child ownership.
// Embed it and call Init from the constructor.
type BaseNode struct {
	Rect geom.Rect

	ctx       *Context
	id        pubsub.ID
	self      Node
	parent    Node
	children  []Node
	destroyed bool
}

// Init binds the node to ctx and allocates its identity. self must be the
// embedding node so the registry dispatches to the outer type.
func (b *BaseNode) Init(ctx *Context, self Node) {
	if ctx == nil || self == nil {
		panic("core: Init requires a context and the embedding node")
	}
	if b.id != 0 {
		panic("core: node initialised twice")
	}
	b.ctx = ctx
	b.self = self
	b.id = ctx.Registry.NextID()
}

func (b *BaseNode) NodeBase() *BaseNode  { return b }
func (b *BaseNode) ID() pubsub.ID        { return b.id }
func (b *BaseNode) Context() *Context    { return b.ctx }
func (b *BaseNode) Parent() Node         { return b.parent }
func (b *BaseNode) Destroyed() bool      { return b.destroyed }
func (b *BaseNode) Bounds() geom.Rect    { return b.Rect }
func (b *BaseNode) Position() geom.Point { return b.Rect.Pos() }

func (b *BaseNode) SetPosition(p geom.Point) { b.Rect = b.Rect.Moved(p) }

// Resize sets the node's size, clamping negatives to zero.
func (b *BaseNode) Resize(s geom.Size) {
	b.Rect = geom.RectAt(b.Rect.Pos(), s)
}

// IsPointInside hit-tests against the node's own bounds.
func (b *BaseNode) IsPointInside(p geom.Point) bool { return b.Rect.Contains(p) }

// Children returns the owned children in paint order.
func (b *BaseNode) Children() []Node {
	out := make([]Node, len(b.children))
	copy(out, b.children)
	return out
}

// HandleEvent ignores everything by default.
func (b *BaseNode) HandleEvent(event.Event) {}

// Render draws the children in insertion order.
func (b *BaseNode) Render(r Renderer) { b.RenderChildren(r) }

// RenderChildren draws every child; later children paint over earlier ones.
func (b *BaseNode) RenderChildren(r Renderer) {
	for _, c := range b.children {
		c.Render(r)
	}
}

// AddChild transfers ownership of child to this node and appends it.
func (b *BaseNode) AddChild(child Node) {
	if b.destroyed {
		panic("core: add child to a destroyed node")
	}
	if child == nil {
		panic("core: add nil child")
	}
	cb := child.NodeBase()
	if cb.id == 0 {
		panic("core: child was never initialised")
	}
	if cb.destroyed {
		panic("core: add destroyed child")
	}
	if cb.parent != nil {
		panic("core: child already owned by another node")
	}
	for n := b.self; n != nil; n = n.NodeBase().parent {
		if n.NodeBase() == cb {
			panic("core: ownership cycle")
		}
	}
	cb.parent = b.self
	b.children = append(b.children, child)
}

// RemoveChild detaches child and destroys it with all its descendants.
func (b *BaseNode) RemoveChild(child Node) {
	idx := -1
	for i, c := range b.children {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic("core: remove of a node that is not a child")
	}
	b.children = append(b.children[:idx], b.children[idx+1:]...)
	child.NodeBase().parent = nil
	child.NodeBase().destroy()
}

// Destroy tears down n and its subtree, detaching it from its owner first.
func Destroy(n Node) {
	b := n.NodeBase()
	if p := b.parent; p != nil && !b.destroyed {
		p.NodeBase().RemoveChild(n)
		return
	}
	b.destroy()
}

// destroy purges the node from whichever layer is active now, then
// releases its children.
func (b *BaseNode) destroy() {
	if b.destroyed {
		panic("core: node destroyed twice")
	}
	b.destroyed = true
	b.ctx.Registry.Purge(b.id)
	if f, ok := b.self.(Finalizer); ok {
		f.Finalize()
	}
	kids := b.children
	b.children = nil
	for i := len(kids) - 1; i >= 0; i-- {
		kb := kids[i].NodeBase()
		kb.parent = nil
		kb.destroy()
	}
}
