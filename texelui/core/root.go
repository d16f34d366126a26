package core

import (
	"github.com/framegrace/texelpaint/texelui/event"
	"github.com/framegrace/texelpaint/texelui/geom"
)

// Root is the top of the tree. It draws its children but never routes
// events through them: every event it receives is published to whoever
// subscribed to it in the active layer.
type Root struct {
	BaseNode
}

// NewRoot creates a root node sized to the screen.
func NewRoot(ctx *Context, size geom.Size) *Root {
	r := &Root{}
	r.Init(ctx, r)
	r.Resize(size)
	return r
}

// HandleEvent publishes ev as the root.
func (r *Root) HandleEvent(ev event.Event) {
	if rs, ok := ev.(event.Resize); ok {
		r.Resize(rs.Size)
	}
	r.ctx.Publish(r, ev)
}
