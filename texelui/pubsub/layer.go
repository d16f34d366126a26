package pubsub

// Layer maps a sender to its recipients. Recipient order is subscription
// order so fan-out is deterministic.
type Layer struct {
	senders map[ID]*recipientSet
}

type recipientSet struct {
	order []ID
	index map[ID]struct{}
}

func newLayer() *Layer {
	return &Layer{senders: make(map[ID]*recipientSet)}
}

func (l *Layer) add(sender, recipient ID) {
	set := l.senders[sender]
	if set == nil {
		set = &recipientSet{index: make(map[ID]struct{})}
		l.senders[sender] = set
	}
	if _, ok := set.index[recipient]; ok {
		return
	}
	set.index[recipient] = struct{}{}
	set.order = append(set.order, recipient)
}

func (l *Layer) remove(sender, recipient ID) {
	set := l.senders[sender]
	if set == nil {
		return
	}
	if _, ok := set.index[recipient]; !ok {
		return
	}
	delete(set.index, recipient)
	for i, id := range set.order {
		if id == recipient {
			set.order = append(set.order[:i], set.order[i+1:]...)
			break
		}
	}
	if len(set.order) == 0 {
		delete(l.senders, sender)
	}
}

func (l *Layer) dropSender(sender ID) {
	delete(l.senders, sender)
}

func (l *Layer) dropRecipient(recipient ID) {
	for sender := range l.senders {
		l.remove(sender, recipient)
	}
}

// fanout returns a copy so callers can iterate while the layer changes.
func (l *Layer) fanout(sender ID) []ID {
	set := l.senders[sender]
	if set == nil {
		return nil
	}
	out := make([]ID, len(set.order))
	copy(out, set.order)
	return out
}

func (l *Layer) snapshot() map[ID][]ID {
	out := make(map[ID][]ID, len(l.senders))
	for sender := range l.senders {
		out[sender] = l.fanout(sender)
	}
	return out
}
