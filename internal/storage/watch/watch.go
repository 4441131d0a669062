package watch

import (
	"context"
	"sync"
)

// Notifier fans out "table changed" events to subscribers. One Notifier
// guards one logical table. Publish never blocks: each subscriber channel
// has a buffer of one, so bursts of writes coalesce into a single pending
// event while the subscriber is busy re-running its query.
type Notifier struct {
	mu   sync.Mutex
	subs map[uint64]chan struct{}
	next uint64
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[uint64]chan struct{})}
}

// Publish signals every current subscriber that the table changed.
func (n *Notifier) Publish() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribe registers a listener for table changes. The returned channel
// is closed and the subscription removed once ctx is done; no emissions
// follow the close.
func (n *Notifier) Subscribe(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)

	n.mu.Lock()
	id := n.next
	n.next++
	n.subs[id] = ch
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
		close(ch)
	}()

	return ch
}

// Subscribers reports the current subscription count.
func (n *Notifier) Subscribers() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}
