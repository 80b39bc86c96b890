package card

// LifecycleObserver receives host lifecycle notifications.
type LifecycleObserver interface {
	OnAttached(parent Container)
	OnDetached()
	OnResumed()
}

// Lifecycle is a source of lifecycle notifications.
type Lifecycle interface {
	Subscribe(o LifecycleObserver) Subscription
}

// Subscription is released to stop receiving notifications.
type Subscription interface {
	Release()
}

// Bind subscribes the card to a lifecycle source, releasing any previous
// subscription first.
func (c *Card) Bind(l Lifecycle) {
	c.Close()
	c.sub = l.Subscribe(c)
}

// Close releases the lifecycle subscription. It is safe to call repeatedly.
func (c *Card) Close() {
	if c.sub != nil {
		c.sub.Release()
		c.sub = nil
	}
}

// Hub is a Lifecycle that fans notifications out to its subscribers.
// The zero value is ready to use.
type Hub struct {
	next      int
	observers map[int]LifecycleObserver
	order     []int
}

// Subscribe registers o and returns its subscription.
func (h *Hub) Subscribe(o LifecycleObserver) Subscription {
	if h.observers == nil {
		h.observers = make(map[int]LifecycleObserver)
	}
	id := h.next
	h.next++
	h.observers[id] = o
	h.order = append(h.order, id)
	return &hubSubscription{hub: h, id: id}
}

// Attached notifies subscribers that the slot was attached to parent.
func (h *Hub) Attached(parent Container) {
	h.each(func(o LifecycleObserver) { o.OnAttached(parent) })
}

// Detached notifies subscribers that the slot was detached.
func (h *Hub) Detached() {
	h.each(LifecycleObserver.OnDetached)
}

// Resumed notifies subscribers that the host returned to the foreground.
func (h *Hub) Resumed() {
	h.each(LifecycleObserver.OnResumed)
}

// Len returns the number of active subscriptions.
func (h *Hub) Len() int {
	return len(h.observers)
}

func (h *Hub) each(fn func(LifecycleObserver)) {
	for _, id := range h.order {
		if o, ok := h.observers[id]; ok {
			fn(o)
		}
	}
}

func (h *Hub) remove(id int) {
	if _, ok := h.observers[id]; !ok {
		return
	}
	delete(h.observers, id)
	for i, v := range h.order {
		if v == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

type hubSubscription struct {
	hub *Hub
	id  int
}

func (s *hubSubscription) Release() {
	s.hub.remove(s.id)
}
