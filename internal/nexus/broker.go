package nexus

import (
	"context"
	"sync"

	"waniyilo/models"
	"waniyilo/stores"
)

// Broker delivers published messages to live subscribers. Private
// events reach only subscribers registered for the receiving matricule.
type Broker interface {
	PublishGlobal(ctx context.Context, msg models.NexusMessage) error
	PublishPrivate(ctx context.Context, msg models.PrivateMessage) error
	SubscribeGlobal(cb func(models.NexusMessage)) stores.Subscription
	SubscribePrivate(matricule string, cb func(models.PrivateMessage)) stores.Subscription
	Close()
}

// registry tracks local subscribers. Both brokers dispatch through it.
type registry struct {
	mu         sync.Mutex
	nextID     int
	globals    map[int]func(models.NexusMessage)
	privates   map[int]privateSub
	subscribed func() // invoked on first subscription, may be nil
}

type privateSub struct {
	matricule string
	cb        func(models.PrivateMessage)
}

func newRegistry() *registry {
	return &registry{
		globals:  map[int]func(models.NexusMessage){},
		privates: map[int]privateSub{},
	}
}

func (r *registry) addGlobal(cb func(models.NexusMessage)) stores.Subscription {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.globals[id] = cb
	notify := r.subscribed
	r.mu.Unlock()
	if notify != nil {
		notify()
	}
	return &subscription{cancel: func() {
		r.mu.Lock()
		delete(r.globals, id)
		r.mu.Unlock()
	}}
}

func (r *registry) addPrivate(matricule string, cb func(models.PrivateMessage)) stores.Subscription {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.privates[id] = privateSub{matricule: matricule, cb: cb}
	notify := r.subscribed
	r.mu.Unlock()
	if notify != nil {
		notify()
	}
	return &subscription{cancel: func() {
		r.mu.Lock()
		delete(r.privates, id)
		r.mu.Unlock()
	}}
}

func (r *registry) dispatchGlobal(msg models.NexusMessage) {
	r.mu.Lock()
	cbs := make([]func(models.NexusMessage), 0, len(r.globals))
	for _, cb := range r.globals {
		cbs = append(cbs, cb)
	}
	r.mu.Unlock()
	for _, cb := range cbs {
		cb(msg)
	}
}

func (r *registry) dispatchPrivate(msg models.PrivateMessage) {
	r.mu.Lock()
	cbs := make([]func(models.PrivateMessage), 0, len(r.privates))
	for _, sub := range r.privates {
		if sub.matricule == msg.Receiver {
			cbs = append(cbs, sub.cb)
		}
	}
	r.mu.Unlock()
	for _, cb := range cbs {
		cb(msg)
	}
}

// subscription cancels exactly once; extra Unsubscribe calls are no-ops.
type subscription struct {
	once   sync.Once
	cancel func()
}

func (s *subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

// InProcessBroker dispatches synchronously inside one process.
type InProcessBroker struct {
	reg *registry
}

// NewInProcessBroker builds the single-node broker.
func NewInProcessBroker() *InProcessBroker {
	return &InProcessBroker{reg: newRegistry()}
}

// PublishGlobal delivers to every global subscriber.
func (b *InProcessBroker) PublishGlobal(ctx context.Context, msg models.NexusMessage) error {
	b.reg.dispatchGlobal(msg)
	return nil
}

// PublishPrivate delivers to the receiver's subscribers.
func (b *InProcessBroker) PublishPrivate(ctx context.Context, msg models.PrivateMessage) error {
	b.reg.dispatchPrivate(msg)
	return nil
}

// SubscribeGlobal registers a community-channel listener.
func (b *InProcessBroker) SubscribeGlobal(cb func(models.NexusMessage)) stores.Subscription {
	return b.reg.addGlobal(cb)
}

// SubscribePrivate registers a listener for one matricule's inbox.
func (b *InProcessBroker) SubscribePrivate(matricule string, cb func(models.PrivateMessage)) stores.Subscription {
	return b.reg.addPrivate(matricule, cb)
}

// Close is a no-op for the in-process broker.
func (b *InProcessBroker) Close() {}
