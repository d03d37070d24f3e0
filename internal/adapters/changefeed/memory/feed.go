// Package memory implementa changefeed.Feed en proceso: Publish entrega el
// cambio de forma síncrona a cada suscriptor de la colección.
package memory

import (
	"context"
	"sync"

	"cattle-farm-manager/internal/ports/changefeed"
)

type subscriber struct {
	id int
	fn changefeed.Handler
}

type Feed struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string][]subscriber
}

func NewFeed() *Feed {
	return &Feed{subs: map[string][]subscriber{}}
}

func (f *Feed) Publish(ctx context.Context, c changefeed.Change) error {
	f.mu.RLock()
	subs := append([]subscriber(nil), f.subs[c.Collection]...)
	f.mu.RUnlock()

	for _, s := range subs {
		s.fn(c)
	}
	return nil
}

// Subscribe registra fn hasta que ctx se cancele.
func (f *Feed) Subscribe(ctx context.Context, collection string, fn changefeed.Handler) error {
	f.mu.Lock()
	f.nextID++
	id := f.nextID
	f.subs[collection] = append(f.subs[collection], subscriber{id: id, fn: fn})
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.unsubscribe(collection, id)
	}()
	return nil
}

func (f *Feed) unsubscribe(collection string, id int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	subs := f.subs[collection]
	for i, s := range subs {
		if s.id == id {
			f.subs[collection] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}
