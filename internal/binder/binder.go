package binder

import (
	"reflect"
	"sync"

	"github.com/adforgehq/adforge/internal/domain"
	"github.com/adforgehq/adforge/internal/eventbus"
	"github.com/adforgehq/adforge/internal/repository"
)

// Binder is the consumer-facing adapter over the two collections. It holds
// read-only cached snapshots, reloads them on bus invalidations, and notifies
// its owner only when a reload actually changed something. Snapshots are
// derived copies: writes must go through the repositories, never by mutating
// a snapshot.
//
// Reloads are driven by bus delivery inside the repositories' mutation
// critical section; snapshot reads may come from request goroutines, so the
// snapshots sit behind their own read-write lock.
type Binder struct {
	products repository.ProductRepository
	avatars  repository.AvatarRepository
	bus      *eventbus.Bus

	mu           sync.RWMutex
	productsSnap []domain.Product
	avatarsSnap  []domain.Avatar

	onChange     func()
	unsubscribes []func()
	attached     bool
}

// New creates a detached binder. onChange may be nil when the owner only
// polls the snapshots.
func New(products repository.ProductRepository, avatars repository.AvatarRepository, bus *eventbus.Bus, onChange func()) *Binder {
	return &Binder{products: products, avatars: avatars, bus: bus, onChange: onChange}
}

// Attach performs one unconditional initial reload and subscribes to all
// three bus topics. Attaching an already attached binder is a no-op.
func (b *Binder) Attach() {
	if b.attached {
		return
	}
	b.attached = true

	products := b.products.List()
	avatars := b.avatars.List()
	b.mu.Lock()
	b.productsSnap = products
	b.avatarsSnap = avatars
	b.mu.Unlock()
	b.notify()

	for _, topic := range []string{
		eventbus.TopicProductsUpdated,
		eventbus.TopicAvatarsUpdated,
		eventbus.TopicAllDataUpdated,
	} {
		b.unsubscribes = append(b.unsubscribes, b.bus.Subscribe(topic, b.Reload))
	}
}

// Detach unsubscribes from every topic. Idempotent.
func (b *Binder) Detach() {
	for _, unsubscribe := range b.unsubscribes {
		unsubscribe()
	}
	b.unsubscribes = nil
	b.attached = false
}

// Products returns the cached product snapshot.
func (b *Binder) Products() []domain.Product {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.productsSnap
}

// Avatars returns the cached avatar snapshot.
func (b *Binder) Avatars() []domain.Avatar {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.avatarsSnap
}

// Reload re-reads both collections and replaces a cached snapshot only when
// the freshly loaded one is not structurally equal to it, so a triggered
// reload that finds nothing different stays silent.
func (b *Binder) Reload() {
	products := b.products.List()
	avatars := b.avatars.List()

	b.mu.Lock()
	changed := false
	if !reflect.DeepEqual(products, b.productsSnap) {
		b.productsSnap = products
		changed = true
	}
	if !reflect.DeepEqual(avatars, b.avatarsSnap) {
		b.avatarsSnap = avatars
		changed = true
	}
	b.mu.Unlock()

	if changed {
		b.notify()
	}
}

func (b *Binder) notify() {
	if b.onChange != nil {
		b.onChange()
	}
}
