package repository

import (
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/adforgehq/adforge/internal/dedup"
	"github.com/adforgehq/adforge/internal/domain"
	"github.com/adforgehq/adforge/internal/eventbus"
	"github.com/adforgehq/adforge/internal/store"
)

// StoreProductRepository is the datastore-backed ProductRepository. All
// mutation of the products collection is funnelled through it; no other
// component writes the collection key directly. Mutating operations hold mu
// for their whole read-modify-write-emit cycle; the same lock must be shared
// with the avatar repository because both collections live in one store and
// bus delivery runs inside the critical section.
type StoreProductRepository struct {
	store *store.Store
	bus   *eventbus.Bus
	node  *snowflake.Node
	mu    *sync.Mutex
}

func NewStoreProductRepository(s *store.Store, bus *eventbus.Bus, node *snowflake.Node, mu *sync.Mutex) *StoreProductRepository {
	return &StoreProductRepository{store: s, bus: bus, node: node, mu: mu}
}

func (r *StoreProductRepository) List() []domain.Product {
	return store.LoadCollection(r.store, domain.ProductsKey, []domain.Product{})
}

func (r *StoreProductRepository) Create(candidate domain.Product) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.List()
	if dup := dedup.FindDuplicateProduct(candidate, products); dup != nil {
		zap.S().Debugf("product %q rejected as duplicate of %s", candidate.Name, dup.ID)
		return false
	}
	if candidate.ID == "" {
		candidate.ID = r.node.Generate().String()
	}
	if candidate.CreatedAt.IsZero() {
		candidate.CreatedAt = time.Now()
	}
	products = append(products, candidate)
	store.SaveCollection(r.store, domain.ProductsKey, products)
	r.bus.Emit(eventbus.TopicProductsUpdated)
	r.bus.Emit(eventbus.TopicAllDataUpdated)
	return true
}

func (r *StoreProductRepository) Update(entity domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.List()
	for i := range products {
		if products[i].ID != entity.ID {
			continue
		}
		// id and creation timestamp are immutable
		entity.ID = products[i].ID
		if entity.CreatedAt.IsZero() {
			entity.CreatedAt = products[i].CreatedAt
		}
		products[i] = entity
		store.SaveCollection(r.store, domain.ProductsKey, products)
		r.bus.Emit(eventbus.TopicProductsUpdated)
		r.bus.Emit(eventbus.TopicAllDataUpdated)
		return
	}
	zap.S().Debugf("product update skipped, no record with id %s", entity.ID)
}

func (r *StoreProductRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.List()
	kept := products[:0:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		zap.S().Debugf("product delete skipped, no record with id %s", id)
		return
	}
	store.SaveCollection(r.store, domain.ProductsKey, kept)
	r.bus.Emit(eventbus.TopicProductsUpdated)
	r.bus.Emit(eventbus.TopicAllDataUpdated)
}
