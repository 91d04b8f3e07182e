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

// StoreAvatarRepository is the datastore-backed AvatarRepository. It shares
// its mutation lock with the product repository; see StoreProductRepository.
type StoreAvatarRepository struct {
	store *store.Store
	bus   *eventbus.Bus
	node  *snowflake.Node
	mu    *sync.Mutex
}

func NewStoreAvatarRepository(s *store.Store, bus *eventbus.Bus, node *snowflake.Node, mu *sync.Mutex) *StoreAvatarRepository {
	return &StoreAvatarRepository{store: s, bus: bus, node: node, mu: mu}
}

func (r *StoreAvatarRepository) List() []domain.Avatar {
	return store.LoadCollection(r.store, domain.AvatarsKey, []domain.Avatar{})
}

func (r *StoreAvatarRepository) Create(candidate domain.Avatar) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	avatars := r.List()
	if dup := dedup.FindDuplicateAvatar(candidate, avatars); dup != nil {
		zap.S().Debugf("avatar %q rejected as duplicate of %s in product scope %q",
			candidate.Name, dup.ID, candidate.ProductID)
		return false
	}
	if candidate.ID == "" {
		candidate.ID = r.node.Generate().String()
	}
	if candidate.CreatedAt.IsZero() {
		candidate.CreatedAt = time.Now()
	}
	avatars = append(avatars, candidate)
	store.SaveCollection(r.store, domain.AvatarsKey, avatars)
	r.bus.Emit(eventbus.TopicAvatarsUpdated)
	r.bus.Emit(eventbus.TopicAllDataUpdated)
	return true
}

func (r *StoreAvatarRepository) Update(entity domain.Avatar) {
	r.mu.Lock()
	defer r.mu.Unlock()

	avatars := r.List()
	for i := range avatars {
		if avatars[i].ID != entity.ID {
			continue
		}
		entity.ID = avatars[i].ID
		if entity.CreatedAt.IsZero() {
			entity.CreatedAt = avatars[i].CreatedAt
		}
		avatars[i] = entity
		store.SaveCollection(r.store, domain.AvatarsKey, avatars)
		r.bus.Emit(eventbus.TopicAvatarsUpdated)
		r.bus.Emit(eventbus.TopicAllDataUpdated)
		return
	}
	zap.S().Debugf("avatar update skipped, no record with id %s", entity.ID)
}

func (r *StoreAvatarRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	avatars := r.List()
	kept := avatars[:0:0]
	for _, a := range avatars {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(avatars) {
		zap.S().Debugf("avatar delete skipped, no record with id %s", id)
		return
	}
	store.SaveCollection(r.store, domain.AvatarsKey, kept)
	r.bus.Emit(eventbus.TopicAvatarsUpdated)
	r.bus.Emit(eventbus.TopicAllDataUpdated)
}
