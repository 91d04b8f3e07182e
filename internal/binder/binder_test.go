package binder

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adforgehq/adforge/internal/domain"
	"github.com/adforgehq/adforge/internal/eventbus"
	"github.com/adforgehq/adforge/internal/repository"
	"github.com/adforgehq/adforge/internal/store"
)

func newTestBinder(t *testing.T, onChange func()) (*Binder, repository.ProductRepository, repository.AvatarRepository) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	bus := eventbus.New()
	mu := &sync.Mutex{}
	products := repository.NewStoreProductRepository(s, bus, node, mu)
	avatars := repository.NewStoreAvatarRepository(s, bus, node, mu)
	return New(products, avatars, bus, onChange), products, avatars
}

func TestAttachReloadsOnce(t *testing.T) {
	notifications := 0
	b, _, _ := newTestBinder(t, func() { notifications++ })

	b.Attach()
	assert.Equal(t, 1, notifications)
	b.Attach()
	assert.Equal(t, 1, notifications)
}

func TestSnapshotStability(t *testing.T) {
	notifications := 0
	b, _, _ := newTestBinder(t, func() { notifications++ })
	b.Attach()
	require.Equal(t, 1, notifications)

	// no write since the last reload: must stay silent
	b.Reload()
	b.Reload()
	assert.Equal(t, 1, notifications)
}

func TestWriteNotifiesOnce(t *testing.T) {
	notifications := 0
	b, products, _ := newTestBinder(t, func() { notifications++ })
	b.Attach()
	require.Equal(t, 1, notifications)

	// one create emits two topics; the second delivery finds an identical
	// snapshot and is suppressed
	require.True(t, products.Create(domain.Product{Name: "SmartBottle"}))
	assert.Equal(t, 2, notifications)
	assert.Len(t, b.Products(), 1)
}

func TestSnapshotTracksBothCollections(t *testing.T) {
	b, products, avatars := newTestBinder(t, nil)
	b.Attach()

	require.True(t, products.Create(domain.Product{Name: "SmartBottle"}))
	require.True(t, avatars.Create(domain.Avatar{Name: "Runner"}))
	assert.Len(t, b.Products(), 1)
	assert.Len(t, b.Avatars(), 1)
}

func TestDetachStopsNotifications(t *testing.T) {
	notifications := 0
	b, products, _ := newTestBinder(t, func() { notifications++ })
	b.Attach()
	b.Detach()
	b.Detach()

	require.True(t, products.Create(domain.Product{Name: "SmartBottle"}))
	assert.Equal(t, 1, notifications)
	assert.Empty(t, b.Products())
}
