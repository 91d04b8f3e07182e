package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adforgehq/adforge/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestReadAbsent(t *testing.T) {
	s := newTestStore(t)
	value, present := s.Read("missing")
	assert.False(t, present)
	assert.Nil(t, value)
}

func TestWriteRead(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Write("k", []byte("v")))
	value, present := s.Read("k")
	assert.True(t, present)
	assert.Equal(t, []byte("v"), value)
}

func TestCollectionRoundTrip(t *testing.T) {
	s := newTestStore(t)
	products := []domain.Product{
		{ID: "P1", Name: "SmartBottle", Features: []string{"insulated"}},
	}
	SaveCollection(s, domain.ProductsKey, products)
	loaded := LoadCollection(s, domain.ProductsKey, []domain.Product{})
	assert.Equal(t, products, loaded)
}

func TestLoadCollectionAbsentDefault(t *testing.T) {
	s := newTestStore(t)
	loaded := LoadCollection(s, domain.ProductsKey, []domain.Product{})
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestLoadCollectionCorruptedFailSoft(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Write(domain.ProductsKey, []byte("{not json")))
	loaded := LoadCollection(s, domain.ProductsKey, []domain.Product{})
	assert.Empty(t, loaded)
}
