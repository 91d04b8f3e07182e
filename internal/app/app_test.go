package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adforgehq/adforge/config"
	"github.com/adforgehq/adforge/internal/domain"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	cfg := config.LoadConfig("")
	cfg.System.Workdir = t.TempDir()
	cfg.System.Location = "UTC"
	cfg.Logger.Mode = "development"
	cfg.Logger.FileEnable = false
	cfg.Store.Filename = filepath.Join(cfg.System.Workdir, "test.db")

	application := NewApplication(cfg)
	require.NoError(t, application.Init(cfg))
	t.Cleanup(application.Release)
	return application
}

func TestInitWiresBinder(t *testing.T) {
	application := newTestApplication(t)
	require.NotNil(t, application.Binder())
	assert.Empty(t, application.Binder().Products())

	// the attached binder picks up repository writes through the bus
	require.True(t, application.ProductRepo().Create(domain.Product{Name: "SmartBottle"}))
	assert.Len(t, application.Binder().Products(), 1)

	require.True(t, application.AvatarRepo().Create(domain.Avatar{Name: "Runner"}))
	assert.Len(t, application.Binder().Avatars(), 1)
}

func TestInitWiresIntegrityAndGenerator(t *testing.T) {
	application := newTestApplication(t)
	require.NotNil(t, application.Integrity())
	require.NotNil(t, application.Generator())
	assert.True(t, application.Integrity().Validate().IsValid)
}
