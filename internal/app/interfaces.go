package app

import (
	"github.com/robfig/cron/v3"

	"github.com/adforgehq/adforge/config"
	"github.com/adforgehq/adforge/internal/binder"
	"github.com/adforgehq/adforge/internal/eventbus"
	"github.com/adforgehq/adforge/internal/integrity"
	"github.com/adforgehq/adforge/internal/repository"
	"github.com/adforgehq/adforge/internal/store"
	"github.com/adforgehq/adforge/internal/webhook"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides datastore access
type StoreProvider interface {
	Datastore() *store.Store
}

// BusProvider provides the process-wide event bus
type BusProvider interface {
	Bus() *eventbus.Bus
}

// RepositoryProvider provides the entity repositories
type RepositoryProvider interface {
	ProductRepo() repository.ProductRepository
	AvatarRepo() repository.AvatarRepository
}

// IntegrityProvider provides the referential-integrity checker
type IntegrityProvider interface {
	Integrity() *integrity.Checker
}

// GeneratorProvider provides the webhook generation service
type GeneratorProvider interface {
	Generator() *webhook.Service
}

// BinderProvider provides the reactive snapshot binder
type BinderProvider interface {
	Binder() *binder.Binder
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	StoreProvider
	BusProvider
	RepositoryProvider
	IntegrityProvider
	GeneratorProvider
	BinderProvider
	SchedulerProvider
}
