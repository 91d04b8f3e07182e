package app

import (
	"os"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/bwmarrin/snowflake"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/adforgehq/adforge/config"
	"github.com/adforgehq/adforge/internal/binder"
	"github.com/adforgehq/adforge/internal/eventbus"
	"github.com/adforgehq/adforge/internal/integrity"
	"github.com/adforgehq/adforge/internal/repository"
	"github.com/adforgehq/adforge/internal/store"
	"github.com/adforgehq/adforge/internal/webhook"
)

type Application struct {
	appConfig *config.AppConfig
	datastore *store.Store
	bus       *eventbus.Bus
	sched     *cron.Cron

	productRepo repository.ProductRepository
	avatarRepo  repository.AvatarRepository
	checker     *integrity.Checker
	generator   *webhook.Service
	cache       *binder.Binder
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider     = (*Application)(nil)
	_ StoreProvider      = (*Application)(nil)
	_ BusProvider        = (*Application)(nil)
	_ RepositoryProvider = (*Application)(nil)
	_ IntegrityProvider  = (*Application)(nil)
	_ GeneratorProvider  = (*Application)(nil)
	_ BinderProvider     = (*Application)(nil)
	_ AppContext         = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Init(cfg *config.AppConfig) error {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)

	// Open the datastore
	a.datastore, err = store.Open(cfg.StorePath())
	if err != nil {
		return err
	}
	zap.S().Infof("datastore opened at %s", cfg.StorePath())

	// One bus instance for the whole process, passed by reference to every
	// component that needs pub/sub.
	a.bus = eventbus.New()

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	// One mutation lock shared by both repositories: their writes land in the
	// same store and bus delivery runs inside the critical section.
	mu := &sync.Mutex{}
	a.productRepo = repository.NewStoreProductRepository(a.datastore, a.bus, node, mu)
	a.avatarRepo = repository.NewStoreAvatarRepository(a.datastore, a.bus, node, mu)
	a.checker = integrity.NewChecker(a.productRepo, a.avatarRepo)
	a.generator = webhook.NewService(
		webhook.NewClient(cfg.Webhook),
		a.productRepo,
		a.avatarRepo,
	)

	a.cache = binder.New(a.productRepo, a.avatarRepo, a.bus, func() {
		zap.S().Debug("cache snapshots refreshed")
	})
	a.cache.Attach()

	a.initJob()
	return nil
}

func (a *Application) Datastore() *store.Store {
	return a.datastore
}

func (a *Application) Bus() *eventbus.Bus {
	return a.bus
}

func (a *Application) ProductRepo() repository.ProductRepository {
	return a.productRepo
}

func (a *Application) AvatarRepo() repository.AvatarRepository {
	return a.avatarRepo
}

func (a *Application) Integrity() *integrity.Checker {
	return a.checker
}

func (a *Application) Generator() *webhook.Service {
	return a.generator
}

func (a *Application) Binder() *binder.Binder {
	return a.cache
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.cache != nil {
		a.cache.Detach()
	}
	if a.datastore != nil {
		_ = a.datastore.Close()
	}
	_ = zap.L().Sync()
}
