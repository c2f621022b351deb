package bootstrap

import (
	"context"
	"log"

	"notes-app-be/internal/config"
	"notes-app-be/internal/controller"
	"notes-app-be/internal/pkg/logger"
	"notes-app-be/internal/repository/contract"
	"notes-app-be/internal/repository/implementation"
	"notes-app-be/internal/repository/memory"
	"notes-app-be/internal/repository/unitofwork"
	"notes-app-be/internal/service"
	pktNats "notes-app-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController   controller.INoteController
	HealthController controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

type Option func(*options)

type options struct {
	logger logger.ILogger
}

// WithLogger overrides the file-backed zap logger, e.g. with logger.NewNopLogger in tests.
func WithLogger(l logger.ILogger) Option {
	return func(o *options) { o.logger = l }
}

func NewContainer(db *gorm.DB, cfg *config.Config, opts ...Option) *Container {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Container{}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := o.logger
	auditLogger := o.logger
	if sysLogger == nil {
		sysLogger = logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
		auditLogger = logger.NewIsolatedLogger("logs/note_events.log")
	}
	c.Logger = sysLogger

	// 2. List Cache
	listCache := c.newListCache(cfg)

	// 3. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	var forwarder service.EventForwarder
	if cfg.Events.NatsEnabled {
		natsPub, err := pktNats.NewPublisher(cfg.Events.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			forwarder = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Events.Topic, pubSub)
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.Events.Topic, auditLogger, forwarder)

	noteService := service.NewNoteService(uowFactory, listCache, publisherService, sysLogger)
	healthService := service.NewHealthService(db, uowFactory)

	// 5. Controllers
	c.NoteController = controller.NewNoteController(noteService, sysLogger)
	c.HealthController = controller.NewHealthController(healthService)

	return c
}

func (c *Container) newListCache(cfg *config.Config) contract.NoteListCache {
	switch cfg.Cache.Driver {
	case "memory":
		// Only exact for a single replica; other instances do not see its invalidations.
		return memory.NewNoteListCache(cfg.Cache.TTL)
	case "redis":
		opt, err := redis.ParseURL(cfg.Cache.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.Cache.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		c.closers = append(c.closers, func() { _ = rdb.Close() })
		return implementation.NewRedisNoteListCache(rdb, cfg.Cache.TTL)
	default:
		return memory.NopNoteListCache{}
	}
}

// Close releases the event bus and external connections, in reverse order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
