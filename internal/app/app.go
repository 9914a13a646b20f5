package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/stpnv0/EventZone/internal/checkout"
	"github.com/stpnv0/EventZone/internal/config"
	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/handler"
	"github.com/stpnv0/EventZone/internal/middleware"
	"github.com/stpnv0/EventZone/internal/notification"
	"github.com/stpnv0/EventZone/internal/repository"
	"github.com/stpnv0/EventZone/internal/repository/memory"
	"github.com/stpnv0/EventZone/internal/repository/mongostore"
	"github.com/stpnv0/EventZone/internal/router"
	"github.com/stpnv0/EventZone/internal/scheduler"
	"github.com/stpnv0/EventZone/internal/seen"
	"github.com/stpnv0/EventZone/internal/service"
	"github.com/stpnv0/EventZone/internal/service/ports"
	"github.com/stpnv0/EventZone/internal/upload"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const migrationsDir = "migrations"

// eventBackend is one store holding the whole event collection.
type eventBackend interface {
	ports.EventRepo
	ports.RegistrationRepo
	ports.EnquiryRepo
	ports.FeedbackRepo
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	loc        *time.Location
	events     eventBackend
	seen       ports.SeenSet
	notifier   ports.Notifier
	closers    []func(context.Context) error
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventZone",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if app.loc, err = cfg.Events.Location(); err != nil {
		return nil, err
	}

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initEventBackend(); err != nil {
		return nil, fmt.Errorf("init event backend: %w", err)
	}

	if err = app.initSeenSet(); err != nil {
		return nil, fmt.Errorf("init seen-set: %w", err)
	}

	if err = app.initNotifier(); err != nil {
		return nil, fmt.Errorf("init notifier: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initEventBackend() error {
	switch a.cfg.Events.Backend {
	case config.BackendMongo:
		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Mongo.ConnectTimeout)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(a.cfg.Mongo.URI))
		if err != nil {
			return fmt.Errorf("connect mongo: %w", err)
		}
		if err = client.Ping(ctx, nil); err != nil {
			return fmt.Errorf("ping mongo: %w", err)
		}
		a.closers = append(a.closers, client.Disconnect)

		store := mongostore.NewEventStore(client.Database(a.cfg.Mongo.Database))
		if err = store.EnsureIndexes(ctx); err != nil {
			return err
		}
		patched, err := store.BackfillEnquiries(ctx)
		if err != nil {
			return fmt.Errorf("backfill enquiries: %w", err)
		}
		if patched > 0 {
			a.log.Info("legacy enquiries backfilled", logger.Int("count", patched))
		}
		a.events = store

	case config.BackendMemory:
		a.log.Warn("event collection kept in memory, it is lost on restart")
		a.events = memory.NewEventStore()

	default:
		a.events = repository.NewEventRepo(a.db)
	}

	a.log.Info("event backend ready",
		logger.String("backend", a.cfg.Events.Backend),
		logger.String("timezone", a.loc.String()),
	)
	return nil
}

func (a *App) initSeenSet() error {
	if a.cfg.Redis.Addr == "" {
		a.seen = seen.NewMemory(a.cfg.Scheduler.SeenTTL)
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	a.closers = append(a.closers, func(context.Context) error { return client.Close() })

	a.seen = seen.NewRedis(client, a.cfg.Scheduler.SeenTTL)
	a.log.Info("redis seen-set connected", logger.String("addr", a.cfg.Redis.Addr))
	return nil
}

func (a *App) initNotifier() error {
	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return err
	}
	multi := notification.Multi{tg}

	if a.cfg.AMQP.URL != "" {
		q, closeFn, err := notification.DialAMQP(a.cfg.AMQP.URL, a.cfg.AMQP.Queue, a.log)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, func(context.Context) error { return closeFn() })
		multi = append(multi, q)
	}

	a.notifier = multi
	return nil
}

func (a *App) initServices() error {
	userRepo := repository.NewUserRepo(a.db)
	sessionRepo := repository.NewSessionRepo(a.db)
	paymentRepo := repository.NewPaymentRepo(a.db)

	gateway := checkout.NewRazorpay(
		a.cfg.Razorpay.KeyID,
		a.cfg.Razorpay.KeySecret,
		a.cfg.Razorpay.BaseURL,
		a.cfg.Razorpay.Timeout,
	)
	uploader := upload.NewCloudinary(
		a.cfg.Cloudinary.CloudName,
		a.cfg.Cloudinary.UploadPreset,
		a.cfg.Cloudinary.BaseURL,
		a.cfg.Cloudinary.MaxBytes,
		a.cfg.Cloudinary.Timeout,
	)

	authService := service.NewAuthService(userRepo, sessionRepo, a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL, a.log)
	eventService := service.NewEventService(a.events, a.loc, a.log)
	registrationService := service.NewRegistrationService(a.events, a.events, userRepo, a.notifier, a.loc, a.log)
	paymentService := service.NewPaymentService(
		paymentRepo,
		a.events,
		userRepo,
		gateway,
		registrationService,
		service.PaymentConfig{Currency: a.cfg.Razorpay.Currency, TTL: a.cfg.Payments.TTL},
		a.loc,
		a.log,
	)
	enquiryService := service.NewEnquiryService(a.events, a.events, userRepo, a.notifier, a.log)
	feedbackService := service.NewFeedbackService(a.events, a.events, a.loc, a.log)
	reminderService := service.NewReminderService(
		a.events,
		userRepo,
		a.seen,
		a.notifier,
		a.cfg.Scheduler.ReminderWindow,
		a.loc,
		a.log,
	)

	a.scheduler = scheduler.New(
		reminderService,
		paymentService,
		a.cfg.Scheduler.ReminderInterval,
		a.cfg.Scheduler.PaymentInterval,
		a.log,
	)

	h := handler.NewHandler(handler.Services{
		Events:        eventService,
		Registrations: registrationService,
		Payments:      paymentService,
		Enquiries:     enquiryService,
		Feedback:      feedbackService,
		Auth:          authService,
		Uploads:       uploader,
	}, int64(a.cfg.Cloudinary.MaxBytes))

	limiter := middleware.NewRateLimiter(a.cfg.RateLimit.RPS, a.cfg.RateLimit.Burst)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		router.Guards{
			Auth:         middleware.Auth(authService),
			OptionalAuth: middleware.OptionalAuth(authService),
			Creator:      middleware.RequireRole(domain.RoleCreator),
			SignInLimit:  limiter.Middleware(),
		},
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	c := cors.New(cors.Options{
		AllowedOrigins:   a.cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      c.Handler(r),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](shutdownCtx); err != nil {
			a.log.Error("failed to close client", logger.String("error", err.Error()))
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
