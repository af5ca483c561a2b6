package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	natsgo "github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/landsetu/landsetu/internal/adapter/mongo"
	natsadapter "github.com/landsetu/landsetu/internal/adapter/nats"
	redisadapter "github.com/landsetu/landsetu/internal/adapter/redis"
	"github.com/landsetu/landsetu/internal/adapter/storage/s3"
	"github.com/landsetu/landsetu/internal/app/config"
	"github.com/landsetu/landsetu/internal/mailer"
	"github.com/landsetu/landsetu/internal/platform/logger"
	"github.com/landsetu/landsetu/internal/platform/tracer"
	"github.com/landsetu/landsetu/internal/port/httpserver"
	"github.com/landsetu/landsetu/internal/port/httpserver/handler"
	"github.com/landsetu/landsetu/internal/service"
)

type App struct {
	cfg         *config.Config
	log         logger.Logger
	mongoClient *mongodriver.Client
	redisClient *redis.Client
	natsConn    *natsgo.Conn
	tp          *sdktrace.TracerProvider
	server      *httpserver.Server
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log, err := logger.NewZapLogger(logger.Config{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	log.Infof("starting landsetu api, env=%s", cfg.Env)

	var tp *sdktrace.TracerProvider
	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err = tracer.InitTracer(ctx, cfg.Tracing.OTLPEndpoint)
		if err != nil {
			return nil, fmt.Errorf("init tracer: %w", err)
		}
	}

	mongoClient, err := mongo.NewClient(ctx, cfg.MongoDB)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	db := mongoClient.Database(cfg.MongoDB.Database)

	redisClient, err := redisadapter.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	natsConn, err := natsadapter.NewConnection(cfg.NATS)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	publisher, err := natsadapter.NewEventPublisher(natsConn)
	if err != nil {
		return nil, fmt.Errorf("init publisher: %w", err)
	}

	photoStorage, err := s3.NewStorage(cfg.S3, log)
	if err != nil {
		return nil, fmt.Errorf("init photo storage: %w", err)
	}

	landRepo := mongo.NewLandRepository(db, log)
	contactRepo := mongo.NewContactRepository(db, log)
	userRepo := mongo.NewUserRepository(db, log)
	sessionRepo := redisadapter.NewSessionRepository(redisClient)
	featuredCache := redisadapter.NewFeaturedCache(redisClient)
	inquiryMailer := mailer.New(cfg.SMTP)

	landSvc := service.NewLandService(landRepo, featuredCache, publisher, photoStorage, log, cfg.Cache.FeaturedTTL)
	contactSvc := service.NewContactService(contactRepo, landRepo, userRepo, publisher, inquiryMailer, log)
	userSvc := service.NewUserService(userRepo, sessionRepo, log, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)

	router := httpserver.NewRouter(httpserver.RouterDeps{
		Lands:     handler.NewLandHandler(landSvc, log),
		Contacts:  handler.NewContactHandler(contactSvc, log),
		Users:     handler.NewUserHandler(userSvc, log),
		Sessions:  sessionRepo,
		JWTSecret: cfg.Auth.JWTSecret,
		Log:       log,
	})

	return &App{
		cfg:         cfg,
		log:         log,
		mongoClient: mongoClient,
		redisClient: redisClient,
		natsConn:    natsConn,
		tp:          tp,
		server:      httpserver.NewServer(cfg.HTTPServer, router),
	}, nil
}

func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Infof("http server listening on :%s", a.cfg.HTTPServer.Port)
		errCh <- a.server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case sig := <-quit:
		a.log.Infof("received signal %s, shutting down", sig)
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTPServer.TimeoutGraceful)
	defer cancel()

	if err := a.server.Stop(ctx); err != nil {
		a.log.Errorf("http server shutdown: %v", err)
	}

	if a.natsConn != nil {
		if err := a.natsConn.Drain(); err != nil {
			a.log.Errorf("nats drain: %v", err)
		}
		a.natsConn.Close()
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Errorf("redis close: %v", err)
		}
	}

	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(ctx); err != nil {
			a.log.Errorf("mongo disconnect: %v", err)
		}
	}

	if a.tp != nil {
		if err := a.tp.Shutdown(ctx); err != nil {
			a.log.Errorf("tracer shutdown: %v", err)
		}
	}

	a.log.Info("shutdown complete")
	return nil
}
