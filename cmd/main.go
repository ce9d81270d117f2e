package main

import (
	"context"
	"event-tracker-auth/config"
	_ "event-tracker-auth/docs"
	"event-tracker-auth/internal/handler"
	"event-tracker-auth/internal/model"
	"event-tracker-auth/internal/ports"
	"event-tracker-auth/internal/repository"
	"event-tracker-auth/internal/security"
	"event-tracker-auth/internal/service"
	"event-tracker-auth/internal/util"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Event-tracker-auth
// @version 1.0
// @description REST API аутентификации через Google и работы с событиями

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "config.yaml", "путь к файлу конфигурации")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		util.Logger.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}
	util.InitLogger("event-tracker-auth", cfg.Log.Level)

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		util.Logger.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			util.Logger.Warnf("Ошибка при закрытии БД: %v", err)
		}
	}()

	if err := config.RunMigrations(ctx, db); err != nil {
		util.Logger.Fatalf("Ошибка применения миграций: %v", err)
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		util.Logger.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			util.Logger.Warnf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	clock := util.SystemClock{}

	tokenStore := newRefreshTokenStore(cfg, db, redisClient)
	refreshTokenService := service.NewRefreshTokenService(tokenStore, clock, service.SessionPolicy{
		SlidingWindow: cfg.SlidingWindow(),
		AbsoluteMax:   cfg.AbsoluteMax(),
		ShortSession:  cfg.ShortSession(),
	})
	jwtService := security.NewJWTService([]byte(cfg.JWT.SecretKey), cfg.AccessTokenTTL(), cfg.JWT.Issuer, clock)
	googleVerifier := security.NewGoogleVerifier(cfg.Google.ClientID)

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	eventCache := repository.NewEventCacheRepository(redisClient, cfg.EventsCacheTTL())

	authorizationService := service.NewAuthorizationService(map[model.ResourceType]ports.OwnerLookup{
		model.ResourceEvent: eventRepo,
	})
	eventService := service.NewEventService(eventRepo, eventCache, authorizationService)
	authService := service.NewAuthenticationService(googleVerifier, userRepo, refreshTokenService, jwtService)

	authHandler := handler.NewAuthenticationHandler(authService, cfg.Cookies, cfg.AbsoluteMax())
	eventHandler := handler.NewEventHandler(eventService)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupAuthRoutes(router, authHandler, jwtService)
	setupEventRoutes(router, eventHandler, jwtService)

	runServer(ctx, srv)
}

// newRefreshTokenStore : хранилище выбирается параметром session.store
func newRefreshTokenStore(cfg *config.AppConfig, db *config.Database, redisClient *config.RedisClient) ports.RefreshTokenStore {
	switch cfg.Session.Store {
	case config.StoreRedis:
		util.Logger.Info("refresh токены хранятся в Redis")
		return repository.NewRedisRefreshTokenStore(redisClient, cfg.AbsoluteMax())
	case config.StoreMemory:
		util.Logger.Warn("refresh токены хранятся в памяти процесса и теряются при перезапуске")
		return repository.NewMemoryRefreshTokenStore()
	default:
		return repository.NewRefreshTokenRepository(db)
	}
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, jwtService *security.JWTService) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Post("/google", h.GoogleLogin)
			r.Post("/refresh", h.RefreshToken)
			r.Post("/logout", h.Logout)
		})
		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(jwtService))
			r.Post("/logout-all", h.LogoutAll)
			r.Get("/me", h.GetCurrentUser)
			r.Head("/me", h.GetCurrentUserHead)
		})
	})
}

func setupEventRoutes(r chi.Router, h *handler.EventHandler, jwtService *security.JWTService) {
	r.Route("/api/events", func(r chi.Router) {
		r.Use(security.JWTMiddleware(jwtService))
		r.Get("/", h.ListEvents)
		r.Post("/", h.CreateEvent)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetEvent)
			r.Delete("/", h.DeleteEvent)
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		util.Logger.Infof("сервер запущен на %s", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			util.Logger.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		util.Logger.Infof("получен сигнал %v остановки работы сервера", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		util.Logger.Errorf("ошибка при остановке сервера: %v", err)
	} else {
		util.Logger.Info("Сервер успешно остановлен")
	}
}
