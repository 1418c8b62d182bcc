package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"locallibrary/internal/config"
	apphttp "locallibrary/internal/http"
	"locallibrary/internal/httpx"
	"locallibrary/internal/store"
	"locallibrary/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cannot load configuration: " + err.Error())
	}

	logger := mustBuildLogger(cfg.IsProduction)
	defer func() { _ = logger.Sync() }()

	dbPool := mustOpenDB(logger, cfg.DatabaseDSN)
	defer dbPool.Close()

	clock := usecase.Clock{}

	authorRepository := store.NewAuthorPG(dbPool)
	bookRepository := store.NewBookPG(dbPool)
	genreRepository := store.NewGenrePG(dbPool)
	languageRepository := store.NewLanguagePG(dbPool)
	instanceRepository := store.NewBookInstancePG(dbPool)
	sessionRepository := store.NewSessionPG(dbPool)
	summaryRepository := store.NewSummaryPG(dbPool)
	userRepository := store.NewUserPG(dbPool)

	renewalService := usecase.NewRenewalService(instanceRepository, clock)
	homeService := usecase.NewHomeService(summaryRepository, sessionRepository)

	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()
	go runSessionCleanup(cleanupCtx, logger, sessionRepository)

	homeHandler := apphttp.NewHomeHandler(homeService)
	bookHandler := apphttp.NewBookHandler(bookRepository, instanceRepository)
	authorHandler := apphttp.NewAuthorHandler(authorRepository, bookRepository)
	instanceHandler := apphttp.NewInstanceHandler(instanceRepository, renewalService, clock)
	taxonomyHandler := apphttp.NewTaxonomyHandler(genreRepository, languageRepository)
	userHandler := apphttp.NewUserHandler(userRepository, cfg.JWTSecret, cfg.TokenTTL)
	adminHandler := apphttp.NewAdminHandler()

	authed := httpx.AuthMiddleware(cfg.JWTSecret)
	librarian := func(h http.HandlerFunc) http.Handler {
		return authed(httpx.RequireCanMarkReturned(h))
	}
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return authed(httpx.RequireAdmin(h))
	}

	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandlerFunc(http.MethodGet, "/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := dbPool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandlerFunc(http.MethodPost, "/users/register", userHandler.Register)
	router.HandlerFunc(http.MethodPost, "/users/login", userHandler.Login)
	router.Handler(http.MethodGet, "/me", authed(http.HandlerFunc(userHandler.Me)))

	router.Handler(http.MethodGet, "/catalog", authed(http.HandlerFunc(homeHandler.Index)))

	router.Handler(http.MethodGet, "/catalog/books", authed(http.HandlerFunc(bookHandler.List)))
	router.Handler(http.MethodGet, "/catalog/books/:id", authed(http.HandlerFunc(bookHandler.Get)))
	router.Handler(http.MethodPost, "/catalog/books", librarian(bookHandler.Create))
	router.Handler(http.MethodPut, "/catalog/books/:id", librarian(bookHandler.Update))
	router.Handler(http.MethodDelete, "/catalog/books/:id", librarian(bookHandler.Delete))

	router.Handler(http.MethodGet, "/catalog/authors", authed(http.HandlerFunc(authorHandler.List)))
	router.Handler(http.MethodGet, "/catalog/authors/:id", authed(http.HandlerFunc(authorHandler.Get)))
	router.Handler(http.MethodPost, "/catalog/authors", librarian(authorHandler.Create))
	router.Handler(http.MethodPut, "/catalog/authors/:id", librarian(authorHandler.Update))
	router.Handler(http.MethodDelete, "/catalog/authors/:id", librarian(authorHandler.Delete))

	router.Handler(http.MethodGet, "/catalog/genres", authed(http.HandlerFunc(taxonomyHandler.ListGenres)))
	router.Handler(http.MethodPost, "/catalog/genres", librarian(taxonomyHandler.CreateGenre))
	router.Handler(http.MethodGet, "/catalog/languages", authed(http.HandlerFunc(taxonomyHandler.ListLanguages)))
	router.Handler(http.MethodPost, "/catalog/languages", librarian(taxonomyHandler.CreateLanguage))

	router.Handler(http.MethodGet, "/catalog/mybooks", authed(http.HandlerFunc(instanceHandler.MyBooks)))
	router.Handler(http.MethodGet, "/catalog/borrowed", librarian(instanceHandler.AllBorrowed))
	router.Handler(http.MethodGet, "/catalog/instances/:id/renew", librarian(instanceHandler.RenewForm))
	router.Handler(http.MethodPost, "/catalog/instances/:id/renew", librarian(instanceHandler.Renew))
	router.Handler(http.MethodPost, "/catalog/instances", librarian(instanceHandler.Create))

	router.Handler(http.MethodGet, "/admin/models", adminOnly(adminHandler.ListModels))
	router.Handler(http.MethodGet, "/admin/models/:model", adminOnly(adminHandler.GetModel))

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)

	handler := httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.SecurityHeadersMiddleware,
		rateLimiter.Handler,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		httpx.SessionMiddleware,
		httpx.AccessLogMiddleware(logger),
		httpx.RecoveryMiddleware(logger),
	)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	logger.Info("starting server", zap.String("addr", cfg.Addr))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

// runSessionCleanup prunes idle sessions once an hour until ctx is
// cancelled.
func runSessionCleanup(ctx context.Context, logger *zap.Logger, sessions *store.SessionPG) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sessions.CleanupExpired(ctx); err != nil {
				logger.Warn("session cleanup failed", zap.Error(err))
			}
		}
	}
}

func mustBuildLogger(production bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if production {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("cannot build logger: " + err.Error())
	}
	return logger
}

func mustOpenDB(logger *zap.Logger, dsn string) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Fatal("cannot create db pool", zap.Error(err))
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		logger.Fatal("cannot ping database", zap.String("dsn", redactDSN(dsn)), zap.Error(err))
	}
	logger.Info("database connection OK")
	return pool
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
