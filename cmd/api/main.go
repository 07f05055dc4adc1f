package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vrushabh-003/Personal-Portfolio/internal/achievements"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/auth"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/blogs"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/cache"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/config"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/contact"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/db"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/experiences"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/leadership"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/middleware"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/notifications"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/projects"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/users"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret: []byte(cfg.JWTSecret),
			TTL:    time.Duration(cfg.TokenTTLMinutes) * time.Minute,
			Issuer: "personal-portfolio",
		}
	} else {
		logger.Warn("JWT_SECRET not set, admin endpoints disabled")
	}

	var mailer contact.Mailer
	if brevo := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.ContactRecipient, cfg.BrevoSandbox); brevo != nil {
		mailer = brevo
		logger.Info("contact mailer enabled", slog.String("recipient", cfg.ContactRecipient))
	} else {
		logger.Info("contact mailer disabled, submissions stored only")
	}

	val := validation.New()
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	projectsHandler := projects.NewHandler(
		projects.NewService(projects.NewRepository(cols.Projects), cfg.Timezone),
		val, logger, cacheStore, cacheTTL,
	)
	blogsHandler := blogs.NewHandler(
		blogs.NewService(blogs.NewRepository(cols.Blogs), cfg.Timezone),
		val, logger,
	)
	achievementsHandler := achievements.NewHandler(
		achievements.NewService(achievements.NewRepository(cols.Achievements), cfg.Timezone),
		val, logger,
	)
	experiencesHandler := experiences.NewHandler(
		experiences.NewService(experiences.NewRepository(cols.Experiences), cfg.Timezone),
		val, logger,
	)
	leadershipHandler := leadership.NewHandler(
		leadership.NewService(leadership.NewRepository(cols.Leadership), cfg.Timezone),
		val, logger,
	)
	usersHandler := users.NewHandler(
		users.NewService(users.NewRepository(cols.Users), jwtManager),
		val, logger,
	)
	contactHandler := contact.NewHandler(cols.ContactMessages, mailer, val, logger, cfg.Timezone)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	loginLimiter := middleware.NewRateLimiter(cfg.RateLimitLogin, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	adminOnly := middleware.Auth(jwtManager)

	r.Route("/api", func(api chi.Router) {
		api.With(loginLimiter.Middleware).Post("/auth/login", usersHandler.Login)
		api.With(contactLimiter.Middleware).Post("/contact", contactHandler.Create)

		api.Route("/projects", func(pr chi.Router) {
			pr.Get("/", projectsHandler.List)
			pr.Get("/{id}", projectsHandler.GetByID)
			pr.Group(func(admin chi.Router) {
				admin.Use(adminOnly)
				admin.Get("/all", projectsHandler.AdminList)
				admin.Post("/", projectsHandler.Create)
				admin.Put("/reorder", projectsHandler.Reorder)
				admin.Put("/{id}", projectsHandler.Update)
				admin.Delete("/{id}", projectsHandler.Delete)
			})
		})

		api.Route("/blogs", func(br chi.Router) {
			br.Get("/", blogsHandler.List)
			br.Get("/slug/{slug}", blogsHandler.GetBySlug)
			br.Get("/{id}", blogsHandler.GetByID)
			br.Group(func(admin chi.Router) {
				admin.Use(adminOnly)
				admin.Post("/", blogsHandler.Create)
				admin.Put("/reorder", blogsHandler.Reorder)
				admin.Put("/{id}", blogsHandler.Update)
				admin.Delete("/{id}", blogsHandler.Delete)
			})
		})

		api.Route("/achievements", func(ar chi.Router) {
			ar.Get("/", achievementsHandler.List)
			ar.Get("/{id}", achievementsHandler.GetByID)
			ar.Group(func(admin chi.Router) {
				admin.Use(adminOnly)
				admin.Post("/", achievementsHandler.Create)
				admin.Put("/reorder", achievementsHandler.Reorder)
				admin.Put("/{id}", achievementsHandler.Update)
				admin.Delete("/{id}", achievementsHandler.Delete)
			})
		})

		api.Route("/experiences", func(er chi.Router) {
			er.Get("/", experiencesHandler.List)
			er.Get("/{id}", experiencesHandler.GetByID)
			er.Group(func(admin chi.Router) {
				admin.Use(adminOnly)
				admin.Post("/", experiencesHandler.Create)
				admin.Put("/reorder", experiencesHandler.Reorder)
				admin.Put("/{id}", experiencesHandler.Update)
				admin.Delete("/{id}", experiencesHandler.Delete)
			})
		})

		api.Route("/leadership", func(lr chi.Router) {
			lr.Get("/", leadershipHandler.List)
			lr.Get("/{id}", leadershipHandler.GetByID)
			lr.Group(func(admin chi.Router) {
				admin.Use(adminOnly)
				admin.Post("/", leadershipHandler.Create)
				admin.Put("/reorder", leadershipHandler.Reorder)
				admin.Put("/{id}", leadershipHandler.Update)
				admin.Delete("/{id}", leadershipHandler.Delete)
			})
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
