package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/technotes-api/internal/config"
	"github.com/yukikurage/technotes-api/internal/constants"
	"github.com/yukikurage/technotes-api/internal/database"
	apierrors "github.com/yukikurage/technotes-api/internal/errors"
	"github.com/yukikurage/technotes-api/internal/handlers"
	"github.com/yukikurage/technotes-api/internal/logger"
	"github.com/yukikurage/technotes-api/internal/messages"
	"github.com/yukikurage/technotes-api/internal/metrics"
	"github.com/yukikurage/technotes-api/internal/middleware"
	"github.com/yukikurage/technotes-api/internal/repository"
	"github.com/yukikurage/technotes-api/internal/services"
	"go.uber.org/zap"
)

// store bundles the repositories of the selected backend with its health probe
// and shutdown hook.
type store struct {
	users repository.UserRepository
	notes repository.NoteRepository
	ping  func(ctx context.Context) error
	close func()
}

func main() {
	// Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	st, err := openStore(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to open record store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer st.close()

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(metrics.Middleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", constants.HeaderRequestID},
		ExposeHeaders:    []string{constants.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	// Pool of 10 connections, default Redis user without password.
	sessionStore, err := redisStore.NewStore(10, "tcp", redisAddr, "", []byte(cfg.SessionSecret))
	if err != nil {
		log.Fatal("Failed to create Redis session store", zap.Error(err))
	}
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	// Initialize services and handlers
	resp := handlers.NewResponder(messages.ForLang(cfg.MessagesLang), cfg.StrictStatus)
	userService := services.NewUserService(st.users, st.notes, cfg.BcryptCost)
	noteService := services.NewNoteService(st.notes, st.users)
	authService := services.NewAuthService(st.users)

	r.GET("/health", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := st.ping(pingCtx); err != nil {
			_ = c.Error(err)
			apierrors.ServiceUnavailable(c, "Record store unreachable")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Tech notes API is running",
		})
	})
	r.GET("/metrics", metrics.Handler())

	handlers.RegisterRoutes(r, handlers.Handlers{
		Auth:  handlers.NewAuthHandler(authService, resp),
		Users: handlers.NewUserHandler(userService, resp),
		Notes: handlers.NewNoteHandler(noteService, resp),
	}, cfg.AuthRequired)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Starting HTTP server", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server listen error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*store, error) {
	if cfg.StoreDriver == config.DriverMongo {
		client, err := database.ConnectMongo(ctx, cfg.MongoURI, log)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.MongoDB)
		if err := repository.EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return &store{
			users: repository.NewMongoUserRepository(db),
			notes: repository.NewMongoNoteRepository(db),
			ping: func(ctx context.Context) error {
				return client.Ping(ctx, nil)
			},
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					log.Warn("Failed to disconnect from MongoDB", zap.Error(err))
				}
			},
		}, nil
	}

	db, err := database.Connect(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db, log); err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return &store{
		users: repository.NewUserRepository(db),
		notes: repository.NewNoteRepository(db),
		ping:  sqlDB.PingContext,
		close: func() {
			if err := sqlDB.Close(); err != nil {
				log.Warn("Failed to close database", zap.Error(err))
			}
		},
	}, nil
}
