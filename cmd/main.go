package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/jewelshot/jewelshot-api/internal/facades"
	"github.com/jewelshot/jewelshot-api/internal/handlers"
	"github.com/jewelshot/jewelshot-api/internal/jwt"
	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/middlewares"
	"github.com/jewelshot/jewelshot-api/internal/repositories"
	"github.com/jewelshot/jewelshot-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title jewelshot API
// @version 1.0.0
// @description Service for transforming jewelry photos with AI image generation
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, env, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, cacheTTLSecond,
		falBaseURL, falKey,
		storageURL, storageKey,
		kafkaAddr, kafkaTopic,
		rateLimit, rateWindowMinute,
		jwtSecretKey, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, env, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, cacheTTLSecond,
		falBaseURL, falKey,
		storageURL, storageKey,
		kafkaAddr, kafkaTopic,
		rateLimit, rateWindowMinute,
		jwtSecretKey, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, inference, storage, Kafka, rate-limit
// and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, env, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cacheTTLSecond int,
	falBaseURL, falKey string,
	storageURL, storageKey string,
	kafkaAddr, kafkaTopic string,
	rateLimit, rateWindowMinute int,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	env = getEnv("APP_ENV", "development")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "jewelshot")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if cacheTTLSecond, err = strconv.Atoi(getEnv("CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Inference config
	falBaseURL = getEnv("FAL_BASE_URL", "https://fal.run")
	falKey = getEnv("FAL_KEY", "")

	// Object storage config
	storageURL = getEnv("STORAGE_URL", "http://localhost:54321")
	storageKey = getEnv("STORAGE_SERVICE_KEY", "")

	// Kafka config, the audit stream is optional
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "jewelshot.generations")

	// Rate limit config
	if rateLimit, err = strconv.Atoi(getEnv("RATE_LIMIT", "10")); err != nil {
		return
	}
	if rateWindowMinute, err = strconv.Atoi(getEnv("RATE_WINDOW_MINUTE", "60")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, facades and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, env, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cacheTTLSecond int,
	falBaseURL, falKey string,
	storageURL, storageKey string,
	kafkaAddr, kafkaTopic string,
	rateLimit, rateWindowMinute int,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for the generation audit stream. Left nil when no
	// broker is configured, publishing then becomes a no-op.
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer initialized for topic %s at %s", kafkaTopic, kafkaAddr)
	}

	// Initialize facades
	falClient := facades.NewFalClient(falBaseURL, falKey, nil)
	storageClient := facades.NewStorageClient(storageURL, storageKey, nil)

	// Initialize JWT service
	tokener := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	profileReadRepo := repositories.NewProfileReadRepository(db)
	profileWriteRepo := repositories.NewProfileWriteRepository(db, txGetter)
	imageReadRepo := repositories.NewImageReadRepository(db)
	imageWriteRepo := repositories.NewImageWriteRepository(db, txGetter)
	generationReadRepo := repositories.NewGenerationReadRepository(db)
	generationWriteRepo := repositories.NewGenerationWriteRepository(db, txGetter)
	purchaseReadRepo := repositories.NewPurchaseReadRepository(db)
	purchaseWriteRepo := repositories.NewPurchaseWriteRepository(db, txGetter)
	cacheRepo := repositories.NewProfileCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(profileReadRepo, profileWriteRepo, tokener, cacheRepo)
	profileService := services.NewProfileService(profileReadRepo, profileWriteRepo, storageClient, cacheRepo)
	creditService := services.NewCreditService(profileReadRepo, profileWriteRepo, purchaseWriteRepo, purchaseReadRepo, cacheRepo)
	rateLimitService := services.NewRateLimitService(generationReadRepo, rateLimit, time.Duration(rateWindowMinute)*time.Minute)
	storageService := services.NewStorageService(storageClient, profileReadRepo, profileWriteRepo, cacheRepo, services.StorageQuota)
	generationService := services.NewGenerationService(
		falClient,
		storageService,
		rateLimitService,
		creditService,
		imageWriteRepo,
		generationWriteRepo,
		generationReadRepo,
		profileWriteRepo,
		cacheRepo,
		kafkaWriter,
	)
	galleryService := services.NewGalleryService(imageReadRepo, imageWriteRepo, storageService)
	accountService := services.NewAccountService(
		profileReadRepo,
		imageReadRepo,
		generationWriteRepo,
		purchaseWriteRepo,
		imageWriteRepo,
		storageClient,
		profileWriteRepo,
		cacheRepo,
	)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	generateHandler := handlers.NewGenerateHandler(generationService, tokener, env)
	galleryListHandler := handlers.NewGalleryListHandler(galleryService, tokener)
	galleryDeleteHandler := handlers.NewGalleryDeleteHandler(galleryService, tokener)
	profileGetHandler := handlers.NewProfileGetHandler(profileService, tokener)
	profileUpdateHandler := handlers.NewProfileUpdateHandler(profileService, tokener)
	avatarHandler := handlers.NewAvatarHandler(profileService, tokener)
	passwordHandler := handlers.NewPasswordChangeHandler(authService, tokener)
	creditsGetHandler := handlers.NewCreditsGetHandler(creditService, tokener)
	creditsAddHandler := handlers.NewCreditsAddHandler(creditService, tokener)
	creditsHistoryHandler := handlers.NewCreditsHistoryHandler(creditService, tokener)
	generationsHandler := handlers.NewGenerationsHandler(generationService, tokener)
	rateLimitHandler := handlers.NewRateLimitHandler(rateLimitService, tokener)
	accountDeleteHandler := handlers.NewAccountDeleteHandler(accountService, tokener)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes. Generation is public too: anonymous requests run as
	// trials without credits or persistence.
	r.Post("/register", registerHandler)
	r.Post("/login", loginHandler)
	r.With(middlewares.TxMiddleware(db)).Post("/generate", generateHandler)

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(tokener)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/gallery", galleryListHandler)
		r.Get("/profile", profileGetHandler)
		r.Get("/credits", creditsGetHandler)
		r.Get("/credits/history", creditsHistoryHandler)
		r.Get("/generations", generationsHandler)
		r.Get("/rate-limit", rateLimitHandler)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))

			r.Delete("/gallery/{id}", galleryDeleteHandler)
			r.Patch("/profile", profileUpdateHandler)
			r.Post("/profile/avatar", avatarHandler)
			r.Post("/profile/password", passwordHandler)
			r.Post("/credits/add", creditsAddHandler)
			r.Post("/account/delete", accountDeleteHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
