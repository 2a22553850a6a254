package main

//go:generate swag init --dir ../ --generalInfo cmd/main.go --output ../docs

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/safedrive-rewards/internal/facades"
	"github.com/sbilibin2017/safedrive-rewards/internal/handlers"
	"github.com/sbilibin2017/safedrive-rewards/internal/jwt"
	"github.com/sbilibin2017/safedrive-rewards/internal/logger"
	"github.com/sbilibin2017/safedrive-rewards/internal/metrics"
	"github.com/sbilibin2017/safedrive-rewards/internal/middlewares"
	"github.com/sbilibin2017/safedrive-rewards/internal/migrations"
	"github.com/sbilibin2017/safedrive-rewards/internal/repositories"
	"github.com/sbilibin2017/safedrive-rewards/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/safedrive-rewards/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const minJWTSecretLen = 32

// config holds everything the service reads from the environment.
type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	LogFormat   string
	CORSOrigins []string

	PGHost            string
	PGPort            int
	PGUser            string
	PGPassword        string
	PGDB              string
	PGMaxOpenConns    int
	PGMaxIdleConns    int
	PGConnMaxLifetime time.Duration
	PGConnectTimeout  time.Duration

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	ProfileCacheTTL   time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExp       time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
}

// @title safedrive-rewards API
// @version 1.0.0
// @description Safe driving rewards: hazard reports, speed logs and loyalty points
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from an optional file and builds the config.
// Variables already set in the environment win over the file.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var err error
	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var v int
		if v, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return v
	}
	getSeconds := func(key, defaultValue string) time.Duration {
		return time.Duration(getInt(key, defaultValue)) * time.Second
	}

	cfg := &config{
		AppHost:     getEnv("APP_HOST", "localhost"),
		AppPort:     getEnv("APP_PORT", "8080"),
		LogLevel:    getEnv("APP_LOG_LEVEL", "info"),
		LogFormat:   getEnv("APP_LOG_FORMAT", "json"),
		CORSOrigins: splitList(getEnv("APP_CORS_ORIGINS", "*")),

		PGHost:            getEnv("POSTGRES_HOST", "localhost"),
		PGPort:            getInt("POSTGRES_PORT", "5432"),
		PGUser:            getEnv("POSTGRES_USER", "user"),
		PGPassword:        getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:              getEnv("POSTGRES_DB", "safedrive"),
		PGMaxOpenConns:    getInt("POSTGRES_MAX_OPEN_CONNS", "15"),
		PGMaxIdleConns:    getInt("POSTGRES_MAX_IDLE_CONNS", "5"),
		PGConnMaxLifetime: getSeconds("POSTGRES_CONN_MAX_LIFETIME", "1800"),
		PGConnectTimeout:  getSeconds("POSTGRES_CONNECT_TIMEOUT", "30"),

		RedisHost:         getEnv("REDIS_HOST", ""),
		RedisPort:         getInt("REDIS_PORT", "6379"),
		RedisDB:           getInt("REDIS_DB", "0"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     getInt("REDIS_POOL_SIZE", "10"),
		RedisMinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", "2"),
		ProfileCacheTTL:   getSeconds("PROFILE_CACHE_TTL_SECOND", "60"),

		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "points-events"),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
		JWTExp:       getSeconds("JWT_EXP_SECOND", "1800"),

		RateLimitBurst: getInt("RATE_LIMIT_BURST", "10"),
	}
	if err != nil {
		return nil, err
	}

	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}

	if len(cfg.JWTSecretKey) < minJWTSecretLen {
		return nil, fmt.Errorf("JWT_SECRET_KEY must be at least %d bytes", minJWTSecretLen)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// run initializes the logger, database, optional Redis and Kafka, and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	connectCtx, cancelConnect := context.WithTimeout(ctx, cfg.PGConnectTimeout)
	db, err := sqlx.ConnectContext(connectCtx, "pgx", dsn)
	cancelConnect()
	if err != nil {
		return fmt.Errorf("connect to PostgreSQL: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	db.SetConnMaxLifetime(cfg.PGConnMaxLifetime)

	if err := migrations.Up(db.DB); err != nil {
		return err
	}

	m := metrics.New()
	healthChecks := map[string]handlers.HealthCheck{"postgres": db.PingContext}

	// Optional Redis user cache
	var (
		authCache   services.UserCache
		pointsCache services.UserCacheInvalidator
	)
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connect to Redis: %w", err)
		}
		defer rdb.Close()

		userCache := repositories.NewUserCacheRepository(rdb, cfg.ProfileCacheTTL)
		authCache, pointsCache = userCache, userCache
		healthChecks["redis"] = userCache.Ping
		log.Infow("User cache enabled", "ttl", cfg.ProfileCacheTTL)
	}

	// Points events go to metrics and, when configured, to Kafka
	publisher := facades.FanoutPublisher{m}
	if len(cfg.KafkaBrokers) > 0 {
		writer := facades.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer writer.Close()
		publisher = append(publisher, facades.NewPointsEventPublisher(writer))
		log.Infow("Points events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	hazardWriteRepo := repositories.NewHazardWriteRepository(db, middlewares.GetTxFromContext)
	hazardReadRepo := repositories.NewHazardReadRepository(db)
	speedWriteRepo := repositories.NewSpeedWriteRepository(db, middlewares.GetTxFromContext)
	speedReadRepo := repositories.NewSpeedReadRepository(db)
	redemptionWriteRepo := repositories.NewRedemptionWriteRepository(db, middlewares.GetTxFromContext)
	redemptionReadRepo := repositories.NewRedemptionReadRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, authCache)
	drivingService := services.NewDrivingService(
		hazardWriteRepo, speedWriteRepo, userWriteRepo,
		pointsCache, publisher, middlewares.AfterCommit,
	)
	rewardsService := services.NewRewardsService(
		userWriteRepo, userReadRepo, redemptionWriteRepo,
		pointsCache, publisher, middlewares.AfterCommit,
	)

	rateLimit := func(next http.Handler) http.Handler { return next }
	if cfg.RateLimitRPS > 0 {
		limiter := middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		limiter.StartCleanup(ctx, 10*time.Minute)
		rateLimit = limiter.Handler
	}

	r := newRouter(routes{
		signup:       handlers.NewSignupHandler(authService),
		token:        handlers.NewTokenHandler(authService),
		hazard:       handlers.NewHazardHandler(drivingService),
		speed:        handlers.NewSpeedHandler(drivingService),
		rewards:      handlers.NewRewardsHandler(rewardsService),
		redeem:       handlers.NewRedeemHandler(rewardsService),
		profile:      handlers.NewProfileHandler(userReadRepo),
		hazards:      handlers.NewHazardHistoryHandler(hazardReadRepo),
		speedHistory: handlers.NewSpeedHistoryHandler(speedReadRepo),
		redemptions:  handlers.NewRedemptionHistoryHandler(redemptionReadRepo),
		health:       handlers.NewHealthHandler(healthChecks),
		auth:         middlewares.AuthMiddleware(tokens, authService),
		tx:           middlewares.TxMiddleware(db),
		rateLimit:    rateLimit,
		metrics:      m,
		corsOrigins:  cfg.CORSOrigins,
		swaggerURL:   fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// routes collects the handlers and middlewares mounted by newRouter.
type routes struct {
	signup, token                      http.HandlerFunc
	hazard, speed, rewards, redeem     http.HandlerFunc
	profile                            http.HandlerFunc
	hazards, speedHistory, redemptions http.HandlerFunc
	health                             http.HandlerFunc
	auth, tx, rateLimit                func(http.Handler) http.Handler
	metrics                            *metrics.Metrics
	corsOrigins                        []string
	swaggerURL                         string
}

func newRouter(rt routes) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.CORSMiddleware(rt.corsOrigins))
	r.Use(rt.metrics.Middleware)

	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(rt.rateLimit)
		r.Post("/signup", rt.signup)
		r.Post("/token", rt.token)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(rt.auth)

		r.Get("/rewards", rt.rewards)
		r.Get("/user/profile", rt.profile)
		r.Get("/hazards", rt.hazards)
		r.Get("/speed", rt.speedHistory)
		r.Get("/redemptions", rt.redemptions)

		r.Group(func(r chi.Router) {
			r.Use(rt.tx)
			r.Post("/hazard", rt.hazard)
			r.Post("/speed", rt.speed)
			r.Post("/redeem-reward/{reward_id}", rt.redeem)
		})
	})

	r.Get("/healthz", rt.health)
	r.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(rt.swaggerURL)))

	return r
}
