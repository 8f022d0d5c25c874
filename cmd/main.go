package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/hbnb/internal/facades"
	"github.com/sbilibin2017/hbnb/internal/handlers"
	"github.com/sbilibin2017/hbnb/internal/jwt"
	"github.com/sbilibin2017/hbnb/internal/logger"
	"github.com/sbilibin2017/hbnb/internal/middlewares"
	"github.com/sbilibin2017/hbnb/internal/models"
	"github.com/sbilibin2017/hbnb/internal/repositories"
	"github.com/sbilibin2017/hbnb/internal/services"
	"github.com/sbilibin2017/hbnb/internal/store"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Config holds the application configuration read from the environment.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"` // development uses SQLite, anything else PostgreSQL
	Host     string `env:"APP_HOST" envDefault:"localhost"`
	Port     string `env:"APP_PORT" envDefault:"8080"`
	LogLevel string `env:"APP_LOG_LEVEL" envDefault:"info"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"hbnb.db"`

	PostgresHost         string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort         int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser         string `env:"POSTGRES_USER" envDefault:"user"`
	PostgresPassword     string `env:"POSTGRES_PASSWORD" envDefault:"password"`
	PostgresDB           string `env:"POSTGRES_DB" envDefault:"hbnb"`
	PostgresMaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"16"`
	PostgresMaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"8"`

	JWTSecretKey string `env:"JWT_SECRET_KEY" envDefault:"my_super_secret_key"`
	JWTExpSecond int    `env:"JWT_EXP_SECOND" envDefault:"3600"`

	// Logout is enabled only when a Redis address is set.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Entity events are published only when brokers are set.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"hbnb.entities"`

	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// @title HBnB API
// @version 1.0.0
// @description Rental listings service: users, places, reviews, amenities, cities and countries
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
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file, if it exists, and
// parses them into a Config. Variables already set take precedence.
func parseConfig(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// run initializes the logger, store, Redis, Kafka and HTTP server.
// It sets up routes and handles graceful shutdown.
func run(ctx context.Context, cfg *Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.Env); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to the store
	driver, dsn := store.DriverSQLite, store.SQLiteDSN(cfg.SQLitePath)
	if cfg.Env != "development" {
		driver = store.DriverPostgres
		dsn = store.PostgresDSN(cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDB)
	}
	logger.Log.Infow("Connecting to store", "driver", driver, "env", cfg.Env)

	db, err := store.Open(ctx, driver, dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	if driver == store.DriverPostgres {
		db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
		db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)
	}
	if err := store.Migrate(ctx, db, driver); err != nil {
		return err
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Connect to Redis
	var (
		revoker     services.TokenRevoker
		revocations middlewares.RevocationChecker
	)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()

		repo := repositories.NewTokenRevocationRepository(rdb)
		revoker, revocations = repo, repo
	} else {
		logger.Log.Warn("REDIS_ADDR not set, logout is disabled")
	}

	// Connect to Kafka
	var events services.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		}
		defer kw.Close()
		events = services.NewKafkaEventPublisher(kw)
		logger.Log.Infow("Publishing entity events", "brokers", strings.Join(cfg.KafkaBrokers, ","), "topic", cfg.KafkaTopic)
	}

	// Initialize repositories
	dialect := store.Dialect(driver)
	gw := repositories.NewGateway(db, dialect)
	users := repositories.NewFinder[models.User](db, dialect, "users", "created_at")
	places := repositories.NewFinder[models.Place](db, dialect, "places", "created_at")
	cities := repositories.NewFinder[models.City](db, dialect, "cities", "created_at")
	countries := repositories.NewFinder[models.Country](db, dialect, "countries", "code")
	amenities := repositories.NewFinder[models.Amenity](db, dialect, "amenities", "created_at")
	links := repositories.NewFinder[models.PlaceAmenity](db, dialect, "place_amenities")
	reviews := repositories.NewFinder[models.Review](db, dialect, "reviews", "created_at")
	catalogue := facades.NewCountryCatalogue()

	// Initialize services
	authService := services.NewAuthService(users, tokens, revoker)
	userService := services.NewUserService(users, gw, events)

	if cfg.AdminEmail != "" {
		if err := userService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return fmt.Errorf("create admin account: %w", err)
		}
	}

	svc := handlers.Services{
		Auth:      authService,
		Users:     userService,
		Places:    services.NewPlaceService(places, users, cities, amenities, links, gw, events),
		Cities:    services.NewCityService(catalogue, countries, cities, gw, events),
		Countries: services.NewCountryService(catalogue, countries, cities, gw, events),
		Amenities: services.NewAmenityService(amenities, gw, events),
		Reviews:   services.NewReviewService(reviews, places, users, gw, events),
	}
	if revoker != nil {
		svc.Logout = authService
	}

	r := handlers.NewRouter(svc, tokens, revocations,
		fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.Host, cfg.Port),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.Host, cfg.Port)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
