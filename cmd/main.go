package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/agrofix/storefront-api/config"
	"github.com/agrofix/storefront-api/internal/application"
	"github.com/agrofix/storefront-api/internal/container"
	pginfra "github.com/agrofix/storefront-api/internal/infrastructure/postgres"
	"github.com/agrofix/storefront-api/internal/interface/middleware"
	"github.com/agrofix/storefront-api/internal/metrics"
	"github.com/agrofix/storefront-api/internal/router"
	"github.com/agrofix/storefront-api/pkg/blob"
	"github.com/agrofix/storefront-api/pkg/helpers"
	"github.com/agrofix/storefront-api/pkg/validation"
)

// seed credentials for the bootstrap administrator, created only when the
// admins table is empty
const (
	seedAdminEmail    = "admin@agrofix.com"
	seedAdminPassword = "admin123"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// Postgres pool
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := runMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	// Redis backs login rate limiting only; the limiter fails open when it
	// is unreachable.
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()

	// Blob store: GCS bucket when configured, local disk otherwise
	blobStore, diskStore, err := newBlobStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to init blob store: %v", err)
	}

	tokens := helpers.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// Bootstrap admin on first boot
	adminRepo := pginfra.NewAdminRepository(pool)
	adminSvc := application.NewAdminService(adminRepo, tokens, logger)
	if err := adminSvc.EnsureSeedAdmin(ctx, seedAdminEmail, seedAdminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetPGPool(pool)
	container.SetRedis(rdb)
	container.SetBlobs(blobStore)
	container.SetTokens(tokens)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	r.MaxMultipartMemory = cfg.MaxUploadSize
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}
	if cfg.MetricsEnabled {
		collector := metrics.NewCollector()
		r.Use(middleware.Metrics(collector))
		r.GET("/metrics", gin.WrapH(collector.Handler()))
	}

	// Uploaded images are served read-only with a one hour cache directive
	if diskStore != nil {
		uploads := r.Group(cfg.UploadURLPath)
		uploads.Use(func(c *gin.Context) {
			c.Header("Cache-Control", "public, max-age=3600")
			c.Next()
		})
		uploads.Static("/", diskStore.Dir())
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

// newBlobStore picks the image storage backend. The second return value is
// non-nil only for the disk backend, which needs static file serving.
func newBlobStore(ctx context.Context, cfg *config.Config) (blob.Store, *blob.DiskStore, error) {
	if cfg.GCSBucket != "" {
		client, err := blob.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			return nil, nil, err
		}
		return blob.NewGCSStore(client, cfg.GCSBucket), nil, nil
	}
	disk, err := blob.NewDiskStore(cfg.UploadDir, cfg.UploadURLPath)
	if err != nil {
		return nil, nil, err
	}
	return disk, disk, nil
}

func runMigrations(dsn string, migrationsDir string, logger *logrus.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsDir), "postgres", driver)
	if err != nil {
		return err
	}
	logger.Info("running migrations...")
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to run")
		return nil
	}
	return err
}
