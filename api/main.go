package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/granjasoft/avicola-tracker/internal/auth"
	"github.com/granjasoft/avicola-tracker/internal/config"
	"github.com/granjasoft/avicola-tracker/internal/dashboard"
	"github.com/granjasoft/avicola-tracker/internal/db"
	apihttp "github.com/granjasoft/avicola-tracker/internal/http"
	"github.com/granjasoft/avicola-tracker/internal/http/handlers"
	rl "github.com/granjasoft/avicola-tracker/internal/http/rate_limiter"
	"github.com/granjasoft/avicola-tracker/internal/models"
	"github.com/granjasoft/avicola-tracker/internal/repo"
)

// @title Avicola Tracker API
// @version 1.0
// @description REST API for poultry batches, daily production records and the derived dashboard.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	schema := models.RecordSchema(cfg.RecordSchema)
	batchRepo := repo.NewPostgresBatchRepository(database)
	recordRepo, catalogRepo := recordStores(schema, database)

	handlers.SetBatchRepo(batchRepo)
	handlers.SetRecordRepo(recordRepo)
	handlers.SetCatalogRepo(catalogRepo)
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetRecordSchema(schema)
	handlers.SetRedisClient(rdb)
	handlers.SetDashboardService(dashboard.NewService(batchRepo, recordRepo, catalogRepo, cfg.AggregatorConfig()))

	// Resolve the initial auth state before serving: the stored-session
	// probe races the redis auth event stream, first result wins.
	bootstrap := auth.NewBootstrap()
	bootstrap.Run(ctx, func(c context.Context) (*auth.Session, error) {
		return auth.ProbeSession(c, rdb)
	}, auth.ListenSessionEvents(ctx, rdb))
	if s := bootstrap.Session(); s != nil {
		log.Printf("Resumed session for %s", s.Username)
	}

	go rl.StartVisitorCleanupLoop()

	r := apihttp.NewRouter()
	log.Printf("✅ Server running on :%s (schema: %s)", cfg.Port, schema)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}

// recordStores picks the production record store for the configured schema.
// The catalog only exists in generic deployments; graded ones return nil and
// the dashboard skips the lookup.
func recordStores(schema models.RecordSchema, database *sql.DB) (repo.RecordRepository, repo.CatalogRepository) {
	if schema == models.SchemaGeneric {
		return repo.NewPostgresGenericRecordRepository(database), repo.NewPostgresCatalogRepository(database)
	}
	return repo.NewPostgresGradedRecordRepository(database), nil
}
