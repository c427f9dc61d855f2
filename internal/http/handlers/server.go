package handlers

import (
	"github.com/redis/go-redis/v9"

	"github.com/granjasoft/avicola-tracker/internal/dashboard"
	"github.com/granjasoft/avicola-tracker/internal/models"
	"github.com/granjasoft/avicola-tracker/internal/repo"
)

var (
	batchRepo   repo.BatchRepository
	recordRepo  repo.RecordRepository
	catalogRepo repo.CatalogRepository
	userRepo    repo.UserRepository

	dashboardSvc *dashboard.Service

	// rdb carries auth session snapshots and change events; nil disables
	// session broadcasting (tests run without redis).
	rdb *redis.Client

	// recordSchema is the deployment's record layout, from configuration.
	recordSchema = models.SchemaGraded
)

func SetBatchRepo(r repo.BatchRepository) {
	batchRepo = r
}

func SetRecordRepo(r repo.RecordRepository) {
	recordRepo = r
}

func SetCatalogRepo(r repo.CatalogRepository) {
	catalogRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetDashboardService(s *dashboard.Service) {
	dashboardSvc = s
}

func SetRecordSchema(s models.RecordSchema) {
	recordSchema = s
}

func SetRedisClient(c *redis.Client) {
	rdb = c
}
