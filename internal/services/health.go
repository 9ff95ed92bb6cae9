package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hogarlabs/hogar/internal/config"
	"github.com/hogarlabs/hogar/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Storage      string            `json:"storage"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck probes the database and the blob storage backend.
func HealthCheck(cfg *config.Config, db *gorm.DB, st storage.Storage) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		zap.S().Errorf("Health check failed - database connection: %v", err)
	} else {
		if err := sqlDB.Ping(); err != nil {
			result.Status = "unhealthy"
			result.Database = "unreachable"
			result.Details["database_ping_error"] = err.Error()
			result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
			zap.S().Errorf("Health check failed - database ping: %v", err)
		} else {
			result.Database = "ok"
			result.Details["database_type"] = cfg.DBType
			result.Details["database_name"] = cfg.DBDatabase
		}
	}

	// Check storage connectivity
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := st.Ping(ctx); err != nil {
		result.Status = "unhealthy"
		result.Storage = "unreachable"
		result.Details["storage_error"] = err.Error()
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("Storage ping failed: %v", err)
		} else {
			result.ErrorMessage += fmt.Sprintf("; Storage ping failed: %v", err)
		}
		zap.S().Errorf("Health check failed - storage ping: %v", err)
	} else {
		result.Storage = "ok"
		result.Details["storage_type"] = cfg.StorageType
	}

	if result.Status == "healthy" {
		zap.S().Info("Health check passed - all systems operational")
	}

	return result
}
