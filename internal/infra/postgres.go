package infra

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"tripchat/internal/models/db_models"
)

func InitPostgresql(dsn string) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := connectionPool.AutoMigrate(&db_models.ChatSession{}, &db_models.ChatMessage{}); err != nil {
		return nil, fmt.Errorf("migrating chat tables: %w", err)
	}

	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		zap.L().Error("Error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		zap.L().Error("Error closing database connection", zap.Error(err))
	} else {
		zap.L().Info("PostgreSQL database connection closed successfully")
	}
}

func StartTransaction(db *gorm.DB) *gorm.DB {
	tx := db.Begin()
	if tx.Error != nil {
		zap.L().Error("Error starting transaction", zap.Error(tx.Error))
	}
	return tx
}

func ReleaseTransaction(tx *gorm.DB, err error) {
	if err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			zap.L().Error("Error rollback transaction", zap.Error(err), zap.NamedError("rollback", rollbackErr))
		}
		return
	}
	if commitErr := tx.Commit().Error; commitErr != nil {
		zap.L().Error("Error committing transaction", zap.Error(commitErr))
	}
}
