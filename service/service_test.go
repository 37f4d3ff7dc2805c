package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pagamentos/config"
	"pagamentos/database"
	"pagamentos/repository"
)

var testActor = Actor{UserID: 1, Email: "admin@example.com"}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"}, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestPaymentService(t *testing.T) *PaymentService {
	return NewPaymentService(repository.NewPaymentRepository(setupTestDB(t)))
}

func validFields() map[string]string {
	return map[string]string{
		"club": "A", "church": "B", "region": "C", "category": "D", "total": "100",
	}
}

func mustCreate(t *testing.T, s *PaymentService, fields map[string]string) uint {
	p, err := s.Create(context.Background(), testActor, fields)
	require.NoError(t, err)
	return p.ID
}
