package database

import (
	"fmt"
	"log/slog"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pagamentos/config"
	"pagamentos/models"
)

var DB *gorm.DB

// Init opens the configured database, migrates the schema and stores the
// connection in DB.
func Init(cfg *config.Config) error {
	db, err := Open(cfg.Database, gormLogLevel(cfg.Server.Mode))
	if err != nil {
		return err
	}
	if err := Migrate(db); err != nil {
		return err
	}
	DB = db
	slog.Info("database ready", "driver", cfg.Database.Driver)
	return nil
}

// Open connects with the dialector chosen by cfg.Driver.
func Open(cfg config.DatabaseConfig, level logger.LogLevel) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if cfg.Driver == "sqlite" {
		// single writer; also keeps :memory: databases on one connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}

	return db, nil
}

// Dialector builds the gorm dialector for the configured driver.
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "sqlite":
		path := cfg.Path
		if path == "" {
			path = "pagamentos.db"
		}
		return sqlite.Open(path), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
			cfg.Username,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
		)
		return mysql.Open(dsn), nil
	case "postgres":
		sslMode := cfg.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.Host,
			cfg.Username,
			cfg.Password,
			cfg.DBName,
			cfg.Port,
			sslMode,
		)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate creates or updates the tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Payment{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Reset drops every table and recreates the schema. Existing data is lost.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(&models.Payment{}, &models.User{}); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return Migrate(db)
}

// GetDB returns the shared connection
func GetDB() *gorm.DB {
	return DB
}

func gormLogLevel(mode string) logger.LogLevel {
	if mode == "debug" {
		return logger.Info
	}
	return logger.Warn
}
