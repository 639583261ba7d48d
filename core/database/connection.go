package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/voicebook/voicebook/config"
)

// GlobalDB holds the singleton database connection.
var GlobalDB *gorm.DB

// NewDatabase opens the history database using the configured driver.
// SQLite is the default; postgres is selected with DB_DRIVER=postgres.
func NewDatabase() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch config.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
			config.DBHost,
			config.DBUser,
			config.DBPassword,
			config.DBName,
			config.DBPort,
		)
		dialector = postgres.Open(dsn)
	case "sqlite", "":
		dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=on", config.DBName)
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", config.DBDriver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database (%s): %w", config.DBName, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB instance: %w", err)
	}

	if config.DBDriver == "sqlite" || config.DBDriver == "" {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	GlobalDB = db
	return db, nil
}
