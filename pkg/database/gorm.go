package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type GormConfig struct {
	Driver     string
	Connection string
	LogLevel   logger.LogLevel
}

func getLogger(level logger.LogLevel) logger.Interface {
	if level == 0 {
		level = logger.Warn
	}
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true, // Don't include params in the SQL log
			Colorful:                  true,
		},
	)
}

func configureConnectionPool(db *gorm.DB, driver string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	// SQLite serialises writers; a single connection also keeps ":memory:" databases alive.
	if driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		return nil
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return nil
}

func dialector(cfg GormConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", DriverPostgres:
		if cfg.Connection == "" {
			return nil, fmt.Errorf("postgres connection string is empty")
		}
		return postgres.Open(cfg.Connection), nil
	case DriverSQLite:
		if cfg.Connection == "" {
			return nil, fmt.Errorf("sqlite database path is empty")
		}
		return sqlite.Open(cfg.Connection), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func NewGormDB(cfg GormConfig) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger: getLogger(cfg.LogLevel),
	})
	if err != nil {
		return nil, err
	}

	if err := configureConnectionPool(db, cfg.Driver); err != nil {
		return nil, err
	}

	return db, nil
}

// NewInMemorySQLite opens a private in-memory SQLite database. Used by tests
// and by `DB_DRIVER=sqlite DB_CONNECTION_STRING=:memory:` local runs.
func NewInMemorySQLite() (*gorm.DB, error) {
	return NewGormDB(GormConfig{
		Driver:     DriverSQLite,
		Connection: ":memory:",
		LogLevel:   logger.Silent,
	})
}
