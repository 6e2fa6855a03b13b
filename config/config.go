package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the database selected by DB_DRIVER. MySQL is the
// deployment target; sqlite keeps local development self contained.
// TranslateError lets duplicate-key violations surface as
// gorm.ErrDuplicatedKey on both drivers, which the reservation service
// relies on to report slot conflicts under concurrent bookings.
func InitDB() (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	switch getEnv("DB_DRIVER", "sqlite") {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			getEnv("DB_USER", "root"),
			os.Getenv("DB_PASS"),
			getEnv("DB_HOST", "127.0.0.1"),
			getEnv("DB_PORT", "3306"),
			getEnv("DB_NAME", "tablebook"),
		)
		return gorm.Open(mysql.Open(dsn), cfg)
	default:
		return gorm.Open(sqlite.Open(getEnv("DB_PATH", "tablebook.db")), cfg)
	}
}
