package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the store selected by DB_DRIVER (mysql, postgres or sqlite).
func NewDB() (*gorm.DB, error) {
	dialector, err := dialectorFromEnv()
	if err != nil {
		return nil, err
	}

	logMode := logger.Info
	if os.Getenv("GORM_LOG") == "off" {
		logMode = logger.Silent
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // Use log.Logger for Printf support
		logger.Config{
			SlowThreshold: time.Second, // Slow SQL threshold
			LogLevel:      logMode,     // Log level
			Colorful:      true,        // Enable color
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func dialectorFromEnv() (gorm.Dialector, error) {
	switch driver := strings.ToLower(GetEnv("DB_DRIVER", "mysql")); driver {
	case "mysql":
		return mysql.Open(mysqlDSN()), nil
	case "postgres", "postgresql":
		return postgres.Open(postgresDSN()), nil
	case "sqlite":
		return sqlite.Open(GetEnv("SQLITE_PATH", "supplysense.db")), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

func mysqlDSN() string {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn != "" {
		return dsn
	}
	user := os.Getenv("MYSQL_USER")
	pass := os.Getenv("MYSQL_PASS")
	host := os.Getenv("MYSQL_HOST")
	port := GetEnv("MYSQL_PORT", "3306")
	db := os.Getenv("MYSQL_DB")
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=Local", user, pass, host, port, db)
}

func postgresDSN() string {
	if dsn := os.Getenv("POSTGRES_DSN"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		GetEnv("POSTGRES_HOST", "localhost"),
		GetEnv("POSTGRES_PORT", "5432"),
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASS"),
		os.Getenv("POSTGRES_DB"),
		GetEnv("POSTGRES_SSLMODE", "disable"),
	)
}
