package db

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/lexcabinet/facturation/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectAndMigrate ouvre la base et applique les migrations GORM.
// Postgres en production; en développement, DATABASE_DSN vide ou
// préfixé "sqlite:" bascule sur un fichier SQLite local.
func ConnectAndMigrate() (*gorm.DB, error) {
	dsn := GetNormalizedDSN()

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var conn *gorm.DB
	var err error
	if path, ok := sqlitePath(dsn); ok {
		conn, err = gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", path, err)
		}
	} else {
		for i := 0; i < 10; i++ {
			conn, err = gorm.Open(postgres.Open(dsn), cfg)
			if err == nil {
				break
			}
			fmt.Println("Retrying DB connection...", err)
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to connect database after retries: %w", err)
		}
		fmt.Println("[DB] Using DSN:", maskPassword(dsn))
	}

	if pingErr := conn.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	if err := AutoMigrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// AutoMigrate applies the schema for every model of the application.
func AutoMigrate(conn *gorm.DB) error {
	for _, m := range []any{
		&models.Client{}, &models.Dossier{}, &models.FeeInvoice{},
	} {
		if err := conn.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}

// sqlitePath reports whether the DSN selects the SQLite fallback and
// returns the file path to open.
func sqlitePath(dsn string) (string, bool) {
	if dsn == "" {
		return "facturation.db", true
	}
	if strings.HasPrefix(strings.ToLower(dsn), "sqlite:") {
		return dsn[len("sqlite:"):], true
	}
	return "", false
}

var passwordRegex = regexp.MustCompile(`(password=)([^\s]+)`)

func maskPassword(dsn string) string {
	return passwordRegex.ReplaceAllString(dsn, `${1}***`)
}
