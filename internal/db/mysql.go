package db

import (
	"fmt"

	sqlmysql "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL opens the gym database. The DSN is normalized so MySQL timestamps
// scan into time.Time, which member and purchase records rely on.
func NewMySQL(dsn string) (*gorm.DB, error) {
	normalized, err := normalizeDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse gym database dsn: %w", err)
	}

	db, err := gorm.Open(mysql.Open(normalized), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open gym database: %w", err)
	}
	return db, nil
}

func normalizeDSN(dsn string) (string, error) {
	cfg, err := sqlmysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}
