package database

import (
	"github.com/Kedza01/Test-AI/internal/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the local SQLite database file. The application is a
// single-operator deployment, so one shared file handle is enough.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
