// Package db opens the SQLite database that backs the optional stored watchlist.
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"momentum_screener/internal/feature/watchlist/domain/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotConfigured は WATCHLIST_DB_PATH が未設定であることを示します。
var ErrNotConfigured = errors.New("db: WATCHLIST_DB_PATH is not set")

// Config はデータベース接続の設定を保持します。
type Config struct {
	Path string // SQLiteファイルのパス（":memory:" も可）
}

// Opener はDSNからgorm接続を開く関数です。テストで差し替えられます。
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	return Config{Path: os.Getenv("WATCHLIST_DB_PATH")}
}

// SQLiteOpener はgormのSQLiteドライバで接続を開きます。
func SQLiteOpener(dsn string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

// Open はデータベースを開き、ウォッチリストのテーブルをマイグレーションします。
func Open(cfg Config, opener Opener) (*gorm.DB, error) {
	if cfg.Path == "" {
		return nil, ErrNotConfigured
	}
	if opener == nil {
		opener = SQLiteOpener
	}
	if cfg.Path != ":memory:" {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
	}

	db, err := opener(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", cfg.Path, err)
	}
	if err := db.AutoMigrate(&entity.Symbol{}); err != nil {
		if sqlDB, derr := db.DB(); derr == nil {
			_ = sqlDB.Close()
		}
		return nil, fmt.Errorf("migrate: %w", err)
	}

	slog.Info("watchlist database opened", "path", cfg.Path)
	return db, nil
}
