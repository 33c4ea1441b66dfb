package db

import (
	"errors"
	"path/filepath"
	"testing"

	"momentum_screener/internal/feature/watchlist/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpen_NotConfigured(t *testing.T) {
	t.Parallel()

	_, err := Open(Config{}, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestOpen_MigratesWatchlistTable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "watchlist.db")
	db, err := Open(Config{Path: path}, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	assert.True(t, db.Migrator().HasTable(&entity.Symbol{}))
	assert.FileExists(t, path)
}

func TestOpen_OpenerError(t *testing.T) {
	t.Parallel()

	errOpen := errors.New("open failed")
	_, err := Open(Config{Path: ":memory:"}, func(dsn string) (*gorm.DB, error) {
		return nil, errOpen
	})
	assert.ErrorIs(t, err, errOpen)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("WATCHLIST_DB_PATH", "/tmp/watchlist.db")
	assert.Equal(t, Config{Path: "/tmp/watchlist.db"}, LoadConfigFromEnv())
}

// TestOpen_MigrateErrorClosesConnection はマイグレーション失敗時に開いた接続を閉じることを検証します。
func TestOpen_MigrateErrorClosesConnection(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "watchlist.db")
	var opened *gorm.DB
	opener := func(dsn string) (*gorm.DB, error) {
		db, err := SQLiteOpener(dsn)
		if err != nil {
			return nil, err
		}
		// 同名のビューがあるとテーブルを作成できない
		if err := db.Exec("CREATE VIEW watchlist_symbols AS SELECT 1 AS id").Error; err != nil {
			return nil, err
		}
		opened = db
		return db, nil
	}

	_, err := Open(Config{Path: path}, opener)
	require.Error(t, err)
	require.NotNil(t, opened)

	sqlDB, err := opened.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping(), "connection should be closed after a failed migration")
}
