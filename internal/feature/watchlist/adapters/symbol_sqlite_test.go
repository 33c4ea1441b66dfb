package adapters

import (
	"context"
	"testing"

	"momentum_screener/internal/feature/watchlist/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	// インメモリDBは接続ごとに別物になるため1本に固定
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entity.Symbol{}), "failed to migrate table")
	return db
}

// seedSymbol はテスト用の銘柄データを作成します。
// default:true のため false はINSERT時に無視されるので、後から更新します。
func seedSymbol(t *testing.T, db *gorm.DB, code string, isActive bool, sortKey int) {
	t.Helper()

	symbol := &entity.Symbol{Code: code, IsActive: true, SortKey: sortKey}
	require.NoError(t, db.Create(symbol).Error, "failed to seed symbol")
	if !isActive {
		require.NoError(t, db.Model(symbol).Update("is_active", false).Error)
	}
}

func TestNewSymbolRepository(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewSymbolRepository(db)

	assert.NotNil(t, repo, "repository should not be nil")
	assert.Equal(t, db, repo.db)
}

// TestSymbolSQLite_ListActiveCodes はアクティブな銘柄だけがsort_key順に返ることを検証します。
func TestSymbolSQLite_ListActiveCodes(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	seedSymbol(t, db, "NVDA", true, 2)
	seedSymbol(t, db, "AAPL", true, 1)
	seedSymbol(t, db, "BABA", false, 3)
	seedSymbol(t, db, "TSLA", true, 2)

	repo := NewSymbolRepository(db)
	codes, err := repo.ListActiveCodes(context.Background())

	require.NoError(t, err)
	// sort_key が同じ場合はID順
	assert.Equal(t, []string{"AAPL", "NVDA", "TSLA"}, codes)
}

func TestSymbolSQLite_ListActiveCodes_Empty(t *testing.T) {
	t.Parallel()

	repo := NewSymbolRepository(setupTestDB(t))
	codes, err := repo.ListActiveCodes(context.Background())

	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestSymbolSQLite_CountAndCreateBatch(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewSymbolRepository(db)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	require.NoError(t, repo.CreateBatch(ctx, nil))
	require.NoError(t, repo.CreateBatch(ctx, []entity.Symbol{
		{Code: "AAPL", IsActive: true, SortKey: 1},
		{Code: "GOOG", IsActive: true, SortKey: 2},
	}))

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	codes, err := repo.ListActiveCodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "GOOG"}, codes)
}

func TestSymbolSQLite_CreateBatch_DuplicateCode(t *testing.T) {
	t.Parallel()

	repo := NewSymbolRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateBatch(ctx, []entity.Symbol{{Code: "AAPL", IsActive: true}}))
	err := repo.CreateBatch(ctx, []entity.Symbol{{Code: "AAPL", IsActive: true}})

	assert.Error(t, err, "unique index on code should reject duplicates")
}
