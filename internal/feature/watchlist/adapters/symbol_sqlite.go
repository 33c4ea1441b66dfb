// Package adapters はwatchlistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"momentum_screener/internal/feature/watchlist/domain/entity"
	"momentum_screener/internal/feature/watchlist/usecase"

	"gorm.io/gorm"
)

// symbolSQLite はSymbolRepositoryインターフェースのgorm実装です。
type symbolSQLite struct {
	db *gorm.DB
}

var _ usecase.SymbolRepository = (*symbolSQLite)(nil)

// NewSymbolRepository は指定されたDB接続でsymbolSQLiteリポジトリの新しいインスタンスを生成します。
func NewSymbolRepository(db *gorm.DB) *symbolSQLite {
	return &symbolSQLite{db: db}
}

// ListActiveCodes はsort_key順にアクティブな銘柄のコードのみを返します。
func (r *symbolSQLite) ListActiveCodes(ctx context.Context) ([]string, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Symbol{}).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Order("id ASC").
		Pluck("code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// Count は登録済みの銘柄数（非アクティブを含む）を返します。
func (r *symbolSQLite) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.Symbol{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// CreateBatch は銘柄をまとめて登録します。
func (r *symbolSQLite) CreateBatch(ctx context.Context, symbols []entity.Symbol) error {
	if len(symbols) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&symbols).Error
}
