// Package entity defines the domain models for the watchlist feature.
package entity

import "time"

// Symbol is a stored watchlist row.
// Only active symbols are screened, in sort_key order.
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null;default:''"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName はテーブル名を返します。
func (Symbol) TableName() string {
	return "watchlist_symbols"
}
