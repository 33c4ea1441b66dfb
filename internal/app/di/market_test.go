package di

import (
	"testing"
	"time"

	"momentum_screener/internal/feature/screener/adapters/alpaca"
	"momentum_screener/internal/feature/screener/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarket_MissingCredentials(t *testing.T) {
	t.Setenv("APCA_API_KEY_ID", "")
	t.Setenv("APCA_API_SECRET_KEY", "")

	_, err := NewMarket(nil, 1)
	assert.ErrorIs(t, err, alpaca.ErrMissingCredentials)
}

func TestNewMarket_WithoutCache(t *testing.T) {
	t.Setenv("APCA_API_KEY_ID", "id")
	t.Setenv("APCA_API_SECRET_KEY", "secret")

	market, err := NewMarket(nil, 4)
	require.NoError(t, err)
	assert.IsType(t, &alpaca.AlpacaMarket{}, market)
}

func TestBarsCacheTTL(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"", 30 * time.Second},
		{"2m", 2 * time.Minute},
		{"0s", 0},
		{"-5s", 30 * time.Second},
		{"soon", 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("BARS_CACHE_TTL", tt.value)
			assert.Equal(t, tt.want, barsCacheTTL())
		})
	}
}

func TestNewScreenUsecase_KeepsConfig(t *testing.T) {
	cfg := usecase.DefaultScreenConfig()
	cfg.TopPicks = 5

	uc := NewScreenUsecase(nil, cfg)
	assert.Equal(t, 5, uc.Config().TopPicks)
}
