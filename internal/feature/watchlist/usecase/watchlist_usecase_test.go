package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"momentum_screener/internal/feature/watchlist/domain/entity"
	"momentum_screener/internal/feature/watchlist/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSymbolRepository はSymbolRepositoryインターフェースのモック実装です。
type mockSymbolRepository struct {
	stored   []entity.Symbol
	countErr error
	listErr  error
	seedErr  error
	seeded   int
}

func (m *mockSymbolRepository) ListActiveCodes(ctx context.Context) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var codes []string
	for _, s := range m.stored {
		if s.IsActive {
			codes = append(codes, s.Code)
		}
	}
	return codes, nil
}

func (m *mockSymbolRepository) Count(ctx context.Context) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return int64(len(m.stored)), nil
}

func (m *mockSymbolRepository) CreateBatch(ctx context.Context, symbols []entity.Symbol) error {
	if m.seedErr != nil {
		return m.seedErr
	}
	m.seeded += len(symbols)
	m.stored = append(m.stored, symbols...)
	return nil
}

func TestWatchlistUsecase_Resolve_Default(t *testing.T) {
	t.Parallel()

	w, err := usecase.NewWatchlistUsecase(nil).Resolve(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "default", w.Source())
	assert.Equal(t, entity.DefaultCodes, w.Codes())
	assert.Equal(t, 13, w.Len())
}

func TestWatchlistUsecase_Resolve_EnvWins(t *testing.T) {
	t.Parallel()

	repo := &mockSymbolRepository{stored: []entity.Symbol{{Code: "MSFT", IsActive: true}}}
	w, err := usecase.NewWatchlistUsecase(repo).Resolve(context.Background(), " aapl, nvda ,AAPL,,tsla ")

	require.NoError(t, err)
	assert.Equal(t, "env", w.Source())
	assert.Equal(t, []string{"AAPL", "NVDA", "TSLA"}, w.Codes())
	assert.Zero(t, repo.seeded)
}

func TestWatchlistUsecase_Resolve_FromRepository(t *testing.T) {
	t.Parallel()

	repo := &mockSymbolRepository{stored: []entity.Symbol{
		{Code: "msft", IsActive: true},
		{Code: "BABA", IsActive: false},
		{Code: "ORCL", IsActive: true},
	}}
	w, err := usecase.NewWatchlistUsecase(repo).Resolve(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "db", w.Source())
	assert.Equal(t, []string{"MSFT", "ORCL"}, w.Codes())
}

func TestWatchlistUsecase_Resolve_SeedsEmptyRepository(t *testing.T) {
	t.Parallel()

	repo := &mockSymbolRepository{}
	w, err := usecase.NewWatchlistUsecase(repo).Resolve(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "db", w.Source())
	assert.Equal(t, entity.DefaultCodes, w.Codes())
	assert.Equal(t, len(entity.DefaultCodes), repo.seeded)
	assert.Equal(t, 1, repo.stored[0].SortKey)
}

func TestWatchlistUsecase_Resolve_AllInactiveFallsBack(t *testing.T) {
	t.Parallel()

	repo := &mockSymbolRepository{stored: []entity.Symbol{{Code: "BABA", IsActive: false}}}
	w, err := usecase.NewWatchlistUsecase(repo).Resolve(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "default", w.Source())
	assert.Equal(t, entity.DefaultCodes, w.Codes())
}

func TestWatchlistUsecase_Resolve_RepositoryErrors(t *testing.T) {
	t.Parallel()

	errDB := errors.New("db error")
	tests := []struct {
		name string
		repo *mockSymbolRepository
	}{
		{"count fails", &mockSymbolRepository{countErr: errDB}},
		{"seed fails", &mockSymbolRepository{seedErr: errDB}},
		{"list fails", &mockSymbolRepository{stored: []entity.Symbol{{Code: "A", IsActive: true}}, listErr: errDB}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := usecase.NewWatchlistUsecase(tt.repo).Resolve(context.Background(), "")
			assert.ErrorIs(t, err, errDB)
		})
	}
}

func TestWatchlistUsecase_Resolve_Truncates(t *testing.T) {
	t.Parallel()

	list := ""
	for i := 0; i < usecase.MaxTickers+10; i++ {
		list += fmt.Sprintf("T%d,", i)
	}
	w, err := usecase.NewWatchlistUsecase(nil).Resolve(context.Background(), list)

	require.NoError(t, err)
	assert.Equal(t, usecase.MaxTickers, w.Len())
	assert.Equal(t, "T0", w.Codes()[0])
}

func TestParseCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"single", "aapl", []string{"AAPL"}},
		{"dedupe keeps first", "NVDA,aapl,nvda", []string{"NVDA", "AAPL"}},
		{"only commas", ",,,", []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, usecase.ParseCodes(tt.in))
		})
	}
}

func TestWatchlist_CodesIsCopy(t *testing.T) {
	t.Parallel()

	w := entity.NewWatchlist([]string{"AAPL", "NVDA"}, "env")
	codes := w.Codes()
	codes[0] = "XXX"

	assert.Equal(t, []string{"AAPL", "NVDA"}, w.Codes())
}
