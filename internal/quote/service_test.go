package quote

import (
	"context"
	"errors"
	"testing"

	"quotes_backend/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockRepository is a hand-rolled mock of the Repository interface. Tests set
// only the functions they need; an unexpected call panics on the nil func.
type mockRepository struct {
	countQuotesFn              func(ctx context.Context) (int64, error)
	findQuoteAtOffsetFn        func(ctx context.Context, offset int) (*Quote, error)
	findQuoteByIDFn            func(ctx context.Context, id uint) (*Quote, error)
	firstOrCreateQuoteByTextFn func(ctx context.Context, quote *Quote) (bool, error)
	createLikeFn               func(ctx context.Context, like *LikedQuote) (bool, error)
	deleteLikeFn               func(ctx context.Context, firebaseUID string, quoteID uint) (bool, error)
	findLikesByUIDFn           func(ctx context.Context, firebaseUID string) ([]LikedQuote, error)
}

func (m *mockRepository) CountQuotes(ctx context.Context) (int64, error) {
	return m.countQuotesFn(ctx)
}

func (m *mockRepository) FindQuoteAtOffset(ctx context.Context, offset int) (*Quote, error) {
	return m.findQuoteAtOffsetFn(ctx, offset)
}

func (m *mockRepository) FindQuoteByID(ctx context.Context, id uint) (*Quote, error) {
	return m.findQuoteByIDFn(ctx, id)
}

func (m *mockRepository) FirstOrCreateQuoteByText(ctx context.Context, quote *Quote) (bool, error) {
	return m.firstOrCreateQuoteByTextFn(ctx, quote)
}

func (m *mockRepository) CreateLike(ctx context.Context, like *LikedQuote) (bool, error) {
	return m.createLikeFn(ctx, like)
}

func (m *mockRepository) DeleteLike(ctx context.Context, firebaseUID string, quoteID uint) (bool, error) {
	return m.deleteLikeFn(ctx, firebaseUID, quoteID)
}

func (m *mockRepository) FindLikesByUID(ctx context.Context, firebaseUID string) ([]LikedQuote, error) {
	return m.findLikesByUIDFn(ctx, firebaseUID)
}

func TestGetRandomQuote_EmptyTable(t *testing.T) {
	repo := &mockRepository{
		countQuotesFn: func(ctx context.Context) (int64, error) { return 0, nil },
	}
	svc := NewService(repo, zap.NewNop())

	quote, err := svc.GetRandomQuote(context.Background())
	assert.Nil(t, quote)
	assert.ErrorIs(t, err, ErrNoQuotes)
}

func TestGetRandomQuote_OffsetWithinRange(t *testing.T) {
	const count = 5
	want := &Quote{ID: 3, Text: "some text", Author: "Unknown"}

	var gotOffset int
	repo := &mockRepository{
		countQuotesFn: func(ctx context.Context) (int64, error) { return count, nil },
		findQuoteAtOffsetFn: func(ctx context.Context, offset int) (*Quote, error) {
			gotOffset = offset
			return want, nil
		},
	}
	svc := NewService(repo, zap.NewNop())

	// The offset is random; run a few times and check it always stays in range.
	for i := 0; i < 50; i++ {
		quote, err := svc.GetRandomQuote(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, quote)
		assert.GreaterOrEqual(t, gotOffset, 0)
		assert.Less(t, gotOffset, count)
	}
}

func TestGetRandomQuote_RowVanishedBetweenCountAndRead(t *testing.T) {
	repo := &mockRepository{
		countQuotesFn: func(ctx context.Context) (int64, error) { return 1, nil },
		findQuoteAtOffsetFn: func(ctx context.Context, offset int) (*Quote, error) {
			return nil, common.ErrNotFound.WithDetails("Quote not found.")
		},
	}
	svc := NewService(repo, zap.NewNop())

	_, err := svc.GetRandomQuote(context.Background())
	assert.ErrorIs(t, err, ErrNoQuotes)
}

func TestLikeQuote_UnknownQuote(t *testing.T) {
	repo := &mockRepository{
		findQuoteByIDFn: func(ctx context.Context, id uint) (*Quote, error) {
			return nil, common.ErrNotFound.WithDetails("Quote not found.")
		},
		createLikeFn: func(ctx context.Context, like *LikedQuote) (bool, error) {
			t.Fatal("CreateLike must not be called for an unknown quote")
			return false, nil
		},
	}
	svc := NewService(repo, zap.NewNop())

	created, err := svc.LikeQuote(context.Background(), "uid-1", 99)
	assert.False(t, created)
	assert.True(t, common.IsNotFoundError(err))
}

func TestLikeQuote_AlreadyLiked(t *testing.T) {
	repo := &mockRepository{
		findQuoteByIDFn: func(ctx context.Context, id uint) (*Quote, error) {
			return &Quote{ID: id}, nil
		},
		createLikeFn: func(ctx context.Context, like *LikedQuote) (bool, error) {
			return false, nil // constraint rejected the duplicate
		},
	}
	svc := NewService(repo, zap.NewNop())

	created, err := svc.LikeQuote(context.Background(), "uid-1", 7)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestUnlikeQuote_NoExistingRow(t *testing.T) {
	repo := &mockRepository{
		deleteLikeFn: func(ctx context.Context, firebaseUID string, quoteID uint) (bool, error) {
			return false, nil
		},
	}
	svc := NewService(repo, zap.NewNop())

	removed, err := svc.UnlikeQuote(context.Background(), "uid-1", 7)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestGetLikedQuotes_RepositoryError(t *testing.T) {
	repo := &mockRepository{
		findLikesByUIDFn: func(ctx context.Context, firebaseUID string) ([]LikedQuote, error) {
			return nil, errors.New("db is down")
		},
	}
	svc := NewService(repo, zap.NewNop())

	likes, err := svc.GetLikedQuotes(context.Background(), "uid-1")
	assert.Nil(t, likes)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 500, apiErr.StatusCode)
}
