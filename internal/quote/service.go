// File: internal/quote/service.go
package quote

import (
	"context"
	"errors"
	"math/rand/v2"

	"quotes_backend/internal/common"

	"go.uber.org/zap"
)

// ErrNoQuotes is returned by GetRandomQuote when the quote table is empty.
var ErrNoQuotes = errors.New("no quotes available")

// Service defines the interface for quote-related business logic.
type Service interface {
	GetRandomQuote(ctx context.Context) (*Quote, error)
	LikeQuote(ctx context.Context, firebaseUID string, quoteID uint) (created bool, err error)
	UnlikeQuote(ctx context.Context, firebaseUID string, quoteID uint) (removed bool, err error)
	GetLikedQuotes(ctx context.Context, firebaseUID string) ([]LikedQuote, error)
	SeedQuotes(ctx context.Context) (added int, total int64, err error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new quote service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetRandomQuote picks one quote uniformly at random from all quotes by
// counting the table and reading at a random offset.
func (s *service) GetRandomQuote(ctx context.Context) (*Quote, error) {
	count, err := s.repo.CountQuotes(ctx)
	if err != nil {
		s.logger.Error("Failed to count quotes", zap.Error(err))
		return nil, err
	}
	if count == 0 {
		return nil, ErrNoQuotes
	}

	offset := rand.IntN(int(count))
	quote, err := s.repo.FindQuoteAtOffset(ctx, offset)
	if err != nil {
		// A quote deleted between the count and the read leaves the offset
		// dangling; report it the same way as an empty table.
		if common.IsNotFoundError(err) {
			return nil, ErrNoQuotes
		}
		s.logger.Error("Failed to fetch quote at offset", zap.Error(err), zap.Int("offset", offset))
		return nil, err
	}
	return quote, nil
}

// LikeQuote records a like for the given quote. The quote is resolved first
// so an unknown id surfaces as not-found before any row is written. Returns
// whether a new like row was created.
func (s *service) LikeQuote(ctx context.Context, firebaseUID string, quoteID uint) (bool, error) {
	if _, err := s.repo.FindQuoteByID(ctx, quoteID); err != nil {
		return false, err
	}

	created, err := s.repo.CreateLike(ctx, &LikedQuote{
		FirebaseUID: firebaseUID,
		QuoteID:     quoteID,
	})
	if err != nil {
		s.logger.Error("Failed to create like", zap.Error(err),
			zap.String("uid", firebaseUID), zap.Uint("quoteID", quoteID))
		return false, err
	}
	if created {
		s.logger.Info("Quote liked", zap.String("uid", firebaseUID), zap.Uint("quoteID", quoteID))
	}
	return created, nil
}

// UnlikeQuote deletes the like row for (uid, quote). Returns whether a row
// was actually removed.
func (s *service) UnlikeQuote(ctx context.Context, firebaseUID string, quoteID uint) (bool, error) {
	removed, err := s.repo.DeleteLike(ctx, firebaseUID, quoteID)
	if err != nil {
		s.logger.Error("Failed to delete like", zap.Error(err),
			zap.String("uid", firebaseUID), zap.Uint("quoteID", quoteID))
		return false, err
	}
	if removed {
		s.logger.Info("Quote unliked", zap.String("uid", firebaseUID), zap.Uint("quoteID", quoteID))
	}
	return removed, nil
}

// GetLikedQuotes lists the user's likes with their quotes, most recent first.
func (s *service) GetLikedQuotes(ctx context.Context, firebaseUID string) ([]LikedQuote, error) {
	likes, err := s.repo.FindLikesByUID(ctx, firebaseUID)
	if err != nil {
		s.logger.Error("Failed to list liked quotes", zap.Error(err), zap.String("uid", firebaseUID))
		return nil, common.ErrInternalServer.WithDetails("Could not retrieve liked quotes.")
	}
	return likes, nil
}

// SeedQuotes inserts the fixed quote corpus, skipping entries whose text is
// already present. Safe to run repeatedly.
func (s *service) SeedQuotes(ctx context.Context) (int, int64, error) {
	added := 0
	for _, entry := range seedQuotes {
		created, err := s.repo.FirstOrCreateQuoteByText(ctx, &Quote{
			Text:   entry.Text,
			Author: entry.Author,
		})
		if err != nil {
			s.logger.Error("Failed to seed quote", zap.Error(err), zap.String("text", entry.Text))
			return added, 0, err
		}
		if created {
			added++
		}
	}

	total, err := s.repo.CountQuotes(ctx)
	if err != nil {
		return added, 0, err
	}
	s.logger.Info("Quote seeding finished", zap.Int("added", added), zap.Int64("total", total))
	return added, total, nil
}
