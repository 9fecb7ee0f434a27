// File: internal/quote/repository.go
package quote

import (
	"context"
	"errors"
	"strings"

	"quotes_backend/internal/common"

	"gorm.io/gorm"
)

// Repository defines the interface for quote and liked-quote data operations.
type Repository interface {
	// Quote methods
	CountQuotes(ctx context.Context) (int64, error)
	FindQuoteAtOffset(ctx context.Context, offset int) (*Quote, error)
	FindQuoteByID(ctx context.Context, id uint) (*Quote, error)
	FirstOrCreateQuoteByText(ctx context.Context, quote *Quote) (created bool, err error)

	// LikedQuote methods
	CreateLike(ctx context.Context, like *LikedQuote) (created bool, err error)
	DeleteLike(ctx context.Context, firebaseUID string, quoteID uint) (deleted bool, err error)
	FindLikesByUID(ctx context.Context, firebaseUID string) ([]LikedQuote, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM quote repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// --- Quote Methods ---

func (r *gormRepository) CountQuotes(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Quote{}).Count(&count).Error
	return count, err
}

// FindQuoteAtOffset returns the quote at the given offset in primary-key
// order. Combined with a random offset by the service, this yields a uniform
// pick without leaning on a database-specific random-order primitive.
func (r *gormRepository) FindQuoteAtOffset(ctx context.Context, offset int) (*Quote, error) {
	var quote Quote
	err := r.db.WithContext(ctx).Order("id ASC").Offset(offset).First(&quote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Quote not found.")
		}
		return nil, err
	}
	return &quote, nil
}

func (r *gormRepository) FindQuoteByID(ctx context.Context, id uint) (*Quote, error) {
	var quote Quote
	err := r.db.WithContext(ctx).First(&quote, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Quote not found.")
		}
		return nil, err
	}
	return &quote, nil
}

// FirstOrCreateQuoteByText inserts the quote unless one with identical text
// already exists. Seeding runs through this, which is what keeps it idempotent.
func (r *gormRepository) FirstOrCreateQuoteByText(ctx context.Context, quote *Quote) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("text = ?", quote.Text).
		FirstOrCreate(quote)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// --- LikedQuote Methods ---

// CreateLike inserts a like row. A duplicate for the same (uid, quote) pair
// is not an error: the unique constraint rejects the insert and the caller
// is told the row already existed.
func (r *gormRepository) CreateLike(ctx context.Context, like *LikedQuote) (bool, error) {
	err := r.db.WithContext(ctx).Create(like).Error
	if err != nil {
		if isDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *gormRepository) DeleteLike(ctx context.Context, firebaseUID string, quoteID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("firebase_uid = ? AND quote_id = ?", firebaseUID, quoteID).
		Delete(&LikedQuote{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *gormRepository) FindLikesByUID(ctx context.Context, firebaseUID string) ([]LikedQuote, error) {
	var likes []LikedQuote
	err := r.db.WithContext(ctx).
		Preload("Quote").
		Where("firebase_uid = ?", firebaseUID).
		Order("liked_at DESC, id DESC").
		Find(&likes).Error
	return likes, err
}

// isDuplicateKeyError matches unique-constraint violations across the
// Postgres and SQLite drivers.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
