// File: internal/quote/model.go
package quote

import (
	"time"
)

// Quote represents an inspirational quote in the database. Quotes are created
// by the seed operation and never mutated or deleted by request handlers.
type Quote struct {
	ID        uint      `gorm:"primaryKey"`
	Text      string    `gorm:"type:text;not null"`
	Author    string    `gorm:"type:varchar(200);not null;default:'Unknown'"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for the Quote model.
func (Quote) TableName() string {
	return "quotes"
}

// LikedQuote records that a Firebase user marked a quote as liked. The
// composite unique index guarantees at most one row per (uid, quote) pair;
// a concurrent duplicate insert loses at the constraint, not in app code.
// FirebaseUID is an external identity key with no local user table behind it.
type LikedQuote struct {
	ID          uint      `gorm:"primaryKey"`
	FirebaseUID string    `gorm:"type:varchar(128);not null;index;uniqueIndex:idx_liked_quotes_uid_quote,priority:1"`
	QuoteID     uint      `gorm:"not null;uniqueIndex:idx_liked_quotes_uid_quote,priority:2"`
	Quote       Quote     `gorm:"foreignKey:QuoteID;references:ID;constraint:OnDelete:CASCADE"`
	LikedAt     time.Time `gorm:"column:liked_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the LikedQuote model.
func (LikedQuote) TableName() string {
	return "liked_quotes"
}

// --- DTOs ---

// QuoteResponse defines the structure for quote data sent in API responses.
// created_at is deliberately not part of the wire format.
type QuoteResponse struct {
	ID     uint   `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

// LikedQuoteResponse defines the structure for a liked-quote entry, with the
// quote nested.
type LikedQuoteResponse struct {
	ID      uint          `json:"id"`
	Quote   QuoteResponse `json:"quote"`
	LikedAt time.Time     `json:"liked_at"`
}

// ToQuoteResponse converts a Quote model to a QuoteResponse DTO.
func ToQuoteResponse(quote *Quote) QuoteResponse {
	return QuoteResponse{
		ID:     quote.ID,
		Text:   quote.Text,
		Author: quote.Author,
	}
}

// ToLikedQuoteResponse converts a LikedQuote model to a LikedQuoteResponse DTO.
func ToLikedQuoteResponse(likedQuote *LikedQuote) LikedQuoteResponse {
	return LikedQuoteResponse{
		ID:      likedQuote.ID,
		Quote:   ToQuoteResponse(&likedQuote.Quote),
		LikedAt: likedQuote.LikedAt,
	}
}

// LikeQuoteURI binds the quote id path parameter for like/unlike requests.
type LikeQuoteURI struct {
	QuoteID uint `uri:"quote_id" binding:"required"`
}
