package profile

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"quotes_backend/internal/common"
	"quotes_backend/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "Failed to open in-memory test database")
	require.NoError(t, db.AutoMigrate(&Profile{}), "Failed to migrate test schema")
	return db
}

func TestGetOrCreateProfile_CreatesOnFirstFetch(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewGORMRepository(db), zap.NewNop())
	ctx := context.Background()

	principal := &shared.Principal{
		UID:         "fb-uid-1",
		Email:       "someone@example.com",
		DisplayName: "Someone",
	}

	created, wasCreated, err := svc.GetOrCreateProfile(ctx, principal)
	require.NoError(t, err)
	assert.True(t, wasCreated)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "fb-uid-1", created.FirebaseUID)
	assert.Equal(t, "someone@example.com", created.Email)
	assert.Equal(t, "Someone", created.DisplayName)
	assert.False(t, created.FirstLogin.IsZero())

	// Second fetch returns the same row, no duplicate creation.
	fetched, wasCreated, err := svc.GetOrCreateProfile(ctx, principal)
	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, created.ID, fetched.ID)

	var count int64
	require.NoError(t, db.Model(&Profile{}).Where("firebase_uid = ?", "fb-uid-1").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetOrCreateProfile_EmptyClaimsDefaultToEmptyStrings(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewGORMRepository(db), zap.NewNop())

	created, wasCreated, err := svc.GetOrCreateProfile(context.Background(), &shared.Principal{UID: "fb-uid-bare"})
	require.NoError(t, err)
	assert.True(t, wasCreated)
	assert.Empty(t, created.Email)
	assert.Empty(t, created.DisplayName)
}

// raceRepository simulates losing the creation race: the first lookup misses,
// the insert hits the unique constraint, and the re-read finds the winner.
type raceRepository struct {
	winner *Profile
	finds  int
}

func (r *raceRepository) FindByFirebaseUID(ctx context.Context, firebaseUID string) (*Profile, error) {
	r.finds++
	if r.finds == 1 {
		return nil, common.ErrNotFound.WithDetails("Profile not found for this Firebase UID.")
	}
	return r.winner, nil
}

func (r *raceRepository) Create(ctx context.Context, profile *Profile) error {
	return common.ErrConflict.WithDetails("Profile for this Firebase UID already exists.")
}

func TestGetOrCreateProfile_LostCreationRaceReturnsWinnerRow(t *testing.T) {
	winner := &Profile{ID: 11, FirebaseUID: "fb-uid-race", Email: "winner@example.com"}
	svc := NewService(&raceRepository{winner: winner}, zap.NewNop())

	got, wasCreated, err := svc.GetOrCreateProfile(context.Background(), &shared.Principal{UID: "fb-uid-race"})
	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, winner, got)
}
