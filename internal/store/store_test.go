package store_test

import (
	"context"
	"testing"

	"faq-service/internal/models"
	"faq-service/internal/store"
	"faq-service/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *store.Store {
	return store.New(testutil.TestDB(t))
}

func strPtr(s string) *string { return &s }

func TestStore_Ping(t *testing.T) {
	s := newStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestAdmin_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	a, err := s.CreateAdmin(ctx, "a@b.com", "hash")
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)

	byEmail, err := s.GetAdminByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, a.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.Password)
	assert.False(t, byEmail.RefreshToken.Valid)

	byID, err := s.GetAdminByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", byID.Email)

	_, err = s.CreateAdmin(ctx, "a@b.com", "other")
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)

	_, err = s.GetAdminByEmail(ctx, "missing@b.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAdmin_RefreshToken(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	a, err := s.CreateAdmin(ctx, "a@b.com", "hash")
	require.NoError(t, err)

	require.NoError(t, s.SetRefreshToken(ctx, a.ID, "token-1"))

	found, err := s.GetAdminByRefreshToken(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, a.ID, found.ID)

	require.NoError(t, s.SetRefreshToken(ctx, a.ID, ""))
	_, err = s.GetAdminByRefreshToken(ctx, "token-1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.GetAdminByRefreshToken(ctx, "")
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, s.SetRefreshToken(ctx, "nobody", "x"), store.ErrNotFound)
}

func TestFAQ_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	f := &models.FAQ{
		OriginalLanguage: "en",
		Status:           models.StatusPublished,
		Category:         strPtr("general"),
		TargetLanguages:  models.LanguageList{"en", "es"},
		Translations: models.Translations{
			"en": {Question: "Q", Answer: "A"},
			"es": {Question: "P", Answer: "R"},
		},
		CreatedBy: strPtr("admin-1"),
	}
	require.NoError(t, s.CreateFAQ(ctx, f))
	require.NotEmpty(t, f.ID)

	got, err := s.GetFAQ(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f.Translations, got.Translations)
	assert.Equal(t, f.TargetLanguages, got.TargetLanguages)
	assert.Equal(t, "general", *got.Category)
	assert.Equal(t, "admin-1", *got.CreatedBy)
	assert.Equal(t, models.StatusPublished, got.Status)

	got.Category = nil
	got.Status = models.StatusArchived
	require.NoError(t, s.UpdateFAQ(ctx, got))

	updated, err := s.GetFAQ(ctx, f.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.Category)
	assert.Equal(t, models.StatusArchived, updated.Status)

	deleted, err := s.DeleteFAQ(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f.ID, deleted.ID)

	_, err = s.GetFAQ(ctx, f.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.DeleteFAQ(ctx, f.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, s.UpdateFAQ(ctx, got), store.ErrNotFound)
}

func TestFAQ_Defaults(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	f := &models.FAQ{Translations: models.Translations{"en": {Question: "Q", Answer: "A"}}}
	require.NoError(t, s.CreateFAQ(ctx, f))

	got, err := s.GetFAQ(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultLanguage, got.OriginalLanguage)
	assert.Equal(t, models.StatusDraft, got.Status)
	assert.Empty(t, got.TargetLanguages)
}

func TestFAQ_ListByStatus(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	for _, st := range []models.Status{models.StatusPublished, models.StatusDraft, models.StatusPublished} {
		require.NoError(t, s.CreateFAQ(ctx, &models.FAQ{
			Status:       st,
			Translations: models.Translations{"en": {Question: "Q", Answer: "A"}},
		}))
	}

	published, err := s.ListFAQsByStatus(ctx, models.StatusPublished)
	require.NoError(t, err)
	assert.Len(t, published, 2)

	archived, err := s.ListFAQsByStatus(ctx, models.StatusArchived)
	require.NoError(t, err)
	assert.Empty(t, archived)
}
