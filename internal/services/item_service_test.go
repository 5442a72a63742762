package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/equipe-centaurus/achados-backend/internal/config"
	"github.com/equipe-centaurus/achados-backend/internal/dto"
	"github.com/equipe-centaurus/achados-backend/internal/lifecycle"
	"github.com/equipe-centaurus/achados-backend/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testConfig() *config.Config {
	return &config.Config{ItemTTLMonths: 3}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func validCreateRequest() *dto.CreateItemRequest {
	return &dto.CreateItemRequest{
		Title:            "Carteira preta",
		Category:         "Documentos",
		Description:      "couro, com documentos",
		Location:         "Biblioteca",
		ContactWhatsApp:  "(31) 99999-0000",
		DeletionPassword: "abcd",
	}
}

func TestCreateDerivesFixedExpiry(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo, fixedClock{date(2024, time.January, 15)}, testConfig())

	item, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.January, 15), item.RegisteredAt)
	assert.Equal(t, date(2024, time.April, 15), item.ExpiresAt)
	assert.NotZero(t, item.ID)
}

func TestCreateHashesDeletionPassword(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo, fixedClock{date(2024, time.January, 15)}, testConfig())

	item, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	assert.NotEqual(t, "abcd", item.DeletionPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(item.DeletionPassword), []byte("abcd")))
}

func TestCreateNormalizesContacts(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo, fixedClock{date(2024, time.January, 15)}, testConfig())

	req := validCreateRequest()
	req.ContactInstagram = "@achadinhos"
	item, err := svc.Create(req)
	require.NoError(t, err)

	assert.Equal(t, "31999990000", item.ContactWhatsApp)
	assert.Equal(t, "achadinhos", item.ContactInstagram)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.CreateItemRequest)
	}{
		{"missing title", func(r *dto.CreateItemRequest) { r.Title = "  " }},
		{"missing location", func(r *dto.CreateItemRequest) { r.Location = "" }},
		{"no contact method", func(r *dto.CreateItemRequest) {
			r.ContactWhatsApp = ""
			r.ContactInstagram = "   "
		}},
		{"short deletion password", func(r *dto.CreateItemRequest) { r.DeletionPassword = "abc" }},
		{"unknown category", func(r *dto.CreateItemRequest) { r.Category = "Veículos" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeItemRepo()
			svc := NewItemService(repo, fixedClock{date(2024, time.January, 15)}, testConfig())

			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(req)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, repo.items, "rejected item must not be persisted")
		})
	}
}

func TestSearchSweepsBeforeServing(t *testing.T) {
	now := date(2024, time.January, 10)
	repo := newFakeItemRepo(
		models.Item{ID: 1, Title: "Fone", ExpiresAt: date(2024, time.March, 1)},
		models.Item{ID: 2, Title: "Chaveiro", ExpiresAt: date(2024, time.January, 9)},
		models.Item{ID: 3, Title: "Caderno", ExpiresAt: date(2024, time.January, 10)},
	)
	svc := NewItemService(repo, fixedClock{now}, testConfig())

	got, err := svc.Search(lifecycle.Criteria{})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(3), got[1].ID)

	// The eviction is persisted, not merely filtered out of the response.
	require.Len(t, repo.items, 2)
	assert.Equal(t, uint(1), repo.items[0].ID)
}

func TestSearchStorageFailureIsNotZeroMatches(t *testing.T) {
	repo := newFakeItemRepo()
	repo.listErr = errors.New("connection refused")
	svc := NewItemService(repo, fixedClock{date(2024, time.January, 10)}, testConfig())

	got, err := svc.Search(lifecycle.Criteria{})
	assert.ErrorIs(t, err, ErrStorage)
	assert.Nil(t, got)
}

func TestRecentReturnsNewestFive(t *testing.T) {
	now := date(2024, time.January, 10)
	repo := newFakeItemRepo()
	for i := 1; i <= 7; i++ {
		repo.items = append(repo.items, models.Item{
			ID:           uint(i),
			RegisteredAt: date(2024, time.January, i),
			ExpiresAt:    date(2024, time.April, i),
		})
	}
	svc := NewItemService(repo, fixedClock{now}, testConfig())

	got, err := svc.Recent()
	require.NoError(t, err)

	require.Len(t, got, RecentLimit)
	assert.Equal(t, uint(7), got[0].ID)
	assert.Equal(t, uint(3), got[len(got)-1].ID)
}

func TestGetHidesExpiredItems(t *testing.T) {
	repo := newFakeItemRepo(
		models.Item{ID: 1, ExpiresAt: date(2024, time.January, 5)},
	)
	svc := NewItemService(repo, fixedClock{date(2024, time.January, 10)}, testConfig())

	_, err := svc.Get(1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestGetMissingItem(t *testing.T) {
	svc := NewItemService(newFakeItemRepo(), fixedClock{date(2024, time.January, 10)}, testConfig())

	_, err := svc.Get(42)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestDeleteAuthorization(t *testing.T) {
	now := date(2024, time.January, 10)

	makeRepo := func(t *testing.T) *fakeItemRepo {
		return newFakeItemRepo(models.Item{
			ID:               1,
			Title:            "Carteira",
			ExpiresAt:        date(2024, time.April, 1),
			DeletionPassword: hashPassword(t, "abcd"),
		})
	}

	t.Run("correct password deletes", func(t *testing.T) {
		repo := makeRepo(t)
		svc := NewItemService(repo, fixedClock{now}, testConfig())

		require.NoError(t, svc.Delete(1, "abcd"))
		assert.Empty(t, repo.items)
	})

	t.Run("wrong password is rejected and item kept", func(t *testing.T) {
		repo := makeRepo(t)
		svc := NewItemService(repo, fixedClock{now}, testConfig())

		err := svc.Delete(1, "abcx")
		assert.ErrorIs(t, err, ErrWrongPassword)
		assert.Len(t, repo.items, 1)
	})
}

func TestAdminDeleteBypassesPassword(t *testing.T) {
	repo := newFakeItemRepo(models.Item{
		ID:               1,
		ExpiresAt:        date(2024, time.April, 1),
		DeletionPassword: hashPassword(t, "abcd"),
	})
	svc := NewItemService(repo, fixedClock{date(2024, time.January, 10)}, testConfig())

	require.NoError(t, svc.AdminDelete(1))
	assert.Empty(t, repo.items)

	assert.ErrorIs(t, svc.AdminDelete(99), ErrItemNotFound)
}

func TestUpdateKeepsDatesImmutable(t *testing.T) {
	registered := date(2023, time.December, 1)
	expires := date(2024, time.March, 1)
	repo := newFakeItemRepo(models.Item{
		ID:               1,
		Title:            "Carteira",
		Location:         "Biblioteca",
		ContactWhatsApp:  "31999990000",
		RegisteredAt:     registered,
		ExpiresAt:        expires,
		DeletionPassword: hashPassword(t, "abcd"),
	})
	svc := NewItemService(repo, fixedClock{date(2024, time.January, 10)}, testConfig())

	updated, err := svc.Update(1, &dto.UpdateItemRequest{
		Title:            "Carteira marrom",
		Location:         "Cantina",
		ContactWhatsApp:  "31988887777",
		DeletionPassword: "abcd",
	})
	require.NoError(t, err)

	assert.Equal(t, "Carteira marrom", updated.Title)
	assert.Equal(t, registered, updated.RegisteredAt)
	assert.Equal(t, expires, updated.ExpiresAt)
}

func TestUpdateRequiresPassword(t *testing.T) {
	repo := newFakeItemRepo(models.Item{
		ID:               1,
		Title:            "Carteira",
		Location:         "Biblioteca",
		ContactWhatsApp:  "31999990000",
		ExpiresAt:        date(2024, time.March, 1),
		DeletionPassword: hashPassword(t, "abcd"),
	})
	svc := NewItemService(repo, fixedClock{date(2024, time.January, 10)}, testConfig())

	_, err := svc.Update(1, &dto.UpdateItemRequest{
		Title:            "Outra coisa",
		Location:         "Cantina",
		ContactWhatsApp:  "31988887777",
		DeletionPassword: "wrong",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Equal(t, "Carteira", repo.items[0].Title)
}

func TestAdminListIncludesExpired(t *testing.T) {
	now := date(2024, time.January, 10)
	repo := newFakeItemRepo(
		models.Item{ID: 1, ExpiresAt: date(2024, time.March, 1)},
		models.Item{ID: 2, ExpiresAt: date(2024, time.January, 5)},
		models.Item{ID: 3, ExpiresAt: date(2024, time.January, 14)},
	)
	svc := NewItemService(repo, fixedClock{now}, testConfig())

	all, err := svc.AdminList(lifecycle.Criteria{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	expired, err := svc.AdminList(lifecycle.Criteria{Status: lifecycle.StatusExpired})
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, uint(2), expired[0].ID)

	expiring, err := svc.AdminList(lifecycle.Criteria{Status: lifecycle.StatusExpiring})
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, uint(3), expiring[0].ID)
}
