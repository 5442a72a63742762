package services

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/equipe-centaurus/achados-backend/internal/config"
	"github.com/equipe-centaurus/achados-backend/internal/dto"
	"github.com/equipe-centaurus/achados-backend/internal/lifecycle"
	"github.com/equipe-centaurus/achados-backend/internal/models"
	"github.com/equipe-centaurus/achados-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minDeletionPasswordLen = 4

// RecentLimit is how many items the homepage "latest finds" strip shows.
const RecentLimit = 5

var nonDigits = regexp.MustCompile(`\D`)

type ItemService struct {
	items repository.ItemRepository
	clock lifecycle.Clock
	cfg   *config.Config
}

func NewItemService(items repository.ItemRepository, clock lifecycle.Clock, cfg *config.Config) *ItemService {
	return &ItemService{items: items, clock: clock, cfg: cfg}
}

// Create validates and registers a new item. The expiry date is fixed here
// and never recomputed afterwards. The deletion password is stored as a
// bcrypt hash; the original kept it in plaintext, hashing is a deliberate
// hardening on top of the same accept/reject behaviour.
func (s *ItemService) Create(req *dto.CreateItemRequest) (*models.Item, error) {
	if err := validateItemFields(req.Title, req.Category, req.Location, req.ContactWhatsApp, req.ContactInstagram); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(req.DeletionPassword)) < minDeletionPasswordLen {
		return nil, fmt.Errorf("%w: deletion password must be at least %d characters", ErrValidation, minDeletionPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(req.DeletionPassword)), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash deletion password: %w", err)
	}

	registeredAt := lifecycle.DateOnly(s.clock.Now())
	item := models.Item{
		Title:            strings.TrimSpace(req.Title),
		Category:         req.Category,
		Description:      strings.TrimSpace(req.Description),
		Location:         strings.TrimSpace(req.Location),
		ContactWhatsApp:  normalizeWhatsApp(req.ContactWhatsApp),
		ContactInstagram: normalizeInstagram(req.ContactInstagram),
		PhotoURL:         strings.TrimSpace(req.PhotoURL),
		DeletionPassword: string(hash),
		RegisteredAt:     registeredAt,
		ExpiresAt:        lifecycle.ExpiryFrom(registeredAt, s.cfg.ItemTTLMonths),
	}

	if err := s.items.Create(&item); err != nil {
		return nil, fmt.Errorf("%w: creating item: %v", ErrStorage, err)
	}

	slog.Info("item registered", "item_id", item.ID, "location", item.Location, "expires_at", item.ExpiresAt.Format("2006-01-02"))
	return &item, nil
}

// Search evicts expired items, persists the eviction, and filters what
// survives. The sweep runs before every public listing so the store never
// carries expired rows longer than one cycle.
func (s *ItemService) Search(criteria lifecycle.Criteria) ([]models.Item, error) {
	now := s.clock.Now()
	items, err := s.sweepAndList(now)
	if err != nil {
		return nil, err
	}
	return lifecycle.Filter(items, now, criteria), nil
}

// Recent returns the newest surviving items for the homepage strip.
func (s *ItemService) Recent() ([]models.Item, error) {
	now := s.clock.Now()
	items, err := s.sweepAndList(now)
	if err != nil {
		return nil, err
	}
	return lifecycle.MostRecent(lifecycle.Sweep(items, now), RecentLimit), nil
}

// sweepAndList deletes strictly-past items and returns the rest in
// insertion order. Eviction failures are fatal for the request: serving a
// listing without the persisted sweep would leak expired items.
func (s *ItemService) sweepAndList(now time.Time) ([]models.Item, error) {
	evicted, err := s.items.DeleteExpiredBefore(lifecycle.DateOnly(now))
	if err != nil {
		return nil, fmt.Errorf("%w: sweeping expired items: %v", ErrStorage, err)
	}
	if evicted > 0 {
		slog.Info("expired items evicted", "count", evicted)
	}
	items, err := s.items.List()
	if err != nil {
		return nil, fmt.Errorf("%w: listing items: %v", ErrStorage, err)
	}
	return items, nil
}

// Get serves the public detail view. An expired item is indistinguishable
// from a missing one here.
func (s *ItemService) Get(id uint) (*models.Item, error) {
	item, err := s.items.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("%w: loading item: %v", ErrStorage, err)
	}
	if lifecycle.DeriveStatus(item.ExpiresAt, s.clock.Now()) == lifecycle.StatusExpired {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Update is the password-gated edit of an item's descriptive fields.
// Registration and expiry dates never change.
func (s *ItemService) Update(id uint, req *dto.UpdateItemRequest) (*models.Item, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !authorizeDelete(item, req.DeletionPassword) {
		return nil, ErrWrongPassword
	}
	if err := validateItemFields(req.Title, req.Category, req.Location, req.ContactWhatsApp, req.ContactInstagram); err != nil {
		return nil, err
	}

	item.Title = strings.TrimSpace(req.Title)
	item.Category = req.Category
	item.Description = strings.TrimSpace(req.Description)
	item.Location = strings.TrimSpace(req.Location)
	item.ContactWhatsApp = normalizeWhatsApp(req.ContactWhatsApp)
	item.ContactInstagram = normalizeInstagram(req.ContactInstagram)
	item.PhotoURL = strings.TrimSpace(req.PhotoURL)

	if err := s.items.Update(item); err != nil {
		return nil, fmt.Errorf("%w: updating item: %v", ErrStorage, err)
	}
	return item, nil
}

// Delete removes an item on behalf of its owner. The stored password gate
// is the only authorization; admins use AdminDelete instead.
func (s *ItemService) Delete(id uint, password string) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}
	if !authorizeDelete(item, password) {
		return ErrWrongPassword
	}
	if _, err := s.items.Delete(id); err != nil {
		return fmt.Errorf("%w: deleting item: %v", ErrStorage, err)
	}
	slog.Info("item deleted by owner", "item_id", id)
	return nil
}

// AdminDelete bypasses the password gate entirely. It is a separate
// permission boundary, reached only through admin-authenticated routes.
func (s *ItemService) AdminDelete(id uint) error {
	rows, err := s.items.Delete(id)
	if err != nil {
		return fmt.Errorf("%w: deleting item: %v", ErrStorage, err)
	}
	if rows == 0 {
		return ErrItemNotFound
	}
	slog.Info("item deleted by admin", "item_id", id)
	return nil
}

// AdminList shows everything, expired included, with derived statuses. The
// moderation panel needs to see expired items, so no sweep runs here.
func (s *ItemService) AdminList(criteria lifecycle.Criteria) ([]models.Item, error) {
	items, err := s.items.List()
	if err != nil {
		return nil, fmt.Errorf("%w: listing items: %v", ErrStorage, err)
	}
	now := s.clock.Now()
	matched := make([]models.Item, 0, len(items))
	for _, it := range items {
		if lifecycle.Match(it, now, criteria) {
			matched = append(matched, it)
		}
	}
	return matched, nil
}

// Now exposes the service clock so handlers can stamp derived statuses with
// the same instant the listing was computed against.
func (s *ItemService) Now() time.Time { return s.clock.Now() }

func authorizeDelete(item *models.Item, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(item.DeletionPassword), []byte(password)) == nil
}

func validateItemFields(title, category, location, whatsapp, instagram string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(location) == "" {
		return fmt.Errorf("%w: location is required", ErrValidation)
	}
	if category != "" && !validCategory(category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}
	if strings.TrimSpace(whatsapp) == "" && strings.TrimSpace(instagram) == "" {
		return fmt.Errorf("%w: at least one contact method (WhatsApp or Instagram) is required", ErrValidation)
	}
	return nil
}

func validCategory(category string) bool {
	for _, c := range models.Categories {
		if c == category {
			return true
		}
	}
	return false
}

func normalizeWhatsApp(number string) string {
	return nonDigits.ReplaceAllString(strings.TrimSpace(number), "")
}

func normalizeInstagram(handle string) string {
	return strings.TrimPrefix(strings.TrimSpace(handle), "@")
}
