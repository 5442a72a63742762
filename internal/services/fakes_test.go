package services

import (
	"time"

	"github.com/equipe-centaurus/achados-backend/internal/lifecycle"
	"github.com/equipe-centaurus/achados-backend/internal/models"
	"github.com/equipe-centaurus/achados-backend/internal/repository"
	"gorm.io/gorm"
)

// -------- test fakes --------

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

type fakeItemRepo struct {
	items  []models.Item
	nextID uint

	listErr   error
	createErr error
	deleteErr error
	sweepErr  error
}

func newFakeItemRepo(items ...models.Item) *fakeItemRepo {
	r := &fakeItemRepo{nextID: 1}
	for _, it := range items {
		if it.ID >= r.nextID {
			r.nextID = it.ID + 1
		}
		r.items = append(r.items, it)
	}
	return r
}

func (r *fakeItemRepo) List() ([]models.Item, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *fakeItemRepo) GetByID(id uint) (*models.Item, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			it := r.items[i]
			return &it, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeItemRepo) Create(item *models.Item) error {
	if r.createErr != nil {
		return r.createErr
	}
	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeItemRepo) Update(item *models.Item) error {
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = *item
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeItemRepo) Delete(id uint) (int64, error) {
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeItemRepo) DeleteExpiredBefore(cutoff time.Time) (int64, error) {
	if r.sweepErr != nil {
		return 0, r.sweepErr
	}
	kept := r.items[:0:0]
	var evicted int64
	for _, it := range r.items {
		if it.ExpiresAt.Before(cutoff) {
			evicted++
			continue
		}
		kept = append(kept, it)
	}
	r.items = kept
	return evicted, nil
}

type fakeReportRepo struct {
	reports []models.Report
	nextID  uint

	// cascade target, mirrors the production transaction
	items *fakeItemRepo

	createErr error
	listErr   error
}

func newFakeReportRepo(items *fakeItemRepo, reports ...models.Report) *fakeReportRepo {
	r := &fakeReportRepo{items: items, nextID: 1}
	for _, rep := range reports {
		if rep.ID >= r.nextID {
			r.nextID = rep.ID + 1
		}
		r.reports = append(r.reports, rep)
	}
	return r
}

func (r *fakeReportRepo) Create(report *models.Report) error {
	if r.createErr != nil {
		return r.createErr
	}
	report.ID = r.nextID
	r.nextID++
	r.reports = append(r.reports, *report)
	return nil
}

func (r *fakeReportRepo) GetByID(id uint) (*models.Report, error) {
	for i := range r.reports {
		if r.reports[i].ID == id {
			rep := r.reports[i]
			return &rep, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeReportRepo) HasPending(itemID uint) (bool, error) {
	for _, rep := range r.reports {
		if rep.ItemID == itemID && rep.Status == models.ReportPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReportRepo) ListPendingLatestPerItem() ([]models.Report, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	latest := map[uint]models.Report{}
	for _, rep := range r.reports {
		if rep.Status != models.ReportPending {
			continue
		}
		if cur, ok := latest[rep.ItemID]; !ok || rep.ReportedAt.After(cur.ReportedAt) {
			latest[rep.ItemID] = rep
		}
	}
	out := make([]models.Report, 0, len(latest))
	for _, rep := range latest {
		out = append(out, rep)
	}
	return out, nil
}

func (r *fakeReportRepo) Resolve(id uint, status, adminNote string, reviewedAt time.Time) error {
	for i := range r.reports {
		if r.reports[i].ID == id {
			r.reports[i].Status = status
			r.reports[i].AdminNote = adminNote
			t := reviewedAt
			r.reports[i].ReviewedAt = &t
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeReportRepo) ApproveCascade(report *models.Report, adminNote string, reviewedAt time.Time) error {
	if err := r.Resolve(report.ID, models.ReportApproved, adminNote, reviewedAt); err != nil {
		return err
	}
	for i := range r.reports {
		if r.reports[i].ItemID == report.ItemID && r.reports[i].Status == models.ReportPending {
			r.reports[i].Status = models.ReportApproved
			t := reviewedAt
			r.reports[i].ReviewedAt = &t
		}
	}
	_, err := r.items.Delete(report.ItemID)
	return err
}

// compile-time interface checks live with the fakes
var (
	_ lifecycle.Clock             = fixedClock{}
	_ repository.ItemRepository   = (*fakeItemRepo)(nil)
	_ repository.ReportRepository = (*fakeReportRepo)(nil)
)
