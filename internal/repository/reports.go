package repository

import (
	"time"

	"github.com/equipe-centaurus/achados-backend/internal/models"
	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(report *models.Report) error
	GetByID(id uint) (*models.Report, error)
	// HasPending reports whether the item already has an unresolved report.
	HasPending(itemID uint) (bool, error)
	// ListPendingLatestPerItem collapses pending reports to the most recent
	// one per item, for the moderation view. Older pending reports stay in
	// the table untouched.
	ListPendingLatestPerItem() ([]models.Report, error)
	// Resolve marks a single report with a terminal status.
	Resolve(id uint, status, adminNote string, reviewedAt time.Time) error
	// ApproveCascade approves the report, approves every other pending
	// report on the same item, and deletes the item, atomically.
	ApproveCascade(report *models.Report, adminNote string, reviewedAt time.Time) error
}

type gormReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &gormReportRepository{db: db}
}

func (r *gormReportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

func (r *gormReportRepository) GetByID(id uint) (*models.Report, error) {
	var report models.Report
	if err := r.db.First(&report, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *gormReportRepository) HasPending(itemID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Report{}).
		Where("item_id = ? AND status = ?", itemID, models.ReportPending).
		Count(&count).Error
	return count > 0, err
}

func (r *gormReportRepository) ListPendingLatestPerItem() ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Raw(`
		SELECT DISTINCT ON (item_id) *
		FROM reports
		WHERE status = ?
		ORDER BY item_id, reported_at DESC`, models.ReportPending).
		Scan(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *gormReportRepository) Resolve(id uint, status, adminNote string, reviewedAt time.Time) error {
	return r.db.Model(&models.Report{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"admin_note":  adminNote,
			"reviewed_at": reviewedAt,
		}).Error
}

func (r *gormReportRepository) ApproveCascade(report *models.Report, adminNote string, reviewedAt time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Report{}).
			Where("id = ?", report.ID).
			Updates(map[string]interface{}{
				"status":      models.ReportApproved,
				"admin_note":  adminNote,
				"reviewed_at": reviewedAt,
			}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Report{}).
			Where("item_id = ? AND status = ?", report.ItemID, models.ReportPending).
			Updates(map[string]interface{}{
				"status":      models.ReportApproved,
				"reviewed_at": reviewedAt,
			}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Item{}, "id = ?", report.ItemID).Error
	})
}
