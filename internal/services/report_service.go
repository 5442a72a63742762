package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/equipe-centaurus/achados-backend/internal/dto"
	"github.com/equipe-centaurus/achados-backend/internal/lifecycle"
	"github.com/equipe-centaurus/achados-backend/internal/models"
	"github.com/equipe-centaurus/achados-backend/internal/repository"
	"gorm.io/gorm"
)

// Resolution actions accepted by the moderation endpoint.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

type ReportService struct {
	reports repository.ReportRepository
	items   repository.ItemRepository
	clock   lifecycle.Clock

	// allowDuplicates mirrors the observed behaviour: nothing stopped a
	// visitor from re-filing while a report was still pending. Operators
	// can turn it off.
	allowDuplicates bool
}

func NewReportService(reports repository.ReportRepository, items repository.ItemRepository, clock lifecycle.Clock, allowDuplicates bool) *ReportService {
	return &ReportService{reports: reports, items: items, clock: clock, allowDuplicates: allowDuplicates}
}

// Create files a report against an existing item.
func (s *ReportService) Create(itemID uint, req *dto.CreateReportRequest) (*models.Report, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrValidation)
	}

	if _, err := s.items.GetByID(itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("%w: loading item: %v", ErrStorage, err)
	}

	if !s.allowDuplicates {
		pending, err := s.reports.HasPending(itemID)
		if err != nil {
			return nil, fmt.Errorf("%w: checking pending reports: %v", ErrStorage, err)
		}
		if pending {
			return nil, ErrDuplicateReport
		}
	}

	report := models.Report{
		ItemID:     itemID,
		Reason:     strings.TrimSpace(req.Reason),
		Status:     models.ReportPending,
		ReportedAt: s.clock.Now(),
	}
	if err := s.reports.Create(&report); err != nil {
		return nil, fmt.Errorf("%w: creating report: %v", ErrStorage, err)
	}

	slog.Info("report filed", "report_id", report.ID, "item_id", itemID)
	return &report, nil
}

// ListPending returns the moderation queue: the most recent pending report
// per item, joined with the reported item. Reports whose item has since
// been deleted by its owner are skipped; they resolve on approval of
// nothing and carry no actionable content.
func (s *ReportService) ListPending() ([]dto.PendingReportResponse, error) {
	reports, err := s.reports.ListPendingLatestPerItem()
	if err != nil {
		return nil, fmt.Errorf("%w: listing pending reports: %v", ErrStorage, err)
	}

	now := s.clock.Now()
	out := make([]dto.PendingReportResponse, 0, len(reports))
	for _, report := range reports {
		item, err := s.items.GetByID(report.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("%w: loading reported item: %v", ErrStorage, err)
		}
		out = append(out, dto.PendingReportResponse{
			Report: report,
			Item:   dto.NewItemResponse(*item, now),
		})
	}
	return out, nil
}

// Resolve moves a pending report to its terminal state. Approving removes
// the reported item (administrator authority substitutes for the deletion
// password) and settles any sibling pending reports; rejecting leaves the
// item untouched. Either way the report never comes back to pending.
func (s *ReportService) Resolve(reportID uint, req *dto.ResolveReportRequest) error {
	if req.Action != ActionApprove && req.Action != ActionReject {
		return fmt.Errorf("%w: action must be %q or %q", ErrValidation, ActionApprove, ActionReject)
	}

	report, err := s.reports.GetByID(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReportNotFound
		}
		return fmt.Errorf("%w: loading report: %v", ErrStorage, err)
	}
	if report.Status != models.ReportPending {
		return ErrReportResolved
	}

	now := s.clock.Now()
	switch req.Action {
	case ActionApprove:
		if err := s.reports.ApproveCascade(report, req.AdminNote, now); err != nil {
			return fmt.Errorf("%w: approving report: %v", ErrStorage, err)
		}
		slog.Info("report approved, item removed", "report_id", reportID, "item_id", report.ItemID)
	case ActionReject:
		if err := s.reports.Resolve(reportID, models.ReportRejected, req.AdminNote, now); err != nil {
			return fmt.Errorf("%w: rejecting report: %v", ErrStorage, err)
		}
		slog.Info("report rejected, item retained", "report_id", reportID, "item_id", report.ItemID)
	}
	return nil
}
