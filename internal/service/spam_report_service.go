package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spam_detector/internal/model"
	"spam_detector/internal/repository"
	"spam_detector/internal/utils"
)

var ErrDuplicateReport = errors.New("this phone number has already been reported by this user")

// SpamReportService provides spam reporting operations
type SpamReportService interface {
	ListReports(ctx context.Context, reporterID int) ([]model.SpamReport, error)
	ReportNumber(ctx context.Context, reporterID int, req model.CreateSpamReportRequest) (*model.SpamReport, error)
}

type spamReportService struct {
	reportRepo repository.SpamReportRepository
}

// NewSpamReportService creates a new SpamReportService
func NewSpamReportService(reportRepo repository.SpamReportRepository) SpamReportService {
	return &spamReportService{reportRepo: reportRepo}
}

func (s *spamReportService) ListReports(ctx context.Context, reporterID int) ([]model.SpamReport, error) {
	reports, err := s.reportRepo.FindByReporter(ctx, reporterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list spam reports: %w", err)
	}
	if reports == nil {
		reports = []model.SpamReport{}
	}
	return reports, nil
}

func (s *spamReportService) ReportNumber(ctx context.Context, reporterID int, req model.CreateSpamReportRequest) (*model.SpamReport, error) {
	if !utils.IsValidPhoneNumber(req.PhoneNumber) {
		return nil, &ValidationError{Field: "phone_number", Message: phoneFormatMessage}
	}

	report := &model.SpamReport{
		ReporterID:  reporterID,
		PhoneNumber: req.PhoneNumber,
		ReportedAt:  time.Now(),
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateReport
		}
		return nil, fmt.Errorf("failed to create spam report: %w", err)
	}
	return report, nil
}
