package repository

import (
	"context"
	"fmt"

	"spam_detector/internal/model"
)

// SpamReportRepository defines operations for spam report data
type SpamReportRepository interface {
	Create(ctx context.Context, report *model.SpamReport) error
	FindByReporter(ctx context.Context, reporterID int) ([]model.SpamReport, error)
	CountByPhone(ctx context.Context, phone string) (int, error)
	CountsGroupedByPhone(ctx context.Context) (map[string]int, error)
}

type spamReportRepository struct {
	db DB
}

// NewSpamReportRepository creates a new SpamReportRepository
func NewSpamReportRepository(db DB) SpamReportRepository {
	return &spamReportRepository{db: db}
}

// Create inserts a new spam report
func (r *spamReportRepository) Create(ctx context.Context, report *model.SpamReport) error {
	sql := `INSERT INTO spam_reports (reporter_id, phone_number, reported_at)
            VALUES ($1, $2, $3) RETURNING id, reported_at`
	err := r.db.QueryRow(ctx, sql, report.ReporterID, report.PhoneNumber, report.ReportedAt).Scan(&report.ID, &report.ReportedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("report for %s by user %d: %w", report.PhoneNumber, report.ReporterID, ErrDuplicate)
		}
		return fmt.Errorf("failed to create spam report: %w", err)
	}
	return nil
}

// FindByReporter retrieves all reports filed by one user
func (r *spamReportRepository) FindByReporter(ctx context.Context, reporterID int) ([]model.SpamReport, error) {
	sql := `SELECT id, reporter_id, phone_number, reported_at FROM spam_reports
            WHERE reporter_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, sql, reporterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query spam reports by reporter: %w", err)
	}
	defer rows.Close()

	var reports []model.SpamReport
	for rows.Next() {
		var rep model.SpamReport
		if err := rows.Scan(&rep.ID, &rep.ReporterID, &rep.PhoneNumber, &rep.ReportedAt); err != nil {
			return nil, fmt.Errorf("failed to scan spam report row: %w", err)
		}
		reports = append(reports, rep)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating spam report rows: %w", err)
	}
	return reports, nil
}

// CountByPhone returns the number of distinct reporters of a phone number
func (r *spamReportRepository) CountByPhone(ctx context.Context, phone string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM spam_reports WHERE phone_number = $1`, phone).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count spam reports: %w", err)
	}
	return count, nil
}

// CountsGroupedByPhone returns report counts for every reported phone number
// in one query, so the name search path scores without per-row recounting.
func (r *spamReportRepository) CountsGroupedByPhone(ctx context.Context) (map[string]int, error) {
	sql := `SELECT phone_number, COUNT(*) FROM spam_reports GROUP BY phone_number`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query grouped spam counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var phone string
		var count int
		if err := rows.Scan(&phone, &count); err != nil {
			return nil, fmt.Errorf("failed to scan grouped spam count: %w", err)
		}
		counts[phone] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grouped spam counts: %w", err)
	}
	return counts, nil
}
