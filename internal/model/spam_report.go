package model

import "time"

// SpamReport marks a phone number as spam on behalf of one reporter.
// A reporter may report a given number at most once; rows are immutable.
type SpamReport struct {
	ID          int       `json:"id"`
	ReporterID  int       `json:"-"`
	PhoneNumber string    `json:"phone_number"`
	ReportedAt  time.Time `json:"reported_at"`
}

// CreateSpamReportRequest is used for filing a new spam report
type CreateSpamReportRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}
