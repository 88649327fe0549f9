package domain

import (
	"errors"
	"fmt"
	"time"
)

// ReportStatus represents the lifecycle state of a maintenance report.
type ReportStatus string

const (
	StatusPending    ReportStatus = "pending"
	StatusInProgress ReportStatus = "in_progress"
	StatusCompleted  ReportStatus = "completed"
)

// KnownStatus reports whether s is one of the three report statuses.
func KnownStatus(s ReportStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

var ErrReportNotFound = errors.New("report not found")
var ErrForbidden = errors.New("access forbidden")
var ErrValidation = errors.New("validation failed")

// Report is a maintenance-work record. ID is the store-generated identity;
// Code is the human-readable label shown to users (RPT-001, RPT-002, ...),
// allocated from a monotonic counter so it stays unique under concurrent
// creation and after deletions.
type Report struct {
	ID             string       `json:"id" bson:"_id,omitempty"`
	Code           string       `json:"code" bson:"code"`
	Title          string       `json:"title" bson:"title"`
	Description    string       `json:"description" bson:"description"`
	TechnicianName string       `json:"technician_name" bson:"technician_name"`
	Date           string       `json:"date" bson:"date"`
	Status         ReportStatus `json:"status" bson:"status"`
	CreatedAt      time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at" bson:"updated_at"`
}

// FormatReportCode renders the display label for the nth report.
func FormatReportCode(seq int64) string {
	return fmt.Sprintf("RPT-%03d", seq)
}
