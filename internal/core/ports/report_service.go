package ports

import (
	"context"

	"github.com/carlosmateus/maintenance-system/internal/core/domain"
)

// ReportDraft is the DTO passed from the transport layer for create and
// update operations.
type ReportDraft struct {
	Title          string
	Description    string
	TechnicianName string
	Date           string
	Status         string
}

// ReportService applies the role-scoped access rules around report CRUD.
type ReportService interface {
	// List returns the reports the actor may see, optionally narrowed by a
	// case-insensitive substring search over title, technician name and
	// display code.
	List(ctx context.Context, actor domain.Actor, search string) ([]*domain.Report, error)
	Create(ctx context.Context, actor domain.Actor, draft ReportDraft) (*domain.Report, error)
	Update(ctx context.Context, actor domain.Actor, id string, draft ReportDraft) (*domain.Report, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
