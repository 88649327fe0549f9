package ports

import (
	"context"

	"github.com/carlosmateus/maintenance-system/internal/core/domain"
)

// ListReportsFilter carries the query parameters for listing reports.
// TechnicianName is set by the service layer when the actor is a technician;
// empty means no ownership scoping (admin).
type ListReportsFilter struct {
	TechnicianName string
}

// ReportRepository defines persistence operations for maintenance reports.
type ReportRepository interface {
	Create(ctx context.Context, r *domain.Report) (*domain.Report, error)
	FindByID(ctx context.Context, id string) (*domain.Report, error)
	// List returns reports matching filter in stable insertion order.
	List(ctx context.Context, filter ListReportsFilter) ([]*domain.Report, error)
	Update(ctx context.Context, r *domain.Report) (*domain.Report, error)
	// Delete removes the report, failing with domain.ErrReportNotFound when
	// no record carries the id.
	Delete(ctx context.Context, id string) error
	// NextCodeSeq atomically allocates the next display-code sequence number.
	NextCodeSeq(ctx context.Context) (int64, error)
}
