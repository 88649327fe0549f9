package ports

import (
	"context"

	"github.com/carlosmateus/maintenance-system/internal/core/domain"
)

// ProvisionInput is the DTO for onboarding a technician.
type ProvisionInput struct {
	Name           string
	Email          string
	Password       string
	Specialization string
	Contacts       []ContactDraft
	Role           string // defaults to technician when empty
}

// TechnicianService onboards technicians and exposes the roster.
type TechnicianService interface {
	Provision(ctx context.Context, input ProvisionInput) (*domain.TechnicianRecord, error)
	// Roster lists all technician records; admin-only.
	Roster(ctx context.Context, actor domain.Actor) ([]*domain.TechnicianRecord, error)
}
