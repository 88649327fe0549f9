package ports

import (
	"context"

	"github.com/carlosmateus/maintenance-system/internal/core/domain"
)

// ContactDraft is a single phone entry supplied at provisioning time.
type ContactDraft struct {
	Phone string
	Label string
}

// ProvisionRecord is the fully validated unit of work handed to the store:
// the new account, its contacts, the specialization to upsert and the role
// the account binds to. The repository must apply it atomically.
type ProvisionRecord struct {
	User           *domain.User
	RoleID         string
	Specialization string
	Contacts       []ContactDraft
}

// TechnicianRepository persists the technician roster. Provision executes
// the four writes (user, contacts, specialization upsert, roster link) as a
// single transaction: a failure anywhere rolls everything back so no
// login-capable account is left without a roster entry.
type TechnicianRepository interface {
	Provision(ctx context.Context, rec ProvisionRecord) (*domain.TechnicianRecord, error)
	ListRoster(ctx context.Context) ([]*domain.TechnicianRecord, error)
}
