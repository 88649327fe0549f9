package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/carlosmateus/maintenance-system/internal/core/domain"
	"github.com/carlosmateus/maintenance-system/internal/core/ports"
)

// TechnicianService onboards technicians: account, contacts, specialization
// and roster link in one transactional unit.
type TechnicianService struct {
	users ports.UserRepository
	roles ports.RoleRepository
	techs ports.TechnicianRepository
	log   zerolog.Logger
}

func NewTechnicianService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	techs ports.TechnicianRepository,
	log zerolog.Logger,
) *TechnicianService {
	return &TechnicianService{users: users, roles: roles, techs: techs, log: log}
}

// Provision creates a login-capable technician account together with its
// roster entry. Repeated calls with the same specialization name reuse the
// existing specialization record.
func (s *TechnicianService) Provision(ctx context.Context, input ports.ProvisionInput) (*domain.TechnicianRecord, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.Specialization == "" {
		return nil, domain.ErrValidation
	}

	roleName := input.Role
	if roleName == "" {
		roleName = domain.RoleTechnician
	}
	if !domain.KnownRole(roleName) {
		return nil, domain.ErrValidation
	}

	// 1. Reject duplicate accounts up front; the unique email index backs
	// this check up under concurrent provisioning.
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	}

	// 2. Resolve the role record. Roles are seeded at deployment; a missing
	// one is a configuration fault, not a user error.
	role, err := s.roles.FindByName(ctx, roleName)
	if err != nil {
		return nil, domain.ErrRoleNotConfigured
	}

	// 3. Hash the password before anything is written.
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("provision technician: %w", err)
	}

	now := time.Now().UTC()
	rec := ports.ProvisionRecord{
		User: &domain.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: string(hash),
			Role:         roleName,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		RoleID:         role.ID,
		Specialization: input.Specialization,
		Contacts:       input.Contacts,
	}

	// 4. All four writes happen inside one store transaction; a failure in
	// any step leaves no orphaned login-capable account behind.
	created, err := s.techs.Provision(ctx, rec)
	if err != nil {
		s.log.Error().Err(err).Str("email", input.Email).Msg("technician provisioning failed")
		return nil, err
	}

	s.log.Info().
		Str("technician_id", created.ID).
		Str("specialization", created.Specialization).
		Msg("technician provisioned")

	return created, nil
}

// Roster lists all technician records. Admin-only.
func (s *TechnicianService) Roster(ctx context.Context, actor domain.Actor) ([]*domain.TechnicianRecord, error) {
	if !domain.CanViewRoster(actor) {
		return nil, domain.ErrForbidden
	}
	roster, err := s.techs.ListRoster(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	return roster, nil
}
