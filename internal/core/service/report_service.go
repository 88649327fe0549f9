package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/carlosmateus/maintenance-system/internal/core/domain"
	"github.com/carlosmateus/maintenance-system/internal/core/ports"
)

// ReportService gates every report operation through the access evaluator
// before touching the repository.
type ReportService struct {
	repo ports.ReportRepository
	log  zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, log zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, log: log}
}

// List returns the reports visible to the actor, optionally narrowed by a
// case-insensitive substring search over title, technician name and code.
func (s *ReportService) List(ctx context.Context, actor domain.Actor, search string) ([]*domain.Report, error) {
	if !domain.KnownRole(actor.Role) {
		return nil, domain.ErrForbidden
	}

	filter := ports.ListReportsFilter{}
	if actor.Role == domain.RoleTechnician {
		filter.TechnicianName = actor.Name
	}

	reports, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	// The repository already scoped by ownership; re-filtering keeps the
	// decision total even if a repository implementation ignores the filter.
	reports = domain.FilterReports(actor, reports)

	if search == "" {
		return reports, nil
	}

	term := strings.ToLower(search)
	matched := make([]*domain.Report, 0, len(reports))
	for _, r := range reports {
		if strings.Contains(strings.ToLower(r.Title), term) ||
			strings.Contains(strings.ToLower(r.TechnicianName), term) ||
			strings.Contains(strings.ToLower(r.Code), term) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// Create validates the draft, applies the self-assignment rule for
// technicians and persists the report under a freshly allocated code.
func (s *ReportService) Create(ctx context.Context, actor domain.Actor, draft ports.ReportDraft) (*domain.Report, error) {
	if !domain.CanCreateReport(actor) {
		return nil, domain.ErrForbidden
	}
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	seq, err := s.repo.NextCodeSeq(ctx)
	if err != nil {
		return nil, fmt.Errorf("create report: allocate code: %w", err)
	}

	now := time.Now().UTC()
	report := &domain.Report{
		Code:           domain.FormatReportCode(seq),
		Title:          draft.Title,
		Description:    draft.Description,
		TechnicianName: domain.AssignedTechnician(actor, draft.TechnicianName),
		Date:           draft.Date,
		Status:         domain.ReportStatus(draft.Status),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, report)
	if err != nil {
		s.log.Error().Err(err).Str("code", report.Code).Msg("failed to create report")
		return nil, fmt.Errorf("create report: %w", err)
	}

	s.log.Info().Str("code", created.Code).Str("technician", created.TechnicianName).Msg("report created")
	return created, nil
}

// Update replaces the editable fields of an existing report. Identity fields
// (id, code) never change. A technician may only touch their own reports.
func (s *ReportService) Update(ctx context.Context, actor domain.Actor, id string, draft ports.ReportDraft) (*domain.Report, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanEditReport(actor, existing) {
		return nil, domain.ErrForbidden
	}
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	existing.Title = draft.Title
	existing.Description = draft.Description
	existing.TechnicianName = domain.AssignedTechnician(actor, draft.TechnicianName)
	existing.Date = draft.Date
	existing.Status = domain.ReportStatus(draft.Status)
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update report: %w", err)
	}

	s.log.Info().Str("code", updated.Code).Str("actor", actor.Name).Msg("report updated")
	return updated, nil
}

// Delete removes a report; admin only. A missing id fails with
// domain.ErrReportNotFound rather than succeeding silently.
func (s *ReportService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !domain.CanDeleteReport(actor) {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("report_id", id).Str("actor", actor.Name).Msg("report deleted")
	return nil
}

// validateDraft checks the required fields and the status enum.
func validateDraft(draft ports.ReportDraft) error {
	if draft.Title == "" || draft.Description == "" || draft.TechnicianName == "" ||
		draft.Date == "" || draft.Status == "" {
		return domain.ErrValidation
	}
	if !domain.KnownStatus(domain.ReportStatus(draft.Status)) {
		return domain.ErrValidation
	}
	return nil
}
