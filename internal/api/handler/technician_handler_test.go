package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/carlosmateus/maintenance-system/internal/core/domain"
	"github.com/carlosmateus/maintenance-system/internal/core/ports"
)

type stubTechnicianService struct {
	roster    []*domain.TechnicianRecord
	lastInput ports.ProvisionInput
	err       error
}

func (s *stubTechnicianService) Provision(_ context.Context, input ports.ProvisionInput) (*domain.TechnicianRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastInput = input
	role := input.Role
	if role == "" {
		role = domain.RoleTechnician
	}
	return &domain.TechnicianRecord{
		ID:             "rec-1",
		User:           domain.PublicUser{ID: "u2", Name: input.Name, Email: input.Email, Role: role},
		Specialization: input.Specialization,
	}, nil
}

func (s *stubTechnicianService) Roster(_ context.Context, actor domain.Actor) ([]*domain.TechnicianRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.roster, nil
}

func TestTechnicianHandler_List(t *testing.T) {
	svc := &stubTechnicianService{roster: []*domain.TechnicianRecord{
		{User: domain.PublicUser{ID: "u2", Name: "Ana", Role: domain.RoleTechnician}},
	}}
	h := NewTechnicianHandler(svc)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/technicians", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setActor(c, domain.Actor{ID: "a1", Name: "Root", Role: domain.RoleAdmin})

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []domain.TechnicianRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(got) != 1 || got[0].User.Name != "Ana" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestTechnicianHandler_List_EmptyIsArray(t *testing.T) {
	h := NewTechnicianHandler(&stubTechnicianService{})

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/technicians", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setActor(c, domain.Actor{ID: "a1", Name: "Root", Role: domain.RoleAdmin})

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty JSON array, got %s", body)
	}
}

func TestTechnicianHandler_Create(t *testing.T) {
	svc := &stubTechnicianService{}
	h := NewTechnicianHandler(svc)

	body := `{"name":"Pedro","email":"pedro@example.com","password":"secret-pass","specialization":"Plumbing","phone":"555-0101"}`
	c, rec := postJSON(newEcho(), "/technicians", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if len(svc.lastInput.Contacts) != 1 || svc.lastInput.Contacts[0].Label != "primary" {
		t.Fatalf("expected the phone shorthand as a primary contact, got %+v", svc.lastInput.Contacts)
	}

	var got domain.TechnicianRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if got.User.Email != "pedro@example.com" || got.User.Role != domain.RoleTechnician {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestTechnicianHandler_Create_ShortPassword(t *testing.T) {
	h := NewTechnicianHandler(&stubTechnicianService{})

	body := `{"name":"Pedro","email":"pedro@example.com","password":"short","specialization":"Plumbing"}`
	c, rec := postJSON(newEcho(), "/technicians", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTechnicianHandler_Create_DuplicateEmail(t *testing.T) {
	h := NewTechnicianHandler(&stubTechnicianService{err: domain.ErrUserExists})

	body := `{"name":"Pedro","email":"pedro@example.com","password":"secret-pass","specialization":"Plumbing"}`
	c, _ := postJSON(newEcho(), "/technicians", body)

	err := h.Create(c)
	if err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}
