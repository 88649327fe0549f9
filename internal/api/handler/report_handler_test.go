package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/carlosmateus/maintenance-system/internal/core/domain"
	"github.com/carlosmateus/maintenance-system/internal/core/ports"
)

type stubReportService struct {
	reports   []*domain.Report
	lastActor domain.Actor
	lastDraft ports.ReportDraft
	err       error
}

func (s *stubReportService) List(_ context.Context, actor domain.Actor, search string) ([]*domain.Report, error) {
	s.lastActor = actor
	return s.reports, s.err
}

func (s *stubReportService) Create(_ context.Context, actor domain.Actor, draft ports.ReportDraft) (*domain.Report, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastActor = actor
	s.lastDraft = draft
	return &domain.Report{
		ID:             "id-1",
		Code:           "RPT-001",
		Title:          draft.Title,
		Description:    draft.Description,
		TechnicianName: domain.AssignedTechnician(actor, draft.TechnicianName),
		Date:           draft.Date,
		Status:         domain.ReportStatus(draft.Status),
	}, nil
}

func (s *stubReportService) Update(_ context.Context, actor domain.Actor, id string, draft ports.ReportDraft) (*domain.Report, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Report{ID: id, Code: "RPT-001", Title: draft.Title}, nil
}

func (s *stubReportService) Delete(_ context.Context, actor domain.Actor, id string) error {
	return s.err
}

func setActor(c echo.Context, actor domain.Actor) {
	c.Set("actor", actor)
	c.Set("role", actor.Role)
}

func TestReportHandler_List(t *testing.T) {
	svc := &stubReportService{reports: []*domain.Report{
		{ID: "id-1", Code: "RPT-001", Title: "Elevator inspection", TechnicianName: "Ana"},
	}}
	h := NewReportHandler(svc)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/reports?q=elev", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setActor(c, domain.Actor{ID: "t1", Name: "Ana", Role: domain.RoleTechnician})

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []domain.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(got) != 1 || got[0].Code != "RPT-001" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestReportHandler_List_EmptyIsArray(t *testing.T) {
	h := NewReportHandler(&stubReportService{})

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
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

func TestReportHandler_List_NoActor(t *testing.T) {
	h := NewReportHandler(&stubReportService{})

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestReportHandler_Create(t *testing.T) {
	svc := &stubReportService{}
	h := NewReportHandler(svc)

	body := `{"title":"Pipe repair","description":"Leak under sink","technician_name":"Pedro","date":"2025-11-05","status":"pending"}`
	c, rec := postJSON(newEcho(), "/reports", body)
	setActor(c, domain.Actor{ID: "t1", Name: "Ana", Role: domain.RoleTechnician})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Message string        `json:"message"`
		Data    domain.Report `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if resp.Message == "" || resp.Data.Code != "RPT-001" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	// Self-assignment applied: the body said Pedro, the actor is Ana.
	if resp.Data.TechnicianName != "Ana" {
		t.Fatalf("expected Ana, got %q", resp.Data.TechnicianName)
	}
}

func TestReportHandler_Create_MissingFields(t *testing.T) {
	h := NewReportHandler(&stubReportService{})

	c, rec := postJSON(newEcho(), "/reports", `{"title":"Pipe repair"}`)
	setActor(c, domain.Actor{ID: "a1", Name: "Root", Role: domain.RoleAdmin})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestReportHandler_Create_BadStatus(t *testing.T) {
	h := NewReportHandler(&stubReportService{})

	body := `{"title":"t","description":"d","technician_name":"Ana","date":"2025-11-05","status":"archived"}`
	c, rec := postJSON(newEcho(), "/reports", body)
	setActor(c, domain.Actor{ID: "a1", Name: "Root", Role: domain.RoleAdmin})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestReportHandler_Delete_Forbidden(t *testing.T) {
	h := NewReportHandler(&stubReportService{err: domain.ErrForbidden})

	e := newEcho()
	req := httptest.NewRequest(http.MethodDelete, "/reports/id-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("id-1")
	setActor(c, domain.Actor{ID: "t1", Name: "Ana", Role: domain.RoleTechnician})

	err := h.Delete(c)
	if err == nil {
		t.Fatalf("expected error to propagate to the error handler")
	}
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
