package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carlosmateus/maintenance-system/internal/api/metrics"
	"github.com/carlosmateus/maintenance-system/internal/core/domain"
	"github.com/carlosmateus/maintenance-system/internal/core/ports"
)

// TechnicianHandler handles HTTP requests for the technician roster.
type TechnicianHandler struct {
	service ports.TechnicianService
}

func NewTechnicianHandler(service ports.TechnicianService) *TechnicianHandler {
	return &TechnicianHandler{service: service}
}

// List handles GET /technicians (admin only, enforced by RBAC middleware).
//
// @Summary      List the technician roster
// @Tags         technicians
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.TechnicianRecord
// @Failure      403  {object}  map[string]string
// @Router       /technicians [get]
func (h *TechnicianHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	roster, err := h.service.Roster(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	if roster == nil {
		roster = []*domain.TechnicianRecord{}
	}
	return c.JSON(http.StatusOK, roster)
}

// Create handles POST /technicians (admin only).
//
// @Summary      Provision a technician
// @Tags         technicians
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      provisionRequest  true  "Technician details"
// @Success      201   {object}  domain.TechnicianRecord
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /technicians [post]
func (h *TechnicianHandler) Create(c echo.Context) error {
	var req provisionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	contacts := make([]ports.ContactDraft, 0, len(req.Contacts)+1)
	// A bare phone field is shorthand for a single primary contact.
	if req.Phone != "" {
		contacts = append(contacts, ports.ContactDraft{Phone: req.Phone, Label: "primary"})
	}
	for _, ct := range req.Contacts {
		contacts = append(contacts, ports.ContactDraft{Phone: ct.Phone, Label: ct.Label})
	}

	rec, err := h.service.Provision(c.Request().Context(), ports.ProvisionInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Specialization: req.Specialization,
		Contacts:       contacts,
		Role:           req.Role,
	})
	if err != nil {
		return err
	}

	metrics.TechniciansProvisionedTotal.Inc()
	return c.JSON(http.StatusCreated, rec)
}
