package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carlosmateus/maintenance-system/internal/api/metrics"
	"github.com/carlosmateus/maintenance-system/internal/core/domain"
	"github.com/carlosmateus/maintenance-system/internal/core/ports"
)

// ReportHandler handles HTTP requests for report operations.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type reportMutationResponse struct {
	Message string         `json:"message"`
	Data    *domain.Report `json:"data"`
}

// List handles GET /reports?q=<term>.
//
// @Summary      List reports visible to the actor
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        q  query     string  false  "Case-insensitive substring match on title, technician and code"
// @Success      200  {array}   domain.Report
// @Failure      401  {object}  map[string]string
// @Router       /reports [get]
func (h *ReportHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	reports, err := h.service.List(c.Request().Context(), actor, c.QueryParam("q"))
	if err != nil {
		return err
	}
	if reports == nil {
		reports = []*domain.Report{}
	}
	return c.JSON(http.StatusOK, reports)
}

// Create handles POST /reports.
//
// @Summary      Create a report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reportRequest  true  "Report fields"
// @Success      201   {object}  reportMutationResponse
// @Failure      400   {object}  map[string]string
// @Router       /reports [post]
func (h *ReportHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req reportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	report, err := h.service.Create(c.Request().Context(), actor, draftFromRequest(req))
	if err != nil {
		return err
	}

	metrics.ReportsCreatedTotal.WithLabelValues(actor.Role).Inc()
	return c.JSON(http.StatusCreated, reportMutationResponse{
		Message: "report created",
		Data:    report,
	})
}

// Update handles PUT /reports/:id.
//
// @Summary      Update a report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Report id"
// @Param        body  body      reportRequest  true  "Replacement fields"
// @Success      200   {object}  reportMutationResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /reports/{id} [put]
func (h *ReportHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req reportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	report, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), draftFromRequest(req))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.AccessDeniedTotal.WithLabelValues("update").Inc()
		}
		return err
	}

	return c.JSON(http.StatusOK, reportMutationResponse{
		Message: "report updated",
		Data:    report,
	})
}

// Delete handles DELETE /reports/:id.
//
// @Summary      Delete a report (admin only)
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Report id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reports/{id} [delete]
func (h *ReportHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.AccessDeniedTotal.WithLabelValues("delete").Inc()
		}
		return err
	}

	metrics.ReportsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "report deleted"})
}

func draftFromRequest(req reportRequest) ports.ReportDraft {
	return ports.ReportDraft{
		Title:          req.Title,
		Description:    req.Description,
		TechnicianName: req.TechnicianName,
		Date:           req.Date,
		Status:         req.Status,
	}
}
