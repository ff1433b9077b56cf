package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"constructhub/internal/adapter/http/dto/request"
	"constructhub/internal/adapter/http/dto/response"
	"constructhub/internal/domain/entities"
	"constructhub/internal/usecase"
	"constructhub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for estimates: creation, reads, the
// allow-listed status transitions, and the conversion to a project.
type EstimateHandler struct {
	usecase    usecase.IEstimateUseCase
	conversion usecase.IConversionUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, conv usecase.IConversionUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc, conversion: conv}
}

// CreateEstimate opens a new estimate in draft.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	if !payload.HasCustomer() {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "A customer reference is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	estimate, err := h.usecase.CreateEstimate(c.Request.Context(), usecase.NewEstimateInput{
		CustomerID:         payload.CustomerID,
		CustomerName:       payload.CustomerName,
		ProjectName:        payload.ProjectName,
		JobDescription:     payload.JobDescription,
		Description:        payload.Description,
		EstimateAmount:     payload.EstimateAmount,
		ContingencyPercent: payload.ContingencyPercent,
		SiteAddress:        payload.SiteAddress,
		SiteCity:           payload.SiteCity,
		SiteState:          payload.SiteState,
		SiteZip:            payload.SiteZip,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// GetEstimate returns a single estimate by id.
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ListEstimates returns all estimates, optionally filtered by ?status=.
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	estimates, err := h.usecase.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

// GetTransitions returns the reduced set of statuses the estimate may be
// moved to from its current status. The UI builds its status picker from
// this, never from the full vocabulary.
func (h *EstimateHandler) GetTransitions(c *gin.Context) {
	next, err := h.usecase.AllowedNextStatuses(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNextStatuses(next))
}

// UpdateStatus drives one transition of the status graph.
func (h *EstimateHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.UpdateStatus(c.Request.Context(), id, payload.ResolveStatus())
	if err != nil {
		log.Printf("[estimate][handler] status update failed id=%s target=%s err=%v", id, payload.ResolveStatus(), err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ConvertEstimate runs the estimate-to-project conversion procedure and
// returns the new project id.
func (h *EstimateHandler) ConvertEstimate(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[convert][handler] start estimate_id=%s", id)

	project, err := h.conversion.ConvertEstimateToProject(c.Request.Context(), id)
	if err != nil {
		log.Printf("[convert][handler] failed estimate_id=%s err=%v", id, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[convert][handler] success estimate_id=%s project_id=%s", id, project.ID)

	c.JSON(http.StatusCreated, response.FromConversion(project))
}

func mapEstimateError(err error) *pkg.AppError {
	var (
		ite *entities.InvalidTransitionError
		ace *usecase.AlreadyConvertedError
		nce *usecase.NotConvertibleError
	)
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidEstimateVal),
		errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDirectConversion):
		return pkg.NewDomainErrorSimple("CONVERSION_REQUIRED", "Status converted requires the convert endpoint", http.StatusConflict)
	case errors.As(err, &ite):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", ite.Error(), http.StatusConflict)
	case errors.As(err, &ace):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_CONVERTED",
			fmt.Sprintf("Estimate already converted to project %s", ace.ProjectID), http.StatusConflict)
	case errors.As(err, &nce):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_CONVERTIBLE",
			fmt.Sprintf("Estimate must be in draft, pending, sent, or approved status to convert (current: %s)", nce.Status), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
