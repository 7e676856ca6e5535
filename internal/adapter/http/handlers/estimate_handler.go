package handlers

import (
	"errors"
	"log"
	"net/http"

	request "oneflow/internal/adapter/http/dto/request"
	response "oneflow/internal/adapter/http/dto/response"
	"oneflow/internal/usecase"
	"oneflow/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler handles HTTP requests for estimate documents.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	estimates, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToDraft())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	estimate, err := h.usecase.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// mapEstimateError keeps the console's inline validation messages; any
// unexpected failure is logged and collapsed to the generic retry
// prompt.
func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEstimateDateRequired):
		return pkg.NewDomainErrorSimple("ESTIMATE_DATE_REQUIRED", "Date is required.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateDate):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE_DATE", "Date must use the YYYY-MM-DD format.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateCustomerRequired):
		return pkg.NewDomainErrorSimple("ESTIMATE_CUSTOMER_REQUIRED", "Customer is required.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateItemsRequired):
		return pkg.NewDomainErrorSimple("ESTIMATE_ITEMS_REQUIRED", "Add at least one item to the estimate.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLineItemType):
		return pkg.NewDomainErrorSimple("INVALID_LINE_ITEM_TYPE", "Line items must reference a service or a product.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("UNKNOWN_CUSTOMER", "Selected customer no longer exists.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		log.Printf("[estimate][handler] operation failed: %v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "Error saving estimate. Please try again.", err, http.StatusInternalServerError)
	}
}
