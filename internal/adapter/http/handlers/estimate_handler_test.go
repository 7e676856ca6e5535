package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oneflow/internal/adapter/http/handlers/mocks"
	"oneflow/internal/domain/entities"
	"oneflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func estimateRouter(h *EstimateHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/estimates", h.ListEstimates)
	r.POST("/v1/estimates", h.CreateEstimate)
	r.GET("/v1/estimates/:id", h.GetEstimate)
	r.PUT("/v1/estimates/:id", h.UpdateEstimate)
	r.DELETE("/v1/estimates/:id", h.DeleteEstimate)
	r.PATCH("/v1/estimates/:id/approve", h.ApproveEstimate)
	return r
}

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error is mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, usecase.ErrEstimateItemsRequired)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"date":"2026-08-30","customerId":"cust-1","items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Add at least one item to the estimate." {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success returns document with total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.EstimateDraft{})).DoAndReturn(
			func(_ context.Context, draft usecase.EstimateDraft) (entities.Estimate, error) {
				if draft.CustomerID != "cust-1" || len(draft.Items) != 1 {
					t.Fatalf("unexpected draft: %+v", draft)
				}
				return entities.Estimate{
					ID:           "est-1",
					Date:         draft.Date,
					CustomerID:   draft.CustomerID,
					CustomerName: "Acme",
					Status:       entities.EstimateStatusPending,
					Items: []entities.LineItem{
						{Type: entities.LineItemTypeService, Name: "Install", Quantity: 2, UnitPrice: 100},
					},
					CreatedAt: now,
					UpdatedAt: now,
				}, nil
			},
		)

		payload := `{"date":"2026-08-30","customerId":"cust-1","items":[{"type":"service","refId":"svc-1","quantity":2,"unitPrice":100}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "est-1" || body["status"] != "Pending" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["total"] != 200.0 {
			t.Fatalf("expected derived total 200, got %v", body["total"])
		}
	})
}

func TestEstimateHandler_GetAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().List(gomock.Any()).Return([]entities.Estimate{{ID: "est-1"}, {ID: "est-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 estimates, got %s", w.Body.String())
		}
	})

	t.Run("list failure collapses to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_Approve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().Approve(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "Approved" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().Approve(gomock.Any(), "ghost").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/ghost/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	r := estimateRouter(NewEstimateHandler(uc))

	uc.EXPECT().Delete(gomock.Any(), "est-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/est-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestMapEstimateError(t *testing.T) {
	if got := mapEstimateError(usecase.ErrEstimateDateRequired); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrInvalidEstimateDate); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrEstimateCustomerRequired); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrEstimateItemsRequired); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrInvalidLineItemType); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrCustomerNotFound); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrEstimateNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapEstimateError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
