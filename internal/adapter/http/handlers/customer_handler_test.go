package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"oneflow/internal/adapter/http/handlers/mocks"
	"oneflow/internal/domain/entities"
	"oneflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func customerRouter(h *CustomerHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/customers", h.ListCustomers)
	r.POST("/v1/customers", h.CreateCustomer)
	r.GET("/v1/customers/:id", h.GetCustomer)
	r.PUT("/v1/customers/:id", h.UpdateCustomer)
	r.DELETE("/v1/customers/:id", h.DeleteCustomer)
	return r
}

func TestCustomerHandler_CreateCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := customerRouter(NewCustomerHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := customerRouter(NewCustomerHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"email":"owner@acme.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid email is mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := customerRouter(NewCustomerHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, usecase.ErrInvalidCustomerEmail)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"name":"Acme","email":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Please enter a valid email." {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := customerRouter(NewCustomerHandler(uc))

		uc.EXPECT().Create(gomock.Any(), usecase.CustomerInput{Name: "Acme", Email: "owner@acme.com"}).
			Return(entities.Customer{ID: "cust-1", Name: "Acme", Email: "owner@acme.com"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"name":"Acme","email":"owner@acme.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "cust-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCustomerHandler_UpdateCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("absent fields stay out of the patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := customerRouter(NewCustomerHandler(uc))

		uc.EXPECT().Update(gomock.Any(), "cust-1", gomock.AssignableToTypeOf(usecase.CustomerPatch{})).DoAndReturn(
			func(_ context.Context, _ string, patch usecase.CustomerPatch) (entities.Customer, error) {
				if patch.Phone == nil || *patch.Phone != "777" {
					t.Fatalf("expected phone patch, got %+v", patch)
				}
				if patch.Name != nil || patch.Email != nil {
					t.Fatalf("unexpected fields in patch: %+v", patch)
				}
				return entities.Customer{ID: "cust-1", Name: "Acme", Phone: "777"}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/v1/customers/cust-1", bytes.NewBufferString(`{"phone":"777"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := customerRouter(NewCustomerHandler(uc))

		uc.EXPECT().Update(gomock.Any(), "ghost", gomock.Any()).Return(entities.Customer{}, usecase.ErrCustomerNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/customers/ghost", bytes.NewBufferString(`{"phone":"777"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_DeleteCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := customerRouter(NewCustomerHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), "cust-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/customers/cust-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("failure collapses to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := customerRouter(NewCustomerHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), "cust-1").Return(errors.New("db"))

		req := httptest.NewRequest(http.MethodDelete, "/v1/customers/cust-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMapCustomerError(t *testing.T) {
	if got := mapCustomerError(usecase.ErrCustomerNameRequired); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCustomerError(usecase.ErrInvalidCustomerEmail); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCustomerError(usecase.ErrCustomerNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCustomerError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
