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

var errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Please fill in all fields.", http.StatusBadRequest)

// AuthHandler handles the session endpoints.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var payload request.SignUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	err := h.usecase.SignUp(c.Request.Context(), payload.CompanyName, payload.Email, payload.Password, payload.ConfirmPassword)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// The account exists but cannot log in meaningfully until the
	// e-mail confirmation step completes.
	c.JSON(http.StatusAccepted, gin.H{
		"email":  payload.Email,
		"status": "confirmation_pending",
	})
}

func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	var payload request.ConfirmEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ConfirmEmail(c.Request.Context(), payload.Email, payload.Code); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":  payload.Email,
		"status": "confirmed",
	})
}

// Me returns the session hydrated by RequireAuth.
func (h *AuthHandler) Me(c *gin.Context) {
	session, ok := SessionFromContext(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session).User)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCredentials), errors.Is(err, usecase.ErrMissingSignUpFields):
		return pkg.NewDomainErrorSimple("MISSING_FIELDS", "Please fill in all fields.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSignUpEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Please enter a valid email.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPasswordMismatch):
		return pkg.NewDomainErrorSimple("PASSWORD_MISMATCH", "Passwords do not match.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPasswordTooShort):
		return pkg.NewDomainErrorSimple("PASSWORD_TOO_SHORT", "Password must be at least 6 characters long.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidConfirmationCode):
		return pkg.NewDomainErrorSimple("INVALID_CODE", "Please enter the 5-character verification code.", http.StatusBadRequest)
	default:
		log.Printf("[auth][handler] operation failed: %v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
