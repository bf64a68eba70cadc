// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"fitznet/internal/delivery/http/response"
	"fitznet/internal/domain/entity"
	"fitznet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Request / response DTOs ---

type createAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type readAccountRequest struct {
	Username string `json:"username" validate:"required"`
}

type deleteAccountRequest struct {
	Username string `json:"username" validate:"required"`
}

type updateAccountRequest struct {
	Username        string  `json:"username" validate:"required"`
	UpdatedUsername *string `json:"updatedUsername,omitempty"`
	UpdatedEmail    *string `json:"updatedEmail,omitempty"`
	UpdatedPassword *string `json:"updatedPassword,omitempty"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// accountResponse is the outward account representation.
// The password hash never appears in a response.
type accountResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

func toAccountResponse(account *entity.Account) accountResponse {
	return accountResponse{
		ID:       account.ID.String(),
		Username: account.Username,
		Email:    account.Email,
	}
}

// Create handles the account creation request.
func (h *AccountHandler) Create(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account creation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	account, err := h.uc.Create(c.Request().Context(), &usecase.CreateAccountInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(account), "User created successfully")
}

// Read handles the single-account lookup request.
func (h *AccountHandler) Read(c echo.Context) error {
	var req readAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid read input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	account, err := h.uc.Read(c.Request().Context(), req.Username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "")
}

// ReadAll handles the list-all request.
func (h *AccountHandler) ReadAll(c echo.Context) error {
	accounts, err := h.uc.ReadAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	list := make([]accountResponse, 0, len(accounts))
	for _, account := range accounts {
		list = append(list, toAccountResponse(account))
	}

	return response.Success(c, http.StatusOK, list, "")
}

// Delete handles the account deletion request.
func (h *AccountHandler) Delete(c echo.Context) error {
	var req deleteAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), req.Username); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// Update handles the partial account update request.
func (h *AccountHandler) Update(c echo.Context) error {
	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	account, err := h.uc.Update(c.Request().Context(), &usecase.UpdateAccountInput{
		Username:        req.Username,
		UpdatedUsername: req.UpdatedUsername,
		UpdatedEmail:    req.UpdatedEmail,
		UpdatedPassword: req.UpdatedPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "User updated successfully")
}

// Login handles the stateless credential check. No token is issued.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// Login responds with its own body shape rather than the envelope:
	// {success, message, username?, email?} is the contract consumers rely on.
	body := loginResponse{
		Success:  output.Success,
		Message:  output.Message,
		Username: output.Username,
		Email:    output.Email,
	}

	status := http.StatusOK
	if !output.Success {
		status = http.StatusUnauthorized
	}

	return c.JSON(status, body)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
