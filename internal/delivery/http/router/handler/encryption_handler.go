package handler

import (
	"log/slog"
	"net/http"

	"fitznet/internal/delivery/http/response"
	"fitznet/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EncryptionHandler exposes the symmetric encrypt/decrypt utility endpoints.
type EncryptionHandler struct {
	cipher service.TextCipher
	logger *slog.Logger
}

// NewEncryptionHandler is the constructor for EncryptionHandler, injected by Fx.
func NewEncryptionHandler(cipher service.TextCipher, logger *slog.Logger) *EncryptionHandler {
	return &EncryptionHandler{
		cipher: cipher,
		logger: logger,
	}
}

type encryptionRequest struct {
	Data string `json:"data"`
}

type encryptionResponse struct {
	Data string `json:"data"`
}

// Encrypt handles the encryption request.
func (h *EncryptionHandler) Encrypt(c echo.Context) error {
	var req encryptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid encryption input")
	}

	encrypted, err := h.cipher.Encrypt(req.Data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, encryptionResponse{Data: encrypted}, "")
}

// Decrypt handles the decryption request. Malformed input maps to a 400.
func (h *EncryptionHandler) Decrypt(c echo.Context) error {
	var req encryptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decryption input")
	}

	decrypted, err := h.cipher.Decrypt(req.Data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, encryptionResponse{Data: decrypted}, "")
}
