package http

import (
	"errors"
	"net/http"

	"github.com/acadcopilot/copilot/internal/auth/service"
	"github.com/acadcopilot/copilot/pkg/authsdk"
	"github.com/acadcopilot/copilot/pkg/httpx"
	"github.com/acadcopilot/copilot/pkg/slogx"
)

type SendCodeHandler struct {
	VerificationService *service.VerificationService
}

// ServeHTTP godoc
//
//	@Summary		Send Verification Code
//	@Description	Email a fresh 6-digit code to the address, replacing any earlier code.
//	@Description	The response does not reveal whether the address is already registered.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.SendCodeRequest	true	"email"
//	@Success		200		{object}	authsdk.SuccessResponse	"success"
//	@Failure		400		{object}	authsdk.ErrorResponse	"missing or invalid email"
//	@Failure		429		{object}	authsdk.ErrorResponse	"resend cooldown or rate limited"
//	@Failure		500		{object}	authsdk.ErrorResponse	"delivery failed"
//	@Router			/api/auth/send-code [post]
func (h *SendCodeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.SendCodeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgEmailRequired)
		return
	}

	if err := h.VerificationService.Send(ctx, req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteError(w, http.StatusBadRequest, invalidInputMessage(err, msgEmailRequired))
		case errors.Is(err, service.ErrCodeCooldown):
			httpx.WriteError(w, http.StatusTooManyRequests, msgCodeCooldown)
		default:
			log.Error("failed to send verification code", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, msgSendCodeFailed)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.SuccessResponse{Success: true})
}
