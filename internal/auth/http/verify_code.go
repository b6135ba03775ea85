package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/acadcopilot/copilot/internal/auth/service"
	"github.com/acadcopilot/copilot/pkg/authsdk"
	"github.com/acadcopilot/copilot/pkg/httpx"
	"github.com/acadcopilot/copilot/pkg/slogx"
)

type VerifyCodeHandler struct {
	VerificationService *service.VerificationService
}

// ServeHTTP godoc
//
//	@Summary		Verify Code
//	@Description	Consume the code sent to the address. A code works once, expires after 10 minutes and dies after 5 wrong attempts.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.VerifyCodeRequest	true	"email, code"
//	@Success		200		{object}	authsdk.SuccessResponse		"success"
//	@Failure		400		{object}	authsdk.ErrorResponse		"missing fields or invalid, expired or used code"
//	@Failure		429		{object}	authsdk.ErrorResponse		"rate limited"
//	@Failure		500		{object}	authsdk.ErrorResponse		"internal error"
//	@Router			/api/auth/verify-code [post]
func (h *VerifyCodeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.VerifyCodeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgCodeRequired)
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		httpx.WriteError(w, http.StatusBadRequest, msgCodeRequired)
		return
	}

	if err := h.VerificationService.Verify(ctx, req.Email, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteError(w, http.StatusBadRequest, invalidInputMessage(err, msgCodeRequired))
		case errors.Is(err, service.ErrInvalidCode):
			httpx.WriteError(w, http.StatusBadRequest, msgInvalidCode)
		default:
			log.Error("failed to verify code", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, msgVerifyFailed)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.SuccessResponse{Success: true})
}
