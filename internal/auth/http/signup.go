package http

import (
	"errors"
	"net/http"

	"github.com/acadcopilot/copilot/internal/auth/service"
	"github.com/acadcopilot/copilot/pkg/authsdk"
	"github.com/acadcopilot/copilot/pkg/httpx"
	"github.com/acadcopilot/copilot/pkg/slogx"
)

type SignupHandler struct {
	SignupService *service.SignupService
	Cookies       CookieConfig
}

// ServeHTTP godoc
//
//	@Summary		Sign Up
//	@Description	Create an account and open a session. When email verification is enabled the address must have been verified through send-code and verify-code first.
//	@Description	Validation runs in a fixed order: required fields, password length, email shape.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.SignupRequest	true	"email, password, name, role, institution"
//	@Success		200		{object}	authsdk.AuthResponse	"success, user (sets the session_id cookie)"
//	@Failure		400		{object}	authsdk.ErrorResponse	"invalid input or email not verified"
//	@Failure		409		{object}	authsdk.ErrorResponse	"email already registered"
//	@Failure		429		{object}	authsdk.ErrorResponse	"rate limited"
//	@Failure		500		{object}	authsdk.ErrorResponse	"internal error"
//	@Router			/api/auth/signup [post]
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.SignupRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	grant, err := h.SignupService.Signup(ctx, service.SignupInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Role:        req.Role,
		Institution: req.Institution,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteError(w, http.StatusBadRequest, invalidInputMessage(err, msgMissingFields))
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteError(w, http.StatusConflict, msgEmailTaken)
		case errors.Is(err, service.ErrEmailNotVerified):
			httpx.WriteError(w, http.StatusBadRequest, msgEmailNotVerified)
		default:
			log.Error("signup failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, msgSignupFailed)
		}
		return
	}

	h.Cookies.set(w, grant.Token)
	httpx.WriteJSON(w, http.StatusOK, authsdk.AuthResponse{
		Success: true,
		User:    toSDKUser(grant.User),
	})
}
