package http

import (
	"errors"
	"net/http"

	"github.com/acadcopilot/copilot/internal/auth/service"
	"github.com/acadcopilot/copilot/pkg/authsdk"
	"github.com/acadcopilot/copilot/pkg/httpx"
	"github.com/acadcopilot/copilot/pkg/slogx"
)

type LoginHandler struct {
	LoginService *service.LoginService
	Cookies      CookieConfig
}

// ServeHTTP godoc
//
//	@Summary		Log In
//	@Description	Authenticate with email and password and open a new session.
//	@Description	Unknown emails and wrong passwords return the same 401 response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LoginRequest	true	"email, password"
//	@Success		200		{object}	authsdk.AuthResponse	"success, user (sets the session_id cookie)"
//	@Failure		400		{object}	authsdk.ErrorResponse	"missing email or password"
//	@Failure		401		{object}	authsdk.ErrorResponse	"invalid credentials"
//	@Failure		429		{object}	authsdk.ErrorResponse	"rate limited"
//	@Failure		500		{object}	authsdk.ErrorResponse	"internal error"
//	@Router			/api/auth/login [post]
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgLoginMissing)
		return
	}

	grant, err := h.LoginService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteError(w, http.StatusBadRequest, msgLoginMissing)
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, msgBadCredentials)
		default:
			log.Error("login failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, msgLoginFailed)
		}
		return
	}

	h.Cookies.set(w, grant.Token)
	httpx.WriteJSON(w, http.StatusOK, authsdk.AuthResponse{
		Success: true,
		User:    toSDKUser(grant.User),
	})
}
