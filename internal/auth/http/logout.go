package http

import (
	"net/http"

	"github.com/acadcopilot/copilot/internal/auth/service"
	"github.com/acadcopilot/copilot/pkg/authsdk"
	"github.com/acadcopilot/copilot/pkg/httpx"
	"github.com/acadcopilot/copilot/pkg/slogx"
)

type LogoutHandler struct {
	SessionService *service.SessionService
	Cookies        CookieConfig
}

// ServeHTTP godoc
//
//	@Summary		Log Out
//	@Description	Revoke the current session and clear the cookie. Always succeeds, with or without a session.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	authsdk.SuccessResponse	"success (clears the session_id cookie)"
//	@Failure		429	{object}	authsdk.ErrorResponse	"rate limited"
//	@Router			/api/auth/logout [post]
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.SessionService.Revoke(ctx, sessionToken(r)); err != nil {
		slogx.FromContext(ctx).Error("failed to revoke session", "err", err)
	}

	h.Cookies.clear(w)
	httpx.WriteJSON(w, http.StatusOK, authsdk.SuccessResponse{Success: true})
}
