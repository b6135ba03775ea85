package http

import (
	"net/http"

	"github.com/acadcopilot/copilot/internal/auth/domain"
	"github.com/acadcopilot/copilot/pkg/authsdk"
	"github.com/acadcopilot/copilot/pkg/httpx"
)

// MeHandler godoc
//
//	@Summary		Current User
//	@Description	Return the user behind the session cookie.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	authsdk.MeResponse		"user"
//	@Failure		401	{object}	authsdk.ErrorResponse	"not authenticated"
//	@Failure		429	{object}	authsdk.ErrorResponse	"rate limited"
//	@Router			/api/auth/me [get]
func MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			httpx.WriteError(w, http.StatusUnauthorized, msgUnauthenticated)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, authsdk.MeResponse{User: toSDKUser(user)})
	}
}

func toSDKUser(u domain.PublicUser) authsdk.User {
	return authsdk.User{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        string(u.Role),
		Institution: u.Institution,
	}
}
