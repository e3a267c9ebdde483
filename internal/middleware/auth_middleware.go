package middleware

import (
	"context"
	"net/http"

	"github.com/joanna-bieganowska/Profilaktykarz/internal/models"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/repositories"
	"github.com/joanna-bieganowska/Profilaktykarz/internal/utils"
)

type contextKey string

const (
	ContextKeyUser  = contextKey("currentUser")
	ContextKeyToken = contextKey("authToken")
)

// AuthMiddleware guards protected endpoints. The checks run in strict order
// and short-circuit on the first failure; every rejection is a 400 with the
// {success:false, msg} envelope, since all of these are expected client-auth
// failures rather than server faults:
//
//  1. raw Authorization header present (no "Bearer " prefix expected)
//  2. token decodes and verifies (all decode failures, expiry included,
//     collapse into "Token is invalid")
//  3. the embedded email resolves to a known user
//  4. the exact token string has not been revoked
//  5. the user still has an active session
//
// On success the resolved user and the presented token are placed in the
// request context for the wrapped handler.
func AuthMiddleware(
	secret []byte,
	userRepo repositories.UserRepository,
	blocklistRepo repositories.TokenBlocklistRepository,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := r.Header.Get("Authorization")
			if tokenStr == "" {
				utils.RespondError(w, http.StatusBadRequest, "Valid JWT token is missing")
				return
			}

			claims, err := ValidateToken(tokenStr, secret)
			if err != nil {
				utils.RespondError(w, http.StatusBadRequest, "Token is invalid", err)
				return
			}

			currentUser, err := userRepo.GetByEmail(r.Context(), claims.Email)
			if err != nil {
				utils.RespondError(w, http.StatusInternalServerError, "Authorization check failed", err)
				return
			}
			if currentUser == nil {
				utils.RespondError(w, http.StatusBadRequest,
					"Sorry. Wrong auth token. This user does not exist.")
				return
			}

			revoked, err := blocklistRepo.IsBlocklisted(r.Context(), tokenStr)
			if err != nil {
				utils.RespondError(w, http.StatusInternalServerError, "Authorization check failed", err)
				return
			}
			if revoked {
				utils.RespondError(w, http.StatusBadRequest, "Token revoked.")
				return
			}

			// "Token expired." here means "no active session", which is
			// distinct from the token's own expiry handled above.
			if !currentUser.JWTAuthActive {
				utils.RespondError(w, http.StatusBadRequest, "Token expired.")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, currentUser)
			ctx = context.WithValue(ctx, ContextKeyToken, tokenStr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the identity the auth gate resolved for this request.
func CurrentUser(r *http.Request) (*models.User, bool) {
	u, ok := r.Context().Value(ContextKeyUser).(*models.User)
	return u, ok
}

// PresentedToken returns the raw token string the request authenticated with.
func PresentedToken(r *http.Request) string {
	t, _ := r.Context().Value(ContextKeyToken).(string)
	return t
}
