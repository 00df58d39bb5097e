package api

import (
	"net/http"

	"github.com/nlourenco/movie-catalog-backend/internal/auth"
	"github.com/nlourenco/movie-catalog-backend/internal/logx"
	"github.com/nlourenco/movie-catalog-backend/internal/oauth"
	"github.com/nlourenco/movie-catalog-backend/internal/services/users"
)

const stateCookieName = "oauth_state"

// GoogleLogin starts the OAuth handoff: remember a random state in a
// short-lived cookie and send the browser to the Google consent page.
func (api *API) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if !api.Google.Enabled() {
		respondWithError(w, http.StatusServiceUnavailable, "Google sign-in is not configured")
		return
	}

	state := oauth.GenerateState()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/api/auth",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, api.Google.AuthCodeURL(state), http.StatusFound)
}

// GoogleCallback finishes the handoff: check the state, exchange the
// code, find-or-create the user and redirect back to the client with a
// fresh bearer token.
func (api *API) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	cookie, err := r.Cookie(stateCookieName)
	if err != nil || cookie.Value == "" || r.URL.Query().Get("state") != cookie.Value {
		logger.Printf("ERROR: oauth state mismatch")
		http.Redirect(w, r, api.Cfg.ClientURL+"/login?error=auth_failed", http.StatusFound)
		return
	}

	// The state cookie is single-use
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     "/api/auth",
		MaxAge:   -1,
		HttpOnly: true,
	})

	profile, err := api.Google.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		logger.Printf("ERROR: %v", err)
		http.Redirect(w, r, api.Cfg.ClientURL+"/login?error=auth_failed", http.StatusFound)
		return
	}

	userDb, err := users.FindOrCreateFromProfile(api.Db, r.Context(), profile)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		http.Redirect(w, r, api.Cfg.ClientURL+"/login?error=server_error", http.StatusFound)
		return
	}

	token, err := auth.MakeJWT(userDb.Id, userDb.Email, api.Cfg.JWTSecret, auth.TokenExpiry)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		http.Redirect(w, r, api.Cfg.ClientURL+"/login?error=server_error", http.StatusFound)
		return
	}

	http.Redirect(w, r, api.Cfg.ClientURL+"/auth-success?token="+token, http.StatusFound)
}

// Logout is a no-op on the server: tokens are stateless and expire on
// their own. Kept so the client has an endpoint to call, and it stays
// idempotent.
func (api *API) Logout(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: "Logged out successfully"})
}

// CurrentUser returns the caller's own record, without the credential id.
func (api *API) CurrentUser(w http.ResponseWriter, r *http.Request) {
	currentUser := auth.GetUserFromContext(r.Context())
	if currentUser == nil {
		respondWithError(w, http.StatusUnauthorized, "Access token required")
		return
	}

	respondWithJSON(w, http.StatusOK, users.MapDbUserToApiUser(*currentUser))
}
