package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/nlourenco/movie-catalog-backend/internal/api"
	"github.com/nlourenco/movie-catalog-backend/internal/auth"
	"github.com/nlourenco/movie-catalog-backend/internal/logx"
	"github.com/nlourenco/movie-catalog-backend/internal/mongodb"
)

type contextKey string

const requestIdKey contextKey = "requestId"

////////////////////////////////////////////////////////////////////////////
//  LOGGER MIDDLEWARE
////////////////////////////////////////////////////////////////////////////

// Creates a unique 5-character identifier
func generateRequestId() string {
	bytes := make([]byte, 3) // 3 bytes = 6 hex chars, we'll take first 5
	rand.Read(bytes)
	return hex.EncodeToString(bytes)[:5]
}

// responseRecorder wraps http.ResponseWriter to capture status code
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rr *responseRecorder) WriteHeader(statusCode int) {
	rr.statusCode = statusCode
	rr.ResponseWriter.WriteHeader(statusCode)
}

/*
RequestIdMiddleware creates a unique request ID for each request and
stores a logger prefixed with it in the context.
- Log prefix format: [RequestId][Method:Endpoint]
- Logs when the request arrives and when the response returns, with
  duration and status code.

Handlers retrieve the logger using logx.FromContext(r.Context()).
*/
func RequestIdMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := generateRequestId()
		startTime := time.Now()

		logger := log.New(os.Stdout, "["+requestId+"]["+r.Method+":"+r.URL.Path+"] - ", log.LstdFlags)

		logger.Printf("Request received...")

		ctx := context.WithValue(r.Context(), requestIdKey, requestId)
		ctx = logx.WithLogger(ctx, logger)
		r = r.WithContext(ctx)

		recorder := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(recorder, r)

		duration := time.Since(startTime)
		if duration > time.Second {
			logger.Printf("Request completed in %.2fs (status %d)", duration.Seconds(), recorder.statusCode)
		} else {
			logger.Printf("Request completed in %dms (status %d)", duration.Milliseconds(), recorder.statusCode)
		}
	})
}

////////////////////////////////////////////////////////////////////////////
//  AUTHENTICATION MIDDLEWARE
////////////////////////////////////////////////////////////////////////////

// AuthMiddleware gates every non-public route behind a bearer token.
// A missing or malformed Authorization header is 401; a token that is
// present but fails verification (bad signature, expired) is 403.
func AuthMiddleware(tokenSecret string, db *mongodb.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			// Skip authentication for public endpoints
			if api.PublicPaths[r.Method+" "+r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			// Extract token
			tokenString, err := auth.GetBearerToken(r.Header)
			if err != nil {
				if statusCode, ok := auth.ErrorsMap[err]; ok {
					api.RespondWithAuthError(w, statusCode, err)
					return
				}
				http.Error(w, "Access token required", http.StatusUnauthorized)
				return
			}

			// Validate token
			claims, err := auth.ValidateJWT(tokenString, tokenSecret)
			if err != nil {
				if statusCode, ok := auth.ErrorsMap[err]; ok {
					api.RespondWithAuthError(w, statusCode, err)
					return
				}
				http.Error(w, "Invalid token", http.StatusForbidden)
				return
			}

			userDb, err := db.GetUserById(r.Context(), claims.UserId)
			if err != nil {
				if err == mongodb.ErrRecordNotFound {
					api.RespondWithAuthError(w, http.StatusForbidden, auth.ErrInvalidToken)
					return
				}
				http.Error(w, "Unexpected error", http.StatusInternalServerError)
				return
			}

			// Put the authenticated user into context
			ctx := auth.WithUser(r.Context(), userDb)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
