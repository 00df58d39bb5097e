package auth

import (
	"errors"
	"net/http"
)

var (
	ErrTokenSigningMethod    = errors.New("unexpected signing method")
	ErrInvalidToken          = errors.New("invalid token")
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenWithNoSubject    = errors.New("token has no subject")
	ErrNoAuthorizationHeader = errors.New("no 'Authorization' header found")
	ErrMalformedAuthHeader   = errors.New("token must start with 'Bearer '")
	ErrNoTokenInAuthHeader   = errors.New("no token found after 'Bearer '")
)

// ErrorsMap maps token errors to HTTP status codes. A missing token is
// the caller's fault (401); a token that is present but fails
// verification is rejected with 403.
var ErrorsMap = map[error]int{
	ErrNoAuthorizationHeader: http.StatusUnauthorized,
	ErrMalformedAuthHeader:   http.StatusUnauthorized,
	ErrNoTokenInAuthHeader:   http.StatusUnauthorized,
	ErrTokenSigningMethod:    http.StatusForbidden,
	ErrInvalidToken:          http.StatusForbidden,
	ErrTokenExpired:          http.StatusForbidden,
	ErrTokenWithNoSubject:    http.StatusForbidden,
}
