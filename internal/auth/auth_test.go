package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestMakeAndValidateJWT(t *testing.T) {
	token, err := MakeJWT("user-1", "user@example.com", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserId)
	require.Equal(t, "user@example.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	require.True(t, claims.ExpiresAt.Time.After(time.Now()))
}

func TestValidateJWTExpired(t *testing.T) {
	token, err := MakeJWT("user-1", "user@example.com", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateJWT(token, testSecret)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	token, err := MakeJWT("user-1", "user@example.com", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "another-secret")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-jwt", testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetBearerToken(t *testing.T) {
	cases := []struct {
		name        string
		headerValue string
		setHeader   bool
		wantToken   string
		wantErr     error
	}{
		{
			name:      "missing header",
			setHeader: false,
			wantErr:   ErrNoAuthorizationHeader,
		},
		{
			name:        "wrong scheme",
			headerValue: "Basic abc123",
			setHeader:   true,
			wantErr:     ErrMalformedAuthHeader,
		},
		{
			name:        "bearer with no token",
			headerValue: "Bearer ",
			setHeader:   true,
			wantErr:     ErrNoTokenInAuthHeader,
		},
		{
			name:        "valid bearer token",
			headerValue: "Bearer sometoken",
			setHeader:   true,
			wantToken:   "sometoken",
		},
		{
			name:        "token with trailing space",
			headerValue: "Bearer sometoken  ",
			setHeader:   true,
			wantToken:   "sometoken",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			headers := http.Header{}
			if tc.setHeader {
				headers.Set("Authorization", tc.headerValue)
			}

			token, err := GetBearerToken(headers)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantToken, token)
		})
	}
}
