package movies

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validRequest() MovieRequest {
	return MovieRequest{
		Title:       "Inception",
		Director:    "Christopher Nolan",
		ReleaseYear: 2010,
		Genre:       "Sci-Fi",
	}
}

func errorFields(fieldErrors []FieldError) []string {
	fields := make([]string, len(fieldErrors))
	for i, fe := range fieldErrors {
		fields[i] = fe.Field
	}
	return fields
}

func TestValidateAcceptsValidRequest(t *testing.T) {
	req := validRequest()
	require.Empty(t, req.Validate())
}

func TestValidateTrimsFields(t *testing.T) {
	req := MovieRequest{
		Title:       "  Inception  ",
		Director:    " Christopher Nolan ",
		ReleaseYear: 2010,
		Genre:       " Sci-Fi ",
	}
	require.Empty(t, req.Validate())
	require.Equal(t, "Inception", req.Title)
	require.Equal(t, "Christopher Nolan", req.Director)
	require.Equal(t, "Sci-Fi", req.Genre)
}

func TestValidateRejectsBadFields(t *testing.T) {
	currentYear := time.Now().Year()

	cases := []struct {
		name      string
		mutate    func(*MovieRequest)
		wantField string
	}{
		{"empty title", func(r *MovieRequest) { r.Title = "" }, "title"},
		{"whitespace title", func(r *MovieRequest) { r.Title = "   " }, "title"},
		{"empty director", func(r *MovieRequest) { r.Director = "" }, "director"},
		{"empty genre", func(r *MovieRequest) { r.Genre = "" }, "genre"},
		{"year too old", func(r *MovieRequest) { r.ReleaseYear = 1800 }, "releaseYear"},
		{"year below lower bound", func(r *MovieRequest) { r.ReleaseYear = 1899 }, "releaseYear"},
		{"year too far in the future", func(r *MovieRequest) { r.ReleaseYear = currentYear + 6 }, "releaseYear"},
		{"zero year", func(r *MovieRequest) { r.ReleaseYear = 0 }, "releaseYear"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			fieldErrors := req.Validate()
			require.NotEmpty(t, fieldErrors)
			require.Contains(t, errorFields(fieldErrors), tc.wantField)
		})
	}
}

func TestValidateBoundaryYears(t *testing.T) {
	req := validRequest()
	req.ReleaseYear = 1900
	require.Empty(t, req.Validate())

	req = validRequest()
	req.ReleaseYear = time.Now().Year() + 5
	require.Empty(t, req.Validate())
}

func TestValidateCollectsAllErrors(t *testing.T) {
	req := MovieRequest{}
	fieldErrors := req.Validate()
	require.Len(t, fieldErrors, 4)
	fields := errorFields(fieldErrors)
	require.Contains(t, fields, "title")
	require.Contains(t, fields, "director")
	require.Contains(t, fields, "releaseYear")
	require.Contains(t, fields, "genre")
}
