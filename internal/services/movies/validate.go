package movies

import (
	"fmt"
	"strings"
	"time"
)

const (
	minReleaseYear    = 1900
	maxTitleLength    = 200
	maxDirectorLength = 100
	maxGenreLength    = 50
)

// maxReleaseYear allows announced-but-unreleased titles.
func maxReleaseYear() int {
	return time.Now().Year() + 5
}

// Validate trims the string fields in place and returns every field
// constraint violation at once, so the client can show them per field.
func (req *MovieRequest) Validate() []FieldError {
	var fieldErrors []FieldError

	req.Title = strings.TrimSpace(req.Title)
	req.Director = strings.TrimSpace(req.Director)
	req.Genre = strings.TrimSpace(req.Genre)

	if req.Title == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "title", Message: "Title is required"})
	} else if len(req.Title) > maxTitleLength {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   "title",
			Message: fmt.Sprintf("Title must be between 1 and %d characters", maxTitleLength),
		})
	}

	if req.Director == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "director", Message: "Director is required"})
	} else if len(req.Director) > maxDirectorLength {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   "director",
			Message: fmt.Sprintf("Director must be between 1 and %d characters", maxDirectorLength),
		})
	}

	if req.ReleaseYear < minReleaseYear || req.ReleaseYear > maxReleaseYear() {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   "releaseYear",
			Message: fmt.Sprintf("Release year must be between %d and %d", minReleaseYear, maxReleaseYear()),
		})
	}

	if req.Genre == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "genre", Message: "Genre is required"})
	} else if len(req.Genre) > maxGenreLength {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   "genre",
			Message: fmt.Sprintf("Genre must be between 1 and %d characters", maxGenreLength),
		})
	}

	return fieldErrors
}
