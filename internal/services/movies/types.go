package movies

import "time"

// Movie is the API view of a movie record.
type Movie struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Director    string    `json:"director"`
	ReleaseYear int       `json:"releaseYear"`
	Genre       string    `json:"genre"`
	OwnerId     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MovieRequest is the body for both POST and PUT; a full replace of the
// four editable fields.
type MovieRequest struct {
	Title       string `json:"title"`
	Director    string `json:"director"`
	ReleaseYear int    `json:"releaseYear"`
	Genre       string `json:"genre"`
}

// MovieListResponse is the paginated search envelope. Total counts the
// whole filtered set, not just the current window.
type MovieListResponse struct {
	Movies      []Movie `json:"movies"`
	TotalPages  int     `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
	Total       int     `json:"total"`
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
