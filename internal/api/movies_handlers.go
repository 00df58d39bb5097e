package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nlourenco/movie-catalog-backend/internal/auth"
	"github.com/nlourenco/movie-catalog-backend/internal/generics"
	"github.com/nlourenco/movie-catalog-backend/internal/logx"
	"github.com/nlourenco/movie-catalog-backend/internal/mongodb"
	"github.com/nlourenco/movie-catalog-backend/internal/services/movies"
)

func (api *API) GetMovies(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	search := r.URL.Query().Get("search")
	page := generics.StringToInt(r.URL.Query().Get("page"))
	limit := generics.StringToInt(r.URL.Query().Get("limit"))

	systemUserId, err := movies.ResolveSystemUserId(api.Db, r.Context(), api.Cfg.SystemUserEmail)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error fetching movies")
		return
	}

	pageOfMovies, err := movies.GetPageOfMovies(api.Db, r.Context(), currentUser.Id, systemUserId, search, page, limit)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error fetching movies")
		return
	}

	respondWithJSON(w, http.StatusOK, pageOfMovies)
}

func (api *API) GetMovieById(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	movieId := r.PathValue("id")
	if movieId == "" {
		respondWithError(w, http.StatusBadRequest, "Movie id is required")
		return
	}

	movie, err := movies.GetMovie(api.Db, r.Context(), movieId, currentUser.Id)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			respondWithError(w, http.StatusNotFound, "Movie not found")
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error fetching movie")
		return
	}

	respondWithJSON(w, http.StatusOK, movie)
}

func (api *API) CreateMovie(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	var req movies.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		respondWithValidationErrors(w, fieldErrors)
		return
	}

	movie, err := movies.CreateMovie(api.Db, r.Context(), currentUser.Id, req)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error creating movie")
		return
	}

	respondWithJSON(w, http.StatusCreated, movie)
}

func (api *API) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	movieId := r.PathValue("id")
	if movieId == "" {
		respondWithError(w, http.StatusBadRequest, "Movie id is required")
		return
	}

	var req movies.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		respondWithValidationErrors(w, fieldErrors)
		return
	}

	movie, err := movies.UpdateMovie(api.Db, r.Context(), movieId, currentUser.Id, req)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			respondWithError(w, http.StatusNotFound, "Movie not found")
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error updating movie")
		return
	}

	respondWithJSON(w, http.StatusOK, movie)
}

func (api *API) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	movieId := r.PathValue("id")
	if movieId == "" {
		respondWithError(w, http.StatusBadRequest, "Movie id is required")
		return
	}

	if err := movies.DeleteMovie(api.Db, r.Context(), movieId, currentUser.Id); err != nil {
		if err == mongodb.ErrRecordNotFound {
			respondWithError(w, http.StatusNotFound, "Movie not found")
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error deleting movie")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: fmt.Sprintf("Movie with id %s deleted successfully", movieId)})
}
