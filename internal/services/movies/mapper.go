package movies

import "github.com/nlourenco/movie-catalog-backend/internal/mongodb"

func MapDbMovieToApiMovie(movie mongodb.MovieDb) Movie {
	return Movie{
		Id:          movie.Id,
		Title:       movie.Title,
		Director:    movie.Director,
		ReleaseYear: movie.ReleaseYear,
		Genre:       movie.Genre,
		OwnerId:     movie.OwnerId,
		CreatedAt:   movie.CreatedAt,
		UpdatedAt:   movie.UpdatedAt,
	}
}
