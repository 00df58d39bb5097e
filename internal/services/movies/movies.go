package movies

import (
	"context"
	"regexp"

	"github.com/nlourenco/movie-catalog-backend/internal/generics"
	"github.com/nlourenco/movie-catalog-backend/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

/*
GetPageOfMovies runs the visibility-scoped, optionally searched,
paginated movie query.

A record is visible to the caller when they own it or when it belongs
to the shared system pool. The search term matches title or director as
a case-insensitive substring. Results are ordered newest first, with
_id as tie-break so pages never overlap.
*/
func GetPageOfMovies(
	db *mongodb.DB,
	ctx context.Context,
	callerId, systemUserId, search string,
	page, limit int,
) (MovieListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	limit = generics.Clamp(limit, 1, maxPageSize)

	filter := buildVisibilityFilter(callerId, systemUserId, search)

	total, err := db.CountMovies(ctx, filter)
	if err != nil {
		return MovieListResponse{}, err
	}

	skip := (int64(page) - 1) * int64(limit)
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(skip).
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	allMoviesDb, err := db.GetMovies(ctx, filter, opts)
	if err != nil {
		return MovieListResponse{}, err
	}

	allMovies := make([]Movie, 0, len(allMoviesDb))
	for _, movieDb := range allMoviesDb {
		allMovies = append(allMovies, MapDbMovieToApiMovie(movieDb))
	}

	return MovieListResponse{
		Movies:      allMovies,
		TotalPages:  generics.CeilDiv(total, limit),
		CurrentPage: page,
		Total:       total,
	}, nil
}

// buildVisibilityFilter combines the ownership scope with the optional
// free-text search. The search term is escaped so it always behaves as
// a literal substring, never as a regex.
func buildVisibilityFilter(callerId, systemUserId, search string) bson.M {
	owners := []string{callerId}
	if systemUserId != "" && systemUserId != callerId {
		owners = append(owners, systemUserId)
	}
	ownerFilter := bson.M{"ownerId": bson.M{"$in": owners}}

	if search == "" {
		return ownerFilter
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	return bson.M{
		"$and": []bson.M{
			ownerFilter,
			{"$or": []bson.M{
				{"title": pattern},
				{"director": pattern},
			}},
		},
	}
}

func GetMovie(db *mongodb.DB, ctx context.Context, id, callerId string) (Movie, error) {
	movieDb, err := db.GetMovieOwnedBy(ctx, id, callerId)
	if err != nil {
		return Movie{}, err
	}
	return MapDbMovieToApiMovie(movieDb), nil
}

func CreateMovie(db *mongodb.DB, ctx context.Context, callerId string, req MovieRequest) (Movie, error) {
	movieDb, err := db.CreateMovie(ctx, mongodb.MovieDb{
		Title:       req.Title,
		Director:    req.Director,
		ReleaseYear: req.ReleaseYear,
		Genre:       req.Genre,
		OwnerId:     callerId,
	})
	if err != nil {
		return Movie{}, err
	}
	return MapDbMovieToApiMovie(movieDb), nil
}

// UpdateMovie replaces the editable fields of a movie the caller owns.
// Ownership stays with the caller after the edit.
func UpdateMovie(db *mongodb.DB, ctx context.Context, id, callerId string, req MovieRequest) (Movie, error) {
	movieDb, err := db.ReplaceMovieOwnedBy(ctx, id, callerId, mongodb.MovieDb{
		Title:       req.Title,
		Director:    req.Director,
		ReleaseYear: req.ReleaseYear,
		Genre:       req.Genre,
		OwnerId:     callerId,
	})
	if err != nil {
		return Movie{}, err
	}
	return MapDbMovieToApiMovie(movieDb), nil
}

func DeleteMovie(db *mongodb.DB, ctx context.Context, id, callerId string) error {
	deleted, err := db.DeleteMovieOwnedBy(ctx, id, callerId)
	if err != nil {
		return err
	}
	if !deleted {
		return mongodb.ErrRecordNotFound
	}
	return nil
}

// ResolveSystemUserId looks up the shared-pool owner by the configured
// email. An absent system user just means there is no shared pool yet.
func ResolveSystemUserId(db *mongodb.DB, ctx context.Context, systemUserEmail string) (string, error) {
	if systemUserEmail == "" {
		return "", nil
	}
	systemUser, err := db.GetUserByEmail(ctx, systemUserEmail)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return "", nil
		}
		return "", err
	}
	return systemUser.Id, nil
}
