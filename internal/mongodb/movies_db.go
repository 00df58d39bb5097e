package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

type MovieDb struct {
	Id          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Director    string    `json:"director" bson:"director"`
	ReleaseYear int       `json:"releaseYear" bson:"releaseYear"`
	Genre       string    `json:"genre" bson:"genre"`
	OwnerId     string    `json:"ownerId" bson:"ownerId"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ----- Methods for the database -----

// GetMovieOwnedBy fetches a movie only when it belongs to ownerId, so a
// caller cannot tell another user's record apart from a missing one.
func (db *DB) GetMovieOwnedBy(ctx context.Context, id, ownerId string) (MovieDb, error) {
	coll := db.Collection(MoviesCollection)
	var movieDb MovieDb
	filter := bson.M{"_id": id, "ownerId": ownerId}
	if err := coll.FindOne(ctx, filter).Decode(&movieDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return MovieDb{}, ErrRecordNotFound
		}
		return MovieDb{}, err
	}
	return movieDb, nil
}

func (db *DB) CreateMovie(ctx context.Context, movie MovieDb) (MovieDb, error) {
	coll := db.Collection(MoviesCollection)

	movie.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	movie.CreatedAt = now
	movie.UpdatedAt = now

	_, err := coll.InsertOne(ctx, movie)
	if err != nil {
		return MovieDb{}, err
	}

	return movie, nil
}

// ReplaceMovieOwnedBy replaces the editable fields of a movie owned by
// ownerId and returns the updated document. The owner filter doubles as
// the authorization check.
func (db *DB) ReplaceMovieOwnedBy(ctx context.Context, id, ownerId string, movie MovieDb) (MovieDb, error) {
	coll := db.Collection(MoviesCollection)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated MovieDb
	err := coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id, "ownerId": ownerId},
		bson.M{"$set": bson.M{
			"title":       movie.Title,
			"director":    movie.Director,
			"releaseYear": movie.ReleaseYear,
			"genre":       movie.Genre,
			"ownerId":     movie.OwnerId,
			"updatedAt":   time.Now(),
		}},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return MovieDb{}, ErrRecordNotFound
		}
		return MovieDb{}, err
	}

	return updated, nil
}

func (db *DB) DeleteMovieOwnedBy(ctx context.Context, id, ownerId string) (bool, error) {
	coll := db.Collection(MoviesCollection)
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id, "ownerId": ownerId})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (db *DB) GetMovies(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]MovieDb, error) {
	coll := db.Collection(MoviesCollection)

	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var allMovies []MovieDb
	if err := cursor.All(ctx, &allMovies); err != nil {
		return []MovieDb{}, err
	}

	return allMovies, nil
}

func (db *DB) CountMovies(ctx context.Context, filter bson.M) (int, error) {
	coll := db.Collection(MoviesCollection)

	totalMovies, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}

	return int(totalMovies), nil
}
