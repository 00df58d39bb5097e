package users

import (
	"context"

	"github.com/nlourenco/movie-catalog-backend/internal/mongodb"
	"github.com/nlourenco/movie-catalog-backend/internal/oauth"
)

// FindOrCreateFromProfile resolves the Google profile to a local user.
// First login creates the record; later logins refresh the profile
// fields Google may have changed (name, email, avatar).
func FindOrCreateFromProfile(db *mongodb.DB, ctx context.Context, profile oauth.Profile) (mongodb.UserDb, error) {
	existing, err := db.GetUserByGoogleId(ctx, profile.Subject)
	if err == nil {
		if existing.Name == profile.Name && existing.Email == profile.Email && existing.Avatar == profile.Picture {
			return existing, nil
		}
		return db.UpdateUserProfile(ctx, existing.Id, profile.Name, profile.Email, profile.Picture)
	}
	if err != mongodb.ErrRecordNotFound {
		return mongodb.UserDb{}, err
	}

	return db.CreateUser(ctx, mongodb.UserDb{
		GoogleId: profile.Subject,
		Name:     profile.Name,
		Email:    profile.Email,
		Avatar:   profile.Picture,
	})
}
