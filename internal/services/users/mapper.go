package users

import "github.com/nlourenco/movie-catalog-backend/internal/mongodb"

func MapDbUserToApiUser(user mongodb.UserDb) UserResponse {
	return UserResponse{
		Id:        user.Id,
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
