package api

import (
	"github.com/nlourenco/movie-catalog-backend/internal/config"
	"github.com/nlourenco/movie-catalog-backend/internal/mongodb"
	"github.com/nlourenco/movie-catalog-backend/internal/oauth"
)

type API struct {
	Db     *mongodb.DB
	Cfg    *config.Config
	Google *oauth.GoogleService
}

func NewAPI(db *mongodb.DB, cfg *config.Config, google *oauth.GoogleService) *API {
	return &API{Db: db, Cfg: cfg, Google: google}
}

// PublicPaths lists the "METHOD path" routes the auth middleware lets
// through without a bearer token.
var PublicPaths = map[string]bool{
	"GET /api/health":               true,
	"GET /api/auth/google":          true,
	"GET /api/auth/google/callback": true,
	"POST /api/auth/logout":         true,
}
