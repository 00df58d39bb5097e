package server

import (
	"log"
	"net/http"

	"github.com/nlourenco/movie-catalog-backend/internal/api"
	"github.com/nlourenco/movie-catalog-backend/internal/config"
	"github.com/nlourenco/movie-catalog-backend/internal/mongodb"
	"github.com/nlourenco/movie-catalog-backend/internal/oauth"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewServer wires the route table and middleware chain. Returned as a
// plain http.Handler so tests can mount it on an httptest.Server.
func NewServer(client *mongo.Client, cfg *config.Config, google *oauth.GoogleService) http.Handler {
	db := mongodb.NewDB(client, cfg.MongoDB)
	apiHandlers := api.NewAPI(db, cfg, google)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", apiHandlers.HealthHandler)

	mux.HandleFunc("GET /api/auth/google", apiHandlers.GoogleLogin)
	mux.HandleFunc("GET /api/auth/google/callback", apiHandlers.GoogleCallback)
	mux.HandleFunc("POST /api/auth/logout", apiHandlers.Logout)
	mux.HandleFunc("GET /api/auth/user", apiHandlers.CurrentUser)

	mux.HandleFunc("GET /api/movies", apiHandlers.GetMovies)
	mux.HandleFunc("GET /api/movies/{id}", apiHandlers.GetMovieById)
	mux.HandleFunc("POST /api/movies", apiHandlers.CreateMovie)
	mux.HandleFunc("PUT /api/movies/{id}", apiHandlers.UpdateMovie)
	mux.HandleFunc("DELETE /api/movies/{id}", apiHandlers.DeleteMovie)

	authedMux := AuthMiddleware(cfg.JWTSecret, db)(mux)
	return RequestIdMiddleware(authedMux)
}

func ListenAndServe(handler http.Handler, port string) error {
	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	log.Printf("Server is running on port %s", port)
	return server.ListenAndServe()
}
