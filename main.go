package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/nlourenco/movie-catalog-backend/internal/config"
	"github.com/nlourenco/movie-catalog-backend/internal/mongodb"
	"github.com/nlourenco/movie-catalog-backend/internal/oauth"
	"github.com/nlourenco/movie-catalog-backend/internal/server"
)

func main() {
	godotenv.Load()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	google, err := oauth.NewGoogleService(ctx, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
	if err != nil {
		log.Fatalf("Failed to set up Google sign-in: %v", err)
	}
	if !google.Enabled() {
		log.Println("GOOGLE_CLIENT_ID not set, Google sign-in disabled")
	}

	handler := server.NewServer(client, cfg, google)
	if err := server.ListenAndServe(handler, cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
