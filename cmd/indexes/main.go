package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/nlourenco/movie-catalog-backend/internal/config"
	"github.com/nlourenco/movie-catalog-backend/internal/mongodb"
)

// Creates the users and movies indexes. Pass -reset to drop and
// recreate indexes that already exist.
func main() {
	reset := flag.Bool("reset", false, "drop and recreate existing indexes")
	flag.Parse()

	godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB)
	if err := mongodb.CreateAllIndexes(ctx, db, *reset); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	log.Println("All indexes created")
}
