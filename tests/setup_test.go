package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/nlourenco/movie-catalog-backend/internal/auth"
	"github.com/nlourenco/movie-catalog-backend/internal/config"
	"github.com/nlourenco/movie-catalog-backend/internal/mongodb"
	"github.com/nlourenco/movie-catalog-backend/internal/oauth"
	"github.com/nlourenco/movie-catalog-backend/internal/server"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	testClient *mongo.Client
	testDb     *mongodb.DB
	testServer *httptest.Server
)

const (
	TEST_DB_NAME      = "testDb"
	TEST_JWT_SECRET   = "integration-test-secret"
	TEST_SYSTEM_EMAIL = "system@movieapp.com"
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7.0",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}
	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatalf("failed to start mongo container: %v", err)
	}

	endpoint, err := mongoC.Endpoint(ctx, "")
	if err != nil {
		log.Fatalf("failed to get mongo endpoint: %v", err)
	}
	uri := "mongodb://" + endpoint

	testClient, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("failed to connect to test mongo: %v", err)
	}
	testDb = mongodb.NewDB(testClient, TEST_DB_NAME)

	cfg := &config.Config{
		Port:            "8080",
		MongoURI:        uri,
		MongoDB:         TEST_DB_NAME,
		JWTSecret:       TEST_JWT_SECRET,
		ClientURL:       "http://localhost:3000",
		SystemUserEmail: TEST_SYSTEM_EMAIL,
	}

	// Google sign-in stays disabled: the token endpoints are exercised
	// directly with locally issued JWTs.
	google, err := oauth.NewGoogleService(ctx, "", "", "")
	if err != nil {
		log.Fatalf("failed to build oauth service: %v", err)
	}

	handler := server.NewServer(testClient, cfg, google)
	testServer = httptest.NewServer(handler)

	code := m.Run()

	// Cleanup
	testServer.Close()
	_ = testClient.Disconnect(ctx)
	_ = mongoC.Terminate(ctx)

	os.Exit(code)
}

func resetDB(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	db := testClient.Database(TEST_DB_NAME)

	collections, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		t.Fatalf("failed to list collections: %v", err)
	}

	for _, coll := range collections {
		if err := db.Collection(coll).Drop(ctx); err != nil {
			t.Fatalf("failed to drop collection %s: %v", coll, err)
		}
	}
}

func seedUser(t *testing.T, name, email string) mongodb.UserDb {
	t.Helper()

	user, err := testDb.CreateUser(context.Background(), mongodb.UserDb{
		GoogleId: "google-" + email,
		Name:     name,
		Email:    email,
	})
	if err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
	return user
}

func seedSystemUser(t *testing.T) mongodb.UserDb {
	t.Helper()
	return seedUser(t, "System", TEST_SYSTEM_EMAIL)
}

func tokenFor(t *testing.T, user mongodb.UserDb) string {
	t.Helper()

	token, err := auth.MakeJWT(user.Id, user.Email, TEST_JWT_SECRET, time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

// seedMovieAt inserts a movie document directly, with an explicit
// createdAt so ordering tests are deterministic.
func seedMovieAt(t *testing.T, ownerId, title, director string, year int, genre string, createdAt time.Time) string {
	t.Helper()

	id := primitive.NewObjectID().Hex()
	coll := testClient.Database(TEST_DB_NAME).Collection(mongodb.MoviesCollection)
	_, err := coll.InsertOne(context.Background(), bson.M{
		"_id":         id,
		"title":       title,
		"director":    director,
		"releaseYear": year,
		"genre":       genre,
		"ownerId":     ownerId,
		"createdAt":   createdAt,
		"updatedAt":   createdAt,
	})
	if err != nil {
		t.Fatalf("failed to seed movie %q: %v", title, err)
	}
	return id
}

func countMovies(t *testing.T) int {
	t.Helper()

	coll := testClient.Database(TEST_DB_NAME).Collection(mongodb.MoviesCollection)
	n, err := coll.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		t.Fatalf("failed to count movies: %v", err)
	}
	return int(n)
}

// doRequest sends a JSON request to the test server with an optional
// bearer token and returns the response.
func doRequest(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, testServer.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}
