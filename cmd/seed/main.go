package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/nlourenco/movie-catalog-backend/internal/config"
	"github.com/nlourenco/movie-catalog-backend/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
)

type seedMovie struct {
	Title       string
	Director    string
	ReleaseYear int
	Genre       string
}

// The shared catalog every user sees alongside their own movies.
var sharedMovies = []seedMovie{
	{"The Shawshank Redemption", "Frank Darabont", 1994, "Drama"},
	{"The Godfather", "Francis Ford Coppola", 1972, "Crime"},
	{"The Dark Knight", "Christopher Nolan", 2008, "Action"},
	{"12 Angry Men", "Sidney Lumet", 1957, "Drama"},
	{"Schindler's List", "Steven Spielberg", 1993, "Drama"},
	{"The Lord of the Rings: The Return of the King", "Peter Jackson", 2003, "Fantasy"},
	{"Pulp Fiction", "Quentin Tarantino", 1994, "Crime"},
	{"The Good, the Bad and the Ugly", "Sergio Leone", 1966, "Western"},
	{"Fight Club", "David Fincher", 1999, "Drama"},
	{"Forrest Gump", "Robert Zemeckis", 1994, "Drama"},
	{"Inception", "Christopher Nolan", 2010, "Sci-Fi"},
	{"The Lord of the Rings: The Fellowship of the Ring", "Peter Jackson", 2001, "Fantasy"},
	{"Star Wars: Episode V - The Empire Strikes Back", "Irvin Kershner", 1980, "Sci-Fi"},
	{"The Lord of the Rings: The Two Towers", "Peter Jackson", 2002, "Fantasy"},
	{"The Matrix", "The Wachowskis", 1999, "Sci-Fi"},
	{"Goodfellas", "Martin Scorsese", 1990, "Crime"},
	{"One Flew Over the Cuckoo's Nest", "Milos Forman", 1975, "Drama"},
	{"Seven Samurai", "Akira Kurosawa", 1954, "Adventure"},
	{"Se7en", "David Fincher", 1995, "Thriller"},
	{"City of God", "Fernando Meirelles", 2002, "Crime"},
	{"The Silence of the Lambs", "Jonathan Demme", 1991, "Thriller"},
	{"It's a Wonderful Life", "Frank Capra", 1946, "Drama"},
	{"Life Is Beautiful", "Roberto Benigni", 1997, "Comedy"},
	{"The Usual Suspects", "Bryan Singer", 1995, "Mystery"},
	{"Léon: The Professional", "Luc Besson", 1994, "Action"},
	{"Spirited Away", "Hayao Miyazaki", 2001, "Animation"},
	{"Saving Private Ryan", "Steven Spielberg", 1998, "War"},
	{"La La Land", "Damien Chazelle", 2016, "Musical"},
	{"The Avengers", "Joss Whedon", 2012, "Action"},
	{"Interstellar", "Christopher Nolan", 2014, "Sci-Fi"},
}

// Seeds the system user and its shared movie pool. Safe to run more
// than once: it skips when the pool already has movies.
func main() {
	godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := mongodb.NewDB(client, cfg.MongoDB)

	systemUser, err := db.GetUserByEmail(ctx, cfg.SystemUserEmail)
	if err == mongodb.ErrRecordNotFound {
		systemUser, err = db.CreateUser(ctx, mongodb.UserDb{
			GoogleId: "system",
			Name:     "System",
			Email:    cfg.SystemUserEmail,
		})
		if err != nil {
			log.Fatalf("Failed to create system user: %v", err)
		}
		log.Printf("Created system user %s (%s)", systemUser.Id, systemUser.Email)
	} else if err != nil {
		log.Fatalf("Failed to look up system user: %v", err)
	}

	existing, err := db.CountMovies(ctx, bson.M{"ownerId": systemUser.Id})
	if err != nil {
		log.Fatalf("Failed to count shared movies: %v", err)
	}
	if existing > 0 {
		log.Printf("Shared pool already has %d movies, nothing to do", existing)
		return
	}

	for _, m := range sharedMovies {
		_, err := db.CreateMovie(ctx, mongodb.MovieDb{
			Title:       m.Title,
			Director:    m.Director,
			ReleaseYear: m.ReleaseYear,
			Genre:       m.Genre,
			OwnerId:     systemUser.Id,
		})
		if err != nil {
			log.Fatalf("Failed to insert %q: %v", m.Title, err)
		}
	}

	log.Printf("Seeded %d shared movies", len(sharedMovies))
}
