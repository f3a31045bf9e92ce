// Command main runs the database seeder.
package main

import (
	"flag"
	"log"

	"fandom/internal/config"
	"fandom/internal/database"
	"fandom/internal/seed"
)

func main() {
	// Parse command line flags
	defaults := seed.DefaultOptions()
	numCommunities := flag.Int("communities", defaults.NumCommunities, "Number of communities to create")
	numUsers := flag.Int("users", defaults.NumUsers, "Size of the fan-user id pool")
	postsPer := flag.Int("posts", defaults.PostsPerCommunity, "Posts per community")
	shouldClean := flag.Bool("clean", defaults.ShouldClean, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d communities, %d users, %d posts each, clean=%v\n",
		*numCommunities, *numUsers, *postsPer, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumCommunities:    *numCommunities,
		NumUsers:          *numUsers,
		PostsPerCommunity: *postsPer,
		ShouldClean:       *shouldClean,
	}
	if err := seed.Seed(db, opts); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
