// Command seed populates the development database with fake data.
package main

import (
	"flag"
	"log"

	"talkora/internal/config"
	"talkora/internal/database"
	"talkora/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "number of users to create")
	numPosts := flag.Int("posts", 50, "number of posts to create")
	clean := flag.Bool("clean", false, "delete existing rows before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		ShouldClean: *clean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
