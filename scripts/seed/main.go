// Seeds the database with a demo account, commitments, and fatigue history.
// Usage: go run scripts/seed/main.go
package main

import (
	"log"
	"time"

	"github.com/dkwak/sleepcoach/internal/config"
	"github.com/dkwak/sleepcoach/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("Invalid timezone %q: %v", cfg.Timezone, err)
	}

	if err := seed.Run(db, loc); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}
	log.Println("Seed completed")
}
