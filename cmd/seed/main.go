package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"roost-backend/internal/application/seed"
	"roost-backend/internal/config"
	"roost-backend/internal/infrastructure/database"
)

func main() {
	count := flag.Int("count", 3, "number of sample listings to create")
	reviews := flag.Int("reviews", 1, "reviews per listing")
	bookings := flag.Int("bookings", 1, "bookings per listing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.DatabaseURL == "" {
		fmt.Println("DATABASE_URL is not set")
		os.Exit(1)
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		os.Exit(1)
	}
	if err := database.AutoMigrate(db); err != nil {
		fmt.Printf("Failed to migrate: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Seeding database...")
	err = seed.Run(context.Background(), db, seed.Options{
		Count:    *count,
		Reviews:  *reviews,
		Bookings: *bookings,
	})
	if err != nil {
		fmt.Printf("Seeding failed, nothing was written: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Seeding complete.")
}
