package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/23WH1A0515/Arogyasetu/config"
	"github.com/23WH1A0515/Arogyasetu/databases"
	"github.com/23WH1A0515/Arogyasetu/dataloader"
)

// Quick utility to backfill synthetic inflow history for the demo feed
// Usage: go run scripts/backfill_inflow.go <hours>
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/backfill_inflow.go <hours>")
		fmt.Println("Example: go run scripts/backfill_inflow.go 72")
		os.Exit(1)
	}

	hours, err := strconv.Atoi(os.Args[1])
	if err != nil || hours <= 0 {
		fmt.Printf("invalid hour count %q\n", os.Args[1])
		os.Exit(1)
	}

	_ = godotenv.Load()
	conf := config.New()

	client, err := databases.NewClient(conf)
	if err != nil {
		fmt.Printf("Error creating client: %v\n", err)
		os.Exit(1)
	}
	if err := client.Connect(); err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	db := databases.NewInflowDatabase(databases.NewDatabase(conf, client))

	hospitals, err := dataloader.New(conf.DataDir).Hospitals()
	if err != nil {
		fmt.Printf("Error reading hospital registry: %v\n", err)
		os.Exit(1)
	}
	ids := make([]string, 0, len(hospitals))
	for _, h := range hospitals {
		ids = append(ids, h.ID)
	}

	now := time.Now().UTC().Truncate(time.Hour)
	from := now.Add(-time.Duration(hours) * time.Hour)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	records := databases.GenerateMockInflow(ids, from, now, rng)

	inserted, err := db.InsertMany(context.Background(), records)
	if err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Backfilled %d records for %d hospitals over the last %d hours\n", inserted, len(ids), hours)
}
