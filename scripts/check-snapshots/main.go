// Command check-snapshots scans a Redis store for character snapshots
// that no longer parse or that violate ledger invariants, so bad
// entries can be found before a player hits them.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/sr4-ledger/internal/entities/sr4"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning character snapshots...")

	iter := client.Scan(ctx, 0, "character:*", 0).Iterator()

	var badKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()

		// Player index sets share the prefix; skip them.
		if strings.HasPrefix(key, "character:player:") {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		if problem := checkSnapshot([]byte(data)); problem != "" {
			fmt.Printf("BAD %s: %s\n", key, problem)
			badKeys = append(badKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Scan failed:", err)
	}

	fmt.Printf("Checked %d snapshots, found %d bad\n", checkedCount, len(badKeys))
	if len(badKeys) > 0 {
		os.Exit(1)
	}
}

func checkSnapshot(data []byte) string {
	character, err := sr4.UnmarshalSnapshot(data)
	if err != nil {
		return fmt.Sprintf("does not parse: %v", err)
	}

	switch character.Status {
	case sr4.StatusCreation, sr4.StatusCareer:
	default:
		return fmt.Sprintf("unknown status %q", character.Status)
	}

	if character.ID == "" {
		return "missing character ID"
	}
	if character.Essence < 0 {
		return fmt.Sprintf("negative essence %.2f", character.Essence)
	}
	if character.Nuyen < 0 {
		return fmt.Sprintf("negative nuyen %d", character.Nuyen)
	}
	if character.Karma < 0 {
		return fmt.Sprintf("negative karma %d", character.Karma)
	}
	if character.BuildPointsSpent.Total() > character.BuildPoints {
		return fmt.Sprintf("overspent build points (%d of %d)",
			character.BuildPointsSpent.Total(), character.BuildPoints)
	}
	return ""
}
