package main

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/pokerole-api/internal/config"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
	"github.com/KirkDiggler/pokerole-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/pokerole-api/internal/redis"
	rosterrepo "github.com/KirkDiggler/pokerole-api/internal/repositories/roster"
)

// Pads stored rosters back to six party slots and twenty boxes of thirty,
// and offers to delete rosters whose JSON no longer decodes.
func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	client, err := redisclient.NewClientFromURL(cfg.Redis.URL, &redisclient.Options{PoolSize: cfg.Redis.PoolSize})
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}
	defer client.Close()

	ctx := context.Background()
	if err := redisclient.Ping(ctx, client, cfg.Redis.PingTimeout); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	repo, err := rosterrepo.NewRedisRepository(&rosterrepo.Config{Client: client, Clock: clock.New()})
	if err != nil {
		log.Fatal("Failed to create roster repository:", err)
	}

	fmt.Println("Connected to Redis:", cfg.Redis.URL)
	fmt.Println("Scanning rosters...")

	ids, err := repo.ListUserIDs(ctx, rosterrepo.ListUserIDsInput{})
	if err != nil {
		log.Fatal("Error during scan:", err)
	}

	var repaired int
	var corrupted []string
	for _, userID := range ids.UserIDs {
		out, err := repo.Get(ctx, rosterrepo.GetInput{UserID: userID})
		switch {
		case errors.IsDataLoss(err):
			fmt.Printf("✗ Corrupted roster for %s\n", userID)
			corrupted = append(corrupted, userID)
			continue
		case err != nil:
			fmt.Printf("Error reading roster for %s: %v\n", userID, err)
			continue
		}

		if !out.Normalized {
			continue
		}
		if _, err := repo.Save(ctx, rosterrepo.SaveInput{UserID: userID, Roster: out.Roster}); err != nil {
			fmt.Printf("Failed to save roster for %s: %v\n", userID, err)
			continue
		}
		fmt.Printf("✓ Resized roster for %s\n", userID)
		repaired++
	}

	fmt.Printf("\nChecked %d rosters, resized %d, found %d corrupted\n", len(ids.UserIDs), repaired, len(corrupted))
	if len(corrupted) == 0 {
		return
	}

	fmt.Print("\nDo you want to DELETE the corrupted rosters? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}
	for _, userID := range corrupted {
		if _, err := repo.Delete(ctx, rosterrepo.DeleteInput{UserID: userID}); err != nil {
			fmt.Printf("Failed to delete roster for %s: %v\n", userID, err)
		} else {
			fmt.Printf("Deleted roster for %s\n", userID)
		}
	}
}
