// Command fetchword pulls the daily puzzle from the upstream feed and
// stores it. Meant to run once a day from cron, shortly after the feed
// rolls over. With -remind it also mails streak reminders to users who
// have not played yet.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"wordletracker/internal/config"
	"wordletracker/internal/database"
	"wordletracker/internal/models"
	"wordletracker/internal/puzzle"
	"wordletracker/internal/repository"
	"wordletracker/internal/service"
)

func main() {
	dateFlag := flag.String("date", "", "Puzzle date as YYYY-MM-DD (default: today, UTC)")
	remindFlag := flag.Bool("remind", false, "Send streak reminder emails after fetching")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	cfg := config.Load()

	date := models.Today()
	if *dateFlag != "" {
		parsed, err := models.ParseDate(*dateFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -date %q: %v\n", *dateFlag, err)
			os.Exit(1)
		}
		date = parsed
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	puzzleRepo := repository.NewPuzzleRepository(db)
	fetcher := puzzle.NewFetcher(cfg.PuzzleFeedURL, puzzleRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	stored, created, err := fetcher.FetchAndStore(ctx, date)
	if err != nil {
		log.Fatalf("Failed to fetch puzzle for %s: %v", date, err)
	}
	if created {
		log.Printf("Stored puzzle #%d for %s", stored.PuzzleNumber, date)
	} else {
		log.Printf("Puzzle for %s already stored, skipping fetch", date)
	}

	if !*remindFlag {
		return
	}

	userRepo := repository.NewUserRepository(db)
	guessRepo := repository.NewGuessRepository(db)
	leaderboardRepo := repository.NewLeaderboardRepository(db)
	statsService := service.NewStatsService(guessRepo, leaderboardRepo)

	reminders, err := service.NewReminderService(
		cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL,
		userRepo, guessRepo, statsService,
	)
	if err != nil {
		log.Fatalf("Failed to create reminder service: %v", err)
	}

	sent, err := reminders.SendStreakReminders(ctx, date)
	if err != nil {
		log.Fatalf("Failed to send reminders: %v", err)
	}
	log.Printf("Sent %d streak reminders", sent)
}
