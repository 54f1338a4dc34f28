package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"profilehub/database"
	"profilehub/internal/config"
	"profilehub/internal/http-api/dto"
	"profilehub/internal/http-api/repository"
	"profilehub/internal/http-api/service"
)

// Seeds a development database with a few profiles, comments and likes.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	profileRepo := repository.NewProfileRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewCommentLikeRepository(db)

	profileService := service.NewProfileService(profileRepo)
	commentService := service.NewCommentService(commentRepo, likeRepo, profileRepo, nil)

	ctx := context.Background()

	profiles := []dto.CreateProfileDTO{
		{Username: "john_doe", Name: "John Doe", Age: 25, ImageURL: "https://example.com/john.jpg", Gender: "male"},
		{Username: "jane_roe", Name: "Jane Roe", Age: 31, ImageURL: "https://example.com/jane.jpg", Gender: "female"},
		{Username: "sam_lee", Name: "Sam Lee", Age: 28, ImageURL: "https://example.com/sam.jpg", Gender: "other"},
	}

	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		created, err := profileService.CreateProfile(ctx, p)
		if err != nil {
			log.Fatalf("seed profile %q: %v", p.Username, err)
		}
		ids = append(ids, created.ID)
		logger.Info("seeded profile", "id", created.ID, "username", created.Username)
	}

	comments := []dto.CreateCommentDTO{
		{ProfileID: ids[0], Title: "Thoughts on Personality", Description: "I think the user has an INFP personality.", SystemTag: "mbti"},
		{ProfileID: ids[0], Title: "Type 4 vibes", Description: "Strong individualist streak.", SystemTag: "enneagram"},
		{ProfileID: ids[1], Title: "Classic Leo", Description: "Definitely a Leo.", SystemTag: "zodiac"},
	}

	commentIDs := make([]string, 0, len(comments))
	for _, cm := range comments {
		id, err := commentService.AddComment(ctx, cm)
		if err != nil {
			log.Fatalf("seed comment %q: %v", cm.Title, err)
		}
		commentIDs = append(commentIDs, id)
		logger.Info("seeded comment", "id", id, "title", cm.Title)
	}

	// A couple of likes; re-liking is a no-op so re-running the seeder is safe.
	likes := []struct{ comment, profile string }{
		{commentIDs[0], ids[1]},
		{commentIDs[0], ids[2]},
		{commentIDs[2], ids[0]},
	}
	for _, l := range likes {
		if err := commentService.LikeComment(ctx, l.comment, l.profile); err != nil {
			log.Fatalf("seed like: %v", err)
		}
	}

	// Converge the denormalized counters with the ledger before reporting.
	for _, id := range commentIDs {
		count, err := commentService.ReconcileLikeCount(ctx, id)
		if err != nil {
			log.Fatalf("reconcile like count: %v", err)
		}
		logger.Info("verified like counter", "comment", id, "likes", count)
	}

	logger.Info("seeding complete", "profiles", len(ids), "comments", len(commentIDs), "likes", len(likes))
}
