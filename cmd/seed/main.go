package main

import (
	"context"
	"fmt"
	"time"

	"velvet/internal/model"
	"velvet/internal/repo/geo"
	"velvet/pkg/cache"
	"velvet/pkg/config"
	"velvet/pkg/database"
	"velvet/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	geoIndex := geo.NewRedisIndex(redisClient)

	if err := seedDatabase(db, geoIndex, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, geoIndex geo.Index, log *logger.Logger) error {
	ctx := context.Background()

	testUsers := []struct {
		email     string
		username  string
		password  string
		isCreator bool
		price     int64
		lat, lng  float64
	}{
		{"ruby@test.com", "ruby_noir", "password123", true, 999, 40.7128, -74.0060},
		{"violet@test.com", "violet_luxe", "password123", true, 1499, 40.7306, -73.9352},
		{"jade@test.com", "jade_after_dark", "password123", true, 0, 40.6782, -73.9442},
		{"sam@test.com", "sam_viewer", "password123", false, 0, 40.7580, -73.9855},
		{"alex@test.com", "alex_viewer", "password123", false, 0, 40.7484, -73.9857},
	}

	creatorIDs := make([]string, 0)
	viewerIDs := make([]string, 0)

	for _, u := range testUsers {
		var existing model.UserModel
		if err := db.Where("email = ?", u.email).First(&existing).Error; err == nil {
			log.Info("User %s already exists, skipping", u.username)
			continue
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)

		user := &model.UserModel{
			Email:        u.email,
			PasswordHash: string(hash),
		}
		if err := user.BeforeCreate(nil); err != nil {
			return fmt.Errorf("failed to generate user ID: %w", err)
		}
		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", u.username, err)
			continue
		}

		profile := &model.ProfileModel{
			ID:                user.ID,
			Username:          u.username,
			Bio:               fmt.Sprintf("Hi, I'm %s", u.username),
			IsCreator:         u.isCreator,
			IsVerified:        u.isCreator,
			SubscriptionPrice: u.price,
			BalanceCents:      5000,
			Latitude:          u.lat,
			Longitude:         u.lng,
			LastSeen:          time.Now(),
		}
		if err := db.Create(profile).Error; err != nil {
			log.Error("Failed to create profile for %s: %v", u.username, err)
			continue
		}

		if err := geoIndex.Upsert(ctx, user.ID, u.lat, u.lng); err != nil {
			log.Error("Failed to index location for %s: %v", u.username, err)
		}

		log.Info("Created user: %s (%s)", u.username, u.email)

		if u.isCreator {
			creatorIDs = append(creatorIDs, user.ID)
			for i := 0; i < 3; i++ {
				post := &model.PostModel{
					UserID:   user.ID,
					MediaURL: fmt.Sprintf("https://placekitten.com/640/%d", 480+i),
					Caption:  fmt.Sprintf("Post %d by %s", i+1, u.username),
					IsLocked: i > 0,
				}
				if err := db.Create(post).Error; err != nil {
					log.Error("Failed to create post for %s: %v", u.username, err)
				}
			}
		} else {
			viewerIDs = append(viewerIDs, user.ID)
		}
	}

	for _, viewerID := range viewerIDs {
		for _, creatorID := range creatorIDs {
			var existing model.SubscriptionModel
			if err := db.Where("subscriber_id = ? AND creator_id = ?", viewerID, creatorID).First(&existing).Error; err == nil {
				continue
			}
			sub := &model.SubscriptionModel{
				SubscriberID: viewerID,
				CreatorID:    creatorID,
			}
			if err := db.Create(sub).Error; err != nil {
				log.Error("Failed to create subscription: %v", err)
			}
		}
	}

	log.Info("Created test subscriptions")
	return nil
}
