// Seeds demo accounts so the submission pipeline can be exercised
// locally without going through the email verification flow.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	appconfig "careercompass/config"
	"careercompass/internal/model"
)

func main() {
	_ = godotenv.Load()
	cfg := appconfig.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	users := client.Database(cfg.MongoDatabase).Collection("users")

	demo := []model.User{
		{
			Email:    "demo@careercompass.local",
			Name:     "Demo User",
			Verified: true,
			// Mix of canonical and historical field names, so the
			// profile compiler's alias resolution is exercised too.
			Profile: map[string]interface{}{
				"12thTargetCountry": "Canada",
				"careerGoal":        "masters abroad",
				"preferredCourse":   "Computer Science",
				"stream":            "Science",
				"hobbies":           "chess, sketching",
			},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		{
			Email:     "unverified@careercompass.local",
			Name:      "Unverified User",
			Verified:  false,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	for _, u := range demo {
		filter := bson.M{"email": u.Email}
		update := bson.M{"$setOnInsert": u}
		opts := options.Update().SetUpsert(true)
		if _, err := users.UpdateOne(ctx, filter, update, opts); err != nil {
			log.Fatalf("failed to seed %s: %v", u.Email, err)
		}
		log.Printf("seeded %s", u.Email)
	}
}
