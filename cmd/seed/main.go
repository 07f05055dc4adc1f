package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Vrushabh-003/Personal-Portfolio/internal/auth"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/config"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/db"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/projects"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedProject struct {
	Title        string
	Description  string
	Technologies []string
	LiveURL      string
	RepoURL      string
	MediaURL     string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("seed admin: ADMIN_EMAIL or ADMIN_PASSWORD missing, skipping")
	} else if err := seedAdminUser(ctx, cols, cfg.AdminEmail, cfg.AdminPassword, cfg.Timezone); err != nil {
		log.Fatalf("seed admin error: %v", err)
	}

	count, err := cols.Projects.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatal(err)
	}
	if count > 0 {
		log.Println("seed projects: collection not empty, skipping")
		log.Println("seed completed")
		return
	}

	samples := []seedProject{
		{
			Title:        "Student Feedback System",
			Description:  "A web-based platform to collect and manage student feedback on faculty and courses.",
			Technologies: []string{"React.js", "Supabase", "Node.js", "Express.js"},
			LiveURL:      "https://siesgstfeedback.netlify.app",
			MediaURL:     "https://via.placeholder.com/400x250/1a202c/ffffff?text=Feedback+System",
		},
		{
			Title:        "AI Security System",
			Description:  "An AI-powered security system featuring real-time facial recognition and automatic number plate recognition.",
			Technologies: []string{"SQL", "ANPR", "OpenCV", "CNN", "OCR", "Streamlit"},
			MediaURL:     "https://via.placeholder.com/400x250/1a202c/ffffff?text=AI+Security",
		},
		{
			Title:        "Home Energy Monitoring System",
			Description:  "An embedded IoT system for tracking real-time energy consumption in homes.",
			Technologies: []string{"Arduino", "C", "Python", "PHP", "MySQL"},
			MediaURL:     "https://via.placeholder.com/400x250/1a202c/ffffff?text=HEMS",
		},
	}

	now := time.Now().In(cfg.Timezone)
	for i, sample := range samples {
		item := projects.Project{
			ID:           primitive.NewObjectID().Hex(),
			Title:        sample.Title,
			Description:  sample.Description,
			Technologies: sample.Technologies,
			LiveURL:      sample.LiveURL,
			RepoURL:      sample.RepoURL,
			Media:        []projects.Media{{URL: sample.MediaURL, Type: "image"}},
			DisplayOrder: i,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := cols.Projects.InsertOne(ctx, item); err != nil {
			log.Fatalf("seed error for %s: %v", sample.Title, err)
		}
	}

	log.Println("seed completed")
}

func seedAdminUser(ctx context.Context, cols *db.Collections, email, password string, loc *time.Location) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	now := time.Now().In(loc)
	filter := bson.M{"email": email}
	update := bson.M{
		"$set": bson.M{
			"passwordHash": hash,
			"updatedAt":    now,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID().Hex(),
			"email":     email,
			"createdAt": now,
		},
	}
	_, err = cols.Users.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
