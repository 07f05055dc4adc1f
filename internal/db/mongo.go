package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	Projects        *mongo.Collection
	Blogs           *mongo.Collection
	Achievements    *mongo.Collection
	Experiences     *mongo.Collection
	Leadership      *mongo.Collection
	Users           *mongo.Collection
	ContactMessages *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	db := client.Database(dbName)

	cols := &Collections{
		Projects:        db.Collection("projects"),
		Blogs:           db.Collection("blogs"),
		Achievements:    db.Collection("achievements"),
		Experiences:     db.Collection("experiences"),
		Leadership:      db.Collection("leadership"),
		Users:           db.Collection("users"),
		ContactMessages: db.Collection("contact_messages"),
	}

	return client, cols, nil
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := cols.Blogs.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "displayOrder", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Users.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	for _, col := range []*mongo.Collection{cols.Projects, cols.Achievements, cols.Experiences, cols.Leadership} {
		_, err = col.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "displayOrder", Value: 1}},
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}
