package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection = "users"
	notesCollection = "notes"
)

// caseInsensitive compares strings ignoring case but not diacritics.
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

// EnsureMongoIndexes creates the unique, case-insensitive indexes backing
// username and title uniqueness, plus the owner index used by the delete check.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetName("uniq_username").SetUnique(true).SetCollation(caseInsensitive),
	}); err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}

	notes := db.Collection(notesCollection)
	if _, err := notes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetName("uniq_title").SetUnique(true).SetCollation(caseInsensitive),
		},
		{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetName("idx_note_user"),
		},
	}); err != nil {
		return fmt.Errorf("failed to create note indexes: %w", err)
	}

	return nil
}

func translateMongoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicateKey
	default:
		return err
	}
}

var sortByCreation = options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
