package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/technotes-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNoteRepository is a MongoDB implementation of NoteRepository
type MongoNoteRepository struct {
	collection *mongo.Collection
}

// NewMongoNoteRepository creates a NoteRepository backed by the notes collection
func NewMongoNoteRepository(db *mongo.Database) NoteRepository {
	return &MongoNoteRepository{collection: db.Collection(notesCollection)}
}

func (r *MongoNoteRepository) List(ctx context.Context) ([]models.Note, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, sortByCreation)
	if err != nil {
		return nil, err
	}

	notes := []models.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *MongoNoteRepository) FindByID(ctx context.Context, id string) (*models.Note, error) {
	var note models.Note
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&note); err != nil {
		return nil, translateMongoError(err)
	}
	return &note, nil
}

func (r *MongoNoteRepository) FindByTitle(ctx context.Context, title string) (*models.Note, error) {
	var note models.Note
	err := r.collection.FindOne(ctx,
		bson.M{"title": title},
		options.FindOne().SetCollation(caseInsensitive),
	).Decode(&note)
	if err != nil {
		return nil, translateMongoError(err)
	}
	return &note, nil
}

func (r *MongoNoteRepository) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"user": userID}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MongoNoteRepository) Create(ctx context.Context, note *models.Note) error {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, note)
	return translateMongoError(err)
}

func (r *MongoNoteRepository) Update(ctx context.Context, note *models.Note) error {
	note.UpdatedAt = time.Now().UTC()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": note.ID}, note)
	if err != nil {
		return translateMongoError(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoNoteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
