package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"careercompass/internal/model"
)

// TestRecordRepo handles MongoDB operations for per-user test records.
// There is exactly one record per user, keyed by userId.
type TestRecordRepo interface {
	GetByUserID(ctx context.Context, userID string) (*model.TestRecord, error)
	Save(ctx context.Context, record *model.TestRecord) error
}

type testRecordRepo struct {
	collection *mongo.Collection
}

// NewTestRecordRepo creates a new test record repository
func NewTestRecordRepo(db *mongo.Database) TestRecordRepo {
	return &testRecordRepo{
		collection: db.Collection("test_records"),
	}
}

func (r *testRecordRepo) GetByUserID(ctx context.Context, userID string) (*model.TestRecord, error) {
	var record model.TestRecord
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Save upserts the whole record keyed by userId. Replaying the same
// record is a no-op apart from updatedAt (last-write-wins).
func (r *testRecordRepo) Save(ctx context.Context, record *model.TestRecord) error {
	record.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"userId": record.UserID}, record, opts)
	return err
}
