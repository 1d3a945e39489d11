package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storedemo/store-api/internal/core/domain"
)

const collectionActivity = "activity_log"

// ActivityRepository appends customer activity audit records.
type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivity)}
}

func (r *ActivityRepository) Insert(ctx context.Context, ev *domain.ActivityEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, ev); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}
