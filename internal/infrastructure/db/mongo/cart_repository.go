package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storedemo/store-api/internal/core/domain"
)

const collectionCartLines = "cart_lines"

// CartRepository persists one document per (customer, product) cart line.
type CartRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{db: db, col: db.Collection(collectionCartLines)}
}

func (r *CartRepository) FindByCustomer(ctx context.Context, customerID int) ([]*domain.CartLine, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"customer_id": customerID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find cart lines: %w", err)
	}
	defer cur.Close(ctx)

	var lines []*domain.CartLine
	if err := cur.All(ctx, &lines); err != nil {
		return nil, fmt.Errorf("decode cart lines: %w", err)
	}
	return lines, nil
}

func (r *CartRepository) FindLine(ctx context.Context, customerID, productID int) (*domain.CartLine, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var line domain.CartLine
	err := r.col.FindOne(ctx, bson.M{"customer_id": customerID, "product_id": productID}).Decode(&line)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("find cart line: %w", err)
	}
	return &line, nil
}

func (r *CartRepository) Upsert(ctx context.Context, line *domain.CartLine) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if line.ID == 0 {
		id, err := nextID(ctx, r.db, collectionCartLines)
		if err != nil {
			return err
		}
		line.ID = id
	}

	_, err := r.col.ReplaceOne(ctx,
		bson.M{"customer_id": line.CustomerID, "product_id": line.ProductID},
		line,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert cart line: %w", err)
	}
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, customerID, productID int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"customer_id": customerID, "product_id": productID}); err != nil {
		return fmt.Errorf("delete cart line: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique (customer, product) index the upsert
// relies on.
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "customer_id", Value: 1}, {Key: "product_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
