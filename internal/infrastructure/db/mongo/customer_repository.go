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
	"github.com/storedemo/store-api/internal/core/ports"
)

const collectionCustomers = "customers"

// CustomerRepository persists customers in the customers collection.
type CustomerRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{db: db, col: db.Collection(collectionCustomers)}
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Customer
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Customer
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer by email: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context, q ports.PageQuery) ([]*domain.Customer, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(q.Offset())).
		SetLimit(int64(q.Size))
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.Customer
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("decode customers: %w", err)
	}
	return items, total, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionCustomers)
	if err != nil {
		return nil, err
	}
	c.ID = id

	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return nil, fmt.Errorf("insert customer: %w", err)
	}
	return c, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) ExistsByDNI(ctx context.Context, dni string, excludeID int) (bool, error) {
	return r.exists(ctx, "dni", dni, excludeID)
}

func (r *CustomerRepository) ExistsByEmail(ctx context.Context, email string, excludeID int) (bool, error) {
	return r.exists(ctx, "email", email, excludeID)
}

func (r *CustomerRepository) exists(ctx context.Context, field, value string, excludeID int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{field: value}
	if excludeID != 0 {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	n, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("customer exists check: %w", err)
	}
	return n > 0, nil
}

// EnsureIndexes creates the unique indexes backing the dni/email invariants.
func (r *CustomerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "dni", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
