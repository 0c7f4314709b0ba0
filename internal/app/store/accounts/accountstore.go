package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campussphere/campussphere/internal/app/system/normalize"
	"github.com/campussphere/campussphere/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateEmail is returned by Create when the email is taken.
var ErrDuplicateEmail = errors.New("email already registered")

// Store provides access to the accounts collection.
type Store struct {
	c *mongo.Collection
}

// New returns a Store backed by db.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("accounts")}
}

// EnsureIndexes creates the unique email index. Safe to run on every
// startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure accounts indexes: %w", err)
	}
	return nil
}

// Create inserts a new account. The email is normalized for the
// unique lookup.
func (s *Store) Create(ctx context.Context, a models.Account) (models.Account, error) {
	a.Email = normalize.Email(a.Email)
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	res, err := s.c.InsertOne(ctx, a)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Account{}, ErrDuplicateEmail
		}
		return models.Account{}, fmt.Errorf("insert account: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return a, nil
}

// FindByEmail looks up an account by normalized email.
// mongo.ErrNoDocuments when absent.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	var a models.Account
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&a)
	if err != nil {
		return models.Account{}, err
	}
	return a, nil
}

// FindByID looks up an account by id.
func (s *Store) FindByID(ctx context.Context, id primitive.ObjectID) (models.Account, error) {
	var a models.Account
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		return models.Account{}, err
	}
	return a, nil
}

// SetStatus updates an account's verification status.
func (s *Store) SetStatus(ctx context.Context, email, status string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": normalize.Email(email)},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("set account status: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetSuspended flips an account's suspended flag.
func (s *Store) SetSuspended(ctx context.Context, email string, suspended bool) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": normalize.Email(email)},
		bson.M{"$set": bson.M{"suspended": suspended}})
	if err != nil {
		return fmt.Errorf("set account suspended: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdatePasswordHash replaces an account's password hash.
func (s *Store) UpdatePasswordHash(ctx context.Context, id primitive.ObjectID, hash string) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"password_hash": hash}})
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	return nil
}

// Count returns the number of accounts.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
