// internal/app/store/admins/adminstore.go
package adminstore

import (
	"context"
	"errors"
	"time"

	"github.com/treadhub/treadhub/internal/app/system/normalize"
	"github.com/treadhub/treadhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost for hashing admin passwords.
const BcryptCost = 10

var (
	// ErrDuplicateEmail is returned when attempting to create an admin with
	// an email that already exists (case-insensitive).
	ErrDuplicateEmail = errors.New("an admin with this email already exists")
	errBadRole        = errors.New(`role must be "admin"|"super_admin"`)
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("admins")}
}

// Create inserts a new admin. The password is bcrypt-hashed here, at the
// call site, never via an implicit persistence hook. An empty role
// defaults to "admin".
func (s *Store) Create(ctx context.Context, email, password, name, role string) (models.Admin, error) {
	a := models.Admin{
		ID:    primitive.NewObjectID(),
		Email: normalize.Email(email),
		Name:  normalize.Name(name),
		Role:  normalize.Role(role),
	}
	if a.Role == "" {
		a.Role = models.RoleAdmin
	}

	switch a.Role {
	case models.RoleAdmin, models.RoleSuperAdmin:
		// ok
	default:
		return models.Admin{}, errBadRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return models.Admin{}, err
	}
	a.PasswordHash = string(hash)

	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Admin{}, ErrDuplicateEmail
		}
		return models.Admin{}, err
	}
	return a, nil
}

// ComparePassword checks candidate against the stored bcrypt hash.
// Returns false on mismatch, never an error.
func (s *Store) ComparePassword(a *models.Admin, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(candidate)) == nil
}

// UpdatePassword replaces the stored bcrypt hash for id.
// Returns mongo.ErrNoDocuments if no admin matches.
func (s *Store) UpdatePassword(ctx context.Context, id primitive.ObjectID, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), BcryptCost)
	if err != nil {
		return err
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"password_hash": string(hash),
			"updated_at":    time.Now().UTC(),
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// GetByEmail looks up an admin by case-insensitive email.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByID loads an admin by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	var a models.Admin
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns all admins, newest first.
func (s *Store) List(ctx context.Context) ([]models.Admin, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var out []models.Admin
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes an admin by ID.
// Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the total number of admin records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
