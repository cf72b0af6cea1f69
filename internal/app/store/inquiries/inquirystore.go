// internal/app/store/inquiries/inquirystore.go
package inquirystore

import (
	"context"
	"errors"
	"time"

	"github.com/treadhub/treadhub/internal/app/system/normalize"
	"github.com/treadhub/treadhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrAlreadyReplied is returned when marking an inquiry replied that has
// already been answered.
var ErrAlreadyReplied = errors.New("inquiry has already been replied to")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contact_inquiries")}
}

// Create inserts a new inquiry with status "new".
func (s *Store) Create(ctx context.Context, name, email, phone, subject, message string) (models.ContactInquiry, error) {
	now := time.Now().UTC()
	inq := models.ContactInquiry{
		ID:        primitive.NewObjectID(),
		Name:      normalize.Name(name),
		Email:     normalize.Email(email),
		Phone:     normalize.Name(phone),
		Subject:   normalize.Name(subject),
		Message:   message,
		Status:    models.InquiryNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.c.InsertOne(ctx, inq); err != nil {
		return models.ContactInquiry{}, err
	}
	return inq, nil
}

// List returns inquiries newest first. status filters to "new" or
// "replied"; empty returns everything.
func (s *Store) List(ctx context.Context, status string) ([]models.ContactInquiry, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var inquiries []models.ContactInquiry
	if err := cur.All(ctx, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

// GetByID loads an inquiry by ObjectID.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ContactInquiry, error) {
	var inq models.ContactInquiry
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&inq); err != nil {
		return nil, err
	}
	return &inq, nil
}

// MarkReplied records the reply on a new inquiry. The status guard in the
// filter makes the transition first-wins under concurrent replies.
func (s *Store) MarkReplied(ctx context.Context, id primitive.ObjectID, replyMessage string, repliedBy primitive.ObjectID) error {
	now := time.Now().UTC()
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.InquiryNew},
		bson.M{"$set": bson.M{
			"status":        models.InquiryReplied,
			"reply_message": replyMessage,
			"replied_by":    repliedBy,
			"replied_at":    now,
			"updated_at":    now,
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Either the inquiry doesn't exist or it was already answered.
		if _, err := s.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrAlreadyReplied
	}
	return nil
}

// CountByStatus returns the number of inquiries with the given status.
func (s *Store) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"status": status})
}
