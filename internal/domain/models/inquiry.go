// internal/domain/models/inquiry.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Inquiry statuses.
const (
	InquiryNew     = "new"
	InquiryReplied = "replied"
)

// ContactInquiry is a customer message submitted through the public
// contact form, with reply tracking once an admin answers it by email.
type ContactInquiry struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject string             `bson:"subject" json:"subject"`
	Message string             `bson:"message" json:"message"`
	Status  string             `bson:"status" json:"status"` // new | replied

	ReplyMessage string              `bson:"reply_message,omitempty" json:"replyMessage,omitempty"`
	RepliedBy    *primitive.ObjectID `bson:"replied_by,omitempty" json:"repliedBy,omitempty"`
	RepliedAt    *time.Time          `bson:"replied_at,omitempty" json:"repliedAt,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
