// internal/domain/models/loginevent.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Login event statuses.
const (
	LoginSuccess = "success"
	LoginFailed  = "failed"
)

// LoginEvent captures a single admin login attempt, successful or not.
// Records are append-only; the application never mutates or deletes them.
// AdminID is nil when the attempted email matched no account.
type LoginEvent struct {
	AdminID       *primitive.ObjectID `bson:"admin_id,omitempty" json:"adminId,omitempty"`
	Email         string              `bson:"email" json:"email"`
	AdminName     string              `bson:"admin_name,omitempty" json:"adminName,omitempty"`
	CreatedAt     time.Time           `bson:"created_at" json:"createdAt"`
	IP            string              `bson:"ip" json:"ip"`
	UserAgent     string              `bson:"user_agent,omitempty" json:"userAgent,omitempty"`
	Status        string              `bson:"status" json:"status"` // success | failed
	FailureReason string              `bson:"failure_reason,omitempty" json:"failureReason,omitempty"`
}
