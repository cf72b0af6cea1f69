// internal/domain/models/admin.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin roles.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Admin represents a back-office user of the marketplace admin panel.
//
// PasswordHash and the reset_* fields never leave the server: API
// responses use AdminView, which has no fields for them at all.
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"` // stored normalized (lowercase, trimmed)
	PasswordHash string             `bson:"password_hash"`
	Name         string             `bson:"name"`
	Role         string             `bson:"role"` // admin | super_admin

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`

	// Password-reset lifecycle. All four are unset while no reset is
	// pending; TokenHash is the SHA-256 hex of the raw token, never the
	// token itself.
	LastPasswordResetRequest *time.Time `bson:"last_password_reset_request,omitempty"`
	ResetPasswordTokenHash   string     `bson:"reset_password_token_hash,omitempty"`
	ResetPasswordExpiresAt   *time.Time `bson:"reset_password_expires_at,omitempty"`
	ResetPasswordAttempts    int        `bson:"reset_password_attempts,omitempty"`
}

// AdminView is the sanitized shape of an Admin for API responses.
type AdminView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// View returns the sanitized representation of a.
func (a *Admin) View() AdminView {
	return AdminView{
		ID:        a.ID.Hex(),
		Email:     a.Email,
		Name:      a.Name,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// IsSuperAdmin reports whether a may manage other admin accounts.
func (a *Admin) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}
