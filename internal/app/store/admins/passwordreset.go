// internal/app/store/admins/passwordreset.go
package adminstore

// Reset-token lifecycle. A pending reset lives entirely on the admin
// document: token hash (SHA-256 of the raw token; the raw token is never
// persisted), expiry, attempts counter, and the per-account cooldown
// stamp. Consuming, expiring, or exhausting a token clears all of it.

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/treadhub/treadhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const (
	// ResetTokenLength is the raw token size in bytes (32 bytes = 64 hex chars).
	ResetTokenLength = 32
	// ResetTokenExpiry is how long a reset token stays valid.
	ResetTokenExpiry = time.Hour
	// ResetCooldown is the minimum gap between reset requests per account.
	ResetCooldown = 20 * time.Minute
	// MaxResetAttempts is the maximum number of validation attempts per token.
	MaxResetAttempts = 5
)

var (
	// ErrResetCooldown is returned when a reset was requested within the
	// cooldown window. Handlers must answer with the same generic message
	// as a successful request.
	ErrResetCooldown = errors.New("password reset requested too recently")
	// ErrInvalidOrExpiredToken covers every validation failure: no pending
	// token, hash mismatch, expiry, and exhausted attempts. They are not
	// distinguished at the API boundary.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")
)

// RequestReset starts a reset for the given admin: generates a random raw
// token, stores its SHA-256 hash with a fresh expiry and a zeroed attempts
// counter, and stamps the cooldown. The raw token is returned exactly once
// for emailing.
//
// Returns ErrResetCooldown without touching the record if the previous
// request was under ResetCooldown ago; any pending token stays as it was.
func (s *Store) RequestReset(ctx context.Context, a *models.Admin) (string, error) {
	now := time.Now().UTC()

	if a.LastPasswordResetRequest != nil && now.Sub(*a.LastPasswordResetRequest) < ResetCooldown {
		return "", ErrResetCooldown
	}

	raw := generateResetToken()
	expires := now.Add(ResetTokenExpiry)

	_, err := s.c.UpdateOne(ctx, bson.M{"_id": a.ID}, bson.M{
		"$set": bson.M{
			"reset_password_token_hash":   hashResetToken(raw),
			"reset_password_expires_at":   expires,
			"reset_password_attempts":     0,
			"last_password_reset_request": now,
		},
	})
	if err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}
	return raw, nil
}

// FindByResetToken locates the admin whose pending reset matches rawToken.
// Used at the HTTP boundary, where only the token is known. Returns
// ErrInvalidOrExpiredToken when no record matches.
func (s *Store) FindByResetToken(ctx context.Context, rawToken string) (*models.Admin, error) {
	if rawToken == "" {
		return nil, ErrInvalidOrExpiredToken
	}
	var a models.Admin
	err := s.c.FindOne(ctx, bson.M{
		"reset_password_token_hash": hashResetToken(rawToken),
	}).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrInvalidOrExpiredToken
		}
		return nil, err
	}
	return &a, nil
}

// ValidateResetToken checks rawToken against the admin's pending reset.
// Every call counts an attempt, mismatch or not, so repeated checks alone
// exhaust the budget; only the >= MaxResetAttempts gate runs before the
// increment, so an exhausted token cannot be pushed further. Expired or
// exhausted tokens are cleared as a side effect.
//
// Two concurrent calls can both pass the gate before either increment
// lands; the $inc itself never loses updates, so the window is one extra
// attempt at worst. Accepted.
func (s *Store) ValidateResetToken(ctx context.Context, a *models.Admin, rawToken string) error {
	if a.ResetPasswordTokenHash == "" {
		return ErrInvalidOrExpiredToken
	}

	if a.ResetPasswordAttempts >= MaxResetAttempts {
		_ = s.clearResetFields(ctx, a.ID)
		return ErrInvalidOrExpiredToken
	}

	a.ResetPasswordAttempts++
	_, _ = s.c.UpdateOne(ctx, bson.M{"_id": a.ID},
		bson.M{"$inc": bson.M{"reset_password_attempts": 1}})

	if a.ResetPasswordExpiresAt == nil || !a.ResetPasswordExpiresAt.After(time.Now().UTC()) {
		_ = s.clearResetFields(ctx, a.ID)
		return ErrInvalidOrExpiredToken
	}

	if subtle.ConstantTimeCompare(
		[]byte(hashResetToken(rawToken)), []byte(a.ResetPasswordTokenHash)) != 1 {
		return ErrInvalidOrExpiredToken
	}

	return nil
}

// ConsumeResetToken re-validates the token and, when valid, replaces the
// password hash and clears all reset fields in a single update. On any
// validation failure the record is left in whatever state validation's
// side effects produced.
func (s *Store) ConsumeResetToken(ctx context.Context, a *models.Admin, rawToken, newPassword string) error {
	if err := s.ValidateResetToken(ctx, a, rawToken); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), BcryptCost)
	if err != nil {
		return err
	}

	_, err = s.c.UpdateOne(ctx, bson.M{"_id": a.ID}, bson.M{
		"$set": bson.M{
			"password_hash": string(hash),
			"updated_at":    time.Now().UTC(),
		},
		"$unset": bson.M{
			"reset_password_token_hash": "",
			"reset_password_expires_at": "",
			"reset_password_attempts":   "",
		},
	})
	if err != nil {
		return fmt.Errorf("consume reset token: %w", err)
	}
	return nil
}

// ClearResetToken removes any pending reset from the admin. Used when a
// reset email fails to send, so an unusable token does not linger.
func (s *Store) ClearResetToken(ctx context.Context, id primitive.ObjectID) error {
	return s.clearResetFields(ctx, id)
}

func (s *Store) clearResetFields(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$unset": bson.M{
			"reset_password_token_hash": "",
			"reset_password_expires_at": "",
			"reset_password_attempts":   "",
		},
	})
	return err
}

// generateResetToken generates a random reset token.
// Panics if the system's cryptographic random number generator fails.
func generateResetToken() string {
	b := make([]byte, ResetTokenLength)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand.Read failed: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// hashResetToken returns the SHA-256 hex of a raw token. The token is
// high-entropy, so a fast hash is enough and allows lookup by hash.
func hashResetToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}
