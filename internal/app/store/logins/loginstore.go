// internal/app/store/logins/loginstore.go
package loginstore

// Every admin login attempt is recorded, successes and failures alike.
// Failure events keep the submitted email even when no account matches,
// so probing shows up in the audit trail.

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/treadhub/treadhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("login_events")}
}

// Create inserts a LoginEvent. If CreatedAt is zero, it's set to time.Now().UTC().
func (s *Store) Create(ctx context.Context, ev models.LoginEvent) error {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, ev)
	return err
}

// RecordSuccess builds a success event from the HTTP request and inserts it.
// It extracts client IP (X-Forwarded-For → X-Real-IP → RemoteAddr) and user agent.
func (s *Store) RecordSuccess(ctx context.Context, r *http.Request, a *models.Admin) error {
	return s.Create(ctx, models.LoginEvent{
		AdminID:   &a.ID,
		Email:     a.Email,
		AdminName: a.Name,
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
		Status:    models.LoginSuccess,
	})
}

// RecordFailure inserts a failure event. admin may be nil when the email
// matched no account; the submitted email is recorded either way.
func (s *Store) RecordFailure(ctx context.Context, r *http.Request, email, reason string, a *models.Admin) error {
	ev := models.LoginEvent{
		Email:         email,
		IP:            clientIP(r),
		UserAgent:     r.UserAgent(),
		Status:        models.LoginFailed,
		FailureReason: reason,
	}
	if a != nil {
		ev.AdminID = &a.ID
		ev.AdminName = a.Name
	}
	return s.Create(ctx, ev)
}

// Recent returns the latest events, newest first, capped at limit.
func (s *Store) Recent(ctx context.Context, limit int64) ([]models.LoginEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []models.LoginEvent
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// RecentByEmail returns the latest events for one account, newest first.
func (s *Store) RecentByEmail(ctx context.Context, email string, limit int64) ([]models.LoginEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []models.LoginEvent
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func clientIP(r *http.Request) string {
	// Respect common proxy headers first
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// XFF may contain a list; first is original client
		parts := strings.Split(xff, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	if xr := r.Header.Get("X-Real-IP"); xr != "" {
		return strings.TrimSpace(xr)
	}
	// Fallback: parse RemoteAddr "ip:port"
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
