package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
)

const collection = "users"

// UserRepository keeps the users/{uid} profile documents.
type UserRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) *UserRepository {
	return &UserRepository{client: client}
}

// Upsert writes users/{uid}.
func (r *UserRepository) Upsert(ctx context.Context, uid string, p domain.Profile) error {
	if _, err := r.client.Collection(collection).Doc(uid).Set(ctx, p); err != nil {
		return fmt.Errorf("upsert user %s: %w", uid, err)
	}
	return nil
}
