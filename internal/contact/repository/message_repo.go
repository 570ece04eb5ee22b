package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/contact/domain"
)

const collection = "contactMessages"

type MessageRepository struct {
	client *firestore.Client
}

func NewMessageRepository(client *firestore.Client) *MessageRepository {
	return &MessageRepository{client: client}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) (string, error) {
	ref, _, err := r.client.Collection(collection).Add(ctx, m)
	if err != nil {
		return "", fmt.Errorf("create contact message: %w", err)
	}
	return ref.ID, nil
}
