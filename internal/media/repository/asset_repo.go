package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/media/domain"
)

const collection = "media"

type AssetRepository struct {
	client *firestore.Client
}

func NewAssetRepository(client *firestore.Client) *AssetRepository {
	return &AssetRepository{client: client}
}

func (r *AssetRepository) Create(ctx context.Context, a *domain.Asset) error {
	ref, _, err := r.client.Collection(collection).Add(ctx, a)
	if err != nil {
		return fmt.Errorf("create media record: %w", err)
	}
	a.ID = ref.ID
	return nil
}

func (r *AssetRepository) List(ctx context.Context) ([]domain.Asset, error) {
	it := r.client.Collection(collection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer it.Stop()

	var out []domain.Asset
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list media: %w", err)
		}
		var a domain.Asset
		if err := snap.DataTo(&a); err != nil {
			return nil, fmt.Errorf("decode media %s: %w", snap.Ref.ID, err)
		}
		a.ID = snap.Ref.ID
		out = append(out, a)
	}
	return out, nil
}
