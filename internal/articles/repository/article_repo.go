package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/articles/domain"
)

const collection = "articles"

type ArticleRepository struct {
	client *firestore.Client
}

func NewArticleRepository(client *firestore.Client) *ArticleRepository {
	return &ArticleRepository{client: client}
}

// Create writes the article under its own id.
func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	if _, err := r.client.Collection(collection).Doc(a.ID).Set(ctx, a); err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

func (r *ArticleRepository) Get(ctx context.Context, id string) (*domain.Article, error) {
	snap, err := r.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	var a domain.Article
	if err := snap.DataTo(&a); err != nil {
		return nil, fmt.Errorf("decode article %s: %w", id, err)
	}
	a.ID = snap.Ref.ID
	return &a, nil
}

// ListByDateDesc returns every article, newest first.
func (r *ArticleRepository) ListByDateDesc(ctx context.Context) ([]domain.Article, error) {
	it := r.client.Collection(collection).OrderBy("date", firestore.Desc).Documents(ctx)
	defer it.Stop()

	var out []domain.Article
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list articles: %w", err)
		}

		var a domain.Article
		if err := snap.DataTo(&a); err != nil {
			return nil, fmt.Errorf("decode article %s: %w", snap.Ref.ID, err)
		}
		a.ID = snap.Ref.ID
		out = append(out, a)
	}
	return out, nil
}
