package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/cyberhouse-gh/cyberhouse-portal/internal/projects/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/subscription"
)

const collection = "projects"

// ProjectRepository stores showcase projects in Firestore.
type ProjectRepository struct {
	client *firestore.Client
}

func NewProjectRepository(client *firestore.Client) *ProjectRepository {
	return &ProjectRepository{client: client}
}

// Create adds the project and sets its platform-issued id.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	ref, _, err := r.client.Collection(collection).Add(ctx, p)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	p.ID = ref.ID
	return nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	it := r.newestFirst().Documents(ctx)
	defer it.Stop()

	var out []domain.Project
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		p, err := decode(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Watch pushes the full ordered project list on every change until the
// subscription is stopped.
func (r *ProjectRepository) Watch(ctx context.Context) *subscription.Subscription[[]domain.Project] {
	query := r.newestFirst()

	return subscription.Start(ctx, func(ctx context.Context, emit subscription.Emit[[]domain.Project]) error {
		it := query.Snapshots(ctx)
		defer it.Stop()

		for {
			qs, err := it.Next()
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watch projects: %w", err)
			}

			docs, err := qs.Documents.GetAll()
			if err != nil {
				return fmt.Errorf("read project snapshot: %w", err)
			}

			list := make([]domain.Project, 0, len(docs))
			for _, snap := range docs {
				p, err := decode(snap)
				if err != nil {
					return err
				}
				list = append(list, p)
			}
			if !emit(list) {
				return nil
			}
		}
	})
}

func (r *ProjectRepository) newestFirst() firestore.Query {
	return r.client.Collection(collection).OrderBy("createdAt", firestore.Desc)
}

func decode(snap *firestore.DocumentSnapshot) (domain.Project, error) {
	var p domain.Project
	if err := snap.DataTo(&p); err != nil {
		return p, fmt.Errorf("decode project %s: %w", snap.Ref.ID, err)
	}
	p.ID = snap.Ref.ID
	return p, nil
}
