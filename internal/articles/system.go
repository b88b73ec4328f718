package articles

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/ministry-cms/pkg/pagination"
)

// System defines article storage and retrieval operations. Deleted articles
// are invisible to every operation except Restore.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Article], error)
	Find(ctx context.Context, id uuid.UUID) (*Article, error)
	Create(ctx context.Context, cmd CreateCommand) (*Article, error)
	UpdateMetadata(ctx context.Context, id uuid.UUID, cmd UpdateMetadataCommand) (*Article, error)
	SetContent(ctx context.Context, id uuid.UUID, cmd SetContentCommand) (*Article, error)
	SetPublished(ctx context.Context, id uuid.UUID, published bool) (*Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) (*Article, error)
	AddHit(ctx context.Context, id uuid.UUID, hit string) (*Hits, error)
	Hits(ctx context.Context, id uuid.UUID) (*Hits, error)
}
