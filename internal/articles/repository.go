package articles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/ministry-cms/pkg/pagination"
	"github.com/JaimeStill/ministry-cms/pkg/query"
	"github.com/JaimeStill/ministry-cms/pkg/repository"
	"github.com/JaimeStill/ministry-cms/pkg/scripture"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an articles repository implementing System.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "articles"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Article], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort).WhereNull("DeletedAt")
	filters.Apply(qb)
	page.Apply(qb, "Title")

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.Limit)
	articles, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanArticle)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}

	result := pagination.NewPageResult(articles, total, page)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Article, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereNull("DeletedAt").
		BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanArticle)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Article, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO articles (title, image, category, full_text)
		VALUES ($1, $2, $3, $4)
		` + returning

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Article, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Title, cmd.Image, cmd.Category, cmd.FullText}, scanArticle)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("article created", "id", a.ID, "title", a.Title)
	return &a, nil
}

func (r *repo) UpdateMetadata(ctx context.Context, id uuid.UUID, cmd UpdateMetadataCommand) (*Article, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `
		UPDATE articles
		SET title = COALESCE($2, title),
			image = COALESCE($3, image),
			category = COALESCE($4, category),
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		` + returning

	args := []any{id, trimmed(cmd.Title), cmd.Image, trimmed(cmd.Category)}

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Article, error) {
		return repository.QueryOne(ctx, tx, q, args, scanArticle)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("article metadata updated", "id", a.ID)
	return &a, nil
}

func (r *repo) SetContent(ctx context.Context, id uuid.UUID, cmd SetContentCommand) (*Article, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `
		UPDATE articles
		SET full_text = $2, bible_passages = $3, image_assets = $4, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		` + returning

	args := []any{
		id,
		cmd.FullText,
		repository.JSON[[]scripture.Reference]{V: cmd.BiblePassages},
		repository.JSON[[]string]{V: cmd.ListOfImageAssets},
	}

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Article, error) {
		return repository.QueryOne(ctx, tx, q, args, scanArticle)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("article content set",
		"id", a.ID,
		"passages", len(a.BiblePassages),
		"images", len(a.ListOfImageAssets),
	)
	return &a, nil
}

func (r *repo) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*Article, error) {
	q := `
		UPDATE articles
		SET published = $2, updated_at = NOW()
		WHERE id = $1
		` + returning

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Article, error) {
		var deleted sql.NullTime
		err := tx.QueryRowContext(ctx, "SELECT deleted_at FROM articles WHERE id = $1 FOR UPDATE", id).Scan(&deleted)
		if err != nil {
			return Article{}, err
		}
		if deleted.Valid {
			return Article{}, ErrDeleted
		}
		return repository.QueryOne(ctx, tx, q, []any{id, published}, scanArticle)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("article publication changed", "id", a.ID, "published", a.Published)
	return &a, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := `
		UPDATE articles
		SET deleted_at = NOW(), published = FALSE, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, id)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("article deleted", "id", id)
	return nil
}

func (r *repo) Restore(ctx context.Context, id uuid.UUID) (*Article, error) {
	q := `
		UPDATE articles
		SET deleted_at = NULL, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NOT NULL
		` + returning

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Article, error) {
		return repository.QueryOne(ctx, tx, q, []any{id}, scanArticle)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("article restored", "id", a.ID)
	return &a, nil
}

func (r *repo) AddHit(ctx context.Context, id uuid.UUID, hit string) (*Hits, error) {
	cmd := AddHitCommand{Hit: hit}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `
		UPDATE articles
		SET hits = hits || jsonb_build_array($2::text)
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING hits`

	h, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Hits, error) {
		return repository.QueryOne(ctx, tx, q, []any{id, cmd.Hit}, scanHits)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Debug("article hit recorded", "id", id, "total", len(h.Hits))
	return &h, nil
}

func (r *repo) Hits(ctx context.Context, id uuid.UUID) (*Hits, error) {
	q := "SELECT hits FROM articles WHERE id = $1 AND deleted_at IS NULL"

	h, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanHits)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query hits: %w", err)
	}
	return &h, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
