package articles

import (
	"database/sql"

	"github.com/JaimeStill/ministry-cms/pkg/repository"
	"github.com/JaimeStill/ministry-cms/pkg/scripture"
)

func scanArticle(s repository.Scanner) (Article, error) {
	var (
		a        Article
		passages repository.JSON[[]scripture.Reference]
		assets   repository.JSON[[]string]
		deleted  sql.NullTime
	)

	err := s.Scan(
		&a.ID, &a.Title, &a.Image, &a.FullText, &a.Category,
		&passages, &assets, &a.Published, &deleted, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return a, err
	}

	a.BiblePassages = passages.V
	if a.BiblePassages == nil {
		a.BiblePassages = []scripture.Reference{}
	}
	a.ListOfImageAssets = assets.V
	if a.ListOfImageAssets == nil {
		a.ListOfImageAssets = []string{}
	}
	if deleted.Valid {
		a.IsDeleted = true
		a.DeletedAt = &deleted.Time
	}
	return a, nil
}

func scanHits(s repository.Scanner) (Hits, error) {
	var hits repository.JSON[[]string]
	if err := s.Scan(&hits); err != nil {
		return Hits{}, err
	}
	if hits.V == nil {
		hits.V = []string{}
	}
	return Hits{Hits: hits.V}, nil
}
