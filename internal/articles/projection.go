package articles

import "github.com/JaimeStill/ministry-cms/pkg/query"

var projection = query.
	NewProjectionMap("public", "articles", "a").
	Project("id", "ID").
	Project("title", "Title").
	Project("image", "Image").
	Project("full_text", "FullText").
	Project("category", "Category").
	Project("bible_passages", "BiblePassages").
	Project("image_assets", "ListOfImageAssets").
	Project("published", "Published").
	Project("deleted_at", "DeletedAt").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

const defaultSort = "-CreatedAt"

const returning = `RETURNING id, title, image, full_text, category, bible_passages,
		image_assets, published, deleted_at, created_at, updated_at`
