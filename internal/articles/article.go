// Package articles stores articles and the content produced by document
// conversion: the article HTML, its scripture passages, and its image URLs.
package articles

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/ministry-cms/pkg/scripture"
)

// Article is a published or draft piece of content.
type Article struct {
	ID                uuid.UUID             `json:"id"`
	Title             string                `json:"title"`
	Image             string                `json:"image"`
	FullText          string                `json:"fullText"`
	Category          string                `json:"category"`
	BiblePassages     []scripture.Reference `json:"biblePassages"`
	ListOfImageAssets []string              `json:"listOfImageAssets"`
	Published         bool                  `json:"published"`
	IsDeleted         bool                  `json:"isDeleted"`
	DeletedAt         *time.Time            `json:"deletedAt,omitempty"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}

// Hits lists the hit markers recorded for an article.
type Hits struct {
	Hits []string `json:"hits"`
}

// CreateCommand contains the data required to create an article.
type CreateCommand struct {
	Title    string `json:"title"`
	Image    string `json:"image"`
	Category string `json:"category"`
	FullText string `json:"fullText"`
}

// Validate trims the command and checks required fields.
func (c *CreateCommand) Validate() error {
	c.Title = strings.TrimSpace(c.Title)
	c.Category = strings.TrimSpace(c.Category)

	if c.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if c.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	return nil
}

// UpdateMetadataCommand changes the fields that are set and leaves the rest.
type UpdateMetadataCommand struct {
	Title    *string `json:"title,omitempty"`
	Image    *string `json:"image,omitempty"`
	Category *string `json:"category,omitempty"`
}

// Validate rejects fields that are set to blank values where a value is required.
func (c *UpdateMetadataCommand) Validate() error {
	if c.Title != nil && strings.TrimSpace(*c.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
	}
	if c.Category != nil && strings.TrimSpace(*c.Category) == "" {
		return fmt.Errorf("%w: category cannot be empty", ErrInvalidInput)
	}
	return nil
}

// SetContentCommand replaces an article's converted content.
type SetContentCommand struct {
	FullText          string                `json:"fullText"`
	BiblePassages     []scripture.Reference `json:"biblePassages"`
	ListOfImageAssets []string              `json:"listOfImageAssets"`
}

// Validate requires full text and replaces nil lists with empty ones.
func (c *SetContentCommand) Validate() error {
	if strings.TrimSpace(c.FullText) == "" {
		return fmt.Errorf("%w: fullText is required", ErrInvalidInput)
	}
	if c.BiblePassages == nil {
		c.BiblePassages = []scripture.Reference{}
	}
	if c.ListOfImageAssets == nil {
		c.ListOfImageAssets = []string{}
	}
	return nil
}

// SetPublishedCommand toggles publication.
type SetPublishedCommand struct {
	Published bool `json:"published"`
}

// AddHitCommand records one hit marker.
type AddHitCommand struct {
	Hit string `json:"hit"`
}

func (c *AddHitCommand) Validate() error {
	c.Hit = strings.TrimSpace(c.Hit)
	if c.Hit == "" {
		return fmt.Errorf("%w: hit is required", ErrInvalidInput)
	}
	return nil
}
