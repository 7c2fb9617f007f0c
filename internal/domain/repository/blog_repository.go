package repository

import (
	"context"

	"github.com/EliyatMagar/websathi-new/internal/domain/entity"
)

// BlogRepository defines database operations for blog posts.
// ListPublished and ListAll degrade to an empty slice on database failure so
// public pages never hard-crash on a transient outage.
type BlogRepository interface {
	ListPublished(ctx context.Context) []entity.BlogPost
	ListPublishedPage(ctx context.Context, page, limit int) (*entity.PaginatedBlogPosts, error)
	ListAll(ctx context.Context) []entity.BlogPost
	// GetBySlugOrID resolves a published post; a numeric key is treated as id,
	// anything else as slug.
	GetBySlugOrID(ctx context.Context, slugOrID string) (*entity.BlogPost, error)
	Create(ctx context.Context, in entity.CreateBlogPostInput) (*entity.BlogPost, error)
	Update(ctx context.Context, id int64, in entity.UpdateBlogPostInput) (*entity.BlogPost, error)
	Delete(ctx context.Context, id int64) error
}

// PortfolioRepository defines database operations for portfolio items.
type PortfolioRepository interface {
	ListPublished(ctx context.Context) []entity.PortfolioItem
	ListAll(ctx context.Context) []entity.PortfolioItem
	GetByID(ctx context.Context, id int64) (*entity.PortfolioItem, error)
	Create(ctx context.Context, in entity.CreatePortfolioItemInput) (*entity.PortfolioItem, error)
	Update(ctx context.Context, id int64, in entity.UpdatePortfolioItemInput) (*entity.PortfolioItem, error)
	Delete(ctx context.Context, id int64) error
}

// VideoRepository defines database operations for videos.
type VideoRepository interface {
	ListPublished(ctx context.Context) []entity.Video
	ListAll(ctx context.Context) []entity.Video
	GetByID(ctx context.Context, id int64) (*entity.Video, error)
	Create(ctx context.Context, in entity.CreateVideoInput) (*entity.Video, error)
	Update(ctx context.Context, id int64, in entity.UpdateVideoInput) (*entity.Video, error)
	Delete(ctx context.Context, id int64) error
}
