package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/EliyatMagar/websathi-new/internal/domain/entity"
	"github.com/EliyatMagar/websathi-new/internal/domain/repository"
)

const blogColumns = `id, title, slug, excerpt, content, cover_image, published, published_at, read_time, created_at, updated_at`

type BlogRepository struct {
	pool *pgxpool.Pool
	log  *logrus.Logger
}

func NewBlogRepository(pool *pgxpool.Pool, log *logrus.Logger) *BlogRepository {
	return &BlogRepository{pool: pool, log: log}
}

func scanBlogPost(row pgx.Row) (*entity.BlogPost, error) {
	p := &entity.BlogPost{}
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.CoverImage,
		&p.Published, &p.PublishedAt, &p.ReadTime, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *BlogRepository) list(ctx context.Context, q string, args ...any) []entity.BlogPost {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		logQueryErr(r.log, err, q, args)
		return []entity.BlogPost{}
	}
	defer rows.Close()

	posts := []entity.BlogPost{}
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			logQueryErr(r.log, err, q, args)
			return []entity.BlogPost{}
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		logQueryErr(r.log, err, q, args)
		return []entity.BlogPost{}
	}
	return posts
}

func (r *BlogRepository) ListPublished(ctx context.Context) []entity.BlogPost {
	return r.list(ctx, `
		SELECT `+blogColumns+` FROM blog_posts
		WHERE published = true
		ORDER BY published_at DESC
	`)
}

func (r *BlogRepository) ListAll(ctx context.Context) []entity.BlogPost {
	return r.list(ctx, `
		SELECT `+blogColumns+` FROM blog_posts
		ORDER BY created_at DESC
	`)
}

func (r *BlogRepository) ListPublishedPage(ctx context.Context, page, limit int) (*entity.PaginatedBlogPosts, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 9
	}
	offset := (page - 1) * limit

	posts := r.list(ctx, `
		SELECT `+blogColumns+` FROM blog_posts
		WHERE published = true
		ORDER BY published_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)

	const countQ = `SELECT COUNT(*) FROM blog_posts WHERE published = true`
	var total int
	if err := r.pool.QueryRow(ctx, countQ).Scan(&total); err != nil {
		logQueryErr(r.log, err, countQ, nil)
		return nil, translateErr(err, countQ)
	}

	totalPages := (total + limit - 1) / limit
	return &entity.PaginatedBlogPosts{
		Posts:       posts,
		TotalPages:  totalPages,
		CurrentPage: page,
		TotalPosts:  total,
	}, nil
}

// GetBySlugOrID resolves a published post. A key that parses as an integer is
// looked up by id, anything else by slug.
func (r *BlogRepository) GetBySlugOrID(ctx context.Context, slugOrID string) (*entity.BlogPost, error) {
	var q string
	var arg any
	if id, err := strconv.ParseInt(slugOrID, 10, 64); err == nil {
		q = `SELECT ` + blogColumns + ` FROM blog_posts WHERE id = $1 AND published = true`
		arg = id
	} else {
		q = `SELECT ` + blogColumns + ` FROM blog_posts WHERE slug = $1 AND published = true`
		arg = slugOrID
	}
	p, err := scanBlogPost(r.pool.QueryRow(ctx, q, arg))
	if err != nil {
		terr := translateErr(err, q)
		if !errors.Is(terr, ErrNotFound) {
			logQueryErr(r.log, err, q, []any{arg})
		}
		return nil, terr
	}
	return p, nil
}

func (r *BlogRepository) Create(ctx context.Context, in entity.CreateBlogPostInput) (*entity.BlogPost, error) {
	if in.ReadTime == 0 {
		in.ReadTime = 5
	}
	var publishedAt *time.Time
	if in.Published {
		now := time.Now().UTC()
		publishedAt = &now
	}
	const q = `
		INSERT INTO blog_posts (title, slug, excerpt, content, cover_image, published, published_at, read_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + blogColumns
	args := []any{in.Title, in.Slug, in.Excerpt, in.Content, in.CoverImage, in.Published, publishedAt, in.ReadTime}
	p, err := scanBlogPost(r.pool.QueryRow(ctx, q, args...))
	if err != nil {
		terr := translateErr(err, q)
		if !errors.Is(terr, ErrDuplicate) {
			logQueryErr(r.log, err, q, args)
		}
		return nil, terr
	}
	return p, nil
}

// Update applies a sparse update. published_at is assigned once, on the first
// transition from unpublished to published; republishing later keeps the
// original timestamp. updated_at always advances.
func (r *BlogRepository) Update(ctx context.Context, id int64, in entity.UpdateBlogPostInput) (*entity.BlogPost, error) {
	cols, vals := in.Assignments()

	set := ""
	for i, col := range cols {
		set += fmt.Sprintf("%s = $%d, ", col, i+1)
	}
	if in.Published != nil && *in.Published {
		set += "published_at = COALESCE(published_at, now()), "
	}
	set += fmt.Sprintf("updated_at = $%d", len(vals)+1)
	vals = append(vals, time.Now().UTC())
	vals = append(vals, id)

	q := fmt.Sprintf(`UPDATE blog_posts SET %s WHERE id = $%d RETURNING %s`, set, len(vals), blogColumns)
	p, err := scanBlogPost(r.pool.QueryRow(ctx, q, vals...))
	if err != nil {
		terr := translateErr(err, q)
		if !errors.Is(terr, ErrNotFound) && !errors.Is(terr, ErrDuplicate) {
			logQueryErr(r.log, err, q, vals)
		}
		return nil, terr
	}
	return p, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM blog_posts WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		logQueryErr(r.log, err, q, []any{id})
		return translateErr(err, q)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ repository.BlogRepository = (*BlogRepository)(nil)
