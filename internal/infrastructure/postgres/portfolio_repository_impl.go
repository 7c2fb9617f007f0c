package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/EliyatMagar/websathi-new/internal/domain/entity"
	"github.com/EliyatMagar/websathi-new/internal/domain/repository"
)

const portfolioColumns = `id, title, description, content, image_url, project_url, github_url, technologies, featured, published, created_at, updated_at`

type PortfolioRepository struct {
	pool *pgxpool.Pool
	log  *logrus.Logger
}

func NewPortfolioRepository(pool *pgxpool.Pool, log *logrus.Logger) *PortfolioRepository {
	return &PortfolioRepository{pool: pool, log: log}
}

func scanPortfolioItem(row pgx.Row) (*entity.PortfolioItem, error) {
	it := &entity.PortfolioItem{}
	var rawTags *string
	err := row.Scan(&it.ID, &it.Title, &it.Description, &it.Content, &it.ImageURL,
		&it.ProjectURL, &it.GithubURL, &rawTags, &it.Featured, &it.Published,
		&it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if rawTags == nil {
		it.Technologies = []string{}
	} else {
		it.Technologies = entity.DecodeTechnologies(*rawTags)
	}
	return it, nil
}

func (r *PortfolioRepository) list(ctx context.Context, q string, args ...any) []entity.PortfolioItem {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		logQueryErr(r.log, err, q, args)
		return []entity.PortfolioItem{}
	}
	defer rows.Close()

	items := []entity.PortfolioItem{}
	for rows.Next() {
		it, err := scanPortfolioItem(rows)
		if err != nil {
			logQueryErr(r.log, err, q, args)
			return []entity.PortfolioItem{}
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		logQueryErr(r.log, err, q, args)
		return []entity.PortfolioItem{}
	}
	return items
}

// ListPublished surfaces featured items first; blog and video listings do not
// share this tie-break.
func (r *PortfolioRepository) ListPublished(ctx context.Context) []entity.PortfolioItem {
	return r.list(ctx, `
		SELECT `+portfolioColumns+` FROM portfolio_items
		WHERE published = true
		ORDER BY featured DESC, created_at DESC
	`)
}

func (r *PortfolioRepository) ListAll(ctx context.Context) []entity.PortfolioItem {
	return r.list(ctx, `
		SELECT `+portfolioColumns+` FROM portfolio_items
		ORDER BY created_at DESC
	`)
}

func (r *PortfolioRepository) GetByID(ctx context.Context, id int64) (*entity.PortfolioItem, error) {
	const q = `SELECT ` + portfolioColumns + ` FROM portfolio_items WHERE id = $1 AND published = true`
	it, err := scanPortfolioItem(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		terr := translateErr(err, q)
		if !errors.Is(terr, ErrNotFound) {
			logQueryErr(r.log, err, q, []any{id})
		}
		return nil, terr
	}
	return it, nil
}

func (r *PortfolioRepository) Create(ctx context.Context, in entity.CreatePortfolioItemInput) (*entity.PortfolioItem, error) {
	const q = `
		INSERT INTO portfolio_items (title, description, content, image_url, project_url, github_url, technologies, featured, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + portfolioColumns
	args := []any{in.Title, in.Description, in.Content, in.ImageURL, in.ProjectURL,
		in.GithubURL, entity.EncodeTechnologies(in.Technologies), in.Featured, in.Published}
	it, err := scanPortfolioItem(r.pool.QueryRow(ctx, q, args...))
	if err != nil {
		logQueryErr(r.log, err, q, args)
		return nil, translateErr(err, q)
	}
	return it, nil
}

func (r *PortfolioRepository) Update(ctx context.Context, id int64, in entity.UpdatePortfolioItemInput) (*entity.PortfolioItem, error) {
	cols, vals := in.Assignments()

	set := ""
	for i, col := range cols {
		set += fmt.Sprintf("%s = $%d, ", col, i+1)
	}
	set += fmt.Sprintf("updated_at = $%d", len(vals)+1)
	vals = append(vals, time.Now().UTC())
	vals = append(vals, id)

	q := fmt.Sprintf(`UPDATE portfolio_items SET %s WHERE id = $%d RETURNING %s`, set, len(vals), portfolioColumns)
	it, err := scanPortfolioItem(r.pool.QueryRow(ctx, q, vals...))
	if err != nil {
		terr := translateErr(err, q)
		if !errors.Is(terr, ErrNotFound) {
			logQueryErr(r.log, err, q, vals)
		}
		return nil, terr
	}
	return it, nil
}

func (r *PortfolioRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM portfolio_items WHERE id = $1`
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

var _ repository.PortfolioRepository = (*PortfolioRepository)(nil)
