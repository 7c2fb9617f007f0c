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

const videoColumns = `id, title, description, youtube_url, thumbnail_url, published, featured, created_at, updated_at`

type VideoRepository struct {
	pool *pgxpool.Pool
	log  *logrus.Logger
}

func NewVideoRepository(pool *pgxpool.Pool, log *logrus.Logger) *VideoRepository {
	return &VideoRepository{pool: pool, log: log}
}

func scanVideo(row pgx.Row) (*entity.Video, error) {
	v := &entity.Video{}
	err := row.Scan(&v.ID, &v.Title, &v.Description, &v.YoutubeURL, &v.ThumbnailURL,
		&v.Published, &v.Featured, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *VideoRepository) list(ctx context.Context, q string, args ...any) []entity.Video {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		logQueryErr(r.log, err, q, args)
		return []entity.Video{}
	}
	defer rows.Close()

	videos := []entity.Video{}
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			logQueryErr(r.log, err, q, args)
			return []entity.Video{}
		}
		videos = append(videos, *v)
	}
	if err := rows.Err(); err != nil {
		logQueryErr(r.log, err, q, args)
		return []entity.Video{}
	}
	return videos
}

func (r *VideoRepository) ListPublished(ctx context.Context) []entity.Video {
	return r.list(ctx, `
		SELECT `+videoColumns+` FROM videos
		WHERE published = true
		ORDER BY created_at DESC
	`)
}

func (r *VideoRepository) ListAll(ctx context.Context) []entity.Video {
	return r.list(ctx, `
		SELECT `+videoColumns+` FROM videos
		ORDER BY created_at DESC
	`)
}

func (r *VideoRepository) GetByID(ctx context.Context, id int64) (*entity.Video, error) {
	const q = `SELECT ` + videoColumns + ` FROM videos WHERE id = $1 AND published = true`
	v, err := scanVideo(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		terr := translateErr(err, q)
		if !errors.Is(terr, ErrNotFound) {
			logQueryErr(r.log, err, q, []any{id})
		}
		return nil, terr
	}
	return v, nil
}

func (r *VideoRepository) Create(ctx context.Context, in entity.CreateVideoInput) (*entity.Video, error) {
	const q = `
		INSERT INTO videos (title, description, youtube_url, thumbnail_url, published, featured)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + videoColumns
	args := []any{in.Title, in.Description, in.YoutubeURL, in.ThumbnailURL, in.Published, in.Featured}
	v, err := scanVideo(r.pool.QueryRow(ctx, q, args...))
	if err != nil {
		logQueryErr(r.log, err, q, args)
		return nil, translateErr(err, q)
	}
	return v, nil
}

func (r *VideoRepository) Update(ctx context.Context, id int64, in entity.UpdateVideoInput) (*entity.Video, error) {
	cols, vals := in.Assignments()

	set := ""
	for i, col := range cols {
		set += fmt.Sprintf("%s = $%d, ", col, i+1)
	}
	set += fmt.Sprintf("updated_at = $%d", len(vals)+1)
	vals = append(vals, time.Now().UTC())
	vals = append(vals, id)

	q := fmt.Sprintf(`UPDATE videos SET %s WHERE id = $%d RETURNING %s`, set, len(vals), videoColumns)
	v, err := scanVideo(r.pool.QueryRow(ctx, q, vals...))
	if err != nil {
		terr := translateErr(err, q)
		if !errors.Is(terr, ErrNotFound) {
			logQueryErr(r.log, err, q, vals)
		}
		return nil, terr
	}
	return v, nil
}

func (r *VideoRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM videos WHERE id = $1`
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

var _ repository.VideoRepository = (*VideoRepository)(nil)
