package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/EliyatMagar/websathi-new/internal/domain/entity"
	"github.com/EliyatMagar/websathi-new/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
	log  *logrus.Logger
}

func NewUserRepository(pool *pgxpool.Pool, log *logrus.Logger) *UserRepository {
	return &UserRepository{pool: pool, log: log}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	const q = `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, q, u.Name, u.Email, u.Password).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		logQueryErr(r.log, err, q, []any{u.Name, u.Email})
		return translateErr(err, q)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	const q = `
		SELECT id, name, email, password, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.scanOne(ctx, q, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	const q = `
		SELECT id, name, email, password, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return r.scanOne(ctx, q, email)
}

func (r *UserRepository) scanOne(ctx context.Context, q string, arg any) (*entity.User, error) {
	u := &entity.User{}
	err := r.pool.QueryRow(ctx, q, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		terr := translateErr(err, q)
		if !errors.Is(terr, ErrNotFound) {
			logQueryErr(r.log, err, q, []any{arg})
		}
		return nil, terr
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
