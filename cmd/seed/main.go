package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/EliyatMagar/websathi-new/config"
	"github.com/EliyatMagar/websathi-new/internal/domain/entity"
	"github.com/EliyatMagar/websathi-new/pkg/helpers"
)

// Seeds the admin account plus a starter post so a fresh deploy has
// something to render. Credentials come from SEED_* vars with dev defaults.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := envOr("SEED_ADMIN_EMAIL", "admin@example.com")
	password := envOr("SEED_ADMIN_PASSWORD", "password123")
	name := envOr("SEED_ADMIN_NAME", "Site Admin")

	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded admin: id=%d email=%s\n", id, email)

	var postID int64
	err = db.QueryRow(`
		INSERT INTO blog_posts (title, slug, excerpt, content, published, published_at, read_time)
		VALUES ($1, $2, $3, $4, true, now(), 3)
		ON CONFLICT (slug) DO UPDATE SET updated_at = now()
		RETURNING id
	`, "Hello World", "hello-world", "First post on this site.",
		"Welcome! This post was created by the seed tool.").Scan(&postID)
	if err != nil {
		log.Fatalf("failed to seed blog post: %v", err)
	}
	fmt.Printf("seeded blog post: id=%d slug=hello-world\n", postID)

	techs := entity.EncodeTechnologies([]string{"Go", "PostgreSQL", "Gin"})
	var itemID int64
	// portfolio_items has no natural key, so guard against re-running the seed
	err = db.QueryRow(`
		INSERT INTO portfolio_items (title, description, content, technologies, featured, published)
		SELECT $1, $2, $3, $4, true, true
		WHERE NOT EXISTS (SELECT 1 FROM portfolio_items WHERE title = $1)
		RETURNING id
	`, "Sample Project", "A starter portfolio entry.",
		"Replace this with a real project from the dashboard.", techs).Scan(&itemID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Fatalf("failed to seed portfolio item: %v", err)
	}
	if itemID > 0 {
		fmt.Printf("seeded portfolio item: id=%d\n", itemID)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
