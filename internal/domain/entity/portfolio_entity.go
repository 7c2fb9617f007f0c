package entity

import (
	"encoding/json"
	"time"
)

// PortfolioItem is the API shape of a portfolio entry. technologies is stored
// as a JSON-encoded array in a single text column.
type PortfolioItem struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Content      string    `json:"content"`
	ImageURL     string    `json:"imageUrl"`
	ProjectURL   string    `json:"projectUrl"`
	GithubURL    string    `json:"githubUrl"`
	Technologies []string  `json:"technologies"`
	Featured     bool      `json:"featured"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CreatePortfolioItemInput struct {
	Title        string
	Description  string
	Content      string
	ImageURL     string
	ProjectURL   string
	GithubURL    string
	Technologies []string
	Featured     bool
	Published    bool
}

// UpdatePortfolioItemInput is a sparse update: nil fields are left untouched.
type UpdatePortfolioItemInput struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Content      *string   `json:"content"`
	ImageURL     *string   `json:"imageUrl"`
	ProjectURL   *string   `json:"projectUrl"`
	GithubURL    *string   `json:"githubUrl"`
	Technologies *[]string `json:"technologies"`
	Featured     *bool     `json:"featured"`
	Published    *bool     `json:"published"`
}

// Assignments returns the column/value pairs present in the update.
// Technologies are JSON-encoded for the text column.
func (u *UpdatePortfolioItemInput) Assignments() ([]string, []any) {
	var cols []string
	var vals []any
	if u.Title != nil {
		cols, vals = append(cols, "title"), append(vals, *u.Title)
	}
	if u.Description != nil {
		cols, vals = append(cols, "description"), append(vals, *u.Description)
	}
	if u.Content != nil {
		cols, vals = append(cols, "content"), append(vals, *u.Content)
	}
	if u.ImageURL != nil {
		cols, vals = append(cols, "image_url"), append(vals, *u.ImageURL)
	}
	if u.ProjectURL != nil {
		cols, vals = append(cols, "project_url"), append(vals, *u.ProjectURL)
	}
	if u.GithubURL != nil {
		cols, vals = append(cols, "github_url"), append(vals, *u.GithubURL)
	}
	if u.Technologies != nil {
		cols, vals = append(cols, "technologies"), append(vals, EncodeTechnologies(*u.Technologies))
	}
	if u.Featured != nil {
		cols, vals = append(cols, "featured"), append(vals, *u.Featured)
	}
	if u.Published != nil {
		cols, vals = append(cols, "published"), append(vals, *u.Published)
	}
	return cols, vals
}

// EncodeTechnologies serializes the tag list for storage. A nil slice encodes
// as an empty array so the column never holds SQL NULL for new rows.
func EncodeTechnologies(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// DecodeTechnologies parses the stored tag list. Malformed or empty values
// decode to an empty slice rather than failing the read.
func DecodeTechnologies(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil || tags == nil {
		return []string{}
	}
	return tags
}
