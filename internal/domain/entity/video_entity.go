package entity

import (
	"regexp"
	"time"
)

// Video is the API shape of a video entry (note the irregular
// youtube_url -> youtubeUrl mapping).
type Video struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	YoutubeURL   string    `json:"youtubeUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Published    bool      `json:"published"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CreateVideoInput struct {
	Title        string
	Description  string
	YoutubeURL   string
	ThumbnailURL string
	Published    bool
	Featured     bool
}

// UpdateVideoInput is a sparse update: nil fields are left untouched.
type UpdateVideoInput struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	YoutubeURL   *string `json:"youtubeUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Published    *bool   `json:"published"`
	Featured     *bool   `json:"featured"`
}

// Assignments returns the column/value pairs present in the update.
func (u *UpdateVideoInput) Assignments() ([]string, []any) {
	var cols []string
	var vals []any
	if u.Title != nil {
		cols, vals = append(cols, "title"), append(vals, *u.Title)
	}
	if u.Description != nil {
		cols, vals = append(cols, "description"), append(vals, *u.Description)
	}
	if u.YoutubeURL != nil {
		cols, vals = append(cols, "youtube_url"), append(vals, *u.YoutubeURL)
	}
	if u.ThumbnailURL != nil {
		cols, vals = append(cols, "thumbnail_url"), append(vals, *u.ThumbnailURL)
	}
	if u.Published != nil {
		cols, vals = append(cols, "published"), append(vals, *u.Published)
	}
	if u.Featured != nil {
		cols, vals = append(cols, "featured"), append(vals, *u.Featured)
	}
	return cols, vals
}

var youtubeIDPattern = regexp.MustCompile(`(?:youtu\.be/|v/|/u/\w/|embed/|watch\?v=|watch\?.+&v=)([^#&?]{11})`)

// ExtractYouTubeID pulls the 11-character video id out of a YouTube URL,
// or returns "" when the URL does not carry one. Used for thumbnail
// derivation on the rendering side; not enforced at the data layer.
func ExtractYouTubeID(url string) string {
	m := youtubeIDPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}
