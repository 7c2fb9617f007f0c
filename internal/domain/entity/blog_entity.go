package entity

import "time"

// BlogPost is the API shape of a blog post. Column names in blog_posts are
// snake_case; the JSON tags below are the one place the camelCase mapping for
// this entity is declared (note the irregular cover_image -> coverImage).
type BlogPost struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	CoverImage  string     `json:"coverImage"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt"`
	ReadTime    int        `json:"readTime"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CreateBlogPostInput carries the writable fields for a new post.
type CreateBlogPostInput struct {
	Title      string
	Slug       string
	Excerpt    string
	Content    string
	CoverImage string
	Published  bool
	ReadTime   int
}

// UpdateBlogPostInput is a sparse update: nil fields are left untouched.
type UpdateBlogPostInput struct {
	Title      *string `json:"title"`
	Slug       *string `json:"slug"`
	Excerpt    *string `json:"excerpt"`
	Content    *string `json:"content"`
	CoverImage *string `json:"coverImage"`
	Published  *bool   `json:"published"`
	ReadTime   *int    `json:"readTime"`
}

// Assignments returns the column/value pairs present in the update, using the
// static camelCase -> snake_case table for this entity.
func (u *UpdateBlogPostInput) Assignments() ([]string, []any) {
	var cols []string
	var vals []any
	if u.Title != nil {
		cols, vals = append(cols, "title"), append(vals, *u.Title)
	}
	if u.Slug != nil {
		cols, vals = append(cols, "slug"), append(vals, *u.Slug)
	}
	if u.Excerpt != nil {
		cols, vals = append(cols, "excerpt"), append(vals, *u.Excerpt)
	}
	if u.Content != nil {
		cols, vals = append(cols, "content"), append(vals, *u.Content)
	}
	if u.CoverImage != nil {
		cols, vals = append(cols, "cover_image"), append(vals, *u.CoverImage)
	}
	if u.Published != nil {
		cols, vals = append(cols, "published"), append(vals, *u.Published)
	}
	if u.ReadTime != nil {
		cols, vals = append(cols, "read_time"), append(vals, *u.ReadTime)
	}
	return cols, vals
}

// PaginatedBlogPosts is the page envelope returned by the paginated listing.
type PaginatedBlogPosts struct {
	Posts       []BlogPost `json:"posts"`
	TotalPages  int        `json:"totalPages"`
	CurrentPage int        `json:"currentPage"`
	TotalPosts  int        `json:"totalPosts"`
}
