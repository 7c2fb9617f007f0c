package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EliyatMagar/websathi-new/internal/domain/entity"
	"github.com/EliyatMagar/websathi-new/internal/infrastructure/postgres"
	"github.com/EliyatMagar/websathi-new/internal/interface/middleware"
	"github.com/EliyatMagar/websathi-new/pkg/helpers"
	"github.com/EliyatMagar/websathi-new/pkg/validation"
)

type fakeBlogRepo struct {
	posts  []entity.BlogPost
	nextID int64
}

func newFakeBlogRepo() *fakeBlogRepo { return &fakeBlogRepo{nextID: 1} }

func (r *fakeBlogRepo) ListPublished(context.Context) []entity.BlogPost {
	out := []entity.BlogPost{}
	for _, p := range r.posts {
		if p.Published {
			out = append(out, p)
		}
	}
	return out
}

func (r *fakeBlogRepo) ListPublishedPage(_ context.Context, page, limit int) (*entity.PaginatedBlogPosts, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 9
	}
	published := r.ListPublished(context.Background())
	total := len(published)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	totalPages := (total + limit - 1) / limit
	return &entity.PaginatedBlogPosts{
		Posts:       published[start:end],
		TotalPages:  totalPages,
		CurrentPage: page,
		TotalPosts:  total,
	}, nil
}

func (r *fakeBlogRepo) ListAll(context.Context) []entity.BlogPost {
	out := []entity.BlogPost{}
	out = append(out, r.posts...)
	return out
}

func (r *fakeBlogRepo) GetBySlugOrID(_ context.Context, slugOrID string) (*entity.BlogPost, error) {
	id, idErr := strconv.ParseInt(slugOrID, 10, 64)
	for _, p := range r.posts {
		if !p.Published {
			continue
		}
		if idErr == nil && p.ID == id {
			cp := p
			return &cp, nil
		}
		if idErr != nil && p.Slug == slugOrID {
			cp := p
			return &cp, nil
		}
	}
	return nil, postgres.ErrNotFound
}

func (r *fakeBlogRepo) Create(_ context.Context, in entity.CreateBlogPostInput) (*entity.BlogPost, error) {
	for _, p := range r.posts {
		if p.Slug == in.Slug {
			return nil, postgres.ErrDuplicate
		}
	}
	now := time.Now()
	p := entity.BlogPost{
		ID: r.nextID, Title: in.Title, Slug: in.Slug, Excerpt: in.Excerpt,
		Content: in.Content, CoverImage: in.CoverImage, Published: in.Published,
		ReadTime: in.ReadTime, CreatedAt: now, UpdatedAt: now,
	}
	if p.ReadTime == 0 {
		p.ReadTime = 5
	}
	if p.Published {
		p.PublishedAt = &now
	}
	r.nextID++
	r.posts = append(r.posts, p)
	cp := p
	return &cp, nil
}

func (r *fakeBlogRepo) Update(_ context.Context, id int64, in entity.UpdateBlogPostInput) (*entity.BlogPost, error) {
	for i := range r.posts {
		if r.posts[i].ID != id {
			continue
		}
		p := &r.posts[i]
		if in.Title != nil {
			p.Title = *in.Title
		}
		if in.Slug != nil {
			p.Slug = *in.Slug
		}
		if in.Excerpt != nil {
			p.Excerpt = *in.Excerpt
		}
		if in.Content != nil {
			p.Content = *in.Content
		}
		if in.CoverImage != nil {
			p.CoverImage = *in.CoverImage
		}
		if in.ReadTime != nil {
			p.ReadTime = *in.ReadTime
		}
		if in.Published != nil {
			p.Published = *in.Published
			if *in.Published && p.PublishedAt == nil {
				now := time.Now()
				p.PublishedAt = &now
			}
		}
		p.UpdatedAt = time.Now()
		cp := *p
		return &cp, nil
	}
	return nil, postgres.ErrNotFound
}

func (r *fakeBlogRepo) Delete(_ context.Context, id int64) error {
	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return postgres.ErrNotFound
}

func jsonBody(s string) io.Reader { return strings.NewReader(s) }

func blogTestRouter(repo *fakeBlogRepo) (*gin.Engine, *helpers.JWTManager) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	h := NewBlogHandler(repo, nil, testLogger())

	r := gin.New()
	r.Use(middleware.Identify(jwt))
	r.GET("/api/blog", h.List)
	r.GET("/api/blog/search", h.Search)
	r.GET("/api/blog/:id", h.Get)

	auth := r.Group("/", middleware.RequireAuth())
	auth.POST("/api/blog", h.Create)
	auth.PUT("/api/blog/:id", h.Update)
	auth.DELETE("/api/blog/:id", h.Delete)
	return r, jwt
}

func seedPost(t *testing.T, repo *fakeBlogRepo, slug string, published bool) entity.BlogPost {
	t.Helper()
	p, err := repo.Create(context.Background(), entity.CreateBlogPostInput{
		Title: "Post " + slug, Slug: slug, Content: "body", Published: published,
	})
	require.NoError(t, err)
	return *p
}

func authedReq(t *testing.T, jwt *helpers.JWTManager, method, path, body string) *http.Request {
	t.Helper()
	token, _, err := jwt.Issue(1)
	require.NoError(t, err)
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, jsonBody(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestBlogListPublicHidesDrafts(t *testing.T) {
	repo := newFakeBlogRepo()
	r, _ := blogTestRouter(repo)
	seedPost(t, repo, "live", true)
	seedPost(t, repo, "draft", false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/blog", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var posts []entity.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "live", posts[0].Slug)
}

func TestBlogListAdminRequiresSession(t *testing.T) {
	repo := newFakeBlogRepo()
	r, jwt := blogTestRouter(repo)
	seedPost(t, repo, "draft", false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/blog?admin=true", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, authedReq(t, jwt, http.MethodGet, "/api/blog?admin=true", ""))
	require.Equal(t, http.StatusOK, w.Code)
	var posts []entity.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	assert.Len(t, posts, 1)
}

func TestBlogListPaginated(t *testing.T) {
	repo := newFakeBlogRepo()
	r, _ := blogTestRouter(repo)
	for i := 0; i < 12; i++ {
		seedPost(t, repo, "post-"+strconv.Itoa(i), true)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/blog?page=2&limit=9", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var page entity.PaginatedBlogPosts
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 12, page.TotalPosts)
	assert.Len(t, page.Posts, 3)
}

func TestBlogGetBySlugAndID(t *testing.T) {
	repo := newFakeBlogRepo()
	r, _ := blogTestRouter(repo)
	p := seedPost(t, repo, "my-post", true)

	for _, key := range []string{"my-post", strconv.FormatInt(p.ID, 10)} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/blog/"+key, nil))
		require.Equal(t, http.StatusOK, w.Code, "key %s", key)
		var got entity.BlogPost
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, p.ID, got.ID)
	}
}

func TestBlogGetDraftIsNotFound(t *testing.T) {
	repo := newFakeBlogRepo()
	r, _ := blogTestRouter(repo)
	seedPost(t, repo, "draft", false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/blog/draft", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Blog post not found")
}

func TestBlogCreateRequiresSession(t *testing.T) {
	r, _ := blogTestRouter(newFakeBlogRepo())

	req := httptest.NewRequest(http.MethodPost, "/api/blog", jsonBody(`{"title":"T","slug":"t","content":"c"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBlogCreateDuplicateSlug(t *testing.T) {
	repo := newFakeBlogRepo()
	r, jwt := blogTestRouter(repo)
	seedPost(t, repo, "taken", true)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedReq(t, jwt, http.MethodPost, "/api/blog", `{"title":"T","slug":"taken","content":"c"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Slug already exists")
}

func TestBlogCreateRejectsBadSlug(t *testing.T) {
	repo := newFakeBlogRepo()
	r, jwt := blogTestRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedReq(t, jwt, http.MethodPost, "/api/blog", `{"title":"T","slug":"Bad Slug!","content":"c"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBlogUpdateInvalidID(t *testing.T) {
	r, jwt := blogTestRouter(newFakeBlogRepo())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedReq(t, jwt, http.MethodPut, "/api/blog/abc", `{"title":"x"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid post ID")
}

func TestBlogUpdateNotFound(t *testing.T) {
	r, jwt := blogTestRouter(newFakeBlogRepo())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedReq(t, jwt, http.MethodPut, "/api/blog/99", `{"title":"x"}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlogPublishedAtSetOnce(t *testing.T) {
	repo := newFakeBlogRepo()
	r, jwt := blogTestRouter(repo)
	p := seedPost(t, repo, "draft", false)
	path := "/api/blog/" + strconv.FormatInt(p.ID, 10)

	// first unpublished -> published transition stamps publishedAt
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedReq(t, jwt, http.MethodPut, path, `{"published":true}`))
	require.Equal(t, http.StatusOK, w.Code)
	var published entity.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &published))
	require.NotNil(t, published.PublishedAt)
	firstStamp := *published.PublishedAt

	// unpublishing keeps the stamp
	w = httptest.NewRecorder()
	r.ServeHTTP(w, authedReq(t, jwt, http.MethodPut, path, `{"published":false}`))
	require.Equal(t, http.StatusOK, w.Code)
	var unpublished entity.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &unpublished))
	assert.False(t, unpublished.Published)
	require.NotNil(t, unpublished.PublishedAt)
	assert.True(t, firstStamp.Equal(*unpublished.PublishedAt))

	// republishing does not move it
	w = httptest.NewRecorder()
	r.ServeHTTP(w, authedReq(t, jwt, http.MethodPut, path, `{"published":true}`))
	require.Equal(t, http.StatusOK, w.Code)
	var republished entity.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &republished))
	require.NotNil(t, republished.PublishedAt)
	assert.True(t, firstStamp.Equal(*republished.PublishedAt))
}

func TestBlogPartialUpdateIdempotent(t *testing.T) {
	repo := newFakeBlogRepo()
	r, jwt := blogTestRouter(repo)
	p := seedPost(t, repo, "stable", true)
	path := "/api/blog/" + strconv.FormatInt(p.ID, 10)
	body := `{"title":"Edited","excerpt":"short","readTime":7,"published":true}`

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedReq(t, jwt, http.MethodPut, path, body))
	require.Equal(t, http.StatusOK, w.Code)
	var first entity.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, authedReq(t, jwt, http.MethodPut, path, body))
	require.Equal(t, http.StatusOK, w.Code)
	var second entity.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))

	// same row apart from updatedAt
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Slug, second.Slug)
	assert.Equal(t, first.Excerpt, second.Excerpt)
	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.CoverImage, second.CoverImage)
	assert.Equal(t, first.ReadTime, second.ReadTime)
	assert.Equal(t, first.Published, second.Published)
	require.NotNil(t, first.PublishedAt)
	require.NotNil(t, second.PublishedAt)
	assert.True(t, first.PublishedAt.Equal(*second.PublishedAt))
	// untouched fields keep their original values
	assert.Equal(t, p.Slug, second.Slug)
	assert.Equal(t, p.Content, second.Content)
}

func TestBlogDelete(t *testing.T) {
	repo := newFakeBlogRepo()
	r, jwt := blogTestRouter(repo)
	p := seedPost(t, repo, "gone", true)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedReq(t, jwt, http.MethodDelete, "/api/blog/"+strconv.FormatInt(p.ID, 10), ""))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Empty(t, repo.ListPublished(context.Background()))
}

func TestBlogSearchUnconfigured(t *testing.T) {
	r, _ := blogTestRouter(newFakeBlogRepo())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/blog/search?q=go", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Search is not configured")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/blog/search", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing search query")
}
