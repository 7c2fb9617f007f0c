package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/EliyatMagar/websathi-new/internal/domain/entity"
	"github.com/EliyatMagar/websathi-new/internal/domain/repository"
	"github.com/EliyatMagar/websathi-new/internal/infrastructure/postgres"
	"github.com/EliyatMagar/websathi-new/internal/interface/middleware"
	"github.com/EliyatMagar/websathi-new/pkg/response"
	"github.com/EliyatMagar/websathi-new/pkg/search"
	"github.com/EliyatMagar/websathi-new/pkg/validation"
)

type BlogHandler struct {
	Repo   repository.BlogRepository
	Index  *search.BlogIndex
	Logger *logrus.Logger
}

func NewBlogHandler(repo repository.BlogRepository, index *search.BlogIndex, logger *logrus.Logger) *BlogHandler {
	return &BlogHandler{Repo: repo, Index: index, Logger: logger}
}

type createBlogPostRequest struct {
	Title      string `json:"title" binding:"required"`
	Slug       string `json:"slug" binding:"required,slug"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content" binding:"required"`
	CoverImage string `json:"coverImage"`
	Published  bool   `json:"published"`
	ReadTime   int    `json:"readTime"`
}

type updateBlogPostRequest struct {
	Title      *string `json:"title"`
	Slug       *string `json:"slug" binding:"omitempty,slug"`
	Excerpt    *string `json:"excerpt"`
	Content    *string `json:"content"`
	CoverImage *string `json:"coverImage"`
	Published  *bool   `json:"published"`
	ReadTime   *int    `json:"readTime"`
}

// List GET /api/blog. Public requests see published posts only; ?admin=true
// requires a session and includes drafts. ?page enables the paginated shape.
func (h *BlogHandler) List(c *gin.Context) {
	if adminScoped(c) {
		if middleware.UserID(c) == 0 {
			response.Err(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.JSON(http.StatusOK, h.Repo.ListAll(c.Request.Context()))
		return
	}

	if pageStr := c.Query("page"); pageStr != "" {
		page, _ := strconv.Atoi(pageStr)
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "9"))
		out, err := h.Repo.ListPublishedPage(c.Request.Context(), page, limit)
		if err != nil {
			response.Err(c, http.StatusInternalServerError, "Failed to fetch blog posts")
			return
		}
		c.JSON(http.StatusOK, out)
		return
	}

	c.JSON(http.StatusOK, h.Repo.ListPublished(c.Request.Context()))
}

// Get GET /api/blog/:id accepts a numeric id or a slug.
func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.Repo.GetBySlugOrID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.Err(c, http.StatusNotFound, "Blog post not found")
			return
		}
		response.Err(c, http.StatusInternalServerError, "Failed to fetch blog post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// Create POST /api/blog (session required by the route).
func (h *BlogHandler) Create(c *gin.Context) {
	var req createBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrWithDetails(c, http.StatusBadRequest, "Missing required fields", validation.ToDetails(err))
		return
	}

	post, err := h.Repo.Create(c.Request.Context(), entity.CreateBlogPostInput{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Published:  req.Published,
		ReadTime:   req.ReadTime,
	})
	if err != nil {
		if errors.Is(err, postgres.ErrDuplicate) {
			response.Err(c, http.StatusBadRequest, "Slug already exists")
			return
		}
		response.Err(c, http.StatusInternalServerError, "Failed to create blog post")
		return
	}
	h.Index.IndexPost(c.Request.Context(), post)
	c.JSON(http.StatusCreated, post)
}

// Update PUT /api/blog/:id applies a partial update.
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "post")
	if !ok {
		return
	}
	var req updateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrWithDetails(c, http.StatusBadRequest, "Invalid payload", validation.ToDetails(err))
		return
	}

	post, err := h.Repo.Update(c.Request.Context(), id, entity.UpdateBlogPostInput{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Published:  req.Published,
		ReadTime:   req.ReadTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, postgres.ErrNotFound):
			response.Err(c, http.StatusNotFound, "Blog post not found")
		case errors.Is(err, postgres.ErrDuplicate):
			response.Err(c, http.StatusBadRequest, "Slug already exists")
		default:
			response.Err(c, http.StatusInternalServerError, "Failed to update blog post")
		}
		return
	}
	h.Index.IndexPost(c.Request.Context(), post)
	c.JSON(http.StatusOK, post)
}

// Delete DELETE /api/blog/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "post")
	if !ok {
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.Err(c, http.StatusNotFound, "Blog post not found")
			return
		}
		response.Err(c, http.StatusInternalServerError, "Failed to delete blog post")
		return
	}
	h.Index.DeletePost(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Search GET /api/blog/search?q= runs full-text search over published posts.
func (h *BlogHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Err(c, http.StatusBadRequest, "Missing search query")
		return
	}
	if !h.Index.Enabled() {
		response.Err(c, http.StatusServiceUnavailable, "Search is not configured")
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	hits, err := h.Index.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("blog search failed")
		response.Err(c, http.StatusInternalServerError, "Search failed")
		return
	}
	c.JSON(http.StatusOK, hits)
}
