package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/EliyatMagar/websathi-new/internal/domain/entity"
	"github.com/EliyatMagar/websathi-new/internal/domain/repository"
	"github.com/EliyatMagar/websathi-new/internal/infrastructure/postgres"
	"github.com/EliyatMagar/websathi-new/internal/interface/middleware"
	"github.com/EliyatMagar/websathi-new/pkg/response"
	"github.com/EliyatMagar/websathi-new/pkg/validation"
)

type VideoHandler struct {
	Repo   repository.VideoRepository
	Logger *logrus.Logger
}

func NewVideoHandler(repo repository.VideoRepository, logger *logrus.Logger) *VideoHandler {
	return &VideoHandler{Repo: repo, Logger: logger}
}

type createVideoRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	YoutubeURL   string `json:"youtubeUrl" binding:"required"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Published    bool   `json:"published"`
	Featured     bool   `json:"featured"`
}

type updateVideoRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	YoutubeURL   *string `json:"youtubeUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Published    *bool   `json:"published"`
	Featured     *bool   `json:"featured"`
}

// List GET /api/videos
func (h *VideoHandler) List(c *gin.Context) {
	if adminScoped(c) {
		if middleware.UserID(c) == 0 {
			response.Err(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.JSON(http.StatusOK, h.Repo.ListAll(c.Request.Context()))
		return
	}
	c.JSON(http.StatusOK, h.Repo.ListPublished(c.Request.Context()))
}

// Get GET /api/videos/:id
func (h *VideoHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "video")
	if !ok {
		return
	}
	v, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.Err(c, http.StatusNotFound, "Video not found")
			return
		}
		response.Err(c, http.StatusInternalServerError, "Failed to fetch video")
		return
	}
	c.JSON(http.StatusOK, v)
}

// Create POST /api/videos (session required by the route).
func (h *VideoHandler) Create(c *gin.Context) {
	var req createVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrWithDetails(c, http.StatusBadRequest, "Missing required fields", validation.ToDetails(err))
		return
	}

	v, err := h.Repo.Create(c.Request.Context(), entity.CreateVideoInput{
		Title:        req.Title,
		Description:  req.Description,
		YoutubeURL:   req.YoutubeURL,
		ThumbnailURL: req.ThumbnailURL,
		Published:    req.Published,
		Featured:     req.Featured,
	})
	if err != nil {
		response.Err(c, http.StatusInternalServerError, "Failed to create video")
		return
	}
	c.JSON(http.StatusCreated, v)
}

// Update PUT /api/videos/:id applies a partial update.
func (h *VideoHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "video")
	if !ok {
		return
	}
	var req updateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrWithDetails(c, http.StatusBadRequest, "Invalid payload", validation.ToDetails(err))
		return
	}

	v, err := h.Repo.Update(c.Request.Context(), id, entity.UpdateVideoInput{
		Title:        req.Title,
		Description:  req.Description,
		YoutubeURL:   req.YoutubeURL,
		ThumbnailURL: req.ThumbnailURL,
		Published:    req.Published,
		Featured:     req.Featured,
	})
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.Err(c, http.StatusNotFound, "Video not found")
			return
		}
		response.Err(c, http.StatusInternalServerError, "Failed to update video")
		return
	}
	c.JSON(http.StatusOK, v)
}

// Delete DELETE /api/videos/:id
func (h *VideoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "video")
	if !ok {
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.Err(c, http.StatusNotFound, "Video not found")
			return
		}
		response.Err(c, http.StatusInternalServerError, "Failed to delete video")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
