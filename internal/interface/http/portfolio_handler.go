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

type PortfolioHandler struct {
	Repo   repository.PortfolioRepository
	Logger *logrus.Logger
}

func NewPortfolioHandler(repo repository.PortfolioRepository, logger *logrus.Logger) *PortfolioHandler {
	return &PortfolioHandler{Repo: repo, Logger: logger}
}

type createPortfolioItemRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Content      string   `json:"content"`
	ImageURL     string   `json:"imageUrl"`
	ProjectURL   string   `json:"projectUrl"`
	GithubURL    string   `json:"githubUrl"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
	Published    bool     `json:"published"`
}

type updatePortfolioItemRequest struct {
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

// List GET /api/portfolio. Published items surface featured-first.
func (h *PortfolioHandler) List(c *gin.Context) {
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

// Get GET /api/portfolio/:id
func (h *PortfolioHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "portfolio item")
	if !ok {
		return
	}
	item, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.Err(c, http.StatusNotFound, "Portfolio item not found")
			return
		}
		response.Err(c, http.StatusInternalServerError, "Failed to fetch portfolio item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create POST /api/portfolio (session required by the route).
func (h *PortfolioHandler) Create(c *gin.Context) {
	var req createPortfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrWithDetails(c, http.StatusBadRequest, "Missing required fields", validation.ToDetails(err))
		return
	}

	item, err := h.Repo.Create(c.Request.Context(), entity.CreatePortfolioItemInput{
		Title:        req.Title,
		Description:  req.Description,
		Content:      req.Content,
		ImageURL:     req.ImageURL,
		ProjectURL:   req.ProjectURL,
		GithubURL:    req.GithubURL,
		Technologies: req.Technologies,
		Featured:     req.Featured,
		Published:    req.Published,
	})
	if err != nil {
		response.Err(c, http.StatusInternalServerError, "Failed to create portfolio item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update PUT /api/portfolio/:id applies a partial update.
func (h *PortfolioHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "portfolio item")
	if !ok {
		return
	}
	var req updatePortfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrWithDetails(c, http.StatusBadRequest, "Invalid payload", validation.ToDetails(err))
		return
	}

	item, err := h.Repo.Update(c.Request.Context(), id, entity.UpdatePortfolioItemInput{
		Title:        req.Title,
		Description:  req.Description,
		Content:      req.Content,
		ImageURL:     req.ImageURL,
		ProjectURL:   req.ProjectURL,
		GithubURL:    req.GithubURL,
		Technologies: req.Technologies,
		Featured:     req.Featured,
		Published:    req.Published,
	})
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.Err(c, http.StatusNotFound, "Portfolio item not found")
			return
		}
		response.Err(c, http.StatusInternalServerError, "Failed to update portfolio item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete DELETE /api/portfolio/:id
func (h *PortfolioHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "portfolio item")
	if !ok {
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.Err(c, http.StatusNotFound, "Portfolio item not found")
			return
		}
		response.Err(c, http.StatusInternalServerError, "Failed to delete portfolio item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
