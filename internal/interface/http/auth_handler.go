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
	"github.com/EliyatMagar/websathi-new/pkg/helpers"
	"github.com/EliyatMagar/websathi-new/pkg/response"
	"github.com/EliyatMagar/websathi-new/pkg/validation"
)

type AuthHandler struct {
	Repo    repository.UserRepository
	JWT     *helpers.JWTManager
	Cookies *helpers.CookieManager
	Logger  *logrus.Logger
}

func NewAuthHandler(repo repository.UserRepository, jwt *helpers.JWTManager, cookies *helpers.CookieManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Repo: repo, JWT: jwt, Cookies: cookies, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrWithDetails(c, http.StatusBadRequest, "All fields required", validation.ToDetails(err))
		return
	}

	hashed, err := helpers.HashPassword(req.Password)
	if err != nil {
		response.Err(c, http.StatusInternalServerError, "Server error")
		return
	}

	u := &entity.User{Name: req.Name, Email: req.Email, Password: hashed}
	if err := h.Repo.Create(c.Request.Context(), u); err != nil {
		if errors.Is(err, postgres.ErrDuplicate) {
			response.Err(c, http.StatusBadRequest, "Email already exists")
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Err(c, http.StatusInternalServerError, "Server error")
		return
	}

	token, exp, err := h.JWT.Issue(u.ID)
	if err != nil {
		h.Logger.WithError(err).Error("token issue failed")
		response.Err(c, http.StatusInternalServerError, "Server error")
		return
	}
	h.Cookies.SetSession(c, token, exp)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user":    u.Public(),
	})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrWithDetails(c, http.StatusBadRequest, "Email and password are required", validation.ToDetails(err))
		return
	}

	u, err := h.Repo.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.Err(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.Logger.WithError(err).Error("login lookup failed")
		response.Err(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	valid, err := helpers.CheckPassword(req.Password, u.Password)
	if err != nil {
		// account row without a usable credential
		h.Logger.WithError(err).WithField("user_id", u.ID).Error("password check failed")
		response.Err(c, http.StatusInternalServerError, "Authentication error")
		return
	}
	if !valid {
		response.Err(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, exp, err := h.JWT.Issue(u.ID)
	if err != nil {
		h.Logger.WithError(err).Error("token issue failed")
		response.Err(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.Cookies.SetSession(c, token, exp)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    u.Public(),
	})
}

// Logout GET|POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me GET /api/auth/me resolves the session to a user, or null. It never
// errors to the caller; a broken session reads the same as no session.
func (h *AuthHandler) Me(c *gin.Context) {
	uid := middleware.UserID(c)
	if uid == 0 {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	u, err := h.Repo.GetByID(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u.Public()})
}
