package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
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

type fakePortfolioRepo struct {
	items  []entity.PortfolioItem
	nextID int64
}

func newFakePortfolioRepo() *fakePortfolioRepo { return &fakePortfolioRepo{nextID: 1} }

func (r *fakePortfolioRepo) ListPublished(context.Context) []entity.PortfolioItem {
	out := []entity.PortfolioItem{}
	for _, it := range r.items {
		if it.Published {
			out = append(out, it)
		}
	}
	// featured first, newest first within each tier
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *fakePortfolioRepo) ListAll(context.Context) []entity.PortfolioItem {
	out := []entity.PortfolioItem{}
	out = append(out, r.items...)
	return out
}

func (r *fakePortfolioRepo) GetByID(_ context.Context, id int64) (*entity.PortfolioItem, error) {
	for _, it := range r.items {
		if it.ID == id {
			cp := it
			return &cp, nil
		}
	}
	return nil, postgres.ErrNotFound
}

func (r *fakePortfolioRepo) Create(_ context.Context, in entity.CreatePortfolioItemInput) (*entity.PortfolioItem, error) {
	now := time.Now().Add(time.Duration(r.nextID) * time.Second)
	it := entity.PortfolioItem{
		ID: r.nextID, Title: in.Title, Description: in.Description, Content: in.Content,
		ImageURL: in.ImageURL, ProjectURL: in.ProjectURL, GithubURL: in.GithubURL,
		Technologies: in.Technologies, Featured: in.Featured, Published: in.Published,
		CreatedAt: now, UpdatedAt: now,
	}
	if it.Technologies == nil {
		it.Technologies = []string{}
	}
	r.nextID++
	r.items = append(r.items, it)
	cp := it
	return &cp, nil
}

func (r *fakePortfolioRepo) Update(_ context.Context, id int64, in entity.UpdatePortfolioItemInput) (*entity.PortfolioItem, error) {
	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		it := &r.items[i]
		if in.Title != nil {
			it.Title = *in.Title
		}
		if in.Featured != nil {
			it.Featured = *in.Featured
		}
		if in.Published != nil {
			it.Published = *in.Published
		}
		it.UpdatedAt = time.Now()
		cp := *it
		return &cp, nil
	}
	return nil, postgres.ErrNotFound
}

func (r *fakePortfolioRepo) Delete(_ context.Context, id int64) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return postgres.ErrNotFound
}

func portfolioTestRouter(repo *fakePortfolioRepo) (*gin.Engine, *helpers.JWTManager) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	h := NewPortfolioHandler(repo, testLogger())

	r := gin.New()
	r.Use(middleware.Identify(jwt))
	r.GET("/api/portfolio", h.List)
	r.GET("/api/portfolio/:id", h.Get)

	auth := r.Group("/", middleware.RequireAuth())
	auth.POST("/api/portfolio", h.Create)
	auth.PUT("/api/portfolio/:id", h.Update)
	auth.DELETE("/api/portfolio/:id", h.Delete)
	return r, jwt
}

func TestPortfolioListFeaturedFirst(t *testing.T) {
	repo := newFakePortfolioRepo()
	r, _ := portfolioTestRouter(repo)

	_, err := repo.Create(context.Background(), entity.CreatePortfolioItemInput{
		Title: "Plain", Description: "d", Published: true,
	})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), entity.CreatePortfolioItemInput{
		Title: "Starred", Description: "d", Published: true, Featured: true,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/portfolio", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var items []entity.PortfolioItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Starred", items[0].Title)
	assert.Equal(t, "Plain", items[1].Title)
}

func TestPortfolioGetInvalidID(t *testing.T) {
	r, _ := portfolioTestRouter(newFakePortfolioRepo())

	for _, key := range []string{"abc", "0", "-3"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/portfolio/"+key, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, "key %s", key)
		assert.Contains(t, w.Body.String(), "Invalid portfolio item ID")
	}
}

func TestPortfolioGetNotFound(t *testing.T) {
	r, _ := portfolioTestRouter(newFakePortfolioRepo())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/portfolio/42", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Portfolio item not found")
}

func TestPortfolioCreateMissingFields(t *testing.T) {
	r, jwt := portfolioTestRouter(newFakePortfolioRepo())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedReq(t, jwt, http.MethodPost, "/api/portfolio", `{"title":"only-title"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
}

func TestPortfolioCreateEmptyTechnologies(t *testing.T) {
	repo := newFakePortfolioRepo()
	r, jwt := portfolioTestRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedReq(t, jwt, http.MethodPost, "/api/portfolio",
		`{"title":"T","description":"D"}`))

	require.Equal(t, http.StatusCreated, w.Code)
	var it entity.PortfolioItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &it))
	// technologies is always an array in responses, never null
	assert.NotNil(t, it.Technologies)
	assert.Empty(t, it.Technologies)
}

func TestPortfolioDeleteNotFound(t *testing.T) {
	r, jwt := portfolioTestRouter(newFakePortfolioRepo())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedReq(t, jwt, http.MethodDelete, "/api/portfolio/7", ""))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
