package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

type fakeVideoRepo struct {
	videos []entity.Video
	nextID int64
}

func newFakeVideoRepo() *fakeVideoRepo { return &fakeVideoRepo{nextID: 1} }

func (r *fakeVideoRepo) ListPublished(context.Context) []entity.Video {
	out := []entity.Video{}
	for _, v := range r.videos {
		if v.Published {
			out = append(out, v)
		}
	}
	return out
}

func (r *fakeVideoRepo) ListAll(context.Context) []entity.Video {
	out := []entity.Video{}
	out = append(out, r.videos...)
	return out
}

func (r *fakeVideoRepo) GetByID(_ context.Context, id int64) (*entity.Video, error) {
	for _, v := range r.videos {
		if v.ID == id {
			cp := v
			return &cp, nil
		}
	}
	return nil, postgres.ErrNotFound
}

func (r *fakeVideoRepo) Create(_ context.Context, in entity.CreateVideoInput) (*entity.Video, error) {
	now := time.Now()
	v := entity.Video{
		ID: r.nextID, Title: in.Title, Description: in.Description,
		YoutubeURL: in.YoutubeURL, ThumbnailURL: in.ThumbnailURL,
		Published: in.Published, Featured: in.Featured,
		CreatedAt: now, UpdatedAt: now,
	}
	r.nextID++
	r.videos = append(r.videos, v)
	cp := v
	return &cp, nil
}

func (r *fakeVideoRepo) Update(_ context.Context, id int64, in entity.UpdateVideoInput) (*entity.Video, error) {
	for i := range r.videos {
		if r.videos[i].ID != id {
			continue
		}
		v := &r.videos[i]
		if in.Title != nil {
			v.Title = *in.Title
		}
		if in.Published != nil {
			v.Published = *in.Published
		}
		v.UpdatedAt = time.Now()
		cp := *v
		return &cp, nil
	}
	return nil, postgres.ErrNotFound
}

func (r *fakeVideoRepo) Delete(_ context.Context, id int64) error {
	for i := range r.videos {
		if r.videos[i].ID == id {
			r.videos = append(r.videos[:i], r.videos[i+1:]...)
			return nil
		}
	}
	return postgres.ErrNotFound
}

func videoTestRouter(repo *fakeVideoRepo) (*gin.Engine, *helpers.JWTManager) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	h := NewVideoHandler(repo, testLogger())

	r := gin.New()
	r.Use(middleware.Identify(jwt))
	r.GET("/api/videos", h.List)
	r.GET("/api/videos/:id", h.Get)

	auth := r.Group("/", middleware.RequireAuth())
	auth.POST("/api/videos", h.Create)
	auth.PUT("/api/videos/:id", h.Update)
	auth.DELETE("/api/videos/:id", h.Delete)
	return r, jwt
}

func TestVideoCreateRequiresYoutubeURL(t *testing.T) {
	r, jwt := videoTestRouter(newFakeVideoRepo())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedReq(t, jwt, http.MethodPost, "/api/videos", `{"title":"Talk"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
}

func TestVideoCreateAndGet(t *testing.T) {
	repo := newFakeVideoRepo()
	r, jwt := videoTestRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedReq(t, jwt, http.MethodPost, "/api/videos",
		`{"title":"Talk","youtubeUrl":"https://youtu.be/dQw4w9WgXcQ","published":true}`))
	require.Equal(t, http.StatusCreated, w.Code)

	var v entity.Video
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", v.YoutubeURL)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/videos/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVideoListAdminScopedUnauthorized(t *testing.T) {
	repo := newFakeVideoRepo()
	r, _ := videoTestRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/videos?admin=true", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVideoUpdateNotFound(t *testing.T) {
	r, jwt := videoTestRouter(newFakeVideoRepo())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedReq(t, jwt, http.MethodPut, "/api/videos/3", `{"title":"x"}`))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Video not found")
}
