package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/EliyatMagar/websathi-new/pkg/helpers"
	"github.com/EliyatMagar/websathi-new/pkg/response"
)

const maxUploadBytes = 5 * 1024 * 1024

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// UploadHandler stores a single image and returns its public URL. When a GCS
// bucket is configured uploads go there; otherwise they land on local disk
// under LocalDir and are served from /uploads.
type UploadHandler struct {
	GCS      *storage.Client
	Bucket   string
	LocalDir string
	Logger   *logrus.Logger
}

func NewUploadHandler(gcs *storage.Client, bucket, localDir string, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{GCS: gcs, Bucket: bucket, LocalDir: localDir, Logger: logger}
}

// Upload POST /api/upload (session required by the route).
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Err(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.Err(c, http.StatusBadRequest, "Only image files are allowed")
		return
	}
	if file.Size > maxUploadBytes {
		response.Err(c, http.StatusBadRequest, "File size must be less than 5MB")
		return
	}

	safeName := unsafeFilenameChars.ReplaceAllString(filepath.Base(file.Filename), "-")
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), safeName)

	if h.GCS != nil && h.Bucket != "" {
		src, err := file.Open()
		if err != nil {
			response.Err(c, http.StatusInternalServerError, "Failed to upload file")
			return
		}
		defer func() { _ = src.Close() }()

		url, err := helpers.UploadObject(c.Request.Context(), h.GCS, h.Bucket, "uploads/"+filename, contentType, src)
		if err != nil {
			h.Logger.WithError(err).Error("gcs upload failed")
			response.Err(c, http.StatusInternalServerError, "Failed to upload file")
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
		return
	}

	if err := os.MkdirAll(h.LocalDir, 0o755); err != nil {
		h.Logger.WithError(err).Error("uploads dir create failed")
		response.Err(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}
	dst := filepath.Join(h.LocalDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		h.Logger.WithError(err).Error("file save failed")
		response.Err(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": "/uploads/" + filename})
}
