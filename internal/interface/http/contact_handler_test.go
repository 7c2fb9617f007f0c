package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/EliyatMagar/websathi-new/pkg/mailer"
	"github.com/EliyatMagar/websathi-new/pkg/validation"
)

func contactTestRouter(mail *mailer.Mailgun) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()
	h := NewContactHandler(mail, nil, "owner@example.com", "Owner", testLogger())

	r := gin.New()
	r.POST("/api/contact", h.Submit)
	return r
}

func submitContact(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestContactSubmitUnconfiguredStillSucceeds(t *testing.T) {
	r := contactTestRouter(mailer.NewMailgun("", "", ""))

	w := submitContact(r, `{"name":"A","email":"a@example.com","subject":"Hi","message":"Hello"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Message received (email not configured)")
}

func TestContactSubmitMissingFields(t *testing.T) {
	r := contactTestRouter(mailer.NewMailgun("", "", ""))

	w := submitContact(r, `{"name":"A"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "All fields are required")
}

func TestContactSubmitInvalidEmail(t *testing.T) {
	r := contactTestRouter(mailer.NewMailgun("", "", ""))

	w := submitContact(r, `{"name":"A","email":"not-an-email","subject":"Hi","message":"Hello"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please provide a valid email address")
}

func TestContactSubmitMalformedJSON(t *testing.T) {
	r := contactTestRouter(mailer.NewMailgun("", "", ""))

	w := submitContact(r, `{broken`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
